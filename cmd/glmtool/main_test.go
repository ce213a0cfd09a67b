package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/glmath/internal/config"
	"github.com/Faultbox/glmath/internal/logger"
)

const testScript = `
vectors:
  a: [1, 2, 3]
  b: [4, 5, 6]
steps:
  - {op: add, args: [a, b], out: c}
  - {op: dot, args: [a, b]}
`

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestEvalText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"eval", writeScript(t, testScript)}, config.Default(), &out))
	assert.Equal(t, "1: add -> c = (5, 7, 9)\n2: dot = 32\n", out.String())
}

func TestEvalYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "yaml"

	var out bytes.Buffer
	require.NoError(t, run([]string{"eval", writeScript(t, testScript)}, cfg, &out))
	assert.Contains(t, out.String(), "op: add")
	assert.Contains(t, out.String(), "scalar: 32")
	assert.Contains(t, out.String(), "z: 9")
}

func TestEvalPrintsResultsBeforeFailure(t *testing.T) {
	src := testScript + "  - {op: bogus}\n"

	var out bytes.Buffer
	err := run([]string{"eval", writeScript(t, src)}, config.Default(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 3")
	assert.Contains(t, out.String(), "2: dot = 32")
}

func TestEvalMissingFile(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"eval", filepath.Join(t.TempDir(), "nope.yaml")}, config.Default(), &out))
}

func TestUsageErrors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(nil, config.Default(), &out), errUsage)
	assert.ErrorIs(t, run([]string{"eval"}, config.Default(), &out), errUsage)
	assert.ErrorIs(t, run([]string{"frobnicate"}, config.Default(), &out), errUsage)
}

func TestInfo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"info"}, config.Default(), &out))
	assert.Contains(t, out.String(), "Scalar:")
	assert.Contains(t, out.String(), "Mat4")
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"config"}, config.Default(), &out))
	assert.Contains(t, out.String(), "initial_capacity: 8")

	path := filepath.Join(t.TempDir(), "glmtool.yaml")
	out.Reset()
	require.NoError(t, run([]string{"config", path}, config.Default(), &out))
	assert.FileExists(t, path)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestEvalLogsOutcome(t *testing.T) {
	logs := observeLogs(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"eval", writeScript(t, testScript)}, config.Default(), &out))

	assert.Equal(t, 1, logs.FilterMessage("dispatching command").Len())
	done := logs.FilterMessage("script evaluated").All()
	require.Len(t, done, 1)
	assert.Equal(t, zapcore.InfoLevel, done[0].Level)
	assert.Equal(t, int64(2), done[0].ContextMap()["steps"])
}

func TestEvalWarnsOnPartialRun(t *testing.T) {
	logs := observeLogs(t)

	var out bytes.Buffer
	require.Error(t, run([]string{"eval", writeScript(t, testScript+"  - {op: bogus}\n")}, config.Default(), &out))

	stopped := logs.FilterMessage("script stopped early").All()
	require.Len(t, stopped, 1)
	assert.Equal(t, zapcore.WarnLevel, stopped[0].Level)
	assert.Equal(t, int64(2), stopped[0].ContextMap()["completed"])
	assert.Equal(t, 0, logs.FilterMessage("script evaluated").Len())
}
