package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, -1, cfg.Output.Digits)
	assert.Equal(t, 8, cfg.Stack.InitialCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glmtool.yaml")
	yamlContent := `
logging:
  level: "debug"
  log_file: "glmtool.log"

output:
  format: yaml
  digits: 4

stack:
  initial_capacity: 32
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "glmtool.log", cfg.Logging.LogFile)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Digits)
	assert.Equal(t, 32, cfg.Stack.InitialCapacity)
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glmtool.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  digits: 6\n"), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))
	assert.Equal(t, 6, cfg.Output.Digits)
	assert.Equal(t, "text", cfg.Output.Format, "unset keys keep defaults")
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
stack:
  initial_capacity: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	assert.Error(t, loadFromFile(Default(), configPath))
}

func TestLoadFromFileMissing(t *testing.T) {
	assert.Error(t, loadFromFile(Default(), "/nonexistent/path/glmtool.yaml"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"zero digits", func(c *Config) { c.Output.Digits = 0 }},
		{"negative digits", func(c *Config) { c.Output.Digits = -3 }},
		{"zero capacity", func(c *Config) { c.Stack.InitialCapacity = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir), "ConfigDir should be absolute, got %s", dir)
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile("glmtool.yaml", []byte("output:\n  digits: 3\n"), 0644))
	assert.NotEmpty(t, findConfigFile())
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:     "debug flag",
			setup:    func() { *flagDebug = true },
			verify:   func(t *testing.T, c *Config) { assert.Equal(t, "debug", c.Logging.Level) },
			teardown: func() { *flagDebug = false },
		},
		{
			name:     "format flag",
			setup:    func() { *flagFormat = "yaml" },
			verify:   func(t *testing.T, c *Config) { assert.Equal(t, "yaml", c.Output.Format) },
			teardown: func() { *flagFormat = "" },
		},
		{
			name:     "digits flag",
			setup:    func() { *flagDigits = 5 },
			verify:   func(t *testing.T, c *Config) { assert.Equal(t, 5, c.Output.Digits) },
			teardown: func() { *flagDigits = 0 },
		},
		{
			name:     "digits flag shortest",
			setup:    func() { *flagDigits = -1 },
			verify:   func(t *testing.T, c *Config) { assert.Equal(t, -1, c.Output.Digits) },
			teardown: func() { *flagDigits = 0 },
		},
		{
			name:     "stack flag",
			setup:    func() { *flagStack = 64 },
			verify:   func(t *testing.T, c *Config) { assert.Equal(t, 64, c.Stack.InitialCapacity) },
			teardown: func() { *flagStack = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glmtool.yaml")
	yamlContent := `
output:
  format: yaml
  digits: 4
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	*flagConfig = configPath
	*flagDigits = 9
	defer func() {
		*flagConfig = ""
		*flagDigits = 0
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Output.Digits, "flag wins over file")
	assert.Equal(t, "yaml", cfg.Output.Format, "file wins over default")
}

func TestLoadShortestDigitsFlagOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "glmtool.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  digits: 4\n"), 0644))

	*flagConfig = configPath
	*flagDigits = -1
	defer func() {
		*flagConfig = ""
		*flagDigits = 0
	}()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Output.Digits)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "glmtool.yaml")
	cfg := Default()
	cfg.Stack.InitialCapacity = 16
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
