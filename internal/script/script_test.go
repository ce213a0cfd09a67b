package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glmath/pkg/math"
)

const sample = `
vectors:
  a: [1, 2, 3]
  b: {x: 4, y: 5, z: 6}
  p: [3, 4]
  q: {x: 1, y: 1, z: 1, w: 1}
steps:
  - {op: add, args: [a, b], out: c}
  - {op: sub, args: [a, b], out: d}
  - {op: dot, args: [a, b]}
  - {op: mag, args: [p]}
  - {op: scalarMul, args: [q], scalar: 2, out: q2}
  - {op: cross, args: [a, b], out: n}
  - {op: push}
  - {op: translate, values: [10, 0, 0]}
  - {op: transform, args: [a], out: t}
  - {op: pop}
`

func run(t *testing.T, src string) (*Evaluator, []Result, error) {
	t.Helper()
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	e := NewEvaluator(2, nil)
	res, err := e.Run(s)
	return e, res, err
}

func TestParseValues(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Vectors["a"].Arity())
	assert.Equal(t, 3, s.Vectors["b"].Arity())
	assert.Equal(t, 2, s.Vectors["p"].Arity())
	assert.Equal(t, 4, s.Vectors["q"].Arity())
	assert.Equal(t, []math.Scalar{4, 5, 6}, s.Vectors["b"].Components())
	assert.Len(t, s.Steps, 10)
	require.NotNil(t, s.Steps[4].Scalar)
	assert.Equal(t, math.Scalar(2), *s.Steps[4].Scalar)
	assert.Nil(t, s.Steps[0].Scalar)
}

func TestParseViewMappings(t *testing.T) {
	tests := []struct {
		src  string
		want []math.Scalar
	}{
		{"{x: 1, y: 2}", []math.Scalar{1, 2}},
		{"{w: 3, h: 4}", []math.Scalar{3, 4}},
		{"{v: 2, u: 1}", []math.Scalar{1, 2}},
		{"{x: 1, y: 2, z: 3}", []math.Scalar{1, 2, 3}},
		{"{r: 1, g: 2, b: 3}", []math.Scalar{1, 2, 3}},
		{"{w: 4, x: 1, y: 2, z: 3}", []math.Scalar{1, 2, 3, 4}},
		{"{r: 1, g: 2, b: 3, a: 4}", []math.Scalar{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s, err := Parse([]byte("vectors:\n  a: " + tt.src + "\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Vectors["a"].Components())
		})
	}
}


func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing op", "steps:\n  - {args: [a]}\n"},
		{"one component", "vectors:\n  a: [1]\n"},
		{"five components", "vectors:\n  a: [1, 2, 3, 4, 5]\n"},
		{"scalar vector", "vectors:\n  a: 3\n"},
		{"bad yaml", "steps: [\n"},
		{"null vector", "vectors:\n  n: ~\n"},
		{"mixed views", "vectors:\n  a: {x: 1, h: 2}\n"},
		{"unknown key", "vectors:\n  a: {x: 1, y: 2, q: 3}\n"},
		{"partial view", "vectors:\n  a: {r: 1, g: 2}\n"},
		{"single key", "vectors:\n  a: {w: 3}\n"},
		{"null component", "vectors:\n  a: {x: 1, y: ~}\n"},
		{"text component", "vectors:\n  a: {x: 1, y: up}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestRunSample(t *testing.T) {
	e, res, err := run(t, sample)
	require.NoError(t, err)
	require.Len(t, res, 10)

	c, ok := e.Vector("c")
	require.True(t, ok)
	assert.Equal(t, []math.Scalar{5, 7, 9}, c.Components())

	// Vec3 subtraction yields the second operand minus the first.
	d, _ := e.Vector("d")
	assert.Equal(t, []math.Scalar{3, 3, 3}, d.Components())

	require.NotNil(t, res[2].Scalar)
	assert.Equal(t, math.Scalar(32), *res[2].Scalar)
	require.NotNil(t, res[3].Scalar)
	assert.Equal(t, math.Scalar(5), *res[3].Scalar)

	q2, _ := e.Vector("q2")
	assert.Equal(t, []math.Scalar{2, 2, 2, 2}, q2.Components())

	n, _ := e.Vector("n")
	assert.Equal(t, []math.Scalar{-3, 6, -3}, n.Components())

	tv, _ := e.Vector("t")
	assert.Equal(t, []math.Scalar{11, 2, 3}, tv.Components())

	require.NotNil(t, res[9].Matrix)
	assert.Equal(t, math.Translate(10, 0, 0), res[9].Matrix.Math())
	assert.Equal(t, 0, e.StackDepth())

	assert.Nil(t, res[6].Vector)
	assert.Nil(t, res[6].Scalar)
	assert.Nil(t, res[6].Matrix)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"unknown op", "steps:\n  - {op: frobnicate}\n", ErrUnknownOp},
		{"unknown vector", "steps:\n  - {op: mag, args: [nope]}\n", ErrUnknownVector},
		{"arity mismatch", "vectors: {a: [1, 2], b: [1, 2, 3]}\nsteps:\n  - {op: add, args: [a, b]}\n", ErrArity},
		{"cross on vec2", "vectors: {a: [1, 2], b: [3, 4]}\nsteps:\n  - {op: cross, args: [a, b]}\n", ErrArity},
		{"missing arg", "vectors: {a: [1, 2]}\nsteps:\n  - {op: add, args: [a]}\n", ErrArgs},
		{"short translate", "steps:\n  - {op: push}\n  - {op: translate, values: [1, 2]}\n", ErrArgs},
		{"short rotate", "steps:\n  - {op: push}\n  - {op: rotate, values: [0, 0, 1]}\n", ErrArgs},
		{"transform vec2", "vectors: {a: [1, 2]}\nsteps:\n  - {op: push}\n  - {op: transform, args: [a]}\n", ErrArity},
		{"scalarMul without scalar", "vectors: {a: [1, 2]}\nsteps:\n  - {op: scalarMul, args: [a]}\n", ErrArgs},
		{"top on empty", "steps:\n  - {op: top}\n", math.ErrStackEmpty},
		{"translate on empty", "steps:\n  - {op: translate, values: [1, 2, 3]}\n", math.ErrStackEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRunRejectsEmptyVector(t *testing.T) {
	s := &Script{
		Vectors: map[string]Value{"n": {}},
		Steps:   []Step{{Op: "negate", Args: []string{"n"}}},
	}
	_, err := NewEvaluator(1, nil).Run(s)
	assert.ErrorIs(t, err, ErrArity)
}

func TestScaleNeedsKnownArity(t *testing.T) {
	_, err := applyScale(vectorScale["scalarMul"], Value{}, 2)
	assert.ErrorIs(t, err, ErrArity)

	v, err := applyScale(vectorScale["scalarDiv"], FromVec2(math.V2(2, 4)), 2)
	require.NoError(t, err)
	assert.Equal(t, []math.Scalar{1, 2}, v.Components())
}

func TestRunStopsAtFailingStep(t *testing.T) {
	src := "vectors: {a: [1, 2]}\nsteps:\n  - {op: negate, args: [a], out: b}\n  - {op: bogus}\n  - {op: negate, args: [b], out: c}\n"
	e, res, err := run(t, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (bogus)")
	assert.Len(t, res, 1)

	_, ok := e.Vector("b")
	assert.True(t, ok)
	_, ok = e.Vector("c")
	assert.False(t, ok)
}

func TestPopOnEmptyStack(t *testing.T) {
	if math.Debug {
		t.Skip("pop on an empty stack panics in debug builds")
	}
	_, _, err := run(t, "steps:\n  - {op: pop}\n")
	assert.ErrorIs(t, err, math.ErrStackEmpty)
}

func TestRotateStep(t *testing.T) {
	src := `
vectors: {x: [1, 0, 0]}
steps:
  - {op: push}
  - {op: rotate, values: [0, 0, 1, 1.5707963267948966]}
  - {op: transform, args: [x], out: y}
`
	e, _, err := run(t, src)
	require.NoError(t, err)
	y, _ := e.Vector("y")
	c := y.Components()
	assert.InDelta(t, 0, float64(c[0]), 1e-5)
	assert.InDelta(t, 1, float64(c[1]), 1e-5)
	assert.InDelta(t, 0, float64(c[2]), 1e-5)
}

func TestStepLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := Parse([]byte("vectors: {a: [3, 4]}\nsteps:\n  - {op: mag, args: [a]}\n"))
	require.NoError(t, err)

	_, err = NewEvaluator(1, zap.New(core)).Run(s)
	require.NoError(t, err)

	steps := logs.FilterMessage("step").All()
	require.Len(t, steps, 1)
	fields := steps[0].ContextMap()
	assert.Equal(t, "mag", fields["op"])
	assert.Equal(t, "1: mag = 5", fields["result"])
}

func TestResultText(t *testing.T) {
	v := FromVec3(math.V3(1, 2.5, 3))
	s := math.Scalar(0.125)

	assert.Equal(t, "1: add -> c = (1, 2.5, 3)", Result{Step: 1, Op: "add", Out: "c", Vector: &v}.Text(-1))
	assert.Equal(t, "2: dot = 0.12", Result{Step: 2, Op: "dot", Scalar: &s}.Text(2))
	assert.Equal(t, "3: push", Result{Step: 3, Op: "push"}.Text(-1))

	m := matrixResult(math.Mat4Identity())
	m.Step, m.Op = 4, "top"
	assert.Equal(t, "4: top = (1, 0, 0, 0) (0, 1, 0, 0) (0, 0, 1, 0) (0, 0, 0, 1)", m.Text(-1))
}

func TestValueYAML(t *testing.T) {
	out, err := yaml.Marshal(FromVec2(math.V2(1, 2)))
	require.NoError(t, err)
	assert.YAMLEq(t, "{x: 1, y: 2}", string(out))

	var back Value
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, FromVec2(math.V2(1, 2)), back)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 10)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
