package script

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glmath/pkg/math"
	"github.com/Faultbox/glmath/pkg/math/plain"
)

// Result is the outcome of one step. Exactly one of Vector, Scalar or
// Matrix is set, except for steps that only change the stack.
type Result struct {
	Step   int          `yaml:"step"`
	Op     string       `yaml:"op"`
	Out    string       `yaml:"out,omitempty"`
	Vector *Value       `yaml:"vector,omitempty"`
	Scalar *math.Scalar `yaml:"scalar,omitempty"`
	Matrix *plain.Mat4  `yaml:"matrix,omitempty"`
}

// Text renders r on one line.
func (r Result) Text(digits int) string {
	head := fmt.Sprintf("%d: %s", r.Step, r.Op)
	if r.Out != "" {
		head += " -> " + r.Out
	}
	switch {
	case r.Vector != nil:
		return head + " = " + r.Vector.Format(digits)
	case r.Scalar != nil:
		return head + " = " + FormatScalar(*r.Scalar, digits)
	case r.Matrix != nil:
		m := r.Matrix.Math()
		out := head + " ="
		for row := 0; row < 4; row++ {
			out += " " + FromVec4(m.Row(row)).Format(digits)
		}
		return out
	}
	return head
}

// byArity holds one implementation of an op per vector arity. A nil entry
// means the op is not defined for that arity.
type byArity[F2, F3, F4 any] struct {
	v2 F2
	v3 F3
	v4 F4
}

var vectorBinary = map[string]byArity[
	func(math.Vec2, math.Vec2) math.Vec2,
	func(math.Vec3, math.Vec3) math.Vec3,
	func(math.Vec4, math.Vec4) math.Vec4,
]{
	"add":   {math.Vec2.Add, math.Vec3.Add, math.Vec4.Add},
	"sub":   {math.Vec2.Sub, math.Vec3.Sub, math.Vec4.Sub},
	"mul":   {math.Vec2.Mul, math.Vec3.Mul, math.Vec4.Mul},
	"cross": {nil, math.Vec3.Cross, math.Vec4.Cross},
}

var scalarBinary = map[string]byArity[
	func(math.Vec2, math.Vec2) math.Scalar,
	func(math.Vec3, math.Vec3) math.Scalar,
	func(math.Vec4, math.Vec4) math.Scalar,
]{
	"dot":  {math.Vec2.Dot, math.Vec3.Dot, math.Vec4.Dot},
	"dist": {math.Vec2.Dist, math.Vec3.Dist, math.Vec4.Dist},
}

var vectorUnary = map[string]byArity[
	func(math.Vec2) math.Vec2,
	func(math.Vec3) math.Vec3,
	func(math.Vec4) math.Vec4,
]{
	"normalize": {math.Vec2.Normalize, math.Vec3.Normalize, math.Vec4.Normalize},
	"negate":    {math.Vec2.Negate, math.Vec3.Negate, math.Vec4.Negate},
}

var scalarUnary = map[string]byArity[
	func(math.Vec2) math.Scalar,
	func(math.Vec3) math.Scalar,
	func(math.Vec4) math.Scalar,
]{
	"mag":        {math.Vec2.Mag, math.Vec3.Mag, math.Vec4.Mag},
	"magSquared": {math.Vec2.MagSquared, math.Vec3.MagSquared, math.Vec4.MagSquared},
}

var vectorScale = map[string]byArity[
	func(math.Vec2, math.Scalar) math.Vec2,
	func(math.Vec3, math.Scalar) math.Vec3,
	func(math.Vec4, math.Scalar) math.Vec4,
]{
	"scalarMul": {math.Vec2.ScalarMul, math.Vec3.ScalarMul, math.Vec4.ScalarMul},
	"scalarDiv": {math.Vec2.ScalarDiv, math.Vec3.ScalarDiv, math.Vec4.ScalarDiv},
}

// Evaluator runs scripts against named vectors and a transform stack.
// It is not safe for concurrent use.
type Evaluator struct {
	vectors map[string]Value
	stack   *math.MatrixStack
	log     *zap.Logger
}

// NewEvaluator returns an evaluator whose stack starts with room for
// stackCapacity matrices.
func NewEvaluator(stackCapacity int, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{
		vectors: make(map[string]Value),
		stack:   math.NewMatrixStack(stackCapacity),
		log:     log,
	}
}

// Vector returns a named vector, including step outputs.
func (e *Evaluator) Vector(name string) (Value, bool) {
	v, ok := e.vectors[name]
	return v, ok
}

// StackDepth returns the number of matrices on the transform stack.
func (e *Evaluator) StackDepth() int {
	return e.stack.Len()
}

// Run declares the script's vectors and executes its steps in order,
// stopping at the first failing step.
func (e *Evaluator) Run(s *Script) ([]Result, error) {
	if err := s.checkVectors(); err != nil {
		return nil, err
	}
	for name, v := range s.Vectors {
		e.vectors[name] = v
	}
	e.log.Debug("script loaded",
		zap.Int("vectors", len(s.Vectors)),
		zap.Int("steps", len(s.Steps)))

	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		r, err := e.step(st)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		r.Step = i + 1
		r.Op = st.Op
		r.Out = st.Out
		if r.Vector != nil && st.Out != "" {
			e.vectors[st.Out] = *r.Vector
		}
		e.log.Debug("step",
			zap.Int("n", r.Step),
			zap.String("op", st.Op),
			zap.Strings("args", st.Args),
			zap.String("result", r.Text(-1)))
		results = append(results, r)
	}
	return results, nil
}

func (e *Evaluator) step(st Step) (Result, error) {
	if f, ok := vectorBinary[st.Op]; ok {
		a, b, err := e.pair(st.Args)
		if err != nil {
			return Result{}, err
		}
		v, err := applyBinary(f, a, b, FromVec2, FromVec3, FromVec4)
		return vectorResult(v), err
	}
	if f, ok := scalarBinary[st.Op]; ok {
		a, b, err := e.pair(st.Args)
		if err != nil {
			return Result{}, err
		}
		s, err := applyBinary(f, a, b, id, id, id)
		return scalarResult(s), err
	}
	if f, ok := vectorUnary[st.Op]; ok {
		a, err := e.single(st.Args)
		if err != nil {
			return Result{}, err
		}
		v, err := applyUnary(f, a, FromVec2, FromVec3, FromVec4)
		return vectorResult(v), err
	}
	if f, ok := scalarUnary[st.Op]; ok {
		a, err := e.single(st.Args)
		if err != nil {
			return Result{}, err
		}
		s, err := applyUnary(f, a, id, id, id)
		return scalarResult(s), err
	}
	if f, ok := vectorScale[st.Op]; ok {
		a, err := e.single(st.Args)
		if err != nil {
			return Result{}, err
		}
		if st.Scalar == nil {
			return Result{}, fmt.Errorf("%w: %s needs a scalar", ErrArgs, st.Op)
		}
		v, err := applyScale(f, a, *st.Scalar)
		return vectorResult(v), err
	}
	return e.stackStep(st)
}

func (e *Evaluator) stackStep(st Step) (Result, error) {
	switch st.Op {
	case "push":
		e.stack.PushTop()
		return Result{}, nil
	case "pop":
		m, err := e.stack.Pop()
		if err != nil {
			return Result{}, err
		}
		return matrixResult(m), nil
	case "top":
		m, err := e.stack.Top()
		if err != nil {
			return Result{}, err
		}
		return matrixResult(m), nil
	case "translate", "scale":
		if len(st.Values) != 3 {
			return Result{}, fmt.Errorf("%w: %s needs 3 values, got %d", ErrArgs, st.Op, len(st.Values))
		}
		x, y, z := st.Values[0], st.Values[1], st.Values[2]
		if st.Op == "translate" {
			return Result{}, e.stack.Translate(x, y, z)
		}
		return Result{}, e.stack.Scale(x, y, z)
	case "rotate":
		if len(st.Values) != 4 {
			return Result{}, fmt.Errorf("%w: rotate needs axis x, y, z and angle, got %d values", ErrArgs, len(st.Values))
		}
		axis := math.V3(st.Values[0], st.Values[1], st.Values[2])
		return Result{}, e.stack.Rotate(axis, st.Values[3])
	case "transform":
		a, err := e.single(st.Args)
		if err != nil {
			return Result{}, err
		}
		if a.Arity() != 3 {
			return Result{}, fmt.Errorf("%w: transform needs a 3-vector, got %d", ErrArity, a.Arity())
		}
		m, err := e.stack.Top()
		if err != nil {
			return Result{}, err
		}
		return vectorResult(FromVec3(m.TransformPoint(a.vec3()))), nil
	}
	return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
}

func (e *Evaluator) lookup(name string) (Value, error) {
	v, ok := e.vectors[name]
	if !ok {
		return Value{}, fmt.Errorf("%w %q", ErrUnknownVector, name)
	}
	return v, nil
}

func (e *Evaluator) single(args []string) (Value, error) {
	if len(args) != 1 {
		return Value{}, fmt.Errorf("%w: want 1, got %d", ErrArgs, len(args))
	}
	return e.lookup(args[0])
}

func (e *Evaluator) pair(args []string) (Value, Value, error) {
	if len(args) != 2 {
		return Value{}, Value{}, fmt.Errorf("%w: want 2, got %d", ErrArgs, len(args))
	}
	a, err := e.lookup(args[0])
	if err != nil {
		return Value{}, Value{}, err
	}
	b, err := e.lookup(args[1])
	if err != nil {
		return Value{}, Value{}, err
	}
	if a.Arity() != b.Arity() {
		return Value{}, Value{}, fmt.Errorf("%w: %s has %d components, %s has %d",
			ErrArity, args[0], a.Arity(), args[1], b.Arity())
	}
	return a, b, nil
}

func id(s math.Scalar) math.Scalar { return s }

func applyBinary[R2, R3, R4, O any](
	f byArity[func(math.Vec2, math.Vec2) R2, func(math.Vec3, math.Vec3) R3, func(math.Vec4, math.Vec4) R4],
	a, b Value,
	wrap2 func(R2) O, wrap3 func(R3) O, wrap4 func(R4) O,
) (O, error) {
	var zero O
	switch {
	case a.n == 2 && f.v2 != nil:
		return wrap2(f.v2(a.vec2(), b.vec2())), nil
	case a.n == 3 && f.v3 != nil:
		return wrap3(f.v3(a.vec3(), b.vec3())), nil
	case a.n == 4 && f.v4 != nil:
		return wrap4(f.v4(a.vec4(), b.vec4())), nil
	}
	return zero, fmt.Errorf("%w: not defined for %d components", ErrArity, a.n)
}

func applyUnary[R2, R3, R4, O any](
	f byArity[func(math.Vec2) R2, func(math.Vec3) R3, func(math.Vec4) R4],
	a Value,
	wrap2 func(R2) O, wrap3 func(R3) O, wrap4 func(R4) O,
) (O, error) {
	var zero O
	switch {
	case a.n == 2 && f.v2 != nil:
		return wrap2(f.v2(a.vec2())), nil
	case a.n == 3 && f.v3 != nil:
		return wrap3(f.v3(a.vec3())), nil
	case a.n == 4 && f.v4 != nil:
		return wrap4(f.v4(a.vec4())), nil
	}
	return zero, fmt.Errorf("%w: not defined for %d components", ErrArity, a.n)
}

func applyScale(
	f byArity[func(math.Vec2, math.Scalar) math.Vec2, func(math.Vec3, math.Scalar) math.Vec3, func(math.Vec4, math.Scalar) math.Vec4],
	a Value,
	s math.Scalar,
) (Value, error) {
	switch a.n {
	case 2:
		return FromVec2(f.v2(a.vec2(), s)), nil
	case 3:
		return FromVec3(f.v3(a.vec3(), s)), nil
	case 4:
		return FromVec4(f.v4(a.vec4(), s)), nil
	}
	return Value{}, fmt.Errorf("%w: not defined for %d components", ErrArity, a.n)
}

func vectorResult(v Value) Result { return Result{Vector: &v} }

func scalarResult(s math.Scalar) Result { return Result{Scalar: &s} }

func matrixResult(m math.Mat4) Result {
	p := plain.FromMat4(m)
	return Result{Matrix: &p}
}
