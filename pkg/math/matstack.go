package math

import "errors"

// ErrStackEmpty is returned when an operation needs a top matrix and the
// stack has none.
var ErrStackEmpty = errors.New("matrix stack is empty")

// MatrixStack is a growable stack of Mat4 for composing hierarchical
// transforms. Capacity doubles when a push would overflow it and never
// shrinks. A MatrixStack is not safe for concurrent use.
type MatrixStack struct {
	items    []Mat4
	capacity int
	count    int
}

// NewMatrixStack returns an empty stack with room for capacity matrices.
// A capacity below 1 is raised to 1.
func NewMatrixStack(capacity int) *MatrixStack {
	if capacity < 1 {
		capacity = 1
	}
	return &MatrixStack{
		items:    make([]Mat4, capacity),
		capacity: capacity,
	}
}

// Len returns the number of matrices on the stack.
func (s *MatrixStack) Len() int { return s.count }

// Cap returns the number of matrices the stack holds before it grows.
func (s *MatrixStack) Cap() int { return s.capacity }

// Push puts m on top of the stack.
func (s *MatrixStack) Push(m Mat4) {
	if s.count == s.capacity {
		s.grow(s.capacity * 2)
	}
	s.items[s.count] = m
	s.count++
}

// PushTop duplicates the top matrix, or pushes the identity on an empty stack.
func (s *MatrixStack) PushTop() {
	top := mat4Identity
	if s.count > 0 {
		top = s.items[s.count-1]
	}
	s.Push(top)
}

// Pop removes and returns the top matrix. The vacated slot is zeroed.
func (s *MatrixStack) Pop() (Mat4, error) {
	assertf(s.count > 0, "MatrixStack.Pop on empty stack")
	if s.count == 0 {
		return mat4Zero, ErrStackEmpty
	}
	s.count--
	m := s.items[s.count]
	s.items[s.count] = mat4Zero
	return m, nil
}

// Top returns the top matrix without removing it.
func (s *MatrixStack) Top() (Mat4, error) {
	if s.count == 0 {
		return mat4Zero, ErrStackEmpty
	}
	return s.items[s.count-1], nil
}

// Reset empties the stack, keeping its capacity.
func (s *MatrixStack) Reset() {
	clear(s.items[:s.count])
	s.count = 0
}

// MulTop replaces the top matrix with top * m.
func (s *MatrixStack) MulTop(m Mat4) error {
	if s.count == 0 {
		return ErrStackEmpty
	}
	s.items[s.count-1] = s.items[s.count-1].Mul(m)
	return nil
}

// Translate post-multiplies the top matrix by a translation.
func (s *MatrixStack) Translate(x, y, z Scalar) error {
	return s.MulTop(Translate(x, y, z))
}

// Scale post-multiplies the top matrix by a scale.
func (s *MatrixStack) Scale(x, y, z Scalar) error {
	return s.MulTop(Scale(x, y, z))
}

// Rotate post-multiplies the top matrix by a rotation around axis.
func (s *MatrixStack) Rotate(axis Vec3, angle Scalar) error {
	return s.MulTop(RotateAxis(axis, angle))
}

func (s *MatrixStack) grow(capacity int) {
	items := make([]Mat4, capacity)
	copy(items, s.items[:s.count])
	s.items = items
	s.capacity = capacity
}
