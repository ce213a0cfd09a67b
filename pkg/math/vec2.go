// Package math provides the vector, matrix, quaternion, rectangle and Bézier
// value types used by the renderer, plus a growable matrix stack.
//
// Every type is a fixed-size array of Scalar. The array is the only storage;
// named components (x/y, w/h, u/v, r/g/b/a) are accessors over it, and the
// Ptr views return pointers into the same array so writes are shared.
package math

import "fmt"

// Vec2 is a 2D vector. Components are (x, y), also read as (w, h) or (u, v).
type Vec2 [2]Scalar

// V2 returns a Vec2 with the given components.
func V2(x, y Scalar) Vec2 {
	return Vec2{x, y}
}

// X returns the first component.
func (v Vec2) X() Scalar { return v[0] }

// Y returns the second component.
func (v Vec2) Y() Scalar { return v[1] }

// W returns the width, the first component.
func (v Vec2) W() Scalar { return v[0] }

// H returns the height, the second component.
func (v Vec2) H() Scalar { return v[1] }

// U returns the first texture coordinate.
func (v Vec2) U() Scalar { return v[0] }

// V returns the second texture coordinate.
func (v Vec2) V() Scalar { return v[1] }

// SetX sets the first component.
func (v *Vec2) SetX(s Scalar) { v[0] = s }

// SetY sets the second component.
func (v *Vec2) SetY(s Scalar) { v[1] = s }

// String renders v as (x, y).
func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v[0] + other[0], v[1] + other[1]}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v[0] - other[0], v[1] - other[1]}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v[0] * other[0], v[1] * other[1]}
}

// Dot returns the dot product, summed left to right.
func (v Vec2) Dot(other Vec2) Scalar {
	// Scalar() conversions keep the compiler from fusing into FMA.
	return Scalar(v[0]*other[0]) + Scalar(v[1]*other[1])
}

// MagSquared returns the sum of the squared components.
func (v Vec2) MagSquared() Scalar {
	sq := [2]Scalar{Scalar(v[0] * v[0]), Scalar(v[1] * v[1])}
	return sq[0] + sq[1]
}

// Mag returns the magnitude.
func (v Vec2) Mag() Scalar {
	return sqrt(v.MagSquared())
}

// Normalize returns v divided by its magnitude.
// The zero vector yields NaN components.
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	assertf(m != 0, "Vec2.Normalize of zero vector")
	return v.ScalarDiv(m)
}

// Dist returns the sum of the per-axis distances |v[i] - other[i]|.
// This is not the Euclidean distance.
func (v Vec2) Dist(other Vec2) Scalar {
	d := [2]Scalar{abs(v[0] - other[0]), abs(v[1] - other[1])}
	return d[0] + d[1]
}

// ScalarMul returns v * s.
func (v Vec2) ScalarMul(s Scalar) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// ScalarDiv returns v / s. Division by zero follows IEEE-754.
func (v Vec2) ScalarDiv(s Scalar) Vec2 {
	return Vec2{v[0] / s, v[1] / s}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v[0], -v[1]}
}

// Lerp interpolates from v to other by t.
func (v Vec2) Lerp(other Vec2, t Scalar) Vec2 {
	return Vec2{
		v[0] + t*(other[0]-v[0]),
		v[1] + t*(other[1]-v[1]),
	}
}
