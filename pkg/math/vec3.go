package math

import "fmt"

// Vec3 is a 3D vector. Components are (x, y, z), also read as (r, g, b).
// The first two components are layout-identical to a Vec2.
type Vec3 [3]Scalar

// V3 returns a Vec3 with the given components.
func V3(x, y, z Scalar) Vec3 {
	return Vec3{x, y, z}
}

// V3FromV2 extends a Vec2 with z.
func V3FromV2(v Vec2, z Scalar) Vec3 {
	return Vec3{v[0], v[1], z}
}

// X returns the first component.
func (v Vec3) X() Scalar { return v[0] }

// Y returns the second component.
func (v Vec3) Y() Scalar { return v[1] }

// Z returns the third component.
func (v Vec3) Z() Scalar { return v[2] }

// R returns the red channel, the first component.
func (v Vec3) R() Scalar { return v[0] }

// G returns the green channel, the second component.
func (v Vec3) G() Scalar { return v[1] }

// B returns the blue channel, the third component.
func (v Vec3) B() Scalar { return v[2] }

// SetX sets the first component.
func (v *Vec3) SetX(s Scalar) { v[0] = s }

// SetY sets the second component.
func (v *Vec3) SetY(s Scalar) { v[1] = s }

// SetZ sets the third component.
func (v *Vec3) SetZ(s Scalar) { v[2] = s }

// XY returns a copy of the first two components.
func (v Vec3) XY() Vec2 {
	return Vec2{v[0], v[1]}
}

// XYPtr returns the first two components as a Vec2 sharing v's storage.
func (v *Vec3) XYPtr() *Vec2 {
	return (*Vec2)(v[:2])
}

// String renders v as (x, y, z).
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns other - v.
//
// The operand order is reversed relative to Vec2.Sub and Vec4.Sub. Existing
// callers rely on it, so it stays as is.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{other[0] - v[0], other[1] - v[1], other[2] - v[2]}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Dot returns the dot product, summed left to right.
func (v Vec3) Dot(other Vec3) Scalar {
	return Scalar(v[0]*other[0]) + Scalar(v[1]*other[1]) + Scalar(v[2]*other[2])
}

// MagSquared returns the sum of the squared components.
func (v Vec3) MagSquared() Scalar {
	sq := [3]Scalar{Scalar(v[0] * v[0]), Scalar(v[1] * v[1]), Scalar(v[2] * v[2])}
	return sq[0] + sq[1] + sq[2]
}

// Mag returns the magnitude.
func (v Vec3) Mag() Scalar {
	return sqrt(v.MagSquared())
}

// Normalize returns v divided by its magnitude.
// The zero vector yields NaN components.
func (v Vec3) Normalize() Vec3 {
	m := v.Mag()
	assertf(m != 0, "Vec3.Normalize of zero vector")
	return v.ScalarDiv(m)
}

// Dist returns the sum of the per-axis distances |v[i] - other[i]|.
func (v Vec3) Dist(other Vec3) Scalar {
	d := [3]Scalar{abs(v[0] - other[0]), abs(v[1] - other[1]), abs(v[2] - other[2])}
	return d[0] + d[1] + d[2]
}

// ScalarMul returns v * s.
func (v Vec3) ScalarMul(s Scalar) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// ScalarDiv returns v / s. Division by zero follows IEEE-754.
func (v Vec3) ScalarDiv(s Scalar) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Cross returns the cross product v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Lerp interpolates from v to other by t.
func (v Vec3) Lerp(other Vec3, t Scalar) Vec3 {
	return Vec3{
		v[0] + t*(other[0]-v[0]),
		v[1] + t*(other[1]-v[1]),
		v[2] + t*(other[2]-v[2]),
	}
}
