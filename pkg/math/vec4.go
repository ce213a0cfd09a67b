package math

import "fmt"

// Vec4 is a 4-component vector, (x, y, z, w) or (r, g, b, a).
// The first three components are layout-identical to a Vec3.
type Vec4 [4]Scalar

// V4 returns a Vec4 with the given components.
func V4(x, y, z, w Scalar) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 extends a Vec3 with w.
func V4FromV3(v Vec3, w Scalar) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// X returns the first component.
func (v Vec4) X() Scalar { return v[0] }

// Y returns the second component.
func (v Vec4) Y() Scalar { return v[1] }

// Z returns the third component.
func (v Vec4) Z() Scalar { return v[2] }

// W returns the fourth component.
func (v Vec4) W() Scalar { return v[3] }

// R returns the red channel, the first component.
func (v Vec4) R() Scalar { return v[0] }

// G returns the green channel, the second component.
func (v Vec4) G() Scalar { return v[1] }

// B returns the blue channel, the third component.
func (v Vec4) B() Scalar { return v[2] }

// A returns the alpha channel, the fourth component.
func (v Vec4) A() Scalar { return v[3] }

// SetX sets the first component.
func (v *Vec4) SetX(s Scalar) { v[0] = s }

// SetY sets the second component.
func (v *Vec4) SetY(s Scalar) { v[1] = s }

// SetZ sets the third component.
func (v *Vec4) SetZ(s Scalar) { v[2] = s }

// SetW sets the fourth component.
func (v *Vec4) SetW(s Scalar) { v[3] = s }

// XYZ returns a copy of the first three components.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// XYZPtr returns the first three components as a Vec3 sharing v's storage.
func (v *Vec4) XYZPtr() *Vec3 {
	return (*Vec3)(v[:3])
}

// XYPtr returns the first two components as a Vec2 sharing v's storage.
func (v *Vec4) XYPtr() *Vec2 {
	return (*Vec2)(v[:2])
}

// String renders v as (x, y, z, w).
func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul returns the component-wise product.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// Dot returns the dot product, summed left to right.
func (v Vec4) Dot(other Vec4) Scalar {
	return Scalar(v[0]*other[0]) + Scalar(v[1]*other[1]) +
		Scalar(v[2]*other[2]) + Scalar(v[3]*other[3])
}

// MagSquared returns the sum of the squared components.
func (v Vec4) MagSquared() Scalar {
	sq := [4]Scalar{
		Scalar(v[0] * v[0]), Scalar(v[1] * v[1]),
		Scalar(v[2] * v[2]), Scalar(v[3] * v[3]),
	}
	return sq[0] + sq[1] + sq[2] + sq[3]
}

// Mag returns the magnitude.
func (v Vec4) Mag() Scalar {
	return sqrt(v.MagSquared())
}

// Normalize returns v divided by its magnitude.
// The zero vector yields NaN components.
func (v Vec4) Normalize() Vec4 {
	m := v.Mag()
	assertf(m != 0, "Vec4.Normalize of zero vector")
	return v.ScalarDiv(m)
}

// Dist returns the sum of the per-axis distances |v[i] - other[i]|.
func (v Vec4) Dist(other Vec4) Scalar {
	d := [4]Scalar{
		abs(v[0] - other[0]), abs(v[1] - other[1]),
		abs(v[2] - other[2]), abs(v[3] - other[3]),
	}
	return d[0] + d[1] + d[2] + d[3]
}

// ScalarMul returns v * s.
func (v Vec4) ScalarMul(s Scalar) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// ScalarDiv returns v / s. Division by zero follows IEEE-754.
func (v Vec4) ScalarDiv(s Scalar) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// Cross returns the cross product of the xyz parts. The w components of the
// inputs are ignored and the result has w = 0.
func (v Vec4) Cross(other Vec4) Vec4 {
	return Vec4{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
		0,
	}
}

// Lerp interpolates from v to other by t.
func (v Vec4) Lerp(other Vec4, t Scalar) Vec4 {
	return Vec4{
		v[0] + t*(other[0]-v[0]),
		v[1] + t*(other[1]-v[1]),
		v[2] + t*(other[2]-v[2]),
		v[3] + t*(other[3]-v[3]),
	}
}
