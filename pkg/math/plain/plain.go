// Package plain mirrors the math value types as plain structs with only the
// primary field names, for code that works through reflection (encoders,
// scripting bridges) and cannot see through the array-backed views.
//
// Field order and scalar type match package math exactly, so conversions in
// both directions are lossless.
package plain

import "github.com/Faultbox/glmath/pkg/math"

// Vec2 mirrors math.Vec2.
type Vec2 struct {
	X math.Scalar `yaml:"x" json:"x"`
	Y math.Scalar `yaml:"y" json:"y"`
}

// Vec3 mirrors math.Vec3.
type Vec3 struct {
	X math.Scalar `yaml:"x" json:"x"`
	Y math.Scalar `yaml:"y" json:"y"`
	Z math.Scalar `yaml:"z" json:"z"`
}

// Vec4 mirrors math.Vec4.
type Vec4 struct {
	X math.Scalar `yaml:"x" json:"x"`
	Y math.Scalar `yaml:"y" json:"y"`
	Z math.Scalar `yaml:"z" json:"z"`
	W math.Scalar `yaml:"w" json:"w"`
}

// Quat mirrors math.Quat.
type Quat struct {
	X math.Scalar `yaml:"x" json:"x"`
	Y math.Scalar `yaml:"y" json:"y"`
	Z math.Scalar `yaml:"z" json:"z"`
	W math.Scalar `yaml:"w" json:"w"`
}

// Rect has its origin at the bottom-left corner.
type Rect struct {
	X math.Scalar `yaml:"x" json:"x"`
	Y math.Scalar `yaml:"y" json:"y"`
	W math.Scalar `yaml:"w" json:"w"`
	H math.Scalar `yaml:"h" json:"h"`
}

// Mat3 is row-major: Mrc is row r, column c.
type Mat3 struct {
	M00, M01, M02 math.Scalar
	M10, M11, M12 math.Scalar
	M20, M21, M22 math.Scalar
}

// Mat4 is row-major: Mrc is row r, column c.
type Mat4 struct {
	M00, M01, M02, M03 math.Scalar
	M10, M11, M12, M13 math.Scalar
	M20, M21, M22, M23 math.Scalar
	M30, M31, M32, M33 math.Scalar
}

// Bezier mirrors math.Bezier as four control points.
type Bezier struct {
	ControlPoints [4]Vec3 `yaml:"control_points" json:"control_points"`
}

// FromVec2 converts a math.Vec2.
func FromVec2(v math.Vec2) Vec2 { return Vec2{v[0], v[1]} }

// FromVec3 converts a math.Vec3.
func FromVec3(v math.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// FromVec4 converts a math.Vec4.
func FromVec4(v math.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }

// FromQuat converts a math.Quat.
func FromQuat(q math.Quat) Quat { return Quat{q[0], q[1], q[2], q[3]} }

// FromRect converts a math.Rect.
func FromRect(r math.Rect) Rect { return Rect{r[0], r[1], r[2], r[3]} }

// Math converts v back to a math.Vec2.
func (v Vec2) Math() math.Vec2 { return math.Vec2{v.X, v.Y} }

// Math converts v back to a math.Vec3.
func (v Vec3) Math() math.Vec3 { return math.Vec3{v.X, v.Y, v.Z} }

// Math converts v back to a math.Vec4.
func (v Vec4) Math() math.Vec4 { return math.Vec4{v.X, v.Y, v.Z, v.W} }

// Math converts q back to a math.Quat.
func (q Quat) Math() math.Quat { return math.Quat{q.X, q.Y, q.Z, q.W} }

// Math converts r back to a math.Rect.
func (r Rect) Math() math.Rect { return math.Rect{r.X, r.Y, r.W, r.H} }

// FromMat3 converts a math.Mat3.
func FromMat3(m math.Mat3) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
	}
}

// Math converts m back to a math.Mat3.
func (m Mat3) Math() math.Mat3 {
	return math.Mat3{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// FromMat4 converts a math.Mat4.
func FromMat4(m math.Mat4) Mat4 {
	return Mat4{
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	}
}

// Math converts m back to a math.Mat4.
func (m Mat4) Math() math.Mat4 {
	return math.Mat4{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

// FromBezier converts a math.Bezier.
func FromBezier(b math.Bezier) Bezier {
	var out Bezier
	for i := range out.ControlPoints {
		out.ControlPoints[i] = FromVec3(b.CP(i))
	}
	return out
}

// Math converts b back to a math.Bezier.
func (b Bezier) Math() math.Bezier {
	cp := b.ControlPoints
	return math.MakeBezier(cp[0].Math(), cp[1].Math(), cp[2].Math(), cp[3].Math())
}
