package math

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32. Both sides use the
// same flat row-major layout, so these are element-wise copies; in a
// glm_double build they round to float32.

// F32 converts v to an f32.Vec2.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2{float32(v[0]), float32(v[1])} }

// F32 converts v to an f32.Vec3.
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])} }

// F32 converts v to an f32.Vec4.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Vec2FromF32 converts an f32.Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{Scalar(v[0]), Scalar(v[1])} }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{Scalar(v[0]), Scalar(v[1]), Scalar(v[2])} }

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{Scalar(v[0]), Scalar(v[1]), Scalar(v[2]), Scalar(v[3])}
}

// F32 converts m for use with golang.org/x/image/math/f32.
func (m Mat3) F32() f32.Mat3 {
	var out f32.Mat3
	for i, s := range m {
		out[i] = float32(s)
	}
	return out
}

// F32 converts m for use with golang.org/x/image/math/f32.
func (m Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for i, s := range m {
		out[i] = float32(s)
	}
	return out
}

// Mat3FromF32 converts an f32.Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 {
	var out Mat3
	for i, s := range m {
		out[i] = Scalar(s)
	}
	return out
}

// Mat4FromF32 converts an f32.Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 {
	var out Mat4
	for i, s := range m {
		out[i] = Scalar(s)
	}
	return out
}
