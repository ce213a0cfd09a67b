package math

import "fmt"

// Quat is a rotation quaternion stored as (x, y, z, w), w being the scalar
// part. The vector part is layout-identical to a Vec3.
type Quat [4]Scalar

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle Scalar) Quat {
	half := angle / 2
	s := sin(half)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, cos(half)}
}

// X returns the first component of the vector part.
func (q Quat) X() Scalar { return q[0] }

// Y returns the second component of the vector part.
func (q Quat) Y() Scalar { return q[1] }

// Z returns the third component of the vector part.
func (q Quat) Z() Scalar { return q[2] }

// W returns the scalar part.
func (q Quat) W() Scalar { return q[3] }

// Scalar returns the scalar part, w.
func (q Quat) Scalar() Scalar { return q[3] }

// Vec returns a copy of the vector part.
func (q Quat) Vec() Vec3 { return Vec3{q[0], q[1], q[2]} }

// VecPtr returns the vector part sharing q's storage.
func (q *Quat) VecPtr() *Vec3 {
	return (*Vec3)(q[:3])
}

// String renders q as (x, y, z, w).
func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v; %v)", q[0], q[1], q[2], q[3])
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) Scalar {
	return q[0]*other[0] + q[1]*other[1] + q[2]*other[2] + q[3]*other[3]
}

// Normalize returns a unit quaternion. Near-zero quaternions normalize to
// the identity.
func (q Quat) Normalize() Quat {
	length := sqrt(q.Dot(q))
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1 / length
	return Quat{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Conjugate returns the quaternion with the vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Mul returns q * other, applying other first and then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		q[3]*other[0] + q[0]*other[3] + q[1]*other[2] - q[2]*other[1],
		q[3]*other[1] - q[0]*other[2] + q[1]*other[3] + q[2]*other[0],
		q[3]*other[2] + q[0]*other[1] - q[1]*other[0] + q[2]*other[3],
		q[3]*other[3] - q[0]*other[0] - q[1]*other[1] - q[2]*other[2],
	}
}

// Rotate rotates v by q. q should be normalized.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Vec()
	t := u.Cross(v).ScalarMul(2)
	return v.Add(t.ScalarMul(q[3])).Add(u.Cross(t))
}

// Lerp linearly blends two quaternions and normalizes the result.
// Use Slerp for rotation interpolation.
func (q Quat) Lerp(other Quat, t Scalar) Quat {
	return Quat{
		q[0] + t*(other[0]-q[0]),
		q[1] + t*(other[1]-q[1]),
		q[2] + t*(other[2]-q[2]),
		q[3] + t*(other[3]-q[3]),
	}.Normalize()
}

// Slerp performs spherical linear interpolation. t should be in [0, 1].
func (q Quat) Slerp(other Quat, t Scalar) Quat {
	dot := q.Dot(other)

	// Take the shorter path.
	if dot < 0 {
		other = Quat{-other[0], -other[1], -other[2], -other[3]}
		dot = -dot
	}

	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := acos(dot)
	theta := theta0 * t
	sinTheta := sin(theta)
	sinTheta0 := sin(theta0)

	s0 := cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		q[0]*s0 + other[0]*s1,
		q[1]*s0 + other[1]*s1,
		q[2]*s0 + other[2]*s1,
		q[3]*s0 + other[3]*s1,
	}
}

// Mat4 converts the quaternion to a rotation matrix.
func (q Quat) Mat4() Mat4 {
	q = q.Normalize()

	xx, xy, xz, xw := q[0]*q[0], q[0]*q[1], q[0]*q[2], q[0]*q[3]
	yy, yz, yw := q[1]*q[1], q[1]*q[2], q[1]*q[3]
	zz, zw := q[2]*q[2], q[2]*q[3]

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy - zw), 2 * (xz + yw), 0,
		2 * (xy + zw), 1 - 2*(xx+zz), 2 * (yz - xw), 0,
		2 * (xz - yw), 2 * (yz + xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}
