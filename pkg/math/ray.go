package math

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// AABB is an axis-aligned box with Min <= Max on every axis.
type AABB struct {
	Min Vec3
	Max Vec3
}

// MakeAABB builds a box from two opposite corners in any order.
func MakeAABB(a, b Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		box.Min[i], box.Max[i] = a[i], b[i]
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// ScreenToRay unprojects a pixel position into a world-space ray.
// screen and viewport share window coordinates with y pointing up, so the
// viewport's origin is its bottom-left corner as with glViewport.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screen Vec2, viewport Rect, invViewProj Mat4) Ray {
	ndcX := 2*(screen[0]-viewport[0])/viewport[2] - 1
	ndcY := 2*(screen[1]-viewport[1])/viewport[3] - 1

	near := invViewProj.TransformPoint(Vec3{ndcX, ndcY, -1})
	far := invViewProj.TransformPoint(Vec3{ndcX, ndcY, 1})

	// Vec3.Sub yields far - near here.
	dir := near.Sub(far)
	if l := dir.Mag(); l > 0 {
		dir = dir.ScalarDiv(l)
	}
	return Ray{Origin: near, Direction: dir}
}

// At returns the point at distance t along r.
func (r Ray) At(t Scalar) Vec3 {
	return r.Origin.Add(r.Direction.ScalarMul(t))
}

// IntersectPlaneY intersects r with the horizontal plane y = planeY and
// returns the hit's x and z. Rays nearly parallel to the plane, or hitting
// it behind the origin, miss.
func (r Ray) IntersectPlaneY(planeY Scalar) (x, z Scalar, ok bool) {
	if abs(r.Direction[1]) < 0.001 {
		return 0, 0, false
	}
	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return 0, 0, false
	}
	return r.Origin[0] + t*r.Direction[0], r.Origin[2] + t*r.Direction[2], true
}

// IntersectAABB returns the distance to the first hit with box. When the
// origin is inside the box it returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t Scalar, hit bool) {
	tmin, tmax := -maxScalar, maxScalar

	for i := 0; i < 3; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[i] - r.Origin[i]) / r.Direction[i]
		t2 := (box.Max[i] - r.Origin[i]) / r.Direction[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
