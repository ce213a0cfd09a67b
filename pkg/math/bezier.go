package math

// BezierAxis selects one coordinate axis of a curve.
type BezierAxis int

const (
	BezierAxisX BezierAxis = iota
	BezierAxisY
	BezierAxisZ
)

// Bezier is a cubic Bézier curve: four Vec3 control points stored flat.
type Bezier [12]Scalar

// MakeBezier returns a curve through the given control points.
func MakeBezier(p0, p1, p2, p3 Vec3) Bezier {
	var b Bezier
	for i, p := range [4]Vec3{p0, p1, p2, p3} {
		*b.CPPtr(i) = p
	}
	return b
}

// CP returns a copy of control point i (0..3).
func (b Bezier) CP(i int) Vec3 {
	return Vec3{b[3*i], b[3*i+1], b[3*i+2]}
}

// CPPtr returns control point i sharing b's storage.
func (b *Bezier) CPPtr(i int) *Vec3 {
	return (*Vec3)(b[3*i : 3*i+3])
}

// Point evaluates the curve at t in [0, 1].
func (b Bezier) Point(t Scalar) Vec3 {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t

	var out Vec3
	for a := 0; a < 3; a++ {
		out[a] = w0*b[a] + w1*b[3+a] + w2*b[6+a] + w3*b[9+a]
	}
	return out
}

// Derivative returns the tangent of the curve at t.
func (b Bezier) Derivative(t Scalar) Vec3 {
	u := 1 - t
	w0 := 3 * u * u
	w1 := 6 * u * t
	w2 := 3 * t * t

	var out Vec3
	for a := 0; a < 3; a++ {
		out[a] = w0*(b[3+a]-b[a]) + w1*(b[6+a]-b[3+a]) + w2*(b[9+a]-b[6+a])
	}
	return out
}

// Coord returns a single coordinate of Point(t).
func (b Bezier) Coord(t Scalar, axis BezierAxis) Scalar {
	return b.Point(t)[axis]
}
