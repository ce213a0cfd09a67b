package math

import "fmt"

// Rect is an axis-aligned rectangle stored as (x, y, w, h). The origin is the
// bottom-left corner.
type Rect [4]Scalar

// MakeRect returns a Rect with the given origin and size.
func MakeRect(x, y, w, h Scalar) Rect {
	return Rect{x, y, w, h}
}

// X returns the origin x.
func (r Rect) X() Scalar { return r[0] }

// Y returns the origin y.
func (r Rect) Y() Scalar { return r[1] }

// W returns the width.
func (r Rect) W() Scalar { return r[2] }

// H returns the height.
func (r Rect) H() Scalar { return r[3] }

// Origin returns the bottom-left corner.
func (r Rect) Origin() Vec2 { return Vec2{r[0], r[1]} }

// Size returns (w, h).
func (r Rect) Size() Vec2 { return Vec2{r[2], r[3]} }

// OriginPtr returns the origin sharing r's storage.
func (r *Rect) OriginPtr() *Vec2 { return (*Vec2)(r[0:2]) }

// SizePtr returns the size sharing r's storage.
func (r *Rect) SizePtr() *Vec2 { return (*Vec2)(r[2:4]) }

// String renders r as (x, y, w, h).
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v %vx%v]", r[0], r[1], r[2], r[3])
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 { return r.Origin() }

// Max returns the top-right corner.
func (r Rect) Max() Vec2 { return Vec2{r[0] + r[2], r[1] + r[3]} }

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{r[0] + r[2]/2, r[1] + r[3]/2}
}

// Contains reports whether p lies inside r. The origin edges are inclusive,
// the far edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p[0] >= r[0] && p[0] < r[0]+r[2] &&
		p[1] >= r[1] && p[1] < r[1]+r[3]
}

// Intersects reports whether r and other overlap with non-zero area.
func (r Rect) Intersects(other Rect) bool {
	return r[0] < other[0]+other[2] && other[0] < r[0]+r[2] &&
		r[1] < other[1]+other[3] && other[1] < r[1]+r[3]
}
