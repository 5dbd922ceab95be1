package entity

import "math"

// Vec2 is a 2D vector of world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned box in world space (y grows downward).
type Rect struct {
	X, Y float64
	W, H float64
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the center point
func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Offset returns r moved by (dx, dy)
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Degenerate reports whether r cannot be used as a query shape.
func (r Rect) Degenerate() bool {
	if math.IsNaN(r.X) || math.IsNaN(r.Y) || math.IsNaN(r.W) || math.IsNaN(r.H) {
		return true
	}
	if math.IsInf(r.X, 0) || math.IsInf(r.Y, 0) || math.IsInf(r.W, 0) || math.IsInf(r.H, 0) {
		return true
	}
	return r.W <= 0 || r.H <= 0
}

// OverlapsX reports whether the horizontal extents overlap with positive length.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W
}

// OverlapsY reports whether the vertical extents overlap with positive length.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Overlaps reports whether the two rects share a positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
}

// CastDirection selects the direction of a box cast.
type CastDirection int

const (
	CastDown CastDirection = iota
	CastUp
)

// String returns the direction name
func (d CastDirection) String() string {
	switch d {
	case CastDown:
		return "down"
	case CastUp:
		return "up"
	default:
		return "unknown"
	}
}

// Hit is the result of a box cast.
type Hit struct {
	Hit      bool
	Distance float64 // distance travelled before contact
	Point    Vec2    // contact point on the cast box edge
	Tags     []string
}
