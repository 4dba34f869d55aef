package gamemath

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// WithinRadius reports whether a point lies strictly inside a circle.
func WithinRadius(px, py, cx, cy, radius float64) bool {
	return Distance(px, py, cx, cy) < radius
}

// PointHitsBox is the projectile test: the point is within half the box width of its center.
func PointHitsBox(px, py float64, target Rect) bool {
	cx, cy := target.Center()
	return WithinRadius(px, py, cx, cy, target.W/2)
}

// TooClose reports whether two points are nearer than min on both axes.
func TooClose(x1, y1, x2, y2, min float64) bool {
	return math.Abs(x1-x2) < min && math.Abs(y1-y2) < min
}

// OutOfBounds reports whether a point lies outside the [0,w]x[0,h] rectangle.
func OutOfBounds(x, y, w, h float64) bool {
	return x < 0 || x > w || y < 0 || y > h
}
