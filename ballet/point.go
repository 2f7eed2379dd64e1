package ballet

import "math"

// Point is a single map-frame coordinate in millimeters. The robot's
// onboard localization uses this frame; it may be rotated or flipped
// relative to the room, which is what Transform corrects for.
type Point struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance to q in millimeters.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
