package triangulation

import "math"

// A Point is a 2D coordinate value. Points are plain comparable structs, so
// they can be used directly as map keys; equality is exact coordinate
// equality. We never mutate a point after construction, since the engine's
// set bookkeeping relies on exact equality and cannot tolerate loss of
// precision.
type Point struct {
	X float64
	Y float64
}

// DistanceFrom returns the Euclidean distance to another point.
func (p Point) DistanceFrom(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Less orders points by X, breaking ties by Y. This order only canonicalizes
// edge and triangle vertices; the triangulation result does not otherwise
// depend on it.
func (p Point) Less(q Point) bool {
	if p.X == q.X {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// XY returns the point's coordinates, for rendering collaborators.
func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}
