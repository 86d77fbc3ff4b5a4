package triangulation

// A Circle is a centroid and a non-negative radius.
type Circle struct {
	Centroid Point
	Radius   float64
}

// Encloses reports whether p falls within the circle. The comparison is
// non-strict: a point exactly on the boundary counts as enclosed. During
// insertion this biases ties toward re-triangulating a triangle whose
// circumcircle passes through the new point, rather than keeping it with a
// non-empty circumcircle.
func (c Circle) Encloses(p Point) bool {
	return c.Centroid.DistanceFrom(p) <= c.Radius
}
