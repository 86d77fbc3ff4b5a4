package triangulation

import "math"

// Tolerance below which the circumcircle determinant is treated as zero and
// the triangle's vertices as collinear.
const Tolerance = 1e-10

// A Triangle is three pairwise-distinct points. The vertices are sorted on
// construction so that triangles over the same vertex set compare equal and
// can be used as map keys; vertex order carries no other meaning.
type Triangle struct {
	A, B, C Point
}

// NewTriangle builds the canonical triangle over three points. Vertices that
// are not pairwise distinct are a contract violation and panic.
func NewTriangle(a, b, c Point) Triangle {
	if a == b || b == c || a == c {
		fatalf("degenerate triangle: vertices (%v, %v), (%v, %v), (%v, %v) are not pairwise distinct",
			a.X, a.Y, b.X, b.Y, c.X, c.Y)
	}
	if b.Less(a) {
		a, b = b, a
	}
	if c.Less(b) {
		b, c = c, b
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the triangle's three vertices in canonical order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges returns the three edges formed by the triangle's vertex pairs.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t.A, t.B),
		NewEdge(t.B, t.C),
		NewEdge(t.A, t.C),
	}
}

// Circumcircle computes the unique circle passing through the triangle's
// three vertices. If the vertices are collinear (determinant magnitude below
// Tolerance) no such circle exists and ok is false. Absence is a signal, not
// an error: the insertion engine treats a triangle without a circumcircle as
// unconditionally invalid, so it can never survive an insertion step.
func (t Triangle) Circumcircle() (c Circle, ok bool) {
	p1, p2, p3 := t.A, t.B, t.C

	det := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(det) < Tolerance {
		return Circle{}, false
	}

	s1 := p1.X*p1.X + p1.Y*p1.Y
	s2 := p2.X*p2.X + p2.Y*p2.Y
	s3 := p3.X*p3.X + p3.Y*p3.Y

	centroid := Point{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / det,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / det,
	}

	return Circle{Centroid: centroid, Radius: centroid.DistanceFrom(p1)}, true
}

// HasCommonVertex reports whether the two triangles share at least one
// vertex, by exact coordinate equality.
func (t Triangle) HasCommonVertex(other Triangle) bool {
	for _, v := range other.Vertices() {
		if v == t.A || v == t.B || v == t.C {
			return true
		}
	}
	return false
}
