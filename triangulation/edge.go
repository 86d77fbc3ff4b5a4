package triangulation

// An Edge is an unordered pair of two distinct points. The vertices are
// stored in canonical order, so NewEdge(a, b) == NewEdge(b, a) and edges can
// be used directly as map keys.
type Edge struct {
	A, B Point
}

// NewEdge builds the canonical edge between two points. Two equal points do
// not form an edge; that is a contract violation and panics.
func NewEdge(a, b Point) Edge {
	if a == b {
		fatalf("degenerate edge: both vertices are (%v, %v)", a.X, a.Y)
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}
