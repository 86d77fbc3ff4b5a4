package triangulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// assertDelaunay checks the empty-circumcircle property: no input point may
// fall strictly inside the circumcircle of any result triangle. Points
// exactly on a circumcircle are fine; cocircular inputs (four corners of a
// square, say) make that unavoidable.
func assertDelaunay(t *testing.T, triangles []Triangle, points []Point) {
	t.Helper()
	for _, tri := range triangles {
		circumcircle, ok := tri.Circumcircle()
		if !assert.True(t, ok, "result triangle %+v has no circumcircle", tri) {
			continue
		}
		for _, q := range points {
			if q == tri.A || q == tri.B || q == tri.C {
				continue
			}
			assert.GreaterOrEqual(t,
				circumcircle.Centroid.DistanceFrom(q), circumcircle.Radius-1e-9,
				"point %+v is inside the circumcircle of %+v", q, tri)
		}
	}
}

// assertVertexContainment checks that every result vertex is an input point.
func assertVertexContainment(t *testing.T, triangles []Triangle, points []Point) {
	t.Helper()
	input := make(map[Point]struct{}, len(points))
	for _, p := range points {
		input[p] = struct{}{}
	}
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			_, ok := input[v]
			assert.True(t, ok, "vertex %+v of %+v is not an input point", v, tri)
		}
	}
}

func randomPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return points
}

func TestBowyerWatsonSquare(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 0, Y: 4},
		{X: 4, Y: 4},
	}

	triangles := BowyerWatson(points)
	assert.ElementsMatch(t, []Triangle{
		NewTriangle(Point{X: 0, Y: 0}, Point{X: 0, Y: 4}, Point{X: 4, Y: 4}),
		NewTriangle(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 4, Y: 4}),
	}, triangles)
	assertDelaunay(t, triangles, points)
}

func TestBowyerWatsonCollinearRun(t *testing.T) {
	// Three collinear points plus one off the line. The collinear triple
	// cannot form a triangle by itself; the run must still cover all four
	// points.
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 5},
	}

	triangles := BowyerWatson(points)
	assert.ElementsMatch(t, []Triangle{
		NewTriangle(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 1, Y: 5}),
		NewTriangle(Point{X: 1, Y: 0}, Point{X: 2, Y: 0}, Point{X: 1, Y: 5}),
	}, triangles)
	assertDelaunay(t, triangles, points)
	assertVertexContainment(t, triangles, points)
}

func TestBowyerWatsonDelaunayProperty(t *testing.T) {
	points := randomPoints(40, 1)
	triangles := BowyerWatson(points)

	assert.NotEmpty(t, triangles)
	assertDelaunay(t, triangles, points)
	assertVertexContainment(t, triangles, points)

	super := Supertriangle(points)
	for _, tri := range triangles {
		assert.False(t, tri.HasCommonVertex(super),
			"result triangle %+v touches the supertriangle", tri)
	}
}

func TestBowyerWatsonNegativeCoordinates(t *testing.T) {
	points := []Point{
		{X: -10, Y: -20},
		{X: -4, Y: -8},
		{X: -15, Y: 3},
		{X: 2, Y: -3},
	}
	triangles := BowyerWatson(points)
	assert.Len(t, triangles, 2)
	assertDelaunay(t, triangles, points)
	assertVertexContainment(t, triangles, points)
}

func TestBowyerWatsonDeterminism(t *testing.T) {
	points := randomPoints(25, 7)
	first := BowyerWatson(points)
	second := BowyerWatson(points)
	assert.Equal(t, first, second)
}

// Every edge may border at most two triangles of the working set, at every
// intermediate step; the cavity-boundary bookkeeping depends on it.
func TestMeshEdgeInvariant(t *testing.T) {
	points := randomPoints(30, 3)
	m := newMesh(points, zap.NewNop())
	for _, p := range points {
		m.insert(p)

		counts := make(map[Edge]int)
		seen := make(map[Triangle]struct{})
		for _, tri := range m.triangles {
			_, dup := seen[tri]
			assert.False(t, dup, "duplicate triangle %+v in working set", tri)
			seen[tri] = struct{}{}
			for _, e := range tri.Edges() {
				counts[e]++
			}
		}
		for e, n := range counts {
			assert.LessOrEqual(t, n, 2, "edge %+v borders %d triangles", e, n)
		}
	}
	m.dbgDraw(2)
}

func TestCavityBoundary(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 4, Y: 0}
	c := Point{X: 2, Y: 3}
	d := Point{X: 2, Y: -3}
	left := NewTriangle(a, b, c)
	right := NewTriangle(a, b, d)

	// The shared edge is interior to the cavity and must be excluded.
	boundary := cavityBoundary([]Triangle{left, right})
	assert.ElementsMatch(t, []Edge{
		NewEdge(a, c),
		NewEdge(b, c),
		NewEdge(a, d),
		NewEdge(b, d),
	}, boundary)
}
