package triangulation

import "go.uber.org/zap"

// BowyerWatson computes the Delaunay triangulation of the given points by
// incremental insertion, following the textbook structure:
// https://en.wikipedia.org/wiki/Bowyer%E2%80%93Watson_algorithm#Pseudocode
//
// Points are inserted strictly in input order, and each insertion scans the
// whole working set, so the total cost is quadratic in the number of points.
// There is deliberately no spatial index.
//
// Fewer than three points yields an empty result, since every triangle of
// the working set still touches the supertriangle. Coincident input points
// are not supported; depending on the configuration they either collapse
// silently or violate a construction contract (recovered into an error by
// the delaunay package).
func BowyerWatson(points []Point, setters ...Option) []Triangle {
	opts := newOptions(setters)

	m := newMesh(points, opts.logger)
	for _, p := range points {
		m.insert(p)
	}
	return m.result()
}

// mesh is the engine's working set: the triangles of the evolving
// triangulation, seeded with the supertriangle. The slice keeps insertion
// order so that runs over the same input are deterministic.
type mesh struct {
	super     Triangle
	triangles []Triangle
	logger    *zap.Logger
}

func newMesh(points []Point, logger *zap.Logger) *mesh {
	super := Supertriangle(points)
	return &mesh{
		super:     super,
		triangles: []Triangle{super},
		logger:    logger,
	}
}

// insert adds one point to the triangulation: find the triangles whose
// circumcircle is violated by the point, carve them out, and fan new
// triangles from the cavity's boundary edges to the point.
func (m *mesh) insert(p Point) {
	// A triangle is bad if its circumcircle encloses p. A triangle with no
	// circumcircle at all (collinear vertices) is always bad, so a degenerate
	// triangle never survives an insertion step.
	var bad []Triangle
	badSet := make(map[Triangle]struct{})
	for _, t := range m.triangles {
		circumcircle, ok := t.Circumcircle()
		if !ok || circumcircle.Encloses(p) {
			bad = append(bad, t)
			badSet[t] = struct{}{}
		}
	}

	boundary := cavityBoundary(bad)

	// Compact the working set in a separate pass; the bad triangles were
	// classified above without mutating the slice mid-scan.
	kept := m.triangles[:0]
	for _, t := range m.triangles {
		if _, ok := badSet[t]; !ok {
			kept = append(kept, t)
		}
	}
	m.triangles = kept

	for _, e := range boundary {
		m.triangles = append(m.triangles, NewTriangle(e.A, e.B, p))
	}

	m.logger.Debug("inserted point",
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y),
		zap.Int("bad_triangles", len(bad)),
		zap.Int("working_set", len(m.triangles)),
	)
}

// cavityBoundary returns the outer boundary of the union of the bad
// triangles. Each edge borders at most two triangles of a planar mesh, so an
// edge seen once is a boundary candidate and an edge seen a second time is
// interior to the cavity and excluded for good.
func cavityBoundary(bad []Triangle) []Edge {
	var boundary []Edge
	excluded := make(map[Edge]struct{})
	for _, t := range bad {
		for _, e := range t.Edges() {
			if _, ok := excluded[e]; ok {
				continue
			}
			if i := edgeIndex(boundary, e); i >= 0 {
				boundary = append(boundary[:i], boundary[i+1:]...)
				excluded[e] = struct{}{}
				continue
			}
			boundary = append(boundary, e)
		}
	}
	return boundary
}

func edgeIndex(edges []Edge, e Edge) int {
	for i, candidate := range edges {
		if candidate == e {
			return i
		}
	}
	return -1
}

// result filters out every triangle still attached to a supertriangle
// vertex. Nothing of the working set survives a run except the returned
// triangles.
func (m *mesh) result() []Triangle {
	result := make([]Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		if t.HasCommonVertex(m.super) {
			continue
		}
		result = append(result, t)
	}
	return result
}
