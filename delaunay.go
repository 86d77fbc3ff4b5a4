// Delaunay triangulation for 2D point sets.
//
// This package converts a finite set of points into the triangles of their
// Delaunay triangulation using the incremental Bowyer-Watson algorithm: no
// input point lies strictly inside the circumcircle of any output triangle.
package delaunay

import (
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/triangulation"
)

type Point = triangulation.Point
type Edge = triangulation.Edge
type Circle = triangulation.Circle
type Triangle = triangulation.Triangle
type Option = triangulation.Option

// WithLogger attaches a logger that receives debug-level telemetry for each
// insertion step.
func WithLogger(logger *zap.Logger) Option {
	return triangulation.WithLogger(logger)
}

// Triangulate computes the Delaunay triangulation of the given points.
//
// The points must be pairwise distinct; coincident points are not supported.
// Fewer than three points yields an empty result. Malformed input is
// reported as an error.
func Triangulate(points []Point, opts ...Option) (result []Triangle, err error) {
	defer func() {
		recoveredErr := triangulation.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return triangulation.BowyerWatson(points, opts...), nil
}
