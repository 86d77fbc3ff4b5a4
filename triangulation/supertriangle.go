package triangulation

import "math"

// Margin added on every side of the bounding box before building the
// supertriangle, so that no input point can coincide with a supertriangle
// vertex or sit on one of its legs.
const supertriangleMargin = 5

// Supertriangle returns a triangle guaranteed to enclose every input point.
// The axis-aligned bounding box of the points is padded by a fixed margin,
// and the result is the right triangle anchored at the padded box's origin
// whose legs double the padded extents. The hypotenuse clears the far corner
// of the box by construction, so containment is strict.
//
// The original formulation clamped the padded origin at zero for image
// coordinates. That clamp could pin a supertriangle vertex onto an input
// point at the origin, which poisons the final vertex-identity filter; the
// margin is applied unclamped here so the three vertices always stay
// strictly outside the input's bounding box.
func Supertriangle(points []Point) Triangle {
	if len(points) == 0 {
		fatalf("cannot build a supertriangle around zero points")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	x := minX - supertriangleMargin
	y := minY - supertriangleMargin
	w := maxX + supertriangleMargin - x
	h := maxY + supertriangleMargin - y

	return NewTriangle(
		Point{X: x, Y: y},
		Point{X: x, Y: y + 2*h},
		Point{X: x + 2*w, Y: y},
	)
}
