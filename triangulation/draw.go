package triangulation

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Rendering helpers. The geometry types only issue path commands onto a
// caller-owned context; canvas size, transforms and output belong to the
// caller.

// Draw fills a dot of the given radius at the point.
func (p Point) Draw(dc *gg.Context, c color.Color, radius float64) {
	dc.SetColor(c)
	dc.DrawPoint(p.X, p.Y, radius)
	dc.Fill()
}

// Draw strokes the edge as a line segment.
func (e Edge) Draw(dc *gg.Context, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawLine(e.A.X, e.A.Y, e.B.X, e.B.Y)
	dc.Stroke()
}

// Draw strokes the circle's outline.
func (c Circle) Draw(dc *gg.Context, col color.Color, width float64) {
	dc.SetColor(col)
	dc.SetLineWidth(width)
	dc.DrawCircle(c.Centroid.X, c.Centroid.Y, c.Radius)
	dc.Stroke()
}

// Draw strokes the triangle's three edges.
func (t Triangle) Draw(dc *gg.Context, c color.Color, width float64) {
	for _, e := range t.Edges() {
		e.Draw(dc, c, width)
	}
}
