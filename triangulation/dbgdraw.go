package triangulation

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/delaunay/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 50

// DbgName gives the triangle a stable readable name for debugging, colored
// red if it has no circumcircle (collinear vertices).
func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	if _, ok := t.Circumcircle(); !ok {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

// dbgDraw renders the current working set to a PNG and cats it to the
// terminal (iTerm only), then lists each triangle by its debug name.
func (m *mesh) dbgDraw(scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range m.triangles {
		for _, p := range t.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for _, t := range m.triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.Stroke()
	}

	c.SavePNG("/tmp/delaunay_mesh.png")
	imgcat.CatFile("/tmp/delaunay_mesh.png", os.Stdout)
	for _, t := range m.triangles {
		fmt.Println(t.DbgName())
	}
}
