package main

import (
	"bufio"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay"
)

// Demo of Delaunay triangulation. By default it samples random points on a
// canvas, triangulates them, and renders the result to a PNG. Input can also
// be newline separated points in the form "x y" on stdin, and the result can
// additionally be written as an SVG or served as an interactive chart.

var (
	numPoints = kingpin.Flag("points", "Number of random points to sample.").Default("50").Int()
	width     = kingpin.Flag("width", "Canvas width.").Default("500").Int()
	height    = kingpin.Flag("height", "Canvas height.").Default("500").Int()
	seed      = kingpin.Flag("seed", "Random seed for point sampling.").Default("0").Int64()
	outPNG    = kingpin.Flag("png", "PNG output path.").Default("result.png").String()
	outSVG    = kingpin.Flag("svg", "SVG output path.").String()
	serveAddr = kingpin.Flag("serve", "Serve an interactive chart on this address instead of exiting.").String()
	fromStdin = kingpin.Flag("stdin", "Read \"x y\" points from stdin instead of sampling.").Bool()
	verbose   = kingpin.Flag("verbose", "Log every insertion step.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Could not build logger: %v", err)
		}
	}
	defer logger.Sync()

	var points []delaunay.Point
	if *fromStdin {
		points = readPoints(os.Stdin)
	} else {
		points = samplePoints(*numPoints, *width, *height, *seed)
	}

	triangles, err := delaunay.Triangulate(points, delaunay.WithLogger(logger))
	if err != nil {
		log.Fatalf("Triangulation failed: %v", err)
	}
	fmt.Printf("Triangulated %d points into %d triangles\n", len(points), len(triangles))

	if *outPNG != "" {
		if err := renderPNG(*outPNG, points, triangles); err != nil {
			log.Fatalf("Could not write %q: %v", *outPNG, err)
		}
	}
	if *outSVG != "" {
		if err := renderSVG(*outSVG, points, triangles); err != nil {
			log.Fatalf("Could not write %q: %v", *outSVG, err)
		}
	}
	if *serveAddr != "" {
		fmt.Printf("Serving on http://localhost%s\n", *serveAddr)
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if err := triangulationChart(points, triangles).Render(w); err != nil {
				logger.Error("render failed", zap.Error(err))
			}
		})
		log.Fatal(http.ListenAndServe(*serveAddr, nil))
	}
}

// samplePoints draws n distinct integer-coordinate points inside the canvas,
// inset by a tenth of each dimension. Coincident points are unsupported by
// the triangulation, so collisions are resampled.
func samplePoints(n, width, height int, seed int64) []delaunay.Point {
	rng := rand.New(rand.NewSource(seed))
	insetX := width / 10
	insetY := height / 10
	if capacity := (width - 2*insetX) * (height - 2*insetY); n > capacity {
		log.Fatalf("Cannot sample %d distinct points from a %dx%d canvas (max %d)",
			n, width, height, capacity)
	}

	points := make([]delaunay.Point, 0, n)
	seen := make(map[delaunay.Point]struct{}, n)
	for len(points) < n {
		p := delaunay.Point{
			X: float64(insetX + rng.Intn(width-2*insetX)),
			Y: float64(insetY + rng.Intn(height-2*insetY)),
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}

func readPoints(in *os.File) []delaunay.Point {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) delaunay.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return delaunay.Point{X: x, Y: y}
}

func renderPNG(path string, points []delaunay.Point, triangles []delaunay.Triangle) error {
	dc := gg.NewContext(*width, *height)
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(*width), float64(*height))
	dc.Fill()

	for _, t := range triangles {
		t.Draw(dc, color.RGBA{G: 255, A: 255}, 1)
	}
	for _, p := range points {
		p.Draw(dc, color.White, 2)
	}
	return dc.SavePNG(path)
}

const (
	svgBackgroundStyle = "fill:rgb(0,0,0)"
	svgPointStyle      = "fill:rgb(255,255,255)"
	svgEdgeStyle       = "stroke:rgb(0,255,0);stroke-width:1"
)

func renderSVG(path string, points []delaunay.Point, triangles []delaunay.Triangle) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	canvas := svg.New(file)
	canvas.Start(*width, *height)
	canvas.Rect(0, 0, *width, *height, svgBackgroundStyle)
	for _, e := range uniqueEdges(triangles) {
		canvas.Line(int(e.A.X), int(e.A.Y), int(e.B.X), int(e.B.Y), svgEdgeStyle)
	}
	for _, p := range points {
		x, y := p.XY()
		canvas.Circle(int(x), int(y), 2, svgPointStyle)
	}
	canvas.End()
	return nil
}

func triangulationChart(points []delaunay.Point, triangles []delaunay.Triangle) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1020px",
			Height: "580px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Delaunay triangulation (Bowyer-Watson)",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []float64{p.X, p.Y}})
	}
	scatter.AddSeries("points", data)

	for _, e := range uniqueEdges(triangles) {
		line := charts.NewLine()
		line.AddSeries("edges", []opts.LineData{
			{Value: []float64{e.A.X, e.A.Y}},
			{Value: []float64{e.B.X, e.B.Y}},
		})
		scatter.Overlap(line)
	}
	return scatter
}

// uniqueEdges deduplicates the edges of neighboring triangles; canonical
// edge ordering makes the pair usable as a set key.
func uniqueEdges(triangles []delaunay.Triangle) []delaunay.Edge {
	var edges []delaunay.Edge
	seen := make(map[delaunay.Edge]struct{})
	for _, t := range triangles {
		for _, e := range t.Edges() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
