package render

import (
	"math"

	"hypermaze/internal/maze"
	"hypermaze/pkg/hyper"
)

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Polyline is a coloured open path in screen space.
type Polyline struct {
	Points []Point
	Color  hyper.RGB
}

// Minimap projects the Poincaré disk onto a square of Size pixels with the
// camera at the centre looking up the screen. Disk +x maps to screen up and
// disk +y to screen right, matching the column order of the first-person view.
type Minimap struct {
	Size int
	// Samples is the number of points per wall arc.
	Samples int
	// HalfFOV draws the view cone when positive.
	HalfFOV float64
}

var (
	boundaryColor = hyper.RGB{R: 90, G: 90, B: 110}
	playerColor   = hyper.RGB{R: 255, G: 220, B: 60}
	coneColor     = hyper.RGB{R: 120, G: 110, B: 40}
)

const circleSegments = 96

// Project maps a disk point to screen space.
func (m Minimap) Project(p hyper.DiskPoint) Point {
	half := float64(m.Size) / 2
	return Point{X: half + p.Y*half, Y: half - p.X*half}
}

// Polylines returns the boundary circle, view cone and every wall arc of walls
// in screen space, in drawing order.
func (m Minimap) Polylines(walls []hyper.HyperWall) []Polyline {
	if m.Size <= 0 {
		return nil
	}
	samples := m.Samples
	if samples < 2 {
		samples = 16
	}
	out := make([]Polyline, 0, len(walls)+3)

	boundary := make([]Point, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		boundary = append(boundary, m.Project(hyper.DiskPoint{X: math.Cos(a), Y: math.Sin(a)}))
	}
	out = append(out, Polyline{Points: boundary, Color: boundaryColor})

	if m.HalfFOV > 0 {
		centre := m.Project(hyper.DiskOrigin())
		for _, a := range []float64{-m.HalfFOV, m.HalfFOV} {
			edge := m.Project(hyper.DiskPoint{X: math.Cos(a), Y: math.Sin(a)})
			out = append(out, Polyline{Points: []Point{centre, edge}, Color: coneColor})
		}
	}

	for _, w := range walls {
		arc := maze.SampleGeodesic(w, samples)
		pts := make([]Point, len(arc))
		for i, p := range arc {
			pts[i] = m.Project(p)
		}
		out = append(out, Polyline{Points: pts, Color: w.Color})
	}
	return out
}

// Draw rasterises the minimap into f with its top-left corner at (x0, y0).
func (m Minimap) Draw(f *Frame, x0, y0 int, walls []hyper.HyperWall) {
	for _, pl := range m.Polylines(walls) {
		for i := 1; i < len(pl.Points); i++ {
			a, b := pl.Points[i-1], pl.Points[i]
			drawLine(f, x0+int(math.Round(a.X)), y0+int(math.Round(a.Y)),
				x0+int(math.Round(b.X)), y0+int(math.Round(b.Y)), pl.Color)
		}
	}
	c := m.Project(hyper.DiskOrigin())
	cx, cy := x0+int(math.Round(c.X)), y0+int(math.Round(c.Y))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.DrawPixel(cx+dx, cy+dy, playerColor)
		}
	}
}

// drawLine is Bresenham's integer line.
func drawLine(f *Frame, x0, y0, x1, y1 int, c hyper.RGB) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		f.DrawPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
