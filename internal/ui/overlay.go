//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"hypermaze/internal/render"
	"hypermaze/pkg/hyper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WallLister supplies the walls the minimap draws.
type WallLister interface {
	Walls() []hyper.HyperWall
}

// Overlay draws the top-down Poincaré disk view in the corner of the screen.
type Overlay struct {
	walls   WallLister
	minimap render.Minimap
	margin  float64
	showMap bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay with a minimap of size pixels.
func NewOverlay(walls WallLister, size int, halfFOV float64) *Overlay {
	o := &Overlay{
		walls:   walls,
		minimap: render.Minimap{Size: size, Samples: 24, HalfFOV: halfFOV},
		margin:  8,
		showMap: true,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the minimap on M and reports whether visibility changed.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMap = !o.showMap
		return true
	}
	return false
}

// SetHalfFOV updates the drawn view cone.
func (o *Overlay) SetHalfFOV(a float64) { o.minimap.HalfFOV = a }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showMap || o.minimap.Size <= 0 {
		return
	}
	size := float64(o.minimap.Size)
	o.drawRect(screen, o.margin, o.margin, size, size, color.RGBA{R: 8, G: 8, B: 12, A: 200})
	for _, pl := range o.minimap.Polylines(o.walls.Walls()) {
		col := color.RGBA{R: pl.Color.R, G: pl.Color.G, B: pl.Color.B, A: 255}
		for i := 1; i < len(pl.Points); i++ {
			a, b := pl.Points[i-1], pl.Points[i]
			o.drawLine(screen, o.margin+a.X, o.margin+a.Y, o.margin+b.X, o.margin+b.Y, 1.5, col)
		}
	}
	c := o.minimap.Project(hyper.DiskOrigin())
	o.drawRect(screen, o.margin+c.X-2, o.margin+c.Y-2, 4, 4, color.RGBA{R: 255, G: 220, B: 60, A: 255})
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
