// Package raycast renders a first-person view of a hyperbolic maze by casting
// one analytic ray per screen column in the Poincaré disk.
package raycast

import (
	"math"

	"hypermaze/pkg/hyper"
)

// PixelSink receives the frame one pixel at a time, top to bottom within a
// column. There is no blending.
type PixelSink interface {
	DrawPixel(x, y int, c hyper.RGB)
}

// WallSource supplies the walls of the current frame in disk form.
type WallSource interface {
	WallsAsDisk() []hyper.DiskWall
}

// Hit describes what a column's ray found.
type Hit struct {
	Found bool
	// Wall indexes the wall slice the ray was cast against.
	Wall int
	// Distance is the raw hyperbolic distance along the ray.
	Distance float64
	// Projected is Distance corrected for fisheye.
	Projected float64
	Color     hyper.RGB
	// Height is the wall band height as a fraction of the screen, in [0, 1].
	Height float64
}

// Renderer is the caller-owned render context. It holds only the view
// configuration and is safe to reuse across frames.
type Renderer struct {
	cfg     Config
	ceiling hyper.RGB
	floor   hyper.RGB
}

// New validates cfg.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg, ceiling: cfg.ceiling(), floor: cfg.floor()}, nil
}

// Config returns the view configuration.
func (r *Renderer) Config() Config { return r.cfg }

// RayAngle returns the view angle of a column relative to the forward axis.
func (r *Renderer) RayAngle(column, width int) float64 {
	rel := float64(column)/float64(width) - 0.5
	return math.Atan(rel * r.cfg.RelativeScreenSize / r.cfg.FocalLength)
}

// Cast finds the nearest wall along angle. Ties keep the earlier wall.
func (r *Renderer) Cast(walls []hyper.DiskWall, angle float64) Hit {
	best := Hit{Wall: -1}
	for i, w := range walls {
		d, ok := Intersect(w, angle)
		if !ok {
			continue
		}
		if !best.Found || d < best.Distance {
			best = Hit{Found: true, Wall: i, Distance: d}
		}
	}
	if !best.Found {
		return best
	}
	best.Projected = best.Distance * math.Cos(angle)
	best.Color = r.Shade(walls[best.Wall].Color, best.Projected)
	best.Height = r.WallHeight(best.Projected)
	return best
}

// Column casts the ray for one screen column.
func (r *Renderer) Column(walls []hyper.DiskWall, column, width int) Hit {
	return r.Cast(walls, r.RayAngle(column, width))
}

// Light returns the illumination at a projected distance.
func (r *Renderer) Light(projected float64) float64 {
	light := 1 - projected/r.cfg.IlluminationRadius
	return math.Min(math.Max(light, r.cfg.MinimumLight), 1)
}

// Shade darkens c by the light at a projected distance.
func (r *Renderer) Shade(c hyper.RGB, projected float64) hyper.RGB {
	return c.Scale(r.Light(projected))
}

// WallHeight returns k/projected clamped to the full screen.
func (r *Renderer) WallHeight(projected float64) float64 {
	if projected <= 0 {
		return 1
	}
	return math.Min(r.cfg.WallScale/projected, 1)
}

// Render draws a full frame of the given size from src into sink.
func (r *Renderer) Render(src WallSource, sink PixelSink, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	walls := src.WallsAsDisk()
	for column := 0; column < width; column++ {
		hit := r.Column(walls, column, width)
		r.DrawColumn(sink, column, height, hit)
	}
}

// DrawColumn paints ceiling, wall band and floor gradient for one column. A
// miss draws ceiling and floor only.
func (r *Renderer) DrawColumn(sink PixelSink, column, height int, hit Hit) {
	band := 0
	if hit.Found {
		band = int(float64(height) * hit.Height)
	}
	top := (height - band) / 2
	bottom := top + band

	for y := 0; y < top; y++ {
		sink.DrawPixel(column, y, r.ceiling)
	}
	for y := top; y < bottom; y++ {
		sink.DrawPixel(column, y, hit.Color)
	}
	for y := bottom; y < height; y++ {
		sink.DrawPixel(column, y, r.floor.Scale(float64(y)/float64(height)))
	}
}
