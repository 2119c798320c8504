package hyper

import (
	"fmt"
	"math"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Scale multiplies every channel by f, clamped to [0, 255].
func (c RGB) Scale(f float64) RGB {
	ch := func(v uint8) uint8 {
		x := math.Round(float64(v) * f)
		if x < 0 || math.IsNaN(x) {
			return 0
		}
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return RGB{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

// HyperWall is a wall stored in the hyperboloid model.
type HyperWall struct {
	Beginning HyperPoint
	End       HyperPoint
	Color     RGB
}

// DiskWall is a wall in the Poincaré disk model.
type DiskWall struct {
	Beginning DiskPoint
	End       DiskPoint
	Color     RGB
}

// Model reports Hyperboloid.
func (w HyperWall) Model() Model { return Hyperboloid }

// Model reports Disk.
func (w DiskWall) Model() Model { return Disk }

// ToDisk converts both endpoints; the colour is copied.
func (w HyperWall) ToDisk() DiskWall {
	return DiskWall{Beginning: w.Beginning.ToDisk(), End: w.End.ToDisk(), Color: w.Color}
}

// ToHyper converts both endpoints; the colour is copied.
func (w DiskWall) ToHyper() (HyperWall, error) {
	b, err := w.Beginning.ToHyper()
	if err != nil {
		return HyperWall{}, fmt.Errorf("beginning: %w", err)
	}
	e, err := w.End.ToHyper()
	if err != nil {
		return HyperWall{}, fmt.Errorf("end: %w", err)
	}
	return HyperWall{Beginning: b, End: e, Color: w.Color}, nil
}

// Validate checks both endpoints lie on the sheet.
func (w HyperWall) Validate() error {
	if err := w.Beginning.Validate(); err != nil {
		return fmt.Errorf("beginning: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return nil
}

// Validate checks both endpoints lie inside the disk.
func (w DiskWall) Validate() error {
	if err := w.Beginning.Validate(); err != nil {
		return fmt.Errorf("beginning: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	return nil
}

// Equal compares endpoints only.
func (w HyperWall) Equal(o HyperWall) bool {
	return w.Beginning == o.Beginning && w.End == o.End
}

// Equal compares endpoints only.
func (w DiskWall) Equal(o DiskWall) bool {
	return w.Beginning == o.Beginning && w.End == o.End
}

// ClosestPointDistance is the smaller endpoint distance to the origin.
func (w HyperWall) ClosestPointDistance() float64 {
	return math.Min(w.Beginning.DistanceToOrigin(), w.End.DistanceToOrigin())
}

// ClosestPointDistance is the smaller endpoint distance to the origin.
func (w DiskWall) ClosestPointDistance() float64 {
	return math.Min(w.Beginning.DistanceToOrigin(), w.End.DistanceToOrigin())
}

// Rotate turns both endpoints about the origin.
func (w *HyperWall) Rotate(angle float64) {
	m := RotZ(angle)
	w.Beginning = m.Apply(w.Beginning)
	w.End = m.Apply(w.End)
}

// Translate applies Translation(dx, dy) to both endpoints.
func (w *HyperWall) Translate(dx, dy float64) {
	m := Translation(dx, dy)
	w.Beginning.Transform(m)
	w.End.Transform(m)
}

// collinearEpsilon is the |px·qy − py·qx| below which a wall is treated as a
// diameter.
const collinearEpsilon = 1e-12

// Geodesic describes the disk-model line carrying a wall: either the circle
// (CX, CY, R) orthogonal to the unit circle, or a diameter when the endpoints
// are collinear with the origin.
type Geodesic struct {
	Diameter bool
	CX, CY   float64
	R        float64
}

// Geodesic returns the line through both endpoints.
func (w DiskWall) Geodesic() Geodesic {
	p, q := w.Beginning, w.End
	det := p.X*q.Y - p.Y*q.X
	if math.Abs(det) <= collinearEpsilon {
		return Geodesic{Diameter: true}
	}
	pn := p.NormSquared() + 1
	qn := q.NormSquared() + 1
	cx := (q.Y*pn - p.Y*qn) / (2 * det)
	cy := (-q.X*pn + p.X*qn) / (2 * det)
	return Geodesic{CX: cx, CY: cy, R: math.Sqrt(cx*cx + cy*cy - 1)}
}
