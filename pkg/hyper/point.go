// Package hyper implements points, walls and rigid motions of the hyperbolic
// plane in two coordinate models: the hyperboloid (Hyper) model, used for
// storage and transformation, and the Poincaré disk model, used for ray
// intersection.
package hyper

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Model identifies the coordinate model a point or wall is expressed in.
type Model uint8

const (
	// Hyperboloid is the upper sheet of x²+y²−z² = −1.
	Hyperboloid Model = iota
	// Disk is the open unit disk (Poincaré model).
	Disk
)

func (m Model) String() string {
	switch m {
	case Hyperboloid:
		return "hyperboloid"
	case Disk:
		return "disk"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

var (
	// ErrOutsideDisk reports a disk point with norm ≥ 1 or non-finite coordinates.
	ErrOutsideDisk = errors.New("hyper: point outside the unit disk")
	// ErrOffHyperboloid reports a point that is not on the upper sheet.
	ErrOffHyperboloid = errors.New("hyper: point off the hyperboloid")
)

// invariantTolerance bounds |x²+y²−z²+1| for a point to count as on the sheet.
const invariantTolerance = 1e-9

// HyperPoint is a point on the upper sheet of the hyperboloid.
type HyperPoint struct {
	X, Y, Z float64
}

// NewHyperPoint lifts (x, y) onto the upper sheet.
func NewHyperPoint(x, y float64) HyperPoint {
	return HyperPoint{X: x, Y: y, Z: math.Sqrt(1 + x*x + y*y)}
}

// HyperOrigin is the vertex of the hyperboloid.
func HyperOrigin() HyperPoint { return HyperPoint{Z: 1} }

// MinkowskiDot returns x·x' + y·y' − z·z'.
func (p HyperPoint) MinkowskiDot(q HyperPoint) float64 {
	return p.X*q.X + p.Y*q.Y - p.Z*q.Z
}

// Invariant returns x²+y²−z², which is −1 for points on the sheet.
func (p HyperPoint) Invariant() float64 { return p.MinkowskiDot(p) }

// Validate reports whether p lies on the upper sheet.
func (p HyperPoint) Validate() error {
	if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
		return fmt.Errorf("%w: non-finite coordinates (%g, %g, %g)", ErrOffHyperboloid, p.X, p.Y, p.Z)
	}
	if p.Z <= 0 {
		return fmt.Errorf("%w: z = %g on the lower sheet", ErrOffHyperboloid, p.Z)
	}
	if math.Abs(p.Invariant()+1) > invariantTolerance*math.Max(1, p.Z*p.Z) {
		return fmt.Errorf("%w: x²+y²−z² = %g", ErrOffHyperboloid, p.Invariant())
	}
	return nil
}

// DistanceToOrigin returns acosh(z).
func (p HyperPoint) DistanceToOrigin() float64 {
	// z can dip below 1 by an ulp at the origin.
	return math.Acosh(math.Max(1, p.Z))
}

// DistanceTo returns acosh(−⟨p,q⟩).
func (p HyperPoint) DistanceTo(q HyperPoint) float64 {
	return math.Acosh(math.Max(1, -p.MinkowskiDot(q)))
}

// ToDisk projects p into the Poincaré disk.
func (p HyperPoint) ToDisk() DiskPoint {
	denom := p.Z + 1
	return DiskPoint{X: p.X / denom, Y: p.Y / denom}
}

// DiskPoint is a point of the open unit disk.
type DiskPoint struct {
	X, Y float64
}

// DiskOrigin is the centre of the disk.
func DiskOrigin() DiskPoint { return DiskPoint{} }

// MinkowskiDot returns x·x' − y·y'. It is a 2D Lorentzian form, not a metric.
func (p DiskPoint) MinkowskiDot(q DiskPoint) float64 {
	return p.X*q.X - p.Y*q.Y
}

// NormSquared returns the Euclidean x²+y².
func (p DiskPoint) NormSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Validate reports whether p lies strictly inside the unit disk.
func (p DiskPoint) Validate() error {
	if !finite(p.X) || !finite(p.Y) {
		return fmt.Errorf("%w: non-finite coordinates (%g, %g)", ErrOutsideDisk, p.X, p.Y)
	}
	if n := p.NormSquared(); n >= 1 {
		return fmt.Errorf("%w: (%g, %g) has x²+y² = %g", ErrOutsideDisk, p.X, p.Y, n)
	}
	return nil
}

func (p DiskPoint) complex() complex128 { return complex(p.X, p.Y) }

// DistanceToOrigin returns 2·atanh(|p|).
func (p DiskPoint) DistanceToOrigin() float64 {
	return 2 * math.Atanh(cmplx.Abs(p.complex()))
}

// DistanceTo returns 2·atanh(|(p−q)/(1−p·conj(q))|).
func (p DiskPoint) DistanceTo(q DiskPoint) float64 {
	a, b := p.complex(), q.complex()
	return 2 * math.Atanh(cmplx.Abs((a-b)/(1-a*cmplx.Conj(b))))
}

// ToHyper lifts p onto the hyperboloid. Points with x²+y² ≥ 1 have no image.
func (p DiskPoint) ToHyper() (HyperPoint, error) {
	if err := p.Validate(); err != nil {
		return HyperPoint{}, err
	}
	n := p.NormSquared()
	return HyperPoint{
		X: 2 * p.X / (1 - n),
		Y: 2 * p.Y / (1 - n),
		Z: (1 + n) / (1 - n),
	}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
