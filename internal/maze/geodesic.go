package maze

import (
	"math"

	"hypermaze/pkg/hyper"
)

// SampleGeodesic returns n+1 disk points evenly spaced by hyperbolic length
// along the wall, endpoints included. Interpolation happens on the
// hyperboloid, where the geodesic is the plane section through both points.
func SampleGeodesic(w hyper.HyperWall, n int) []hyper.DiskPoint {
	if n < 1 {
		n = 1
	}
	a, b := w.Beginning, w.End
	d := a.DistanceTo(b)
	out := make([]hyper.DiskPoint, 0, n+1)
	if d < 1e-12 {
		for i := 0; i <= n; i++ {
			out = append(out, a.ToDisk())
		}
		return out
	}
	sd := math.Sinh(d)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		ka := math.Sinh((1-t)*d) / sd
		kb := math.Sinh(t*d) / sd
		p := hyper.HyperPoint{
			X: ka*a.X + kb*b.X,
			Y: ka*a.Y + kb*b.Y,
			Z: ka*a.Z + kb*b.Z,
		}
		out = append(out, p.ToDisk())
	}
	return out
}
