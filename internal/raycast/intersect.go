package raycast

import (
	"math"
	"slices"

	"hypermaze/pkg/hyper"
)

// Intersect casts a ray from the disk centre at angle (radians from +x) and
// returns the hyperbolic distance to the wall, or false when the ray misses.
// Only the forward half-plane x > 0 is considered. Degenerate geometry never
// reports a hit it cannot justify.
func Intersect(w hyper.DiskWall, angle float64) (float64, bool) {
	p, ok := IntersectPoint(w, angle)
	if !ok {
		return 0, false
	}
	d := p.DistanceToOrigin()
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}

// IntersectPoint is Intersect returning the hit point itself.
func IntersectPoint(w hyper.DiskWall, angle float64) (hyper.DiskPoint, bool) {
	g := w.Geodesic()
	if g.Diameter {
		return intersectDiameter(w, angle)
	}
	return intersectCircle(w, g, angle)
}

func intersectCircle(w hyper.DiskWall, g hyper.Geodesic, angle float64) (hyper.DiskPoint, bool) {
	if math.IsNaN(g.R) || math.IsInf(g.CX, 0) || math.IsInf(g.CY, 0) {
		return hyper.DiskPoint{}, false
	}
	m := math.Tan(angle)
	k := 1 + m*m
	delta := g.R*g.R*k - (g.CY-m*g.CX)*(g.CY-m*g.CX)
	if delta < 0 || math.IsNaN(delta) {
		return hyper.DiskPoint{}, false
	}
	sq := math.Sqrt(delta)
	base := g.CX + g.CY*m

	candidates := make([]hyper.DiskPoint, 0, 2)
	for _, x := range [2]float64{(base + sq) / k, (base - sq) / k} {
		if x <= 0 {
			continue
		}
		c := hyper.DiskPoint{X: x, Y: m * x}
		// The circle's second crossing lies outside the model.
		if c.NormSquared() >= 1 {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return hyper.DiskPoint{}, false
	}
	slices.SortFunc(candidates, func(a, b hyper.DiskPoint) int {
		da, db := a.DistanceToOrigin(), b.DistanceToOrigin()
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	hit := candidates[0]
	if !onArc(g, w.Beginning, w.End, hit) {
		return hyper.DiskPoint{}, false
	}
	return hit, true
}

// onArc reports whether c lies on the arc of g between b and e. The point of
// g due east of its centre is never inside the disk, so an in-disk arc never
// wraps through angle 0 and a plain range check suffices.
func onArc(g hyper.Geodesic, b, e, c hyper.DiskPoint) bool {
	ab := circleAngle(g, b)
	ae := circleAngle(g, e)
	ac := circleAngle(g, c)
	return ac >= math.Min(ab, ae) && ac <= math.Max(ab, ae)
}

func circleAngle(g hyper.Geodesic, p hyper.DiskPoint) float64 {
	a := math.Atan2(p.Y-g.CY, p.X-g.CX)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// intersectDiameter handles walls collinear with the origin. A ray through the
// origin meets such a line only at the origin, which is not in front of the
// camera, unless the ray runs along the wall; then the nearest forward point
// of the segment is the hit.
func intersectDiameter(w hyper.DiskWall, angle float64) (hyper.DiskPoint, bool) {
	ux, uy := math.Cos(angle), math.Sin(angle)
	b, e := w.Beginning, w.End
	// Both endpoints must lie on the ray's line.
	const eps = 1e-12
	if math.Abs(b.X*uy-b.Y*ux) > eps || math.Abs(e.X*uy-e.Y*ux) > eps {
		return hyper.DiskPoint{}, false
	}
	tb := b.X*ux + b.Y*uy
	te := e.X*ux + e.Y*uy
	near, far := math.Min(tb, te), math.Max(tb, te)
	if far <= 0 {
		return hyper.DiskPoint{}, false
	}
	t := math.Max(near, 0)
	return hyper.DiskPoint{X: t * ux, Y: t * uy}, true
}
