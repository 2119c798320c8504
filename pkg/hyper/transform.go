package hyper

import "math"

// Mat3 is a row-major 3×3 matrix acting on (x, y, z) column vectors.
type Mat3 struct {
	M [3][3]float64
}

// I3 returns the identity.
func I3() Mat3 {
	var m Mat3
	m.M[0][0], m.M[1][1], m.M[2][2] = 1, 1, 1
	return m
}

// Mul returns a·b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
		}
	}
	return r
}

// Apply returns m·(p.X, p.Y, p.Z).
func (m Mat3) Apply(p HyperPoint) HyperPoint {
	return HyperPoint{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z,
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z,
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z,
	}
}

// RotZ rotates the (x, y) plane by a radians.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	m := I3()
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// BoostX mixes x and z by rapidity a.
func BoostX(a float64) Mat3 {
	c, s := math.Cosh(a), math.Sinh(a)
	m := I3()
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = s, c
	return m
}

// BoostY mixes y and z by rapidity a.
func BoostY(a float64) Mat3 {
	c, s := math.Cosh(a), math.Sinh(a)
	m := I3()
	m.M[1][1], m.M[1][2] = c, s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

// Translation returns BoostX(dx)·BoostY(−dy). The two boosts do not commute;
// diagonal steps pick up a small rotation.
func Translation(dx, dy float64) Mat3 {
	return BoostX(dx).Mul(BoostY(-dy))
}

// Rotate turns p about the origin in place. z is untouched.
func (p *HyperPoint) Rotate(angle float64) {
	*p = RotZ(angle).Apply(*p)
}

// Translate moves p in place by Translation(dx, dy) and puts it back on the
// sheet so repeated motion does not accumulate drift.
func (p *HyperPoint) Translate(dx, dy float64) {
	p.Transform(Translation(dx, dy))
}

// Transform applies m in place and re-derives z from (x, y).
func (p *HyperPoint) Transform(m Mat3) {
	q := m.Apply(*p)
	q.Z = math.Sqrt(1 + q.X*q.X + q.Y*q.Y)
	*p = q
}

// Rotate turns p about the disk centre in place.
func (p *DiskPoint) Rotate(angle float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	p.X, p.Y = p.X*c-p.Y*s, p.X*s+p.Y*c
}
