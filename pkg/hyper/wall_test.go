package hyper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallConversionKeepsColor(t *testing.T) {
	dw := DiskWall{
		Beginning: DiskPoint{X: 0.4, Y: -0.4},
		End:       DiskPoint{X: 0.4, Y: 0.4},
		Color:     RGB{R: 200, G: 10, B: 30},
	}
	hw, err := dw.ToHyper()
	require.NoError(t, err)
	require.NoError(t, hw.Validate())
	assert.Equal(t, dw.Color, hw.Color)
	assert.Equal(t, Hyperboloid, hw.Model())

	back := hw.ToDisk()
	assert.Equal(t, Disk, back.Model())
	assert.Equal(t, dw.Color, back.Color)
	assert.InDelta(t, dw.Beginning.X, back.Beginning.X, tol)
	assert.InDelta(t, dw.End.Y, back.End.Y, tol)
}

func TestWallToHyperNamesBadEndpoint(t *testing.T) {
	dw := DiskWall{Beginning: DiskPoint{X: 0.1}, End: DiskPoint{X: 1.2}}
	_, err := dw.ToHyper()
	require.ErrorIs(t, err, ErrOutsideDisk)
	assert.Contains(t, err.Error(), "end")
}

func TestWallEqualityIgnoresColor(t *testing.T) {
	a := DiskWall{Beginning: DiskPoint{0.1, 0.2}, End: DiskPoint{0.3, 0.4}, Color: RGB{R: 1}}
	b := a
	b.Color = RGB{G: 9}
	assert.True(t, a.Equal(b))
	b.End.X = 0.31
	assert.False(t, a.Equal(b))
}

func TestClosestPointDistance(t *testing.T) {
	w := DiskWall{Beginning: DiskPoint{X: 0.5}, End: DiskPoint{Y: -0.2}}
	assert.InDelta(t, 2*math.Atanh(0.2), w.ClosestPointDistance(), tol)

	hw, err := w.ToHyper()
	require.NoError(t, err)
	assert.InDelta(t, w.ClosestPointDistance(), hw.ClosestPointDistance(), 1e-7)
}

func TestGeodesicCircleIsOrthogonalAndThroughEndpoints(t *testing.T) {
	w := DiskWall{Beginning: DiskPoint{X: 0.4, Y: 0.5}, End: DiskPoint{X: 0.4, Y: -0.5}}
	g := w.Geodesic()
	require.False(t, g.Diameter)
	assert.InDelta(t, 1.7625, g.CX, 1e-12)
	assert.InDelta(t, 0, g.CY, 1e-12)

	// Orthogonal to the unit circle: cx²+cy² = r²+1.
	assert.InDelta(t, g.CX*g.CX+g.CY*g.CY, g.R*g.R+1, 1e-12)
	for _, p := range []DiskPoint{w.Beginning, w.End} {
		assert.InDelta(t, g.R, math.Hypot(p.X-g.CX, p.Y-g.CY), 1e-12)
	}
}

func TestGeodesicThroughOriginIsDiameter(t *testing.T) {
	w := DiskWall{Beginning: DiskPoint{X: -0.5}, End: DiskPoint{X: 0.5}}
	g := w.Geodesic()
	assert.True(t, g.Diameter)
	assert.False(t, math.IsNaN(g.R))
}

func TestHyperWallMotion(t *testing.T) {
	dw := DiskWall{Beginning: DiskPoint{X: 0.2, Y: 0.3}, End: DiskPoint{X: -0.1, Y: 0.6}}
	hw, err := dw.ToHyper()
	require.NoError(t, err)
	orig := hw

	hw.Rotate(0.7)
	hw.Rotate(-0.7)
	assert.InDelta(t, orig.Beginning.X, hw.Beginning.X, tol)
	assert.InDelta(t, orig.End.Y, hw.End.Y, tol)

	hw.Translate(0.1, 0.05)
	require.NoError(t, hw.Validate())
}

func TestScaleClamps(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, RGB{R: 100, G: 50, B: 0}, c.Scale(0.5))
	assert.Equal(t, RGB{R: 255, G: 200, B: 0}, c.Scale(2))
	assert.Equal(t, RGB{}, c.Scale(-1))

	r, g, b, a := RGB{R: 255, G: 0, B: 128}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xffff), a)
}
