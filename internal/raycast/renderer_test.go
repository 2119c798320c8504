package raycast

import (
	"math"
	"testing"

	"hypermaze/pkg/hyper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticWalls []hyper.DiskWall

func (s staticWalls) WallsAsDisk() []hyper.DiskWall { return s }

type recordingSink struct {
	pixels map[[2]int]hyper.RGB
	rows   map[int][]int
	draws  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{pixels: map[[2]int]hyper.RGB{}, rows: map[int][]int{}}
}

func (s *recordingSink) DrawPixel(x, y int, c hyper.RGB) {
	s.pixels[[2]int{x, y}] = c
	s.rows[x] = append(s.rows[x], y)
	s.draws++
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(DefaultConfig())
	require.NoError(t, err)
	return r
}

func TestRenderCoversEveryPixelTopToBottom(t *testing.T) {
	r := newRenderer(t)
	const w, h = 40, 30
	sink := newRecordingSink()
	r.Render(staticWalls(squareRoom()), sink, w, h)

	assert.Equal(t, w*h, sink.draws)
	assert.Len(t, sink.pixels, w*h)
	for x := 0; x < w; x++ {
		rows := sink.rows[x]
		require.Len(t, rows, h)
		for y, got := range rows {
			assert.Equal(t, y, got, "column %d", x)
		}
	}
}

func TestRenderEmptySizeDrawsNothing(t *testing.T) {
	r := newRenderer(t)
	sink := newRecordingSink()
	r.Render(staticWalls(squareRoom()), sink, 0, 10)
	r.Render(staticWalls(squareRoom()), sink, 10, -1)
	assert.Zero(t, sink.draws)
}

func TestMissDrawsCeilingAndFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ceiling = [3]uint8{10, 20, 30}
	r, err := New(cfg)
	require.NoError(t, err)

	const h = 10
	sink := newRecordingSink()
	r.Render(staticWalls(nil), sink, 1, h)

	ceiling := hyper.RGB{R: 10, G: 20, B: 30}
	floor := hyper.RGB{R: 64, G: 64, B: 64}
	for y := 0; y < h/2; y++ {
		assert.Equal(t, ceiling, sink.pixels[[2]int{0, y}])
	}
	for y := h / 2; y < h; y++ {
		assert.Equal(t, floor.Scale(float64(y)/h), sink.pixels[[2]int{0, y}])
	}
}

func TestDrawColumnBands(t *testing.T) {
	r := newRenderer(t)
	sink := newRecordingSink()
	hit := Hit{Found: true, Color: red, Height: 0.5}
	r.DrawColumn(sink, 3, 10, hit)

	floor := hyper.RGB{R: 64, G: 64, B: 64}
	for y := 0; y < 10; y++ {
		got := sink.pixels[[2]int{3, y}]
		switch {
		case y < 2:
			assert.Equal(t, hyper.RGB{}, got, "row %d", y)
		case y < 7:
			assert.Equal(t, red, got, "row %d", y)
		default:
			assert.Equal(t, floor.Scale(float64(y)/10), got, "row %d", y)
		}
	}
}

func TestFullHeightWallFillsColumn(t *testing.T) {
	r := newRenderer(t)
	sink := newRecordingSink()
	r.DrawColumn(sink, 0, 8, Hit{Found: true, Color: green, Height: 1})
	for y := 0; y < 8; y++ {
		assert.Equal(t, green, sink.pixels[[2]int{0, y}])
	}
}

func TestRayAngle(t *testing.T) {
	r := newRenderer(t)
	assert.Zero(t, r.RayAngle(32, 64))
	assert.InDelta(t, -r.Config().HalfFOV(), r.RayAngle(0, 64), 1e-12)
	assert.InDelta(t, -r.RayAngle(16, 64), r.RayAngle(48, 64), 1e-12)
	assert.Less(t, r.RayAngle(10, 64), r.RayAngle(11, 64))
}

func TestWallHeightIsCentreMaximal(t *testing.T) {
	r := newRenderer(t)
	wall := []hyper.DiskWall{{
		Beginning: hyper.DiskPoint{X: 0.4, Y: -0.5},
		End:       hyper.DiskPoint{X: 0.4, Y: 0.5},
		Color:     red,
	}}
	const width = 64
	heights := make([]float64, width)
	for c := range heights {
		hit := r.Column(wall, c, width)
		require.True(t, hit.Found, "column %d", c)
		heights[c] = hit.Height
	}

	centre := width / 2
	for c := centre; c < width-1; c++ {
		assert.GreaterOrEqual(t, heights[c]+1e-12, heights[c+1], "column %d", c)
	}
	for c := centre; c > 0; c-- {
		assert.GreaterOrEqual(t, heights[c]+1e-12, heights[c-1], "column %d", c)
	}
	assert.Greater(t, heights[centre], heights[0])
	assert.Greater(t, heights[centre], heights[width-1])
}

func TestFisheyeCorrectedDistance(t *testing.T) {
	r := newRenderer(t)
	wall := []hyper.DiskWall{{Beginning: hyper.DiskPoint{X: 0.4, Y: -0.5}, End: hyper.DiskPoint{X: 0.4, Y: 0.5}}}
	angle := 0.3
	hit := r.Cast(wall, angle)
	require.True(t, hit.Found)
	assert.InDelta(t, hit.Distance*math.Cos(angle), hit.Projected, 1e-12)
	assert.Less(t, hit.Projected, hit.Distance)
}

func TestLightIsMonotoneAndClamped(t *testing.T) {
	r := newRenderer(t)
	cfg := r.Config()
	prev := r.Light(0)
	assert.Equal(t, 1.0, prev)
	for d := 0.05; d < 5; d += 0.05 {
		l := r.Light(d)
		assert.LessOrEqual(t, l, prev, "distance %g", d)
		assert.GreaterOrEqual(t, l, cfg.MinimumLight)
		assert.LessOrEqual(t, l, 1.0)
		prev = l
	}
	assert.Equal(t, cfg.MinimumLight, r.Light(100))
	assert.Equal(t, 1.0, r.Light(-1), "negative projection clamps to full light")
}

func TestShadeDarkensWithDistance(t *testing.T) {
	r := newRenderer(t)
	near := r.Shade(white, 0.1)
	far := r.Shade(white, 0.9)
	assert.Greater(t, near.R, far.R)
	assert.Equal(t, white, r.Shade(white, 0))
}

func TestWallHeight(t *testing.T) {
	r := newRenderer(t)
	assert.Equal(t, 1.0, r.WallHeight(0))
	assert.Equal(t, 1.0, r.WallHeight(-0.5))
	assert.Equal(t, 1.0, r.WallHeight(0.05))
	assert.InDelta(t, 0.5, r.WallHeight(0.2), 1e-12)
	assert.InDelta(t, 0.01, r.WallHeight(10), 1e-12)
}
