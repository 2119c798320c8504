package scenes

import (
	"fmt"
	"math"

	"hypermaze/internal/core"
	"hypermaze/pkg/hyper"
)

// ScatterWalls is the number of walls Scatter places.
const ScatterWalls = 24

// maxRadius keeps scattered endpoints clear of the disk boundary, where
// coordinates lose precision.
const maxRadius = 0.9

// Scatter places short walls at random around the origin, leaving a clearing
// of disk radius 0.2 around the camera. The same seed always yields the same
// walls.
func Scatter(seed int64) ([]hyper.DiskWall, error) {
	rng := core.NewRNG(seed)
	walls := make([]hyper.DiskWall, 0, ScatterWalls)
	for attempts := 0; len(walls) < ScatterWalls; attempts++ {
		if attempts > 100*ScatterWalls {
			return nil, fmt.Errorf("scatter: placed %d of %d walls", len(walls), ScatterWalls)
		}
		centre := polar(rng.Range(0.3, 0.8), rng.Range(0, 2*math.Pi))
		half := rng.Range(0.03, 0.12)
		dir := rng.Range(0, math.Pi)
		dx, dy := half*math.Cos(dir), half*math.Sin(dir)
		w := hyper.DiskWall{
			Beginning: hyper.DiskPoint{X: centre.X - dx, Y: centre.Y - dy},
			End:       hyper.DiskPoint{X: centre.X + dx, Y: centre.Y + dy},
			Color:     palette[rng.Uint8n(uint8(len(palette)))],
		}
		if w.Beginning.NormSquared() > maxRadius*maxRadius || w.End.NormSquared() > maxRadius*maxRadius {
			continue
		}
		if w.Beginning.NormSquared() < 0.04 || w.End.NormSquared() < 0.04 {
			continue
		}
		walls = append(walls, w)
	}
	return walls, nil
}

func init() {
	core.RegisterScene("scatter", Scatter)
}
