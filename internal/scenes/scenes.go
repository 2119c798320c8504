// Package scenes registers the built-in mazes. Import it for its side effects.
package scenes

import (
	"math"

	"hypermaze/pkg/hyper"
)

// Palette shared by the built-in scenes.
var (
	Red    = hyper.RGB{R: 220, G: 60, B: 60}
	Green  = hyper.RGB{R: 60, G: 200, B: 90}
	Blue   = hyper.RGB{R: 70, G: 110, B: 230}
	Yellow = hyper.RGB{R: 230, G: 210, B: 70}
	Purple = hyper.RGB{R: 170, G: 80, B: 210}
	Grey   = hyper.RGB{R: 180, G: 180, B: 180}
)

var palette = []hyper.RGB{Red, Green, Blue, Yellow, Purple, Grey}

func polar(r, a float64) hyper.DiskPoint {
	return hyper.DiskPoint{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// polygon closes the loop through vertices, colouring walls from the palette
// in turn.
func polygon(vertices []hyper.DiskPoint) []hyper.DiskWall {
	walls := make([]hyper.DiskWall, len(vertices))
	for i, v := range vertices {
		walls[i] = hyper.DiskWall{
			Beginning: v,
			End:       vertices[(i+1)%len(vertices)],
			Color:     palette[i%len(palette)],
		}
	}
	return walls
}
