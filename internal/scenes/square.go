package scenes

import (
	"hypermaze/internal/core"
	"hypermaze/pkg/hyper"
)

// SquareCorner is the disk coordinate of the square room's corners.
const SquareCorner = 0.4

// Square is a closed four-walled room around the origin. Its corners are
// acute, so walking around it shows the angle defect.
func Square() []hyper.DiskWall {
	c := SquareCorner
	return polygon([]hyper.DiskPoint{
		{X: c, Y: -c},
		{X: c, Y: c},
		{X: -c, Y: c},
		{X: -c, Y: -c},
	})
}

func init() {
	core.RegisterScene("square", func(int64) ([]hyper.DiskWall, error) {
		return Square(), nil
	})
}
