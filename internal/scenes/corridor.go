package scenes

import (
	"hypermaze/internal/core"
	"hypermaze/pkg/hyper"
)

// Corridor is a straight hall running along +x, split into panels so the
// walls shrink visibly with distance, with a closed far end.
func Corridor() []hyper.DiskWall {
	const (
		halfWidth = 0.15
		start     = -0.3
		end       = 0.8
		panels    = 6
	)
	var walls []hyper.DiskWall
	step := (end - start) / panels
	for i := 0; i < panels; i++ {
		x0 := start + float64(i)*step
		x1 := x0 + step
		c := Blue
		if i%2 == 1 {
			c = Grey
		}
		walls = append(walls,
			hyper.DiskWall{Beginning: hyper.DiskPoint{X: x0, Y: halfWidth}, End: hyper.DiskPoint{X: x1, Y: halfWidth}, Color: c},
			hyper.DiskWall{Beginning: hyper.DiskPoint{X: x0, Y: -halfWidth}, End: hyper.DiskPoint{X: x1, Y: -halfWidth}, Color: c},
		)
	}
	walls = append(walls,
		hyper.DiskWall{Beginning: hyper.DiskPoint{X: end, Y: -halfWidth}, End: hyper.DiskPoint{X: end, Y: halfWidth}, Color: Red},
		hyper.DiskWall{Beginning: hyper.DiskPoint{X: start, Y: halfWidth}, End: hyper.DiskPoint{X: start, Y: -halfWidth}, Color: Green},
	)
	return walls
}

func init() {
	core.RegisterScene("corridor", func(int64) ([]hyper.DiskWall, error) {
		return Corridor(), nil
	})
}
