package scenes

import (
	"math"

	"hypermaze/internal/core"
	"hypermaze/pkg/hyper"
)

// PentagonRadius is the disk radius of the vertices of the regular pentagon
// whose interior angles are all right angles. Such a pentagon has hyperbolic
// circumradius R with cosh R = cot(π/5)·cot(π/4).
var PentagonRadius = math.Tanh(math.Acosh(1/math.Tan(math.Pi/5)) / 2)

// Pentagon is the right-angled regular pentagon, four of which meet at every
// vertex of the {5,4} tiling.
func Pentagon() []hyper.DiskWall {
	v := make([]hyper.DiskPoint, 5)
	for i := range v {
		v[i] = polar(PentagonRadius, math.Pi/5+2*math.Pi*float64(i)/5)
	}
	return polygon(v)
}

func init() {
	core.RegisterScene("pentagon", func(int64) ([]hyper.DiskWall, error) {
		return Pentagon(), nil
	})
}
