package maze

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"hypermaze/pkg/hyper"

	"github.com/cespare/xxhash/v2"
)

// Map is the ordered wall collection of a maze. Walls are stored on the
// hyperboloid and kept sorted nearest-to-farthest by closest endpoint. The
// observer sits at the origin; moving it means moving every wall.
//
// A Map is not safe for concurrent use. Do not mutate it while a frame is
// being rendered from it.
type Map struct {
	walls []hyper.HyperWall
}

// New lifts disk-model walls onto the hyperboloid. Any endpoint outside the
// disk aborts construction.
func New(walls []hyper.DiskWall) (*Map, error) {
	m := &Map{walls: make([]hyper.HyperWall, 0, len(walls))}
	for i, w := range walls {
		hw, err := w.ToHyper()
		if err != nil {
			return nil, fmt.Errorf("%w: wall %d: %w", ErrMalformedWall, i, err)
		}
		m.walls = append(m.walls, hw)
	}
	m.sort()
	return m, nil
}

// Len returns the wall count, which never changes after construction.
func (m *Map) Len() int { return len(m.walls) }

// Walls returns a copy of the walls in their current order.
func (m *Map) Walls() []hyper.HyperWall {
	return slices.Clone(m.walls)
}

// WallsAsDisk converts every wall to the disk model, in map order.
func (m *Map) WallsAsDisk() []hyper.DiskWall {
	out := make([]hyper.DiskWall, len(m.walls))
	for i, w := range m.walls {
		out[i] = w.ToDisk()
	}
	return out
}

// Rotate turns the world about the observer.
func (m *Map) Rotate(angle float64) {
	for i := range m.walls {
		m.walls[i].Rotate(angle)
	}
	m.sort()
}

// Translate boosts the world by (dx, dy); see hyper.Translation for the order.
func (m *Map) Translate(dx, dy float64) {
	for i := range m.walls {
		m.walls[i].Translate(dx, dy)
	}
	m.sort()
}

// Nearest returns the wall with the closest endpoint. It is a heuristic only;
// the raycaster does its own full scan.
func (m *Map) Nearest() (hyper.HyperWall, bool) {
	if len(m.walls) == 0 {
		return hyper.HyperWall{}, false
	}
	return m.walls[0], true
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	return &Map{walls: slices.Clone(m.walls)}
}

// Fingerprint hashes every endpoint coordinate. Two maps with the same walls
// in the same order hash equal; any motion changes the hash.
func (m *Map) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	for _, w := range m.walls {
		put(w.Beginning.X)
		put(w.Beginning.Y)
		put(w.End.X)
		put(w.End.Y)
	}
	return d.Sum64()
}

func (m *Map) sort() {
	slices.SortStableFunc(m.walls, func(a, b hyper.HyperWall) int {
		return cmp.Compare(a.ClosestPointDistance(), b.ClosestPointDistance())
	})
}
