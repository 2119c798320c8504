package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"hypermaze/pkg/hyper"
)

// ErrMalformedWall reports a wall record that cannot be loaded.
var ErrMalformedWall = errors.New("maze: malformed wall")

// WallRecord is the on-disk form of a wall, in disk-model coordinates.
type WallRecord struct {
	Beginning []float64 `json:"beginning"`
	End       []float64 `json:"end"`
	Color     []int     `json:"color"`
}

// Wall validates the record and converts it.
func (r WallRecord) Wall() (hyper.DiskWall, error) {
	b, err := pointFrom("beginning", r.Beginning)
	if err != nil {
		return hyper.DiskWall{}, err
	}
	e, err := pointFrom("end", r.End)
	if err != nil {
		return hyper.DiskWall{}, err
	}
	if len(r.Color) != 3 {
		return hyper.DiskWall{}, fmt.Errorf("color: want 3 channels, got %d", len(r.Color))
	}
	var ch [3]uint8
	for i, v := range r.Color {
		if v < 0 || v > 255 {
			return hyper.DiskWall{}, fmt.Errorf("color: channel %d = %d out of range", i, v)
		}
		ch[i] = uint8(v)
	}
	return hyper.DiskWall{Beginning: b, End: e, Color: hyper.RGB{R: ch[0], G: ch[1], B: ch[2]}}, nil
}

func pointFrom(field string, xy []float64) (hyper.DiskPoint, error) {
	if xy == nil {
		return hyper.DiskPoint{}, fmt.Errorf("%s: missing", field)
	}
	if len(xy) != 2 {
		return hyper.DiskPoint{}, fmt.Errorf("%s: want [x, y], got %d values", field, len(xy))
	}
	p := hyper.DiskPoint{X: xy[0], Y: xy[1]}
	if err := p.Validate(); err != nil {
		return hyper.DiskPoint{}, fmt.Errorf("%s: %w", field, err)
	}
	return p, nil
}

// Decode reads a JSON array of wall records.
func Decode(r io.Reader) ([]hyper.DiskWall, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var records []WallRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWall, err)
	}
	walls := make([]hyper.DiskWall, 0, len(records))
	for i, rec := range records {
		w, err := rec.Wall()
		if err != nil {
			return nil, fmt.Errorf("%w: wall %d: %w", ErrMalformedWall, i, err)
		}
		walls = append(walls, w)
	}
	return walls, nil
}

// LoadFile decodes a JSON map file into a Map.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	walls, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(walls)
}

// Records converts disk walls back to their on-disk form.
func Records(walls []hyper.DiskWall) []WallRecord {
	out := make([]WallRecord, len(walls))
	for i, w := range walls {
		out[i] = WallRecord{
			Beginning: []float64{w.Beginning.X, w.Beginning.Y},
			End:       []float64{w.End.X, w.End.Y},
			Color:     []int{int(w.Color.R), int(w.Color.G), int(w.Color.B)},
		}
	}
	return out
}
