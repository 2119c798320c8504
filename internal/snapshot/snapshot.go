// Package snapshot renders frames along a scripted camera path to PNG files
// without opening a window.
package snapshot

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"hypermaze/internal/core"
	"hypermaze/internal/game"
	"hypermaze/internal/logging"
	"hypermaze/internal/maze"
	"hypermaze/internal/raycast"
	"hypermaze/internal/render"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options controls a batch.
type Options struct {
	Size core.Size
	// Every emits a frame after this many script steps. Frame 0 is always the
	// starting view and the final position is always emitted.
	Every    int
	Parallel int
	Dir      string
	Prefix   string
	Minimap  bool
}

// Stops returns the script prefixes, by length, that become frames.
func Stops(steps, every int) []int {
	if every <= 0 {
		every = 1
	}
	stops := []int{0}
	for n := every; n < steps; n += every {
		stops = append(stops, n)
	}
	if steps > 0 {
		stops = append(stops, steps)
	}
	return stops
}

// Frame renders base after the first n commands of script. base is never
// modified.
func Frame(base *maze.Map, r *raycast.Renderer, script []game.Command, size core.Size, minimap bool) *render.Frame {
	m := base.Clone()
	g := game.New(m)
	for _, cmd := range script {
		g.Apply(cmd)
	}
	f := render.NewFrame(size.W, size.H)
	r.Render(m, f, size.W, size.H)
	if minimap {
		mm := render.Minimap{Size: min(size.W, size.H) / 3, Samples: 24, HalfFOV: r.Config().HalfFOV()}
		mm.Draw(f, 4, 4, m.Walls())
	}
	return f
}

// Render writes one PNG per stop into opts.Dir and returns the paths in frame
// order. Frames are rendered concurrently, each on its own copy of the map.
func Render(ctx context.Context, base *maze.Map, r *raycast.Renderer, script []game.Command, opts Options, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = logging.Provide()
	}
	if opts.Size.W <= 0 || opts.Size.H <= 0 {
		return nil, fmt.Errorf("snapshot: empty frame size %dx%d", opts.Size.W, opts.Size.H)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, err
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "frame"
	}

	stops := Stops(len(script), opts.Every)
	paths := make([]string, len(stops))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, n := range stops {
		path := filepath.Join(opts.Dir, fmt.Sprintf("%s%04d.png", prefix, i))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := Frame(base, r, script[:n], opts.Size, opts.Minimap)
			if err := writePNG(path, f); err != nil {
				return err
			}
			log.Debug("frame written", zap.Int("frame", i), zap.Int("steps", n), zap.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("snapshot complete", zap.Int("frames", len(paths)), zap.String("dir", opts.Dir))
	return paths, nil
}

func writePNG(path string, f *render.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}
