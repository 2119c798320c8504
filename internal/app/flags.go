package app

import (
	"errors"
	"flag"
	"fmt"

	"hypermaze/internal/core"
	"hypermaze/internal/maze"
	"hypermaze/internal/raycast"

	"go.uber.org/zap"
)

// ErrUnknownScene reports a -scene name that is not registered.
var ErrUnknownScene = errors.New("app: unknown scene")

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Scene     string
	Map       string
	View      string
	Width     int
	Height    int
	Scale     int
	Panel     int
	TPS       int
	Seed      int64
	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:     "square",
		Width:     320,
		Height:    200,
		Scale:     3,
		Panel:     220,
		TPS:       60,
		Seed:      42,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "built-in scene to load")
	fs.StringVar(&c.Map, "map", c.Map, "JSON wall file, overrides -scene")
	fs.StringVar(&c.View, "view", c.View, "YAML view settings file")
	fs.IntVar(&c.Width, "width", c.Width, "render width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "render height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width, 0 hides it")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random scenes")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "console or json")
}

// Size returns the render size, never smaller than one pixel.
func (c *Config) Size() core.Size {
	return core.Size{W: max(c.Width, 1), H: max(c.Height, 1)}
}

// LoadMaze builds the map named by -map or -scene. The returned name is the
// one shown in window titles.
func (c *Config) LoadMaze(log *zap.Logger) (*maze.Map, string, error) {
	if c.Map != "" {
		m, err := maze.LoadFile(c.Map)
		if err != nil {
			return nil, "", err
		}
		log.Info("map loaded", zap.String("path", c.Map), zap.Int("walls", m.Len()))
		logDegenerate(log, m)
		return m, c.Map, nil
	}
	factory, ok := core.Scenes()[c.Scene]
	if !ok {
		return nil, "", fmt.Errorf("%w %q (have %v)", ErrUnknownScene, c.Scene, core.SceneNames())
	}
	walls, err := factory(c.Seed)
	if err != nil {
		return nil, "", fmt.Errorf("scene %s: %w", c.Scene, err)
	}
	m, err := maze.New(walls)
	if err != nil {
		return nil, "", fmt.Errorf("scene %s: %w", c.Scene, err)
	}
	log.Info("scene loaded", zap.String("scene", c.Scene), zap.Int64("seed", c.Seed), zap.Int("walls", m.Len()))
	logDegenerate(log, m)
	return m, c.Scene, nil
}

func logDegenerate(log *zap.Logger, m *maze.Map) {
	for i, w := range m.WallsAsDisk() {
		if w.Geodesic().Diameter {
			log.Debug("wall lies on a diameter", zap.Int("wall", i))
		}
	}
}

// LoadView returns the view settings from -view, or the defaults.
func (c *Config) LoadView() (raycast.Config, error) {
	if c.View == "" {
		return raycast.DefaultConfig(), nil
	}
	return raycast.LoadConfig(c.View)
}
