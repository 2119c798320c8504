package raycast

import (
	"errors"
	"fmt"
	"math"
	"os"

	"hypermaze/pkg/hyper"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports view settings that make the projection singular.
var ErrInvalidConfig = errors.New("raycast: invalid view config")

// Config holds the view settings. They are fixed for a renderer's lifetime.
type Config struct {
	// RelativeScreenSize is the width of the virtual screen in world units.
	RelativeScreenSize float64 `yaml:"relative_screen_size"`
	FocalLength        float64 `yaml:"focal_length"`
	// IlluminationRadius is the projected distance at which light reaches MinimumLight.
	IlluminationRadius float64 `yaml:"illumination_radius"`
	MinimumLight       float64 `yaml:"minimum_light"`
	// WallScale is k in height = k / distance.
	WallScale float64 `yaml:"wall_scale"`

	Ceiling [3]uint8 `yaml:"ceiling"`
	Floor   [3]uint8 `yaml:"floor"`
}

// DefaultConfig returns the standard view.
func DefaultConfig() Config {
	return Config{
		RelativeScreenSize: 1.0,
		FocalLength:        0.75,
		IlluminationRadius: 1.0,
		MinimumLight:       0.25,
		WallScale:          0.1,
		Ceiling:            [3]uint8{0, 0, 0},
		Floor:              [3]uint8{64, 64, 64},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that would make every column singular. The half
// field of view must stay below 90° because rays only look along +x.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"relative_screen_size": c.RelativeScreenSize,
		"focal_length":         c.FocalLength,
		"illumination_radius":  c.IlluminationRadius,
		"minimum_light":        c.MinimumLight,
		"wall_scale":           c.WallScale,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}
	if c.FocalLength == 0 {
		return fmt.Errorf("%w: focal_length must be non-zero", ErrInvalidConfig)
	}
	if c.IlluminationRadius <= 0 {
		return fmt.Errorf("%w: illumination_radius must be positive, got %g", ErrInvalidConfig, c.IlluminationRadius)
	}
	if c.RelativeScreenSize <= 0 {
		return fmt.Errorf("%w: relative_screen_size must be positive, got %g", ErrInvalidConfig, c.RelativeScreenSize)
	}
	if c.MinimumLight < 0 || c.MinimumLight > 1 {
		return fmt.Errorf("%w: minimum_light must be within [0, 1], got %g", ErrInvalidConfig, c.MinimumLight)
	}
	if c.WallScale <= 0 {
		return fmt.Errorf("%w: wall_scale must be positive, got %g", ErrInvalidConfig, c.WallScale)
	}
	if half := math.Atan(math.Abs(0.5 * c.RelativeScreenSize / c.FocalLength)); half >= math.Pi/2-1e-9 {
		return fmt.Errorf("%w: half field of view %.1f° reaches 90°", ErrInvalidConfig, half*180/math.Pi)
	}
	return nil
}

// HalfFOV returns the half field of view in radians.
func (c Config) HalfFOV() float64 {
	return math.Atan(math.Abs(0.5 * c.RelativeScreenSize / c.FocalLength))
}

func (c Config) ceiling() hyper.RGB { return hyper.RGB{R: c.Ceiling[0], G: c.Ceiling[1], B: c.Ceiling[2]} }
func (c Config) floor() hyper.RGB   { return hyper.RGB{R: c.Floor[0], G: c.Floor[1], B: c.Floor[2]} }
