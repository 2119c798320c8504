package raycast

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, math.Atan(0.5/0.75), cfg.HalfFOV(), 1e-12)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero focal length":      func(c *Config) { c.FocalLength = 0 },
		"nan focal length":       func(c *Config) { c.FocalLength = math.NaN() },
		"zero illumination":      func(c *Config) { c.IlluminationRadius = 0 },
		"infinite illumination":  func(c *Config) { c.IlluminationRadius = math.Inf(1) },
		"negative screen":        func(c *Config) { c.RelativeScreenSize = -1 },
		"light above one":        func(c *Config) { c.MinimumLight = 1.5 },
		"negative light":         func(c *Config) { c.MinimumLight = -0.1 },
		"zero wall scale":        func(c *Config) { c.WallScale = 0 },
		"field of view too wide": func(c *Config) { c.FocalLength = 1e-12 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)

			_, err = New(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "focal_length: 1.5\nminimum_light: 0.1\nfloor: [10, 20, 30]\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.FocalLength = 1.5
	want.MinimumLight = 0.1
	want.Floor = [3]uint8{10, 20, 30}
	assert.Equal(t, want, cfg)
}

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "focal_lenght: 1.5\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigValidates(t *testing.T) {
	path := writeConfig(t, "illumination_radius: 0\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
