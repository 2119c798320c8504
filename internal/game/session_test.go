package game

import (
	"strconv"
	"testing"

	"hypermaze/internal/core"
	"hypermaze/internal/raycast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newSession(t *testing.T) (*Session, *observer.ObservedLogs) {
	t.Helper()
	r, err := raycast.New(raycast.DefaultConfig())
	require.NoError(t, err)
	obs, logs := observer.New(zapcore.DebugLevel)
	return NewSession("test", newGame(t), r, zap.New(obs)), logs
}

func TestSessionParameters(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, "test", s.Name())

	snap := s.Parameters()
	focal, ok := snap.Lookup("focal_length")
	require.True(t, ok)
	assert.Equal(t, "0.75", focal.Value)

	walls, ok := snap.Lookup("walls")
	require.True(t, ok)
	assert.Equal(t, core.ParamTypeInt, walls.Type)
	assert.Equal(t, "1", walls.Value)

	_, ok = snap.Lookup("nearest")
	assert.True(t, ok)

	for _, c := range s.ParameterControls() {
		p, ok := snap.Lookup(c.Key)
		require.True(t, ok, c.Key)
		v, err := strconv.ParseFloat(p.Value, 64)
		require.NoError(t, err)
		assert.Equal(t, v, c.Clamp(v), "%s default lies within its bounds", c.Key)
	}
}

func TestSessionRebuildsRenderer(t *testing.T) {
	s, _ := newSession(t)
	before := s.Renderer()

	require.True(t, s.SetFloatParameter("focal_length", 1.5))
	assert.NotSame(t, before, s.Renderer())
	assert.Equal(t, 1.5, s.Renderer().Config().FocalLength)
	assert.Equal(t, uint64(1), s.Version())

	require.True(t, s.SetFloatParameter("move_step", 0.02))
	assert.Equal(t, 0.02, s.Game().Step)
	assert.Equal(t, uint64(2), s.Version())
}

func TestSessionRefusesInvalidView(t *testing.T) {
	s, logs := newSession(t)
	before := s.Renderer()

	assert.False(t, s.SetFloatParameter("illumination_radius", 0))
	assert.Same(t, before, s.Renderer())
	assert.Zero(t, s.Version())
	assert.Equal(t, 1, logs.FilterMessage("view setting refused").Len())

	assert.False(t, s.SetFloatParameter("unknown", 1))
}
