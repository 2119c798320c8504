package game

import (
	"testing"

	"hypermaze/internal/maze"
	"hypermaze/pkg/hyper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	m, err := maze.New([]hyper.DiskWall{
		{Beginning: hyper.DiskPoint{X: 0.5, Y: -0.2}, End: hyper.DiskPoint{X: 0.5, Y: 0.2}},
	})
	require.NoError(t, err)
	return New(m)
}

func TestCommandsMatchMapMotions(t *testing.T) {
	cases := []struct {
		cmd  Command
		move func(*maze.Map)
	}{
		{CommandForward, func(m *maze.Map) { m.Translate(-MovementSpeed, 0) }},
		{CommandBackward, func(m *maze.Map) { m.Translate(MovementSpeed, 0) }},
		{CommandStrafeRight, func(m *maze.Map) { m.Translate(0, MovementSpeed) }},
		{CommandStrafeLeft, func(m *maze.Map) { m.Translate(0, -MovementSpeed) }},
		{CommandTurnRight, func(m *maze.Map) { m.Rotate(-RotationSpeed) }},
		{CommandTurnLeft, func(m *maze.Map) { m.Rotate(RotationSpeed) }},
	}
	for _, tc := range cases {
		g := newGame(t)
		want := g.Map.Clone()
		tc.move(want)

		require.True(t, g.Apply(tc.cmd))
		assert.Equal(t, want.Fingerprint(), g.Map.Fingerprint(), "command %d", tc.cmd)
	}
}

func TestCommandNoneLeavesMapAlone(t *testing.T) {
	g := newGame(t)
	fp := g.Map.Fingerprint()
	assert.False(t, g.Apply(CommandNone))
	assert.Equal(t, fp, g.Map.Fingerprint())
}

func TestForwardThenBackwardReturns(t *testing.T) {
	g := newGame(t)
	before := g.Map.Walls()[0]
	g.Apply(CommandForward)
	g.Apply(CommandBackward)
	after := g.Map.Walls()[0]
	assert.InDelta(t, before.Beginning.X, after.Beginning.X, 1e-12)
	assert.InDelta(t, before.End.Y, after.End.Y, 1e-12)
}

func TestForwardApproachesTheWallAhead(t *testing.T) {
	g := newGame(t)
	before, ok := g.Map.Nearest()
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		g.Apply(CommandForward)
	}
	after, _ := g.Map.Nearest()
	assert.Less(t, after.ClosestPointDistance(), before.ClosestPointDistance())
}

func TestStrafeRightShiftsWorldLeft(t *testing.T) {
	g := newGame(t)
	mid := func() float64 {
		w := g.Map.WallsAsDisk()[0]
		return (w.Beginning.Y + w.End.Y) / 2
	}
	before := mid()
	g.Apply(CommandStrafeRight)
	assert.Less(t, mid(), before)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "forward", CommandForward.String())
	assert.Equal(t, "turn-right", CommandTurnRight.String())
	assert.Equal(t, "none", Command(99).String())
}
