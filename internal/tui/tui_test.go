package tui

import (
	"context"
	"testing"
	"time"

	"hypermaze/internal/game"
	"hypermaze/internal/maze"
	"hypermaze/internal/raycast"
	"hypermaze/internal/scenes"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(24, 10)

	m, err := maze.New(scenes.Square())
	require.NoError(t, err)
	r, err := raycast.New(raycast.DefaultConfig())
	require.NoError(t, err)
	return New(screen, game.NewSession("square", game.New(m), r, nil), 60, nil), screen
}

func TestFrameIsTwicePerCell(t *testing.T) {
	v, _ := newViewer(t)
	w, h := v.Frame().Size()
	assert.Equal(t, 24, w)
	assert.Equal(t, 20, h)
}

func TestDrawPaintsHalfBlocks(t *testing.T) {
	v, screen := newViewer(t)
	v.Draw()

	for _, cell := range [][2]int{{0, 0}, {12, 5}, {23, 9}} {
		x, row := cell[0], cell[1]
		mainc, _, style, _ := screen.GetContent(x, row)
		assert.Equal(t, halfBlock, mainc)

		fg, bg, _ := style.Decompose()
		top := v.Frame().At(x, 2*row)
		bottom := v.Frame().At(x, 2*row+1)
		assert.Equal(t, tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)), fg)
		assert.Equal(t, tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)), bg)
	}
}

func TestHandleKey(t *testing.T) {
	v, _ := newViewer(t)
	m := v.session.Game().Map
	before := m.Fingerprint()

	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.NotEqual(t, before, m.Fingerprint())

	moved := m.Fingerprint()
	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.Equal(t, moved, m.Fingerprint(), "unbound keys do nothing")

	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)))
	assert.True(t, v.showMap)

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunQuitsOnKey(t *testing.T) {
	v, screen := newViewer(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, v.Run(ctx))
}

func TestRunStopsWithContext(t *testing.T) {
	v, _ := newViewer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, v.Run(ctx), context.DeadlineExceeded)
}
