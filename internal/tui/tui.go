// Package tui draws the maze in a terminal. Every cell shows two vertically
// stacked pixels using an upper half block, so a W×H terminal renders a W×2H
// frame.
package tui

import (
	"context"
	"time"

	"hypermaze/internal/core"
	"hypermaze/internal/game"
	"hypermaze/internal/logging"
	"hypermaze/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const halfBlock = '▀'

// Viewer owns the terminal screen for one session.
type Viewer struct {
	screen  tcell.Screen
	session *game.Session
	frame   *render.Frame
	step    *core.FixedStep
	log     *zap.Logger

	showMap bool

	drawnFingerprint uint64
	drawnVersion     uint64
	dirty            bool
}

// New prepares a viewer on an initialised screen. Rendering is paced at tps.
func New(screen tcell.Screen, session *game.Session, tps int, log *zap.Logger) *Viewer {
	if log == nil {
		log = logging.Provide()
	}
	v := &Viewer{
		screen:  screen,
		session: session,
		frame:   render.NewFrame(0, 0),
		step:    core.NewFixedStep(tps),
		log:     log,
	}
	v.resize()
	return v
}

// Frame exposes the pixel buffer last rendered.
func (v *Viewer) Frame() *render.Frame { return v.frame }

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.frame.Resize(w, 2*h)
	v.dirty = true
}

// HandleKey applies one key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	cmd := game.CommandNone
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		cmd = game.CommandForward
	case tcell.KeyDown:
		cmd = game.CommandBackward
	case tcell.KeyLeft:
		cmd = game.CommandTurnLeft
	case tcell.KeyRight:
		cmd = game.CommandTurnRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'w', 'W':
			cmd = game.CommandForward
		case 's', 'S':
			cmd = game.CommandBackward
		case 'a', 'A':
			cmd = game.CommandStrafeLeft
		case 'd', 'D':
			cmd = game.CommandStrafeRight
		case 'm', 'M':
			v.showMap = !v.showMap
			v.dirty = true
		}
	}
	if v.session.Game().Apply(cmd) {
		v.log.Debug("camera moved", zap.Stringer("command", cmd))
	}
	return false
}

// Draw renders the view when something changed and pushes it to the screen.
func (v *Viewer) Draw() {
	m := v.session.Game().Map
	fp := m.Fingerprint()
	if !v.dirty && fp == v.drawnFingerprint && v.session.Version() == v.drawnVersion {
		return
	}
	w, h := v.frame.Size()
	v.session.Renderer().Render(m, v.frame, w, h)
	if v.showMap {
		mm := render.Minimap{
			Size:    min(w, h) / 2,
			Samples: 16,
			HalfFOV: v.session.Renderer().Config().HalfFOV(),
		}
		mm.Draw(v.frame, 1, 1, m.Walls())
	}
	v.blit()
	v.screen.Show()
	v.drawnFingerprint = fp
	v.drawnVersion = v.session.Version()
	v.dirty = false
}

func (v *Viewer) blit() {
	w, h := v.frame.Size()
	for row := 0; 2*row < h; row++ {
		for x := 0; x < w; x++ {
			top := v.frame.At(x, 2*row)
			bottom := v.frame.At(x, 2*row+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

// Run processes terminal events until the user quits or ctx is done. The
// caller owns the screen and must Fini it afterwards.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(v.step.Interval())
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.resize()
				v.screen.Sync()
			}
		case <-ticker.C:
			if v.step.ShouldStep() {
				v.Draw()
			}
		}
	}
}
