//go:build ebiten

package app

import (
	"hypermaze/internal/core"
	"hypermaze/internal/game"
	"hypermaze/internal/logging"
	"hypermaze/internal/render"
	"hypermaze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// keyBindings lists every key that moves the camera. Several keys may be held
// at once.
var keyBindings = []struct {
	keys []ebiten.Key
	cmd  game.Command
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, game.CommandForward},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, game.CommandBackward},
	{[]ebiten.Key{ebiten.KeyA}, game.CommandStrafeLeft},
	{[]ebiten.Key{ebiten.KeyD}, game.CommandStrafeRight},
	{[]ebiten.Key{ebiten.KeyArrowLeft}, game.CommandTurnLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight}, game.CommandTurnRight},
}

// Game adapts a maze session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	frame   *render.Frame
	image   *ebiten.Image
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *zap.Logger

	size      core.Size
	scale     int
	showPanel bool

	// Last drawn state; a frame is rendered only when one of these changes.
	drawnFingerprint uint64
	drawnVersion     uint64
	dirty            bool
}

// New constructs a Game rendering session at size, magnified by scale.
func New(session *game.Session, size core.Size, scale, panel int, log *zap.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if log == nil {
		log = logging.Provide()
	}
	g := &Game{
		session:   session,
		frame:     render.NewFrame(size.W, size.H),
		image:     ebiten.NewImage(size.W, size.H),
		hud:       ui.NewHUD(session, panel),
		overlay:   ui.NewOverlay(session.Game().Map, min(size.W, size.H)*scale/3, session.Renderer().Config().HalfFOV()),
		log:       log,
		size:      size,
		scale:     scale,
		showPanel: panel > 0,
		dirty:     true,
	}
	return g
}

// Update handles per-frame input and moves the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showPanel = !g.showPanel
	}
	g.overlay.Update()
	if g.showPanel && g.hud.Update(g.size.W*g.scale) {
		g.overlay.SetHalfFOV(g.session.Renderer().Config().HalfFOV())
		g.log.Debug("view changed", zap.Any("config", g.session.Renderer().Config()))
	}

	gm := g.session.Game()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				gm.Apply(b.cmd)
				break
			}
		}
	}
	return nil
}

// Draw renders the maze view, re-casting rays only when the world, the view
// settings or the surface changed since the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	fp := g.session.Game().Map.Fingerprint()
	if g.dirty || fp != g.drawnFingerprint || g.session.Version() != g.drawnVersion {
		g.session.Renderer().Render(g.session.Game().Map, g.frame, g.size.W, g.size.H)
		g.image.WritePixels(g.frame.Pix())
		g.drawnFingerprint = fp
		g.drawnVersion = g.session.Version()
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)
	g.overlay.Draw(screen)
	if g.showPanel {
		g.hud.Draw(screen, g.size.W*g.scale, g.size.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.size.W * g.scale
	if g.showPanel {
		w += g.hud.Width()
	}
	return w, g.size.H * g.scale
}
