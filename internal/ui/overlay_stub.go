//go:build !ebiten

package ui

import "hypermaze/pkg/hyper"

// WallLister supplies the walls the minimap draws.
type WallLister interface {
	Walls() []hyper.HyperWall
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(WallLister, int, float64) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() bool { return false }

// SetHalfFOV is a no-op in headless builds.
func (o *Overlay) SetHalfFOV(float64) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
