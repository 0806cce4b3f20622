//go:build ebiten

package ui

import (
	"image/color"

	"leaplife/internal/core"
	"leaplife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type originProvider interface {
	Origin() *core.ByteGrid
}

// Overlay tints the generation-zero seed on top of the running grid.
type Overlay struct {
	sim        core.Sim
	scale      int
	showOrigin bool
	painter    *render.GridPainter
	tint       color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:        sim,
		scale:      scale,
		showOrigin: true,
		painter:    render.NewGridPainter(size.W, size.H),
		tint:       color.RGBA{R: 220, G: 70, B: 60, A: 110},
	}
}

// Update toggles the seed highlight.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showOrigin = !o.showOrigin
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showOrigin {
		return
	}
	provider, ok := o.sim.(originProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitMask(screen, provider.Origin().Cells(), o.tint, scale)
}
