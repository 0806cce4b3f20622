//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"leaplife/internal/core"
	"leaplife/internal/render"
	"leaplife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the status panel.
const HUDWidth = 220

// maxStepsPerFrame bounds catch-up work when the generation rate exceeds
// the frame rate.
const maxStepsPerFrame = 32

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation, stepping it at tps
// generations per second.
func New(sim core.Sim, scale int, seed int64, tps int) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim, HUDWidth),
		overlay:  ui.NewOverlay(sim, scale),
		pace:     core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.pace.SetTPS(g.pace.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.pace.TPS() > 1 {
		g.pace.SetTPS(g.pace.TPS() / 2)
	}

	g.overlay.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused {
		for n := 0; n < maxStepsPerFrame && g.pace.ShouldStep(); n++ {
			g.sim.Step()
		}
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	g.hud.SetFooter(fmt.Sprintf("%s at %d gen/s", state, g.pace.TPS()))
	g.hud.Update(g.sim.Size().W * g.scale)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
