//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"leaplife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
	groupGap     = 8
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 240, G: 210, B: 120, A: 255}
	hintColor  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

var keyHints = []string{
	"space  pause",
	"n      step",
	"r      reset",
	"s      new seed",
	"up/dn  speed",
	"1      seed tint",
	"q      quit",
}

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	footer     string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// SetFooter sets a status line drawn above the key hints.
func (h *HUD) SetFooter(s string) {
	if h != nil {
		h.footer = s
	}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(int) {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawSnapshot(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}

func (h *HUD) drawSnapshot(height int) {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)

	maxChars := (h.width - 2*panelPadding) / 7
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, p := range group.Params {
			y += lineHeight
			line := fmt.Sprintf("%-11s %s", p.Label, p.Value)
			if maxChars > 3 && len(line) > maxChars {
				line = line[:maxChars-3] + "..."
			}
			text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		}
	}

	y = height - panelPadding - len(keyHints)*lineHeight
	if h.footer != "" {
		text.Draw(h.panel, h.footer, face, panelPadding, y-groupGap, valueColor)
	}
	for _, hint := range keyHints {
		y += lineHeight
		text.Draw(h.panel, hint, face, panelPadding, y, hintColor)
	}
}
