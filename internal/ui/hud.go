//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"cellscape/internal/core"
	"cellscape/internal/scenario"
)

// PanelWidth is the width of the parameter panel in pixels.
const PanelWidth = 300

const lineHeight = 14

// HUD renders the agent type summary to the right of the simulation view.
type HUD struct {
	title      string
	counts     []string
	snapshot   core.ParameterSnapshot
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD captures the run's agent types for display.
func NewHUD(run *scenario.Run, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		title:    run.Scenario.Name(),
		snapshot: run.Catalog.Snapshot(),
		width:    width,
	}
	for name, n := range run.Result.Counts {
		h.counts = append(h.counts, fmt.Sprintf("%s: %d", name, n))
	}
	sort.Strings(h.counts)
	for _, w := range run.Result.Warnings {
		h.counts = append(h.counts, "warning: "+w.String())
	}
	return h
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := lineHeight
	line := func(s string, c color.Color) {
		if y > height {
			return
		}
		text.Draw(h.panel, s, basicfont.Face7x13, 8, y, c)
		y += lineHeight
	}
	line(h.title, color.White)
	for _, s := range h.counts {
		line(s, color.RGBA{R: 200, G: 200, B: 120, A: 255})
	}
	for _, g := range h.snapshot.Groups {
		y += lineHeight / 2
		line(g.Name+" ("+g.Summary+")", color.White)
		for _, p := range g.Params {
			line("  "+p.Label+": "+p.Value, color.RGBA{R: 180, G: 180, B: 190, A: 255})
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
