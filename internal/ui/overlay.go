//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cellscape/internal/core"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
)

const (
	contourSegments = 128
	arrowLength     = 12 // pixels per unit displacement
)

var (
	contourColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	arrowColor   = color.RGBA{R: 255, G: 140, A: 255}
)

// Overlay draws the seeding ellipse and the most recent confinement
// displacements on top of the agents.
type Overlay struct {
	run         *scenario.Run
	view        render.View
	showContour bool
	showArrows  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(run *scenario.Run, view render.View) *Overlay {
	return &Overlay{run: run, view: view, showContour: true}
}

// Update toggles overlay layers: 1 for the contour, 2 for displacements.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showContour = !o.showContour
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showArrows = !o.showArrows
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showContour {
		o.drawContour(screen, o.run.Layout.Ellipse)
	}
	if o.showArrows {
		o.drawArrows(screen)
	}
}

func (o *Overlay) drawContour(screen *ebiten.Image, e core.Ellipse) {
	prevX, prevY := o.view.ToPixel(core.Vec3{X: e.RX})
	for i := 1; i <= contourSegments; i++ {
		t := 2 * math.Pi * float64(i) / contourSegments
		x, y := o.view.ToPixel(core.Vec3{X: e.RX * math.Cos(t), Y: e.RY * math.Sin(t)})
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 1, contourColor, true)
		prevX, prevY = x, y
	}
}

func (o *Overlay) drawArrows(screen *ebiten.Image) {
	for _, c := range o.run.World.Cells() {
		if !c.Template().Confined() {
			continue
		}
		x0, y0 := o.view.ToPixel(c.Position)
		x1 := x0 + c.Displacement.X*arrowLength
		y1 := y0 - c.Displacement.Y*arrowLength
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, arrowColor, true)
	}
}
