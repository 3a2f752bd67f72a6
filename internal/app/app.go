//go:build ebiten

package app

import (
	"context"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cellscape/internal/params"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
	"cellscape/internal/ui"
)

// viewMargin is the border, in microns, shown around the seeding ellipse.
const viewMargin = 80

// Game adapts a scenario run to the ebiten.Game interface.
type Game struct {
	sc     scenario.Scenario
	params *params.Set
	log    *slog.Logger

	run     *scenario.Run
	painter *render.AgentPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *Pacer

	background color.Color
	scale      int
	confining  bool
	tickOnce   bool
}

// New sets up the scenario and constructs a Game for it. passRate limits
// continuous confinement passes per second; zero runs one per frame.
func New(sc scenario.Scenario, p *params.Set, scale, passRate int, log *slog.Logger) (*Game, error) {
	g := &Game{sc: sc, params: p, log: log, scale: scale, background: color.White, pacer: NewPacer(passRate)}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reruns the startup sequence with the current parameters.
func (g *Game) Reset() error {
	run, err := scenario.Setup(g.sc, g.params, g.log)
	if err != nil {
		return err
	}
	e := run.Layout.Ellipse
	w := int(2*(e.RX+viewMargin)) * g.scale
	h := int(2*(e.RY+viewMargin)) * g.scale
	view := render.FitView(w, h, e, viewMargin)

	g.run = run
	g.painter = render.NewAgentPainter(view)
	g.overlay = ui.NewOverlay(run, view)
	g.hud = ui.NewHUD(run, ui.PanelWidth)
	g.tickOnce = false
	return nil
}

// Update handles per-frame logic and runs the confinement pass.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.confining = !g.confining
		g.pacer.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.params.SetInt("random_seed", int(time.Now().UnixNano()&0x7fffffff))
		if err := g.Reset(); err != nil {
			return err
		}
	}

	g.overlay.Update()

	passes := 0
	if g.confining {
		passes = g.pacer.Due()
	}
	if g.tickOnce {
		passes = max(passes, 1)
		g.tickOnce = false
	}
	for range passes {
		if err := g.run.World.ApplyConfinement(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the agents, the overlay and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.run.World.Cells(), g.sc.Color, g.background)
	g.overlay.Draw(screen)
	v := g.painter.View()
	g.hud.Draw(screen, v.W, v.H)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.painter.View()
	return v.W + ui.PanelWidth, v.H
}
