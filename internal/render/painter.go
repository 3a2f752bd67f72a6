//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"cellscape/internal/engine"
)

// AgentPainter rasterizes agents into a single image each frame.
type AgentPainter struct {
	view View
	img  *ebiten.Image
	buf  []byte
}

// NewAgentPainter allocates a painter for the view.
func NewAgentPainter(v View) *AgentPainter {
	return &AgentPainter{view: v, img: ebiten.NewImage(v.W, v.H), buf: make([]byte, 4*v.W*v.H)}
}

// Blit uploads the agents into the painter image and draws it.
func (ap *AgentPainter) Blit(dst *ebiten.Image, cells []*engine.Cell, coloring Coloring, bg color.Color) {
	Rasterize(ap.buf, ap.view, cells, coloring, bg)
	ap.img.WritePixels(ap.buf)
	dst.DrawImage(ap.img, &ebiten.DrawImageOptions{})
}

// View returns the painter's coordinate mapping.
func (ap *AgentPainter) View() View { return ap.view }
