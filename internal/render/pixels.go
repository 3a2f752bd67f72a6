package render

import (
	"image/color"
	"math"

	"cellscape/internal/core"
	"cellscape/internal/engine"
)

// View maps simulation coordinates onto a W×H pixel buffer centered on the
// origin, with +y up.
type View struct {
	W, H  int
	Scale float64 // pixels per micron
}

// FitView returns a view that shows the ellipse plus margin microns on each
// side inside a w×h buffer.
func FitView(w, h int, e core.Ellipse, margin float64) View {
	sx := float64(w) / (2 * (e.RX + margin))
	sy := float64(h) / (2 * (e.RY + margin))
	return View{W: w, H: h, Scale: math.Min(sx, sy)}
}

// ToPixel converts a simulation position into pixel coordinates.
func (v View) ToPixel(p core.Vec3) (float64, float64) {
	return float64(v.W)/2 + p.X*v.Scale, float64(v.H)/2 - p.Y*v.Scale
}

// Rasterize clears buf to bg and draws each agent as a filled disc: the
// cytoplasm color out to the agent radius and the nucleus color out to half
// of it. buf must hold 4*W*H bytes.
func Rasterize(buf []byte, v View, cells []*engine.Cell, coloring Coloring, bg color.Color) {
	fillRGBA(buf, bg)
	for _, c := range cells {
		pair := coloring(c.Template().Type)
		cx, cy := v.ToPixel(c.Position)
		r := c.Phenotype.Geometry.Radius * v.Scale
		disc(buf, v, cx, cy, r, RGBA(pair.Cytoplasm))
		disc(buf, v, cx, cy, r/2, RGBA(pair.Nucleus))
	}
}

func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}

func disc(buf []byte, v View, cx, cy, r float64, col color.RGBA) {
	if r < 0.5 {
		r = 0.5
	}
	x0 := max(0, int(math.Floor(cx-r)))
	x1 := min(v.W-1, int(math.Ceil(cx+r)))
	y0 := max(0, int(math.Floor(cy-r)))
	y1 := min(v.H-1, int(math.Ceil(cy+r)))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			base := (y*v.W + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
