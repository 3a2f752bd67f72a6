package render

import (
	"fmt"
	"io"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"cellscape/internal/core"
	"cellscape/internal/engine"
)

// contourSegments controls how finely the ellipse outline is drawn.
const contourSegments = 256

// Snapshot renders the agents as a PNG scatter plot, one series per type,
// with the seeding ellipse outlined.
func Snapshot(w io.Writer, title string, cells []*engine.Cell, e core.Ellipse, color Coloring) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (micron)"
	p.Y.Label.Text = "y (micron)"

	byType := map[int]plotter.XYs{}
	radius := map[int]float64{}
	names := map[int]string{}
	for _, c := range cells {
		t := c.Template()
		byType[t.Type] = append(byType[t.Type], plotter.XY{X: c.Position.X, Y: c.Position.Y})
		radius[t.Type] = t.Phenotype.Geometry.Radius
		names[t.Type] = t.Name
	}
	types := make([]int, 0, len(byType))
	for id := range byType {
		types = append(types, id)
	}
	slices.Sort(types)

	for _, id := range types {
		s, err := plotter.NewScatter(byType[id])
		if err != nil {
			return fmt.Errorf("scatter for type %d: %w", id, err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = RGBA(color(id).Cytoplasm)
		s.GlyphStyle.Radius = vg.Points(math.Max(1, radius[id]/5))
		p.Add(s)
		p.Legend.Add(names[id], s)
	}

	if e.RX > 0 && e.RY > 0 {
		outline := make(plotter.XYs, contourSegments+1)
		for i := range outline {
			t := 2 * math.Pi * float64(i) / contourSegments
			outline[i] = plotter.XY{X: e.RX * math.Cos(t), Y: e.RY * math.Sin(t)}
		}
		l, err := plotter.NewLine(outline)
		if err != nil {
			return fmt.Errorf("ellipse outline: %w", err)
		}
		l.LineStyle.Color = RGBA("black")
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
