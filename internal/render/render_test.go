package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellscape/internal/core"
	"cellscape/internal/engine"
	"cellscape/internal/phenotype"
)

func world(t *testing.T) *engine.World {
	t.Helper()
	env, err := engine.NewMicroenvironment(engine.Options{})
	require.NoError(t, err)
	w := engine.NewWorld()
	for i, pos := range []core.Vec3{{X: -20}, {X: 20}} {
		tpl := phenotype.Defaults(env).Derive(i, "type "+string(rune('a'+i)))
		tpl.Phenotype.Geometry.Radius = 5
		require.NoError(t, tpl.SyncToEngine(env))
		w.CreateAgent(tpl).SetPosition(pos)
	}
	return w
}

func coloring(id int) ColorPair {
	if id == 0 {
		return ColorPair{Cytoplasm: "red", Nucleus: "blue"}
	}
	return Solid("yellow")
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, RGBA("grey"))
	assert.Equal(t, RGBA("grey"), RGBA("gray"))
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, RGBA("no such color"))
}

func TestFitViewKeepsEllipseInside(t *testing.T) {
	v := FitView(200, 100, core.Ellipse{RX: 40, RY: 10}, 10)
	assert.Equal(t, 2.0, v.Scale)

	x, y := v.ToPixel(core.Vec3{})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)
	x, y = v.ToPixel(core.Vec3{X: 40, Y: 10})
	assert.Equal(t, 180.0, x)
	assert.Equal(t, 30.0, y, "+y is up")
}

func TestRasterize(t *testing.T) {
	v := View{W: 100, H: 40, Scale: 1}
	buf := make([]byte, 4*v.W*v.H)
	Rasterize(buf, v, world(t).Cells(), coloring, color.Black)

	at := func(x, y int) color.RGBA {
		i := (y*v.W + x) * 4
		return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
	}
	assert.Equal(t, RGBA("black"), at(0, 0))
	assert.Equal(t, RGBA("blue"), at(30, 20), "nucleus of the left agent")
	assert.Equal(t, RGBA("red"), at(34, 20), "cytoplasm of the left agent")
	assert.Equal(t, RGBA("yellow"), at(70, 20))
	assert.Equal(t, RGBA("black"), at(50, 20))
}

func TestRasterizeClipsAtEdges(t *testing.T) {
	v := View{W: 10, H: 10, Scale: 1}
	buf := make([]byte, 4*v.W*v.H)
	assert.NotPanics(t, func() {
		Rasterize(buf, v, world(t).Cells(), coloring, color.White)
	})
}

func TestSnapshotWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	err := Snapshot(&buf, "layout", world(t).Cells(), core.Ellipse{RX: 40, RY: 10}, coloring)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}
