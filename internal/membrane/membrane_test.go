package membrane

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellscape/internal/core"
)

func TestConfineDisplacementIsUnitAndInward(t *testing.T) {
	e := core.Ellipse{RX: DefaultRX, RY: DefaultRY}
	for _, pos := range []core.Vec3{
		{X: 10, Y: 0},
		{X: -250, Y: 40},
		{X: 3, Y: -99},
		{X: 500, Y: 300},
		{X: 1e-3, Y: -1e-3},
	} {
		_, disp := Confine(e, pos)
		assert.InDelta(t, 1, math.Hypot(disp.X, disp.Y), 1e-12, "pos %+v", pos)
		assert.Zero(t, disp.Z)
		// Parallel to -pos: cross product zero, dot product negative.
		assert.InDelta(t, 0, disp.X*pos.Y-disp.Y*pos.X, 1e-9, "pos %+v", pos)
		assert.Negative(t, disp.X*pos.X+disp.Y*pos.Y, "pos %+v", pos)
	}
}

func TestConfineDisplacementIgnoresDistance(t *testing.T) {
	e := core.Ellipse{RX: DefaultRX, RY: DefaultRY}
	_, near := Confine(e, core.Vec3{X: 1, Y: 1})
	_, far := Confine(e, core.Vec3{X: 100, Y: 100})
	assert.InDelta(t, near.X, far.X, 1e-12)
	assert.InDelta(t, near.Y, far.Y, 1e-12)
}

func TestConfineAtOrigin(t *testing.T) {
	d, disp := Confine(core.Ellipse{RX: 400, RY: 100}, core.Vec3{})
	assert.Zero(t, disp.X)
	assert.Zero(t, disp.Y)
	// atan2(0, 0) is 0, so the reference boundary point is (a, 0).
	assert.InDelta(t, 400, d, 1e-12)
}

func TestConfineDistanceOnCircleDiagonal(t *testing.T) {
	e := core.Ellipse{RX: 100, RY: 100}
	pos := core.Vec3{X: 30, Y: 30}
	d, _ := Confine(e, pos)
	assert.InDelta(t, 100-math.Hypot(30, 30), d, 1e-9)
}

func TestConfineUsesParametricAngle(t *testing.T) {
	e := core.Ellipse{RX: 400, RY: 100}
	pos := core.Vec3{X: 120, Y: -20, Z: 5}
	tp := math.Atan2(e.RX*pos.X, e.RY*pos.Y)
	want := pos.Dist(core.Vec3{X: e.RX * math.Cos(tp), Y: e.RY * math.Sin(tp)})
	d, _ := Confine(e, pos)
	assert.InDelta(t, want, d, 1e-9)
	assert.False(t, math.IsNaN(d) || math.IsInf(d, 0))
}

func TestCallbackIsReentrant(t *testing.T) {
	cb := Callback(core.Ellipse{RX: DefaultRX, RY: DefaultRY})
	positions := make([]core.Vec3, 256)
	for i := range positions {
		a := float64(i) / float64(len(positions)) * 2 * math.Pi
		positions[i] = core.Vec3{X: 300 * math.Cos(a), Y: 80 * math.Sin(a)}
	}
	out := make([]core.Vec3, len(positions))
	var wg sync.WaitGroup
	for i, p := range positions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, out[i] = cb(p)
		}()
	}
	wg.Wait()
	for i, p := range positions {
		_, want := Confine(core.Ellipse{RX: DefaultRX, RY: DefaultRY}, p)
		require.Equal(t, want, out[i])
	}
}
