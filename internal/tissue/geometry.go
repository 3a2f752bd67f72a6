package tissue

import (
	"fmt"
	"iter"
	"math"

	"cellscape/internal/core"
)

// maxAgents bounds the count a density may request.
const maxAgents = math.MaxInt32

// SampleInterior draws a point uniformly distributed over the ellipse's
// area. The radial fraction is the square root of a uniform draw; without it
// points would crowd the center.
func SampleInterior(rng *core.RNG, e core.Ellipse) core.Vec3 {
	t := rng.Angle()
	d := math.Sqrt(rng.Float64())
	return core.Vec3{X: e.RX * d * math.Cos(t), Y: e.RY * d * math.Sin(t)}
}

// CountFromDensity converts an area fraction into an agent count:
// density * ellipse area / agent cross-section, rounded toward zero.
func CountFromDensity(density float64, e core.Ellipse, radius float64) (int, error) {
	if err := core.NonNegative("density", "density", density); err != nil {
		return 0, err
	}
	if !(radius > 0) || !core.Finite(radius) {
		return 0, &core.ConfigError{Op: "density", Key: "agent radius", Err: core.ErrInvalid}
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	n := density * e.Area() / (math.Pi * radius * radius)
	if !(n < maxAgents) {
		return 0, &core.ConfigError{Op: "density", Key: "density", Err: fmt.Errorf("%w: %g agents exceeds %d", core.ErrInvalid, n, maxAgents)}
	}
	return int(n), nil
}

// OnOrOutside reports whether a grid point belongs to the confinement ring.
// Points exactly on the contour count as outside.
func OnOrOutside(e core.Ellipse, p core.Vec3) bool {
	return e.Level(p.X, p.Y) >= 1
}

// GridPoints yields a regular grid over the ellipse's bounding box inflated
// by margin spacings on every side. The half-extent is truncated to a whole
// number before iterating, columns run over x and rows over y. A grid
// with a non-finite extent or spacing is empty.
func GridPoints(e core.Ellipse, spacing, margin float64) iter.Seq[core.Vec3] {
	halfW := math.Trunc(e.RX + margin*spacing)
	halfH := math.Trunc(e.RY + margin*spacing)
	return func(yield func(core.Vec3) bool) {
		if !(spacing > 0) || !core.Finite(spacing) || !core.Finite(halfW) || !core.Finite(halfH) {
			return
		}
		for i := 0; ; i++ {
			x := -halfW + float64(i)*spacing
			if x >= halfW {
				return
			}
			for j := 0; ; j++ {
				y := -halfH + float64(j)*spacing
				if y >= halfH {
					break
				}
				if !yield(core.Vec3{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// RingPoints yields the grid points on or outside the ellipse. Adjacent
// points are one spacing apart, so with spacing equal to the confinement
// agent diameter the ring has no gap wider than one agent.
func RingPoints(e core.Ellipse, spacing, margin float64) iter.Seq[core.Vec3] {
	return func(yield func(core.Vec3) bool) {
		for p := range GridPoints(e, spacing, margin) {
			if OnOrOutside(e, p) && !yield(p) {
				return
			}
		}
	}
}
