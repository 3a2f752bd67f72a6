// Package membrane implements elliptical basement-membrane confinement.
package membrane

import (
	"math"

	"cellscape/internal/core"
	"cellscape/internal/engine"
)

// Epsilon bounds the origin distance used to normalize the displacement.
const Epsilon = 1e-7

// Default membrane radii.
const (
	DefaultRX = 400.0
	DefaultRY = 100.0
)

// Confine returns the approximate distance from pos to the contour of an
// origin-centered ellipse and a unit displacement pointing from pos toward
// the origin. The boundary point is taken at parametric angle
// atan2(a*x, b*y), which is not the exact nearest point. The displacement
// is applied on every call regardless of distance; the mechanics engine
// scales it by the membrane repulsion strength.
func Confine(e core.Ellipse, pos core.Vec3) (float64, core.Vec3) {
	t := math.Atan2(e.RX*pos.X, e.RY*pos.Y)
	boundary := core.Vec3{X: e.RX * math.Cos(t), Y: e.RY * math.Sin(t)}
	d := pos.Dist(boundary)

	r := math.Max(pos.Norm(), Epsilon)
	return d, core.Vec3{X: -pos.X / r, Y: -pos.Y / r}
}

// Callback binds Confine to a fixed ellipse for registration on a template.
func Callback(e core.Ellipse) engine.ConfinementFunc {
	return func(pos core.Vec3) (float64, core.Vec3) {
		return Confine(e, pos)
	}
}
