package core

import "math"

// Vec3 is a position or displacement in simulation space (microns).
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Norm() }

// Ellipse is an axis-aligned ellipse centered at the origin of the x-y plane.
type Ellipse struct {
	RX float64
	RY float64
}

// Validate reports a configuration error unless both radii are positive
// and finite.
func (e Ellipse) Validate() error {
	if !Finite(e.RX) || !(e.RX > 0) {
		return &ConfigError{Op: "ellipse", Key: "x radius", Err: ErrInvalid}
	}
	if !Finite(e.RY) || !(e.RY > 0) {
		return &ConfigError{Op: "ellipse", Key: "y radius", Err: ErrInvalid}
	}
	return nil
}

// Area returns πab.
func (e Ellipse) Area() float64 { return math.Pi * e.RX * e.RY }

// Level evaluates x²/a² + y²/b² for the point. Values below one are inside.
func (e Ellipse) Level(x, y float64) float64 {
	return x*x/(e.RX*e.RX) + y*y/(e.RY*e.RY)
}

// Contains reports whether (x, y) lies strictly inside the ellipse.
func (e Ellipse) Contains(x, y float64) bool { return e.Level(x, y) < 1 }
