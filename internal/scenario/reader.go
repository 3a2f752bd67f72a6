package scenario

import (
	"log/slog"

	"cellscape/internal/core"
	"cellscape/internal/engine"
)

// Reader reads named parameters and keeps the first failure, so a
// configurator can read a block of values and check once.
type Reader struct {
	P   engine.Params
	err error
}

// Double reads a non-negative floating-point parameter.
func (r *Reader) Double(name string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := r.P.Doubles(name)
	if err == nil {
		err = core.NonNegative("parameter", name, v)
	}
	r.err = err
	return v
}

// Int reads a non-negative integer parameter.
func (r *Reader) Int(name string) int {
	if r.err != nil {
		return 0
	}
	v, err := r.P.Ints(name)
	if err == nil {
		err = core.NonNegative("parameter", name, float64(v))
	}
	r.err = err
	return v
}

// OptionalBool reads a boolean parameter, returning def when absent.
func (r *Reader) OptionalBool(name string, def bool) bool {
	if r.err != nil || !r.P.Has(name) {
		return def
	}
	v, err := r.P.Bools(name)
	r.err = err
	return v
}

// OptionalDouble reads a non-negative parameter, returning def when absent.
func (r *Reader) OptionalDouble(name string, def float64) float64 {
	if r.err != nil || !r.P.Has(name) {
		return def
	}
	return r.Double(name)
}

// Err returns the first failure.
func (r *Reader) Err() error { return r.err }

// Options2D builds microenvironment options for a two-dimensional model.
// An explicit simulate_2D=false is overridden with a warning.
func Options2D(p engine.Params, log *slog.Logger, densities ...string) (engine.Options, error) {
	r := Reader{P: p}
	if !r.OptionalBool("simulate_2D", true) {
		log.Warn("overriding configuration and setting simulation to 2D")
	}
	if err := r.Err(); err != nil {
		return engine.Options{}, err
	}
	return engine.Options{Simulate2D: true, Densities: densities}, nil
}
