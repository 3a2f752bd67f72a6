package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotFound marks a lookup of a named field, model, phase or template
	// that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid marks a value outside its allowed range.
	ErrInvalid = errors.New("invalid value")
	// ErrDuplicate marks a repeated type id or name.
	ErrDuplicate = errors.New("duplicate")
	// ErrMissing marks a required named parameter that was not supplied.
	ErrMissing = errors.New("missing parameter")
	// ErrType marks a named parameter stored with a different type.
	ErrType = errors.New("wrong parameter type")
)

// ConfigError is returned for every startup configuration failure. None of
// them are recoverable; callers abort before the first simulation step.
type ConfigError struct {
	Op  string
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configuration: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("configuration: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Finite reports whether v is neither infinite nor NaN.
func Finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// NonNegative returns a ConfigError unless v is finite and not negative.
func NonNegative(op, key string, v float64) error {
	if v >= 0 && Finite(v) {
		return nil
	}
	return &ConfigError{Op: op, Key: key, Err: fmt.Errorf("%w: %v must be in [0, inf)", ErrInvalid, v)}
}
