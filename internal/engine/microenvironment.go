package engine

import (
	"slices"

	"cellscape/internal/core"
)

// Options configures the reference microenvironment.
type Options struct {
	Simulate2D bool
	Densities  []string
}

// Microenv is an in-memory chemical-field registry. It only names the
// fields; concentrations belong to the diffusion solver.
type Microenv struct {
	opts Options
}

// NewMicroenvironment builds a registry with the given density names.
func NewMicroenvironment(opts Options) (*Microenv, error) {
	seen := make(map[string]bool, len(opts.Densities))
	for _, name := range opts.Densities {
		if name == "" {
			return nil, &core.ConfigError{Op: "density", Err: core.ErrInvalid}
		}
		if seen[name] {
			return nil, &core.ConfigError{Op: "density", Key: name, Err: core.ErrDuplicate}
		}
		seen[name] = true
	}
	opts.Densities = slices.Clone(opts.Densities)
	return &Microenv{opts: opts}, nil
}

// FindDensityIndex returns the index of a named density.
func (m *Microenv) FindDensityIndex(name string) (int, error) {
	if i := slices.Index(m.opts.Densities, name); i >= 0 {
		return i, nil
	}
	return -1, &core.ConfigError{Op: "density", Key: name, Err: core.ErrNotFound}
}

// NumDensities returns the number of registered densities.
func (m *Microenv) NumDensities() int { return len(m.opts.Densities) }

// Simulate2D reports whether the domain is two-dimensional.
func (m *Microenv) Simulate2D() bool { return m.opts.Simulate2D }
