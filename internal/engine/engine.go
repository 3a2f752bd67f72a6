// Package engine declares what this module consumes from the host
// simulation engine and provides a minimal in-memory host used by the CLI,
// the viewer and tests. The reference host places agents and applies
// confinement displacements; it does not integrate forces, diffuse
// substrates or schedule division and death.
package engine

import (
	"cellscape/internal/core"
	"cellscape/internal/phenotype"
)

// Params is the host's named-parameter source. Lookups fail with a
// core.ConfigError wrapping core.ErrMissing or core.ErrType.
type Params interface {
	Doubles(name string) (float64, error)
	Ints(name string) (int, error)
	Strings(name string) (string, error)
	Bools(name string) (bool, error)
	Has(name string) bool
}

// Microenvironment is the host's chemical-field registry.
type Microenvironment interface {
	phenotype.Densities
	FindDensityIndex(name string) (int, error)
}

// Agent is a handle to an agent owned by the host.
type Agent interface {
	ID() int
	Template() *phenotype.Template
	SetPosition(p core.Vec3)
	SetMovable(movable bool)
}

// AgentFactory instantiates agents from templates.
type AgentFactory interface {
	CreateAgent(t *phenotype.Template) Agent
}

// ConfinementFunc is the per-agent mechanics callback signature.
type ConfinementFunc = phenotype.ConfinementFunc
