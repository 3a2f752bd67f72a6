// Package scenario holds the registry of simulation scenarios and the
// startup pipeline that turns a scenario plus named parameters into a
// populated reference world.
package scenario

import (
	"log/slog"
	"slices"

	"cellscape/internal/engine"
	"cellscape/internal/params"
	"cellscape/internal/phenotype"
	"cellscape/internal/render"
	"cellscape/internal/tissue"
)

// Scenario configures agent types and the initial layout of one model.
type Scenario interface {
	Name() string
	// DefaultParams returns a complete parameter set for the scenario.
	DefaultParams() *params.Set
	// Microenvironment returns the density registry options.
	Microenvironment(p engine.Params, log *slog.Logger) (engine.Options, error)
	// Configure builds and registers every agent type.
	Configure(env engine.Microenvironment, p engine.Params, log *slog.Logger) (*phenotype.Catalog, error)
	// Layout describes where agents go.
	Layout(cat *phenotype.Catalog, p engine.Params) (tissue.Layout, error)
	// Color maps a type id to its display colors.
	Color(typeID int) render.ColorPair
}

// Factory constructs a Scenario.
type Factory func() Scenario

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Scenarios exposes the registry of available scenario factories.
func Scenarios() map[string]Factory {
	return scenarios
}

// Names lists registered scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
