package phenotype

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"cellscape/internal/core"
)

// Catalog is the registry of configured agent types for one run. It replaces
// package-level template variables: the configurator returns it and the
// initializer and coloring functions receive it explicitly.
type Catalog struct {
	byName map[string]*Template
	byType map[int]*Template
	order  []*Template
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: map[string]*Template{}, byType: map[int]*Template{}}
}

// Add registers t. Type ids and names must be unique and t must already be
// synced to the engine.
func (c *Catalog) Add(t *Template) error {
	if t == nil {
		return &core.ConfigError{Op: "register type", Err: core.ErrInvalid}
	}
	if t.Name == "" {
		return &core.ConfigError{Op: "register type", Key: strconv.Itoa(t.Type), Err: fmt.Errorf("%w: empty name", core.ErrInvalid)}
	}
	if _, ok := c.byType[t.Type]; ok {
		return &core.ConfigError{Op: "register type id", Key: strconv.Itoa(t.Type), Err: core.ErrDuplicate}
	}
	if _, ok := c.byName[t.Name]; ok {
		return &core.ConfigError{Op: "register type name", Key: t.Name, Err: core.ErrDuplicate}
	}
	if t.Reference == nil {
		return &core.ConfigError{Op: "register type", Key: t.Name, Err: fmt.Errorf("%w: not synced to engine", core.ErrInvalid)}
	}
	c.byName[t.Name] = t
	c.byType[t.Type] = t
	i, _ := slices.BinarySearchFunc(c.order, t.Type, func(e *Template, id int) int { return e.Type - id })
	c.order = slices.Insert(c.order, i, t)
	return nil
}

// Lookup returns the template registered under name.
func (c *Catalog) Lookup(name string) (*Template, error) {
	if t, ok := c.byName[name]; ok {
		return t, nil
	}
	return nil, &core.ConfigError{Op: "agent type", Key: name, Err: core.ErrNotFound}
}

// ByType returns the template with the given type id.
func (c *Catalog) ByType(id int) (*Template, bool) {
	t, ok := c.byType[id]
	return t, ok
}

// Templates returns all templates ordered by type id.
func (c *Catalog) Templates() []*Template { return slices.Clone(c.order) }

// Len returns the number of registered templates.
func (c *Catalog) Len() int { return len(c.order) }

// Snapshot describes every template as a parameter group.
func (c *Catalog) Snapshot() core.ParameterSnapshot {
	groups := make([]core.ParameterGroup, 0, len(c.order))
	for _, t := range c.order {
		groups = append(groups, describe(t))
	}
	return core.ParameterSnapshot{Groups: groups}
}

// WriteSummary writes a human-readable listing of every template.
func (c *Catalog) WriteSummary(w io.Writer) error {
	_, err := c.Snapshot().WriteTo(w)
	return err
}

func describe(t *Template) core.ParameterGroup {
	p := t.Phenotype
	params := []core.Parameter{
		core.StringParam("cycle_model", "Cycle model", p.Cycle.Model),
		core.BoolParam("motile", "Motile", p.Motility.IsMotile),
		core.BoolParam("restrict_to_2d", "Restricted to 2-D", p.Motility.RestrictTo2D),
		core.FloatParam("migration_speed", "Migration speed", p.Motility.MigrationSpeed),
		core.FloatParam("persistence_time", "Persistence time", p.Motility.PersistenceTime),
		core.FloatParam("migration_bias", "Migration bias", p.Motility.MigrationBias),
		core.BoolParam("chemotaxis", "Chemotaxis", p.Motility.Chemotaxis.Enabled),
		core.FloatParam("adhesion", "Cell-cell adhesion", p.Mechanics.CellCellAdhesionStrength),
		core.FloatParam("repulsion", "Cell-cell repulsion", p.Mechanics.CellCellRepulsionStrength),
		core.FloatParam("radius", "Radius", p.Geometry.Radius),
		core.BoolParam("confined", "Membrane confinement", t.Confined()),
	}
	for i := range p.Secretion.SecretionRates {
		idx := strconv.Itoa(i)
		params = append(params,
			core.FloatParam("secretion_"+idx, "Secretion rate ["+idx+"]", p.Secretion.SecretionRates[i]),
			core.FloatParam("uptake_"+idx, "Uptake rate ["+idx+"]", p.Secretion.UptakeRates[i]),
			core.FloatParam("saturation_"+idx, "Saturation density ["+idx+"]", p.Secretion.SaturationDensities[i]),
		)
	}
	for _, m := range p.Death.Models {
		params = append(params, core.FloatParam("death_"+m.Name, m.Name+" rate", m.Rate))
	}
	for i, row := range p.Cycle.Rates {
		for j, r := range row {
			if r == 0 {
				continue
			}
			params = append(params, core.FloatParam("transition", p.Cycle.Phases[i]+" -> "+p.Cycle.Phases[j], r))
		}
	}
	return core.ParameterGroup{
		Name:    t.Name,
		Summary: "type " + strconv.Itoa(t.Type),
		Params:  params,
	}
}
