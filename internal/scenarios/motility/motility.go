// Package motility configures the differential-motility scenario: two motile
// populations with independently tuned size, speed, persistence, adhesion
// and proliferation, seeded by area density inside an ellipse of passive
// cells.
package motility

import (
	"fmt"
	"log/slog"

	"cellscape/internal/core"
	"cellscape/internal/engine"
	"cellscape/internal/params"
	"cellscape/internal/phenotype"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
	"cellscape/internal/tissue"
)

// Name identifies the scenario in the registry.
const Name = "differential_motility"

// Agent type ids.
const (
	TypePassive = 0
	TypeMotile1 = 1
	TypeMotile2 = 2
	TypeTumor   = 3
)

// Density is the only chemical field of the scenario.
const Density = "oxygen"

const (
	oxygenUptake      = 10.0
	oxygenSaturation  = 38.0
	passiveRepulsion  = 10.0
	passiveRadius     = 10.0
	updatePhenotypeO2 = "update_cell_and_death_parameters_O2_based"
)

// Scenario implements scenario.Scenario.
type Scenario struct{}

// Name returns the scenario identifier.
func (Scenario) Name() string { return Name }

// DefaultParams returns the stock parameter set.
func (Scenario) DefaultParams() *params.Set {
	p := params.New().
		SetInt("random_seed", 0).
		SetDouble("x_rad", 400).
		SetDouble("y_rad", 100)
	for k, speed := range map[int]float64{1: 0.25, 2: 0.5} {
		prefix := fmt.Sprintf("motile_cell_%d_", k)
		p.SetDouble(prefix+"radius", phenotype.DefaultRadius).
			SetDouble(prefix+"persistence_time", 15).
			SetDouble(prefix+"migration_speed", speed).
			SetDouble(prefix+"migration_bias", 0).
			SetDouble(prefix+"relative_adhesion", 0.05).
			SetDouble(prefix+"apoptosis_rate", 0).
			SetDouble(prefix+"relative_cycle_entry_rate", 0).
			SetDouble(prefix+"density", 0.3)
	}
	return p
}

// Microenvironment forces a 2-D domain with a single oxygen field.
func (Scenario) Microenvironment(p engine.Params, log *slog.Logger) (engine.Options, error) {
	return scenario.Options2D(p, log, Density)
}

type motileParams struct {
	radius, persistence, speed, bias float64
	adhesion, apoptosis, cycleEntry  float64
}

func readMotile(r *scenario.Reader, k int) motileParams {
	prefix := fmt.Sprintf("motile_cell_%d_", k)
	return motileParams{
		radius:      r.Double(prefix + "radius"),
		persistence: r.Double(prefix + "persistence_time"),
		speed:       r.Double(prefix + "migration_speed"),
		bias:        r.Double(prefix + "migration_bias"),
		adhesion:    r.Double(prefix + "relative_adhesion"),
		apoptosis:   r.Double(prefix + "apoptosis_rate"),
		cycleEntry:  r.Double(prefix + "relative_cycle_entry_rate"),
	}
}

// Configure builds the tumor base type, the passive ring type and the two
// motile types.
func (Scenario) Configure(env engine.Microenvironment, p engine.Params, log *slog.Logger) (*phenotype.Catalog, error) {
	r := scenario.Reader{P: p}
	m1 := readMotile(&r, 1)
	m2 := readMotile(&r, 2)
	if err := r.Err(); err != nil {
		return nil, err
	}

	base := phenotype.Defaults(env)
	base.Type = TypeTumor
	base.Name = "tumor cell"
	base.Functions.CycleModel = phenotype.CycleFlowCytometrySeparated
	base.Functions.UpdatePhenotype = updatePhenotypeO2
	base.Functions.Orientation = phenotype.OrientationUp
	ph := &base.Phenotype
	ph.Geometry.Polarity = 1
	ph.Motility.RestrictTo2D = true
	if err := base.SyncToEngine(env); err != nil {
		return nil, err
	}

	apoptosis, err := ph.Death.FindModelIndex(phenotype.DeathApoptosis)
	if err != nil {
		return nil, err
	}
	necrosis, err := ph.Death.FindModelIndex(phenotype.DeathNecrosis)
	if err != nil {
		return nil, err
	}
	oxygen, err := env.FindDensityIndex(Density)
	if err != nil {
		return nil, err
	}
	g0g1, err := ph.Cycle.FindPhaseIndex(phenotype.PhaseG0G1)
	if err != nil {
		return nil, err
	}
	s, err := ph.Cycle.FindPhaseIndex(phenotype.PhaseS)
	if err != nil {
		return nil, err
	}

	if err := ph.Death.SetRate(necrosis, 0); err != nil {
		return nil, err
	}
	if err := ph.Secretion.SetRates(oxygen, 0, oxygenUptake, oxygenSaturation); err != nil {
		return nil, err
	}

	passive := base.Derive(TypePassive, "passive cell")
	pp := &passive.Phenotype
	pp.Motility.IsMotile = false
	pp.Mechanics.CellCellAdhesionStrength *= 0
	pp.Mechanics.CellCellRepulsionStrength = passiveRepulsion
	pp.Geometry.Radius = passiveRadius
	if err := pp.Death.SetRate(apoptosis, 0); err != nil {
		return nil, err
	}
	if err := pp.Secretion.SetRates(oxygen, 0, 0, oxygenSaturation); err != nil {
		return nil, err
	}
	if err := pp.Cycle.ScaleTransitionRate(g0g1, s, 0); err != nil {
		return nil, err
	}

	motile1, err := deriveMotile(base, TypeMotile1, "motile cell 1", m1, apoptosis, g0g1, s)
	if err != nil {
		return nil, err
	}
	motile2, err := deriveMotile(base, TypeMotile2, "motile cell 2", m2, apoptosis, g0g1, s)
	if err != nil {
		return nil, err
	}

	cat := phenotype.NewCatalog()
	for _, t := range []*phenotype.Template{passive, motile1, motile2, base} {
		if err := t.SyncToEngine(env); err != nil {
			return nil, err
		}
		if err := cat.Add(t); err != nil {
			return nil, err
		}
	}
	log.Debug("differential motility types configured", "oxygen_index", oxygen)
	return cat, nil
}

func deriveMotile(base *phenotype.Template, id int, name string, m motileParams, apoptosis, g0g1, s int) (*phenotype.Template, error) {
	t := base.Derive(id, name)
	ph := &t.Phenotype
	ph.Geometry.Radius = m.radius
	ph.Motility.IsMotile = true
	ph.Motility.PersistenceTime = m.persistence
	ph.Motility.MigrationSpeed = m.speed
	ph.Motility.MigrationBias = m.bias
	ph.Mechanics.CellCellAdhesionStrength *= m.adhesion
	if err := ph.Death.SetRate(apoptosis, m.apoptosis); err != nil {
		return nil, err
	}
	if err := ph.Cycle.ScaleTransitionRate(g0g1, s, m.cycleEntry); err != nil {
		return nil, err
	}
	return t, nil
}

// Layout seeds both motile types by area density inside the x_rad × y_rad
// ellipse, ringed by passive cells.
func (Scenario) Layout(cat *phenotype.Catalog, p engine.Params) (tissue.Layout, error) {
	r := scenario.Reader{P: p}
	e := core.Ellipse{RX: r.Double("x_rad"), RY: r.Double("y_rad")}
	d1 := r.Double("motile_cell_1_density")
	d2 := r.Double("motile_cell_2_density")
	if err := r.Err(); err != nil {
		return tissue.Layout{}, err
	}
	if err := e.Validate(); err != nil {
		return tissue.Layout{}, err
	}
	passive, _ := cat.ByType(TypePassive)
	m1, _ := cat.ByType(TypeMotile1)
	m2, _ := cat.ByType(TypeMotile2)
	if passive == nil || m1 == nil || m2 == nil {
		return tissue.Layout{}, &core.ConfigError{Op: "layout", Key: Name, Err: core.ErrNotFound}
	}
	return tissue.Layout{
		Ellipse:    e,
		Boundary:   passive.Name,
		RingMargin: tissue.DefaultRingMargin,
		Groups: []tissue.Group{
			{Template: m1.Name, Density: d1, ByDensity: true},
			{Template: m2.Name, Density: d2, ByDensity: true},
		},
	}, nil
}

// Color paints passive cells grey, motile cell 1 blue and motile cell 2 red.
func (Scenario) Color(typeID int) render.ColorPair {
	switch typeID {
	case TypePassive:
		return render.Solid("grey")
	case TypeMotile1:
		return render.Solid("blue")
	case TypeMotile2:
		return render.Solid("red")
	}
	return render.DefaultPair
}

func init() {
	scenario.Register(Name, func() scenario.Scenario { return Scenario{} })
}
