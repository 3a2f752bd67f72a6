// Package chemotaxis configures the secrete-and-sense scenario: a few
// chemokine-secreting cells and many randomly motile cells seeded inside an
// ellipse and fenced in by a ring of passive cells.
package chemotaxis

import (
	"log/slog"
	"math"

	"cellscape/internal/core"
	"cellscape/internal/engine"
	"cellscape/internal/membrane"
	"cellscape/internal/params"
	"cellscape/internal/phenotype"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
	"cellscape/internal/tissue"
)

// Name identifies the scenario in the registry.
const Name = "chemotaxis"

// Agent type ids.
const (
	TypeSecreteAndSense = 0
	TypeMotile          = 1
	TypePassive         = 2
)

// Density is the only chemical field of the scenario.
const Density = "chemokine"

const (
	chemokineSaturation = 38.0
	passiveRepulsion    = 50.0
	membraneRepulsion   = 50.0
	secretingFraction   = 0.05
	motileFraction      = 0.95
)

// Scenario implements scenario.Scenario.
type Scenario struct{}

// Name returns the scenario identifier.
func (Scenario) Name() string { return Name }

// DefaultParams returns the stock parameter set.
func (Scenario) DefaultParams() *params.Set {
	return params.New().
		SetInt("random_seed", 0).
		SetDouble("chemokine_secretion_rate", 10).
		SetDouble("chemokine_uptake_rate", 0.1).
		SetDouble("chemokine_cell_migration_speed", 1).
		SetDouble("motile_cell_persistence_time", 15).
		SetDouble("motile_cell_migration_speed", 0.25).
		SetDouble("passive_cell_radius", 10).
		SetDouble("geom_x", 400).
		SetDouble("geom_y", 100).
		SetInt("total_cells", 200).
		SetBool("membrane_enabled", false).
		SetDouble("membrane_x", membrane.DefaultRX).
		SetDouble("membrane_y", membrane.DefaultRY)
}

// Microenvironment forces a 2-D domain with a single chemokine field.
func (Scenario) Microenvironment(p engine.Params, log *slog.Logger) (engine.Options, error) {
	return scenario.Options2D(p, log, Density)
}

// Configure builds the three agent types.
func (Scenario) Configure(env engine.Microenvironment, p engine.Params, log *slog.Logger) (*phenotype.Catalog, error) {
	r := scenario.Reader{P: p}
	uptake := r.Double("chemokine_uptake_rate")
	secretion := r.Double("chemokine_secretion_rate")
	chemoSpeed := r.Double("chemokine_cell_migration_speed")
	persistence := r.Double("motile_cell_persistence_time")
	motileSpeed := r.Double("motile_cell_migration_speed")
	passiveRadius := r.Double("passive_cell_radius")
	confined := r.OptionalBool("membrane_enabled", false)
	walls := core.Ellipse{
		RX: r.OptionalDouble("membrane_x", membrane.DefaultRX),
		RY: r.OptionalDouble("membrane_y", membrane.DefaultRY),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	base := phenotype.Defaults(env)
	base.Type = TypeSecreteAndSense
	base.Name = "secrete and sense cell"
	base.Functions.CycleModel = phenotype.CycleLive
	base.Functions.Orientation = phenotype.OrientationUp
	ph := &base.Phenotype
	ph.Geometry.Polarity = 1
	ph.Motility.RestrictTo2D = true
	ph.Motility.IsMotile = true
	if err := base.SyncToEngine(env); err != nil {
		return nil, err
	}

	apoptosis, err := ph.Death.FindModelIndex(phenotype.DeathApoptosis)
	if err != nil {
		return nil, err
	}
	if err := ph.Death.SetRate(apoptosis, 0); err != nil {
		return nil, err
	}
	chemokine, err := env.FindDensityIndex(Density)
	if err != nil {
		return nil, err
	}
	if err := ph.Secretion.SetRates(chemokine, secretion, uptake, chemokineSaturation); err != nil {
		return nil, err
	}
	ph.Motility.Chemotaxis = phenotype.Chemotaxis{Enabled: true, Index: chemokine, Direction: 1}
	ph.Motility.MigrationSpeed = chemoSpeed
	if confined {
		if err := walls.Validate(); err != nil {
			return nil, err
		}
		base.Functions.Confinement = membrane.Callback(walls)
		ph.Mechanics.CellBMRepulsionStrength = membraneRepulsion
	}

	motile := base.Derive(TypeMotile, "motile cell")
	motile.Phenotype.Motility.IsMotile = true
	motile.Phenotype.Motility.PersistenceTime = persistence
	motile.Phenotype.Motility.MigrationSpeed = motileSpeed
	motile.Phenotype.Motility.MigrationBias = 0

	passive := base.Derive(TypePassive, "passive cell")
	passive.Functions.Confinement = nil
	pp := &passive.Phenotype
	pp.Motility.IsMotile = false
	pp.Mechanics.CellCellAdhesionStrength *= 0
	pp.Mechanics.CellCellRepulsionStrength = passiveRepulsion
	pp.Geometry.Radius = passiveRadius
	if err := pp.Secretion.SetRates(chemokine, 0, 0, chemokineSaturation); err != nil {
		return nil, err
	}
	if err := pp.Cycle.SetTransitionRate(0, 0, 0); err != nil {
		return nil, err
	}

	cat := phenotype.NewCatalog()
	for _, t := range []*phenotype.Template{base, motile, passive} {
		if err := t.SyncToEngine(env); err != nil {
			return nil, err
		}
		if err := cat.Add(t); err != nil {
			return nil, err
		}
	}
	log.Debug("chemotaxis types configured", "membrane", confined, "chemokine_index", chemokine)
	return cat, nil
}

// Layout seeds total_cells agents, 5% secreting and 95% motile, inside the
// geom_x × geom_y ellipse, ringed by passive cells.
func (Scenario) Layout(cat *phenotype.Catalog, p engine.Params) (tissue.Layout, error) {
	r := scenario.Reader{P: p}
	e := core.Ellipse{RX: r.Double("geom_x"), RY: r.Double("geom_y")}
	total := r.Int("total_cells")
	if err := r.Err(); err != nil {
		return tissue.Layout{}, err
	}
	if err := e.Validate(); err != nil {
		return tissue.Layout{}, err
	}
	base, _ := cat.ByType(TypeSecreteAndSense)
	motile, _ := cat.ByType(TypeMotile)
	passive, _ := cat.ByType(TypePassive)
	if base == nil || motile == nil || passive == nil {
		return tissue.Layout{}, &core.ConfigError{Op: "layout", Key: Name, Err: core.ErrNotFound}
	}
	return tissue.Layout{
		Ellipse:    e,
		Boundary:   passive.Name,
		RingMargin: tissue.DefaultRingMargin,
		Groups: []tissue.Group{
			{Template: base.Name, Count: shareOf(total, secretingFraction)},
			{Template: motile.Name, Count: shareOf(total, motileFraction)},
		},
	}, nil
}

// shareOf counts loop iterations i < total*fraction.
func shareOf(total int, fraction float64) int {
	return int(math.Ceil(float64(total) * fraction))
}

// Color paints passive cells grey, motile cells blue and secreting cells red.
func (Scenario) Color(typeID int) render.ColorPair {
	switch typeID {
	case TypePassive:
		return render.Solid("grey")
	case TypeMotile:
		return render.Solid("blue")
	case TypeSecreteAndSense:
		return render.Solid("red")
	}
	return render.DefaultPair
}

func init() {
	scenario.Register(Name, func() scenario.Scenario { return Scenario{} })
}
