package motility

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellscape/internal/core"
	"cellscape/internal/params"
	"cellscape/internal/phenotype"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
)

func setup(t *testing.T, log *slog.Logger, overrides ...string) *scenario.Run {
	t.Helper()
	if log == nil {
		log = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	}
	p := Scenario{}.DefaultParams()
	for _, kv := range overrides {
		require.NoError(t, p.Override(kv))
	}
	run, err := scenario.Setup(Scenario{}, p, log)
	require.NoError(t, err)
	return run
}

func rate(t *testing.T, c phenotype.Cycle, from, to string) float64 {
	t.Helper()
	i, err := c.FindPhaseIndex(from)
	require.NoError(t, err)
	j, err := c.FindPhaseIndex(to)
	require.NoError(t, err)
	r, err := c.TransitionRate(i, j)
	require.NoError(t, err)
	return r
}

func apoptosisRate(t *testing.T, d phenotype.Death) float64 {
	t.Helper()
	i, err := d.FindModelIndex(phenotype.DeathApoptosis)
	require.NoError(t, err)
	r, err := d.Rate(i)
	require.NoError(t, err)
	return r
}

func TestTumorAndPassiveTypes(t *testing.T) {
	run := setup(t, nil)
	require.Equal(t, 4, run.Catalog.Len())

	tumor, ok := run.Catalog.ByType(TypeTumor)
	require.True(t, ok)
	assert.Equal(t, "tumor cell", tumor.Name)
	assert.Equal(t, phenotype.CycleFlowCytometrySeparated, tumor.Phenotype.Cycle.Model)
	assert.Equal(t, updatePhenotypeO2, tumor.Functions.UpdatePhenotype)
	assert.Equal(t, []float64{10}, tumor.Phenotype.Secretion.UptakeRates)
	assert.Equal(t, []float64{38}, tumor.Phenotype.Secretion.SaturationDensities)
	assert.Equal(t, phenotype.DefaultApoptosisRate, apoptosisRate(t, tumor.Phenotype.Death))
	assert.Equal(t, 0.00335, rate(t, tumor.Phenotype.Cycle, phenotype.PhaseG0G1, phenotype.PhaseS))

	passive, _ := run.Catalog.ByType(TypePassive)
	pp := passive.Phenotype
	assert.False(t, pp.Motility.IsMotile)
	assert.Zero(t, pp.Mechanics.CellCellAdhesionStrength)
	assert.Equal(t, 10.0, pp.Mechanics.CellCellRepulsionStrength)
	assert.Equal(t, 10.0, pp.Geometry.Radius)
	assert.Equal(t, []float64{0}, pp.Secretion.UptakeRates)
	assert.Zero(t, apoptosisRate(t, pp.Death))
	assert.Zero(t, rate(t, pp.Cycle, phenotype.PhaseG0G1, phenotype.PhaseS))
	assert.Equal(t, 0.00208, rate(t, pp.Cycle, phenotype.PhaseS, phenotype.PhaseG2))
}

func TestMotileTypesFollowTheirParameters(t *testing.T) {
	run := setup(t, nil,
		"motile_cell_2_radius=6",
		"motile_cell_2_persistence_time=5",
		"motile_cell_2_migration_bias=0.75",
		"motile_cell_2_relative_adhesion=2",
		"motile_cell_2_apoptosis_rate=0.001",
		"motile_cell_2_relative_cycle_entry_rate=2",
	)

	m1, _ := run.Catalog.ByType(TypeMotile1)
	p1 := m1.Phenotype
	assert.Equal(t, "motile cell 1", m1.Name)
	assert.True(t, p1.Motility.IsMotile)
	assert.Equal(t, phenotype.DefaultRadius, p1.Geometry.Radius)
	assert.Equal(t, 15.0, p1.Motility.PersistenceTime)
	assert.Equal(t, 0.25, p1.Motility.MigrationSpeed)
	assert.Zero(t, p1.Motility.MigrationBias)
	assert.InDelta(t, 0.4*0.05, p1.Mechanics.CellCellAdhesionStrength, 1e-12)
	assert.Zero(t, apoptosisRate(t, p1.Death))
	assert.Zero(t, rate(t, p1.Cycle, phenotype.PhaseG0G1, phenotype.PhaseS))

	m2, _ := run.Catalog.ByType(TypeMotile2)
	p2 := m2.Phenotype
	assert.Equal(t, 6.0, p2.Geometry.Radius)
	assert.Equal(t, 5.0, p2.Motility.PersistenceTime)
	assert.Equal(t, 0.5, p2.Motility.MigrationSpeed)
	assert.Equal(t, 0.75, p2.Motility.MigrationBias)
	assert.InDelta(t, 0.8, p2.Mechanics.CellCellAdhesionStrength, 1e-12)
	assert.Equal(t, 0.001, apoptosisRate(t, p2.Death))
	assert.InDelta(t, 0.0067, rate(t, p2.Cycle, phenotype.PhaseG0G1, phenotype.PhaseS), 1e-12)

	assert.Equal(t, p1.Secretion, p2.Secretion, "untouched fields follow the base")
}

func TestDensityLayout(t *testing.T) {
	run := setup(t, nil)

	// 0.3 * pi*400*100 / (pi*r^2) with the default radius.
	assert.Equal(t, 169, run.Result.Counts["motile cell 1"])
	assert.Equal(t, 169, run.Result.Counts["motile cell 2"])
	assert.Zero(t, run.Result.Counts["tumor cell"])
	assert.Positive(t, run.Result.Counts["passive cell"])
	assert.Empty(t, run.Result.Warnings)

	e := core.Ellipse{RX: 400, RY: 100}
	for _, c := range run.World.Cells() {
		inside := e.Contains(c.Position.X, c.Position.Y)
		assert.Equal(t, c.Template().Type != TypePassive, inside)
		assert.Equal(t, c.Template().Type != TypePassive, c.Movable)
	}
}

func TestOverlappingDensitiesWarnButProceed(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	run := setup(t, log, "motile_cell_1_density=0.6", "motile_cell_2_density=0.6")

	require.Len(t, run.Result.Warnings, 1)
	assert.InDelta(t, 1.2, run.Result.Warnings[0].Total, 1e-12)
	assert.Contains(t, buf.String(), "interior agents may overlap")
	assert.Equal(t, 339, run.Result.Counts["motile cell 1"])
}

func TestZeroDensityPlacesNoInterior(t *testing.T) {
	run := setup(t, nil, "motile_cell_1_density=0", "motile_cell_2_density=0")
	for _, c := range run.World.Cells() {
		assert.Equal(t, TypePassive, c.Template().Type)
	}
}

func TestMissingMotileParameter(t *testing.T) {
	defaults := Scenario{}.DefaultParams()
	p := params.New()
	for _, k := range defaults.Keys() {
		if k == "motile_cell_2_migration_speed" || k == "random_seed" {
			continue
		}
		v, err := defaults.Doubles(k)
		require.NoError(t, err)
		p.SetDouble(k, v)
	}
	p.SetInt("random_seed", 0)

	_, err := scenario.Setup(Scenario{}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.ErrorIs(t, err, core.ErrMissing)
	assert.ErrorContains(t, err, "motile_cell_2_migration_speed")
}

func TestColors(t *testing.T) {
	s := Scenario{}
	assert.Equal(t, render.Solid("grey"), s.Color(TypePassive))
	assert.Equal(t, render.Solid("blue"), s.Color(TypeMotile1))
	assert.Equal(t, render.Solid("red"), s.Color(TypeMotile2))
	assert.Equal(t, render.DefaultPair, s.Color(TypeTumor))
}
