package chemotaxis

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellscape/internal/core"
	"cellscape/internal/phenotype"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
)

func setup(t *testing.T, overrides ...string) *scenario.Run {
	t.Helper()
	p := Scenario{}.DefaultParams()
	for _, kv := range overrides {
		require.NoError(t, p.Override(kv))
	}
	run, err := scenario.Setup(Scenario{}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	return run
}

func TestDefaultLayoutCounts(t *testing.T) {
	run := setup(t)

	assert.Equal(t, 10, run.Result.Counts["secrete and sense cell"])
	assert.Equal(t, 190, run.Result.Counts["motile cell"])
	assert.Positive(t, run.Result.Counts["passive cell"])
	assert.Empty(t, run.Result.Warnings)

	e := core.Ellipse{RX: 400, RY: 100}
	for _, c := range run.World.Cells() {
		if c.Template().Type == TypePassive {
			assert.False(t, c.Movable)
			assert.False(t, e.Contains(c.Position.X, c.Position.Y))
			continue
		}
		assert.True(t, c.Movable)
		assert.True(t, e.Contains(c.Position.X, c.Position.Y))
	}
}

func TestShareOfRoundsUp(t *testing.T) {
	assert.Equal(t, 10, shareOf(200, secretingFraction))
	assert.Equal(t, 190, shareOf(200, motileFraction))
	assert.Equal(t, 1, shareOf(1, secretingFraction))
	assert.Equal(t, 0, shareOf(0, motileFraction))
}

func TestConfiguredTypes(t *testing.T) {
	run := setup(t)
	require.Equal(t, 3, run.Catalog.Len())

	base, ok := run.Catalog.ByType(TypeSecreteAndSense)
	require.True(t, ok)
	bp := base.Phenotype
	assert.Equal(t, []float64{10}, bp.Secretion.SecretionRates)
	assert.Equal(t, []float64{0.1}, bp.Secretion.UptakeRates)
	assert.Equal(t, []float64{38}, bp.Secretion.SaturationDensities)
	assert.True(t, bp.Motility.Chemotaxis.Enabled)
	assert.Equal(t, 1.0, bp.Motility.MigrationSpeed)
	assert.Equal(t, phenotype.OrientationUp, base.Functions.Orientation)
	apoptosis, err := bp.Death.FindModelIndex(phenotype.DeathApoptosis)
	require.NoError(t, err)
	rate, err := bp.Death.Rate(apoptosis)
	require.NoError(t, err)
	assert.Zero(t, rate)

	motile, _ := run.Catalog.ByType(TypeMotile)
	mp := motile.Phenotype
	assert.True(t, mp.Motility.IsMotile)
	assert.Equal(t, 15.0, mp.Motility.PersistenceTime)
	assert.Equal(t, 0.25, mp.Motility.MigrationSpeed)
	assert.Zero(t, mp.Motility.MigrationBias)
	assert.Equal(t, bp.Secretion, mp.Secretion, "untouched fields follow the base")

	passive, _ := run.Catalog.ByType(TypePassive)
	pp := passive.Phenotype
	assert.False(t, pp.Motility.IsMotile)
	assert.Zero(t, pp.Mechanics.CellCellAdhesionStrength)
	assert.Equal(t, 50.0, pp.Mechanics.CellCellRepulsionStrength)
	assert.Equal(t, 10.0, pp.Geometry.Radius)
	assert.Equal(t, []float64{0}, pp.Secretion.SecretionRates)
	assert.Equal(t, []float64{0}, pp.Secretion.UptakeRates)
	live, err := pp.Cycle.TransitionRate(0, 0)
	require.NoError(t, err)
	assert.Zero(t, live)

	for _, tpl := range run.Catalog.Templates() {
		assert.False(t, tpl.Confined(), tpl.Name)
		assert.False(t, tpl.Drifted(tpl.Phenotype), tpl.Name)
	}
}

func TestMembraneConfinesMotileTypes(t *testing.T) {
	run := setup(t, "membrane_enabled=true", "membrane_x=300", "membrane_y=80")

	base, _ := run.Catalog.ByType(TypeSecreteAndSense)
	motile, _ := run.Catalog.ByType(TypeMotile)
	passive, _ := run.Catalog.ByType(TypePassive)
	assert.True(t, base.Confined())
	assert.True(t, motile.Confined())
	assert.False(t, passive.Confined())
	assert.Equal(t, 50.0, base.Phenotype.Mechanics.CellBMRepulsionStrength)

	d, disp := motile.Functions.Confinement(core.Vec3{})
	assert.Equal(t, 300.0, d)
	assert.Zero(t, disp.Norm())
}

func TestMembraneRejectsDegenerateWalls(t *testing.T) {
	p := Scenario{}.DefaultParams()
	require.NoError(t, p.Override("membrane_enabled=true"))
	require.NoError(t, p.Override("membrane_y=0"))
	_, err := scenario.Setup(Scenario{}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.ErrorIs(t, err, core.ErrInvalid)
}

func TestNegativeCountAborts(t *testing.T) {
	p := Scenario{}.DefaultParams()
	require.NoError(t, p.Override("total_cells=-5"))
	_, err := scenario.Setup(Scenario{}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.ErrorIs(t, err, core.ErrInvalid)
}

func TestSameSeedSameLayout(t *testing.T) {
	a := setup(t, "random_seed=42")
	b := setup(t, "random_seed=42")
	c := setup(t, "random_seed=43")

	require.Equal(t, len(a.World.Cells()), len(b.World.Cells()))
	same, differs := true, false
	for i, ca := range a.World.Cells() {
		same = same && ca.Position == b.World.Cells()[i].Position
		differs = differs || ca.Position != c.World.Cells()[i].Position
	}
	assert.True(t, same)
	assert.True(t, differs)
}

func TestColors(t *testing.T) {
	s := Scenario{}
	assert.Equal(t, render.Solid("grey"), s.Color(TypePassive))
	assert.Equal(t, render.Solid("blue"), s.Color(TypeMotile))
	assert.Equal(t, render.Solid("red"), s.Color(TypeSecreteAndSense))
	assert.Equal(t, render.DefaultPair, s.Color(99))
}

func TestNonFiniteGeometryAborts(t *testing.T) {
	for _, kv := range []string{"geom_x=inf", "geom_y=+Inf", "passive_cell_radius=inf"} {
		p := Scenario{}.DefaultParams()
		require.NoError(t, p.Override(kv))
		_, err := scenario.Setup(Scenario{}, p, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		assert.ErrorIs(t, err, core.ErrInvalid, kv)
	}
}
