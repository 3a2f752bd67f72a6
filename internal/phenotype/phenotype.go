// Package phenotype models agent types: the behavioral and mechanical
// parameters an agent receives when the host engine instantiates it.
//
// Every scenario type starts as a deep copy of one base template and
// overrides a subset of fields. Untouched fields keep the base value, so
// derived types stay consistent with the microenvironment the base was synced
// against.
package phenotype

import "slices"

// Chemotaxis configures gradient-biased migration.
type Chemotaxis struct {
	Enabled   bool
	Index     int // density index of the sensed field
	Direction int // +1 up the gradient, -1 down
}

// Motility holds migration parameters.
type Motility struct {
	IsMotile        bool
	RestrictTo2D    bool
	MigrationSpeed  float64 // micron/min
	PersistenceTime float64 // min
	MigrationBias   float64 // 0 random walk, 1 fully biased
	Chemotaxis      Chemotaxis
}

// Mechanics holds contact force strengths.
type Mechanics struct {
	CellCellAdhesionStrength  float64
	CellCellRepulsionStrength float64
	CellBMRepulsionStrength   float64
}

// Geometry holds size and shape.
type Geometry struct {
	Radius   float64
	Polarity float64
}

// Molecular tracks internalized substrate per density.
type Molecular struct {
	InternalizedTotals []float64
}

// Phenotype is the full parameter set assigned to one agent type.
type Phenotype struct {
	Motility  Motility
	Mechanics Mechanics
	Geometry  Geometry
	Secretion Secretion
	Molecular Molecular
	Cycle     Cycle
	Death     Death
}

// Clone returns a deep copy; no slice is shared with p.
func (p Phenotype) Clone() Phenotype {
	out := p
	out.Secretion = p.Secretion.clone()
	out.Molecular.InternalizedTotals = slices.Clone(p.Molecular.InternalizedTotals)
	out.Cycle = p.Cycle.clone()
	out.Death = p.Death.clone()
	return out
}

// Densities is the part of the microenvironment a phenotype syncs against.
type Densities interface {
	NumDensities() int
}

func resize(v []float64, n int) []float64 {
	if len(v) >= n {
		return v[:n]
	}
	return append(v, make([]float64, n-len(v))...)
}
