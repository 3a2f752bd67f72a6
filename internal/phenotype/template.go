package phenotype

import (
	"reflect"

	"cellscape/internal/core"
)

// Orientation selects how the engine orients a new agent's polarity axis.
type Orientation int

const (
	OrientationNone Orientation = iota
	// OrientationUp points every agent along +z, as 2-D runs require.
	OrientationUp
)

// ConfinementFunc computes an agent's distance to a boundary and the
// displacement the mechanics engine should apply. It must only read pos.
type ConfinementFunc func(pos core.Vec3) (distance float64, displacement core.Vec3)

// Functions are the behavior hooks the engine invokes for a type.
type Functions struct {
	CycleModel      string
	UpdatePhenotype string
	Orientation     Orientation
	Confinement     ConfinementFunc
}

// Template is a named agent type. Reference is the snapshot the engine
// compares live phenotypes against; it is taken from the template's own
// phenotype by SyncToEngine.
type Template struct {
	Type      int
	Name      string
	Phenotype Phenotype
	Functions Functions
	Reference *Phenotype
}

// Derive returns a deep copy of t under a new identity. The copy has no
// reference snapshot until it is synced.
func (t *Template) Derive(typeID int, name string) *Template {
	return &Template{
		Type:      typeID,
		Name:      name,
		Phenotype: t.Phenotype.Clone(),
		Functions: t.Functions,
	}
}

// SyncToEngine makes the template self-consistent with the microenvironment
// and its function hooks, then snapshots its phenotype as the reference.
// It must run after the last field override.
func (t *Template) SyncToEngine(d Densities) error {
	t.Phenotype.Secretion.SyncToMicroenvironment(d)
	t.Phenotype.Molecular.SyncToMicroenvironment(d)
	if t.Phenotype.Cycle.Model != t.Functions.CycleModel {
		c, err := StandardCycle(t.Functions.CycleModel)
		if err != nil {
			return err
		}
		t.Phenotype.Cycle = c
	}
	ref := t.Phenotype.Clone()
	t.Reference = &ref
	return nil
}

// Drifted reports whether p differs from the reference snapshot.
func (t *Template) Drifted(p Phenotype) bool {
	if t.Reference == nil {
		return true
	}
	return !reflect.DeepEqual(*t.Reference, p)
}

// Confined reports whether the type opts into boundary confinement.
func (t *Template) Confined() bool { return t.Functions.Confinement != nil }
