package phenotype

import (
	"slices"

	"cellscape/internal/core"
)

// Death model names known to the engine.
const (
	DeathApoptosis = "Apoptosis"
	DeathNecrosis  = "Necrosis"
)

// DeathModel pairs a model name with its rate (1/min).
type DeathModel struct {
	Name string
	Rate float64
}

// Death lists the death models an agent type can enter.
type Death struct {
	Models []DeathModel
}

func (d Death) clone() Death { return Death{Models: slices.Clone(d.Models)} }

// FindModelIndex returns the index of the named death model.
func (d *Death) FindModelIndex(name string) (int, error) {
	for i, m := range d.Models {
		if m.Name == name {
			return i, nil
		}
	}
	return -1, &core.ConfigError{Op: "death model", Key: name, Err: core.ErrNotFound}
}

// Rate returns the rate of the model at index.
func (d *Death) Rate(index int) (float64, error) {
	if index < 0 || index >= len(d.Models) {
		return 0, &core.ConfigError{Op: "death model index", Key: itoa(index), Err: core.ErrNotFound}
	}
	return d.Models[index].Rate, nil
}

// SetRate overrides the rate of the model at index.
func (d *Death) SetRate(index int, rate float64) error {
	if index < 0 || index >= len(d.Models) {
		return &core.ConfigError{Op: "death model index", Key: itoa(index), Err: core.ErrNotFound}
	}
	if err := core.NonNegative("death rate", d.Models[index].Name, rate); err != nil {
		return err
	}
	d.Models[index].Rate = rate
	return nil
}
