package phenotype

import (
	"slices"

	"cellscape/internal/core"
)

// Secretion holds per-density secretion, uptake and saturation values.
// All three slices have one entry per microenvironment density.
type Secretion struct {
	SecretionRates      []float64
	UptakeRates         []float64
	SaturationDensities []float64
}

func (s Secretion) clone() Secretion {
	return Secretion{
		SecretionRates:      slices.Clone(s.SecretionRates),
		UptakeRates:         slices.Clone(s.UptakeRates),
		SaturationDensities: slices.Clone(s.SaturationDensities),
	}
}

// SyncToMicroenvironment sizes the per-density slices to the registry,
// keeping existing entries and zero-filling new ones.
func (s *Secretion) SyncToMicroenvironment(d Densities) {
	n := d.NumDensities()
	s.SecretionRates = resize(s.SecretionRates, n)
	s.UptakeRates = resize(s.UptakeRates, n)
	s.SaturationDensities = resize(s.SaturationDensities, n)
}

// SetRates assigns secretion, uptake and saturation for one density.
func (s *Secretion) SetRates(index int, secretion, uptake, saturation float64) error {
	if index < 0 || index >= len(s.SecretionRates) {
		return &core.ConfigError{Op: "secretion index", Key: itoa(index), Err: core.ErrNotFound}
	}
	for _, v := range []struct {
		key string
		val float64
	}{{"secretion rate", secretion}, {"uptake rate", uptake}, {"saturation density", saturation}} {
		if err := core.NonNegative("secretion", v.key, v.val); err != nil {
			return err
		}
	}
	s.SecretionRates[index] = secretion
	s.UptakeRates[index] = uptake
	s.SaturationDensities[index] = saturation
	return nil
}

// SyncToMicroenvironment sizes the internalized totals to the registry.
func (m *Molecular) SyncToMicroenvironment(d Densities) {
	m.InternalizedTotals = resize(m.InternalizedTotals, d.NumDensities())
}
