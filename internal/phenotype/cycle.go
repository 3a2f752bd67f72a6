package phenotype

import (
	"slices"
	"strconv"

	"cellscape/internal/core"
)

// Cycle model names known to the engine.
const (
	CycleLive                   = "live"
	CycleFlowCytometrySeparated = "flow_cytometry_separated"
)

// Phase names used by the standard cycle models.
const (
	PhaseLive = "live"
	PhaseG0G1 = "G0/G1"
	PhaseS    = "S"
	PhaseG2   = "G2"
	PhaseM    = "M"
)

// Cycle is a named cycle model with a square matrix of phase transition
// rates (1/min). Rates[i][j] is the rate from phase i to phase j.
type Cycle struct {
	Model  string
	Phases []string
	Rates  [][]float64
}

func (c Cycle) clone() Cycle {
	out := Cycle{Model: c.Model, Phases: slices.Clone(c.Phases)}
	if c.Rates != nil {
		out.Rates = make([][]float64, len(c.Rates))
		for i, row := range c.Rates {
			out.Rates[i] = slices.Clone(row)
		}
	}
	return out
}

// StandardCycle returns the engine's default parameterization of a model.
func StandardCycle(model string) (Cycle, error) {
	switch model {
	case CycleLive:
		return Cycle{
			Model:  CycleLive,
			Phases: []string{PhaseLive},
			Rates:  [][]float64{{0.0432 / 60.0}},
		}, nil
	case CycleFlowCytometrySeparated:
		c := Cycle{
			Model:  CycleFlowCytometrySeparated,
			Phases: []string{PhaseG0G1, PhaseS, PhaseG2, PhaseM},
			Rates:  make([][]float64, 4),
		}
		for i := range c.Rates {
			c.Rates[i] = make([]float64, 4)
		}
		c.Rates[0][1] = 0.00335
		c.Rates[1][2] = 0.00208
		c.Rates[2][3] = 0.00417
		c.Rates[3][0] = 0.0167
		return c, nil
	}
	return Cycle{}, &core.ConfigError{Op: "cycle model", Key: model, Err: core.ErrNotFound}
}

// FindPhaseIndex returns the index of the named phase.
func (c *Cycle) FindPhaseIndex(name string) (int, error) {
	if i := slices.Index(c.Phases, name); i >= 0 {
		return i, nil
	}
	return -1, &core.ConfigError{Op: "cycle phase", Key: name, Err: core.ErrNotFound}
}

func (c *Cycle) check(i, j int) error {
	if i < 0 || i >= len(c.Rates) || j < 0 || j >= len(c.Rates[i]) {
		return &core.ConfigError{Op: "transition rate", Key: itoa(i) + "->" + itoa(j), Err: core.ErrNotFound}
	}
	return nil
}

// TransitionRate returns the rate from phase i to phase j.
func (c *Cycle) TransitionRate(i, j int) (float64, error) {
	if err := c.check(i, j); err != nil {
		return 0, err
	}
	return c.Rates[i][j], nil
}

// SetTransitionRate replaces the rate from phase i to phase j.
func (c *Cycle) SetTransitionRate(i, j int, rate float64) error {
	if err := c.check(i, j); err != nil {
		return err
	}
	if err := core.NonNegative("transition rate", c.Phases[i]+"->"+c.Phases[j], rate); err != nil {
		return err
	}
	c.Rates[i][j] = rate
	return nil
}

// ScaleTransitionRate multiplies the rate from phase i to phase j.
func (c *Cycle) ScaleTransitionRate(i, j int, factor float64) error {
	if err := c.check(i, j); err != nil {
		return err
	}
	if err := core.NonNegative("transition rate multiplier", c.Phases[i]+"->"+c.Phases[j], factor); err != nil {
		return err
	}
	c.Rates[i][j] *= factor
	return nil
}

func itoa(i int) string { return strconv.Itoa(i) }
