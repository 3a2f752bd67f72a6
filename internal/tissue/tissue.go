// Package tissue builds the initial spatial layout of a scenario: mobile
// agents sampled uniformly inside an ellipse and a ring of fixed
// confinement agents on and outside its contour.
package tissue

import (
	"fmt"
	"log/slog"

	"cellscape/internal/core"
	"cellscape/internal/engine"
	"cellscape/internal/phenotype"
)

// DefaultRingMargin inflates the ring grid by this many boundary diameters.
const DefaultRingMargin = 3

// Group requests interior agents of one type, either as a fixed count or as
// an area density in [0, 1).
type Group struct {
	Template  string
	Count     int
	Density   float64
	ByDensity bool
}

// Layout is the per-run spatial configuration.
type Layout struct {
	Ellipse    core.Ellipse
	Boundary   string  // confinement template name; empty disables the ring
	RingMargin float64 // in boundary agent diameters
	Groups     []Group
}

// Placement instructs the host to create one agent.
type Placement struct {
	Template *phenotype.Template
	Position core.Vec3
	Movable  bool
}

// OverlapWarning is raised when the requested densities sum to one or more,
// so interior agents will start overlapping. It never aborts a run.
type OverlapWarning struct {
	Total float64
}

func (w OverlapWarning) String() string {
	return fmt.Sprintf("total cell density %.3g must not reach 1", w.Total)
}

// Result is the outcome of Initialize.
type Result struct {
	Placements []Placement
	Counts     map[string]int
	Warnings   []OverlapWarning
}

// Initialize computes every placement for the layout: the confinement ring
// first, then each interior group in order. All randomness comes from rng.
func Initialize(cat *phenotype.Catalog, layout Layout, rng *core.RNG, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := layout.Ellipse.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Counts: map[string]int{}}

	type request struct {
		t *phenotype.Template
		n int
	}
	requests := make([]request, 0, len(layout.Groups))
	total := 0.0
	for _, g := range layout.Groups {
		t, err := cat.Lookup(g.Template)
		if err != nil {
			return Result{}, err
		}
		n := g.Count
		if g.ByDensity {
			n, err = CountFromDensity(g.Density, layout.Ellipse, t.Phenotype.Geometry.Radius)
			if err != nil {
				return Result{}, fmt.Errorf("%s: %w", g.Template, err)
			}
			total += g.Density
		} else if n < 0 {
			return Result{}, &core.ConfigError{Op: "agent count", Key: g.Template, Err: core.ErrInvalid}
		}
		requests = append(requests, request{t: t, n: n})
	}
	if total >= 1 {
		w := OverlapWarning{Total: total}
		res.Warnings = append(res.Warnings, w)
		log.Warn("interior agents may overlap", "warning", w.String(), "total_density", total)
	}

	if layout.Boundary != "" {
		b, err := cat.Lookup(layout.Boundary)
		if err != nil {
			return Result{}, err
		}
		spacing := 2 * b.Phenotype.Geometry.Radius
		if !(spacing > 0) {
			return Result{}, &core.ConfigError{Op: "confinement radius", Key: b.Name, Err: core.ErrInvalid}
		}
		if err := core.NonNegative("ring margin", b.Name, layout.RingMargin); err != nil {
			return Result{}, err
		}
		for p := range RingPoints(layout.Ellipse, spacing, layout.RingMargin) {
			res.Placements = append(res.Placements, Placement{Template: b, Position: p})
			res.Counts[b.Name]++
		}
		log.Debug("confinement ring placed", "type", b.Name, "agents", res.Counts[b.Name], "spacing", spacing)
	}

	for _, r := range requests {
		for range r.n {
			res.Placements = append(res.Placements, Placement{
				Template: r.t,
				Position: SampleInterior(rng, layout.Ellipse),
				Movable:  true,
			})
		}
		res.Counts[r.t.Name] += r.n
		log.Debug("interior agents placed", "type", r.t.Name, "agents", r.n)
	}
	return res, nil
}

// Populate creates one host agent per placement.
func Populate(f engine.AgentFactory, placements []Placement) []engine.Agent {
	agents := make([]engine.Agent, 0, len(placements))
	for _, p := range placements {
		a := f.CreateAgent(p.Template)
		a.SetPosition(p.Position)
		a.SetMovable(p.Movable)
		agents = append(agents, a)
	}
	return agents
}
