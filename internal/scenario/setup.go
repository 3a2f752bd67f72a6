package scenario

import (
	"fmt"
	"log/slog"

	"cellscape/internal/core"
	"cellscape/internal/engine"
	"cellscape/internal/phenotype"
	"cellscape/internal/tissue"
)

// Run is the product of Setup: everything the host needs before the first
// step.
type Run struct {
	Scenario Scenario
	Env      *engine.Microenv
	Catalog  *phenotype.Catalog
	Layout   tissue.Layout
	Result   tissue.Result
	World    *engine.World
}

// Setup runs the startup sequence: seed the generator, build the
// microenvironment, configure agent types, compute the layout and populate
// a reference world. Any error aborts the run; nothing partial is returned.
func Setup(s Scenario, p engine.Params, log *slog.Logger) (*Run, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("scenario", s.Name())

	seed, err := p.Ints("random_seed")
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(int64(seed))

	opts, err := s.Microenvironment(p, log)
	if err != nil {
		return nil, err
	}
	env, err := engine.NewMicroenvironment(opts)
	if err != nil {
		return nil, err
	}

	cat, err := s.Configure(env, p, log)
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", s.Name(), err)
	}
	for _, t := range cat.Templates() {
		log.Info("agent type registered", "type", t.Type, "name", t.Name,
			"motile", t.Phenotype.Motility.IsMotile, "radius", t.Phenotype.Geometry.Radius)
	}

	layout, err := s.Layout(cat, p)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", s.Name(), err)
	}
	res, err := tissue.Initialize(cat, layout, rng, log)
	if err != nil {
		return nil, fmt.Errorf("initialize %s: %w", s.Name(), err)
	}

	world := engine.NewWorld()
	tissue.Populate(world, res.Placements)
	log.Info("tissue initialized", "agents", len(res.Placements), "warnings", len(res.Warnings))

	return &Run{
		Scenario: s,
		Env:      env,
		Catalog:  cat,
		Layout:   layout,
		Result:   res,
		World:    world,
	}, nil
}
