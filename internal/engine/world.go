package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cellscape/internal/core"
	"cellscape/internal/phenotype"
)

// Cell is an agent in the reference host.
type Cell struct {
	id        int
	template  *phenotype.Template
	Phenotype phenotype.Phenotype

	Position         core.Vec3
	Displacement     core.Vec3
	Movable          bool
	MembraneDistance float64
}

// ID returns the agent id.
func (c *Cell) ID() int { return c.id }

// Template returns the type the agent was created from.
func (c *Cell) Template() *phenotype.Template { return c.template }

// SetPosition assigns the agent position.
func (c *Cell) SetPosition(p core.Vec3) { c.Position = p }

// SetMovable toggles whether mechanics may move the agent.
func (c *Cell) SetMovable(movable bool) { c.Movable = movable }

// World is the reference agent container.
type World struct {
	cells []*Cell
}

// NewWorld returns an empty world.
func NewWorld() *World { return &World{} }

// CreateAgent instantiates an agent with a live copy of the template's
// phenotype.
func (w *World) CreateAgent(t *phenotype.Template) Agent {
	c := &Cell{
		id:        len(w.cells),
		template:  t,
		Phenotype: t.Phenotype.Clone(),
		Movable:   true,
	}
	w.cells = append(w.cells, c)
	return c
}

// Cells exposes the agents in creation order.
func (w *World) Cells() []*Cell { return w.cells }

// Count returns the number of agents per type id.
func (w *World) Count() map[int]int {
	out := make(map[int]int)
	for _, c := range w.cells {
		out[c.template.Type]++
	}
	return out
}

// ApplyConfinement runs each confined agent's confinement callback and
// stores the returned distance and displacement on that agent. Agents are
// processed in parallel; each goroutine writes only the agents in its slice.
func (w *World) ApplyConfinement(ctx context.Context) error {
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(w.cells) + workers - 1) / workers
	if chunk == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(w.cells); start += chunk {
		part := w.cells[start:min(start+chunk, len(w.cells))]
		g.Go(func() error {
			for _, c := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				confine := c.template.Functions.Confinement
				if confine == nil {
					continue
				}
				d, disp := confine(c.Position)
				c.MembraneDistance = d
				c.Displacement.X = disp.X
				c.Displacement.Y = disp.Y
			}
			return nil
		})
	}
	return g.Wait()
}
