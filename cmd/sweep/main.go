package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cellscape/internal/app"
	"cellscape/internal/params"
	"cellscape/internal/scenario"
	_ "cellscape/internal/scenarios/chemotaxis"
	_ "cellscape/internal/scenarios/motility"
)

type point struct {
	d1, d2 float64
	seed   int
}

func (p point) String() string {
	return fmt.Sprintf("d1=%.2f d2=%.2f seed=%d", p.d1, p.d2, p.seed)
}

type outcome struct {
	point     point
	counts    map[string]int
	agents    int
	warned    bool
	maxMemDst float64
	err       error
}

func main() {
	cfg := app.NewConfig()
	cfg.Scenario = "differential_motility"
	cfg.Bind(flag.CommandLine)
	densities := flag.String("densities", "0.1,0.3,0.5", "comma-separated motile cell densities to cross")
	seeds := flag.Int("seeds", 3, "seeds per density pair")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	factory, ok := scenario.Scenarios()[cfg.Scenario]
	if !ok {
		log.Fatalf("unknown scenario %q", cfg.Scenario)
	}
	sc := factory()
	base, err := cfg.Resolve(sc)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}

	var points []point
	for _, d1 := range grid {
		for _, d2 := range grid {
			for s := range *seeds {
				points = append(points, point{d1: d1, d2: d2, seed: s})
			}
		}
	}
	fmt.Printf("Sweeping %d layouts of %s (%d workers)\n", len(points), sc.Name(), *workers)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := make(chan point)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for range *workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pt := range jobs {
				results <- runPoint(sc, base, pt, quiet)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, pt := range points {
			jobs <- pt
		}
		close(jobs)
	}()

	start := time.Now()
	var all []outcome
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.point, res.err)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].point, all[j].point
		if a.d1 != b.d1 {
			return a.d1 < b.d1
		}
		if a.d2 != b.d2 {
			return a.d2 < b.d2
		}
		return a.seed < b.seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		note := ""
		if res.warned {
			note = " overlap"
		}
		fmt.Printf("%s agents=%d motile1=%d motile2=%d ring=%d maxMembrane=%.2f%s\n",
			res.point, res.agents, res.counts["motile cell 1"], res.counts["motile cell 2"],
			res.counts["passive cell"], res.maxMemDst, note)
	}
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func runPoint(sc scenario.Scenario, base *params.Set, pt point, log *slog.Logger) outcome {
	p := base.Clone().
		SetDouble("motile_cell_1_density", pt.d1).
		SetDouble("motile_cell_2_density", pt.d2).
		SetInt("random_seed", pt.seed)

	run, err := scenario.Setup(sc, p, log)
	if err != nil {
		return outcome{point: pt, err: err}
	}
	if err := run.World.ApplyConfinement(context.Background()); err != nil {
		return outcome{point: pt, err: err}
	}
	res := outcome{
		point:  pt,
		counts: run.Result.Counts,
		agents: len(run.World.Cells()),
		warned: len(run.Result.Warnings) > 0,
	}
	for _, c := range run.World.Cells() {
		if c.Template().Confined() {
			res.maxMemDst = max(res.maxMemDst, c.MembraneDistance)
		}
	}
	return res
}
