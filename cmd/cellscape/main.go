package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"cellscape/internal/app"
	"cellscape/internal/logging"
	"cellscape/internal/render"
	"cellscape/internal/scenario"
	_ "cellscape/internal/scenarios/chemotaxis"
	_ "cellscape/internal/scenarios/motility"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	png := flag.String("png", "", "write a PNG snapshot of the initial layout to this path")
	summary := flag.Bool("summary", true, "print the agent type summary to stdout")
	confine := flag.Bool("confine", false, "run one confinement pass and report membrane distances")
	flag.Parse()

	factory, ok := scenario.Scenarios()[cfg.Scenario]
	if !ok {
		log.Fatalf("unknown scenario %q", cfg.Scenario)
	}
	sc := factory()
	p, err := cfg.Resolve(sc)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, nil)

	run, err := scenario.Setup(sc, p, logger)
	if err != nil {
		log.Fatal(err)
	}

	if *summary {
		if err := run.Catalog.WriteSummary(os.Stdout); err != nil {
			log.Fatal(err)
		}
		names := make([]string, 0, len(run.Result.Counts))
		for name := range run.Result.Counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("placed %-24s %d\n", name+":", run.Result.Counts[name])
		}
	}

	if *confine {
		if err := run.World.ApplyConfinement(context.Background()); err != nil {
			log.Fatal(err)
		}
		n, maxDist := 0, 0.0
		for _, c := range run.World.Cells() {
			if !c.Template().Confined() {
				continue
			}
			n++
			maxDist = max(maxDist, c.MembraneDistance)
		}
		logger.Info("confinement pass", "confined_agents", n, "max_membrane_distance", maxDist)
	}

	if *png != "" {
		f, err := os.Create(*png)
		if err != nil {
			log.Fatal(err)
		}
		err = render.Snapshot(f, sc.Name(), run.World.Cells(), run.Layout.Ellipse, sc.Color)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatal(err)
		}
		logger.Info("snapshot written", "path", *png)
	}
}
