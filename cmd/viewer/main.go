//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"cellscape/internal/app"
	"cellscape/internal/logging"
	"cellscape/internal/scenario"
	_ "cellscape/internal/scenarios/chemotaxis"
	_ "cellscape/internal/scenarios/motility"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
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

	game, err := app.New(sc, p, cfg.Scale, cfg.PassRate, logging.New(cfg.LogLevel, cfg.LogFormat, nil))
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cellscape — " + sc.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
