//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-caves/internal/app"
	"mad-caves/pkg/cave"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)
	sim := cave.NewSim(cfg.CaveConfig(), cfg.Seed, logger)
	game := app.New(sim, cfg, logger)

	ebiten.SetWindowTitle("mad-caves")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
