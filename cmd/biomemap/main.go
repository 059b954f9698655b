//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"biomemap/internal/app"
	"biomemap/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "[biomemap] ", log.LstdFlags)

	mcfg, err := cfg.MapConfig()
	if err != nil {
		logger.Fatal(err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		logger.Fatal(err)
	}

	gen := mapgen.NewGenerator(mcfg, reg, logger)
	game := app.New(gen, cfg.Scale)
	if err := gen.Err(); err != nil {
		logger.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("biomemap — " + string(mcfg.Mode))
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
