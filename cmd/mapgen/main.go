// Command mapgen generates one biome map and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"biomemap/internal/app"
	"biomemap/internal/mapgen"
	"biomemap/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("o", "map.png", "output PNG path ('-' for stdout)")
	markCentroids := flag.Bool("centroids", false, "mark centroid positions in 2D modes")
	flag.Parse()

	logger := log.New(os.Stderr, "[mapgen] ", log.LstdFlags)
	if err := run(cfg, *out, *markCentroids, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *app.Config, out string, markCentroids bool, logger *log.Logger) error {
	mcfg, err := cfg.MapConfig()
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	var heightmap *render.Heightmap
	env := mapgen.Env{Logger: logger}
	if mcfg.Mode == mapgen.ModeTerrain {
		heightmap = render.NewHeightmap(mcfg.Width, mcfg.Height)
		env.Emitter = heightmap
	}
	res, err := mapgen.Generate(mcfg, reg, env)
	if err != nil {
		return err
	}

	pix := res.Image
	if heightmap != nil {
		pix = heightmap.Pixels()
	}
	if markCentroids && res.Image != nil {
		render.MarkCentroids(pix, res.Centroids, render.Gray(0))
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := render.EncodePNG(w, pix, cfg.Scale); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if out != "-" {
		logger.Printf("wrote %s (%dx%d, scale %d)", out, pix.W, pix.H, cfg.Scale)
	}
	return nil
}
