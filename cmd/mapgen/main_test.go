package main

import (
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"biomemap/internal/app"
)

func TestRunWritesPNG(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	for _, mode := range []string{"direct", "distance", "terrain"} {
		cfg := app.NewConfig()
		cfg.Width, cfg.Height, cfg.Scale, cfg.Mode = 12, 9, 2, mode
		path := filepath.Join(t.TempDir(), mode+".png")
		if err := run(cfg, path, true, logger); err != nil {
			t.Fatalf("%s: run: %v", mode, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("%s: open: %v", mode, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: decode: %v", mode, err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 18 {
			t.Fatalf("%s: bounds %v, want 24x18", mode, b)
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Height = 0
	if err := run(cfg, filepath.Join(t.TempDir(), "x.png"), false, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected error for zero height")
	}
}
