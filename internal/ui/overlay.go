//go:build ebiten

package ui

import (
	"image/color"

	"biomemap/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the 2D map.
type Overlay struct {
	gen   *mapgen.Generator
	scale int

	showCentroids bool
	showLegend    bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(gen *mapgen.Generator, scale int) *Overlay {
	o := &Overlay{gen: gen, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers: 1 centroids, 2 legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCentroids = !o.showCentroids
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLegend = !o.showLegend
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	res := o.gen.Result()
	if res == nil {
		return
	}
	if o.showCentroids {
		o.drawCentroids(screen, res)
	}
	if o.showLegend {
		o.drawLegend(screen, res)
	}
}

func (o *Overlay) drawCentroids(screen *ebiten.Image, res *mapgen.Result) {
	size := float64(o.scale)
	if size < 3 {
		size = 3
	}
	for _, c := range res.Centroids.All() {
		cx := (float64(c.Pos.X) + 0.5) * float64(o.scale)
		cy := (float64(c.Pos.Y) + 0.5) * float64(o.scale)
		o.rect(screen, cx-size/2-1, cy-size/2-1, size+2, size+2, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		o.rect(screen, cx-size/2, cy-size/2, size, size, color.RGBA{A: 255})
	}
}

func (o *Overlay) drawLegend(screen *ebiten.Image, res *mapgen.Result) {
	face := basicfont.Face7x13
	coverage := res.Regions.Coverage()
	y := 8
	for _, c := range res.Centroids.All() {
		o.rect(screen, 8, float64(y), 10, 10, c.Biome.Color)
		label := c.Biome.String()
		if n := coverage[c.Biome]; n > 0 {
			label += " " + percent(n, res.Size.Area())
		}
		text.Draw(screen, label, face, 24, y+10, color.White)
		y += 16
	}
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
