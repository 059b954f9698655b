//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"biomemap/internal/core"
	"biomemap/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// HUD is the side panel: seed and jitter steppers, read-only parameters and
// a legend of the biomes that own regions.
type HUD struct {
	gen      *mapgen.Generator
	width    int
	rows     []stepper
	snapshot core.ParameterSnapshot
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds the panel for gen. A non-positive width disables it.
func NewHUD(gen *mapgen.Generator, width int) *HUD {
	h := &HUD{gen: gen, width: width}
	if width > 0 {
		h.rows = layoutSteppers(gen.ParameterControls(), width)
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the parameter snapshot and applies button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = panelOffsetX
	h.snapshot = h.gen.Parameters()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-panelOffsetX, my)
	for _, row := range h.rows {
		if dir := row.hit(p); dir != 0 {
			h.adjust(row, dir)
			h.snapshot = h.gen.Parameters()
			return
		}
	}
}

func (h *HUD) adjust(row stepper, dir int) {
	param, ok := h.snapshot.Lookup(row.ctrl.Key)
	if !ok {
		return
	}
	switch row.ctrl.Type {
	case core.ParamTypeInt:
		cur, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		if next, changed := row.stepInt(cur, dir); changed {
			h.gen.SetIntParameter(row.ctrl.Key, next)
		}
	case core.ParamTypeFloat:
		cur, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		if next, changed := row.stepFloat(cur, dir); changed {
			h.gen.SetFloatParameter(row.ctrl.Key, next)
		}
	}
}

// Draw paints the panel at offsetX, at least as tall as the scaled map.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := max(h.gen.Size().H*max(scale, 1), minPanelHeight)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, fmt.Sprintf("Biome map (%s)", h.gen.Config().Mode), face, panelPadding, panelPadding+headerBaseline, headerColor)
	for _, row := range h.rows {
		value := "--"
		if p, ok := h.snapshot.Lookup(row.ctrl.Key); ok {
			value = row.format(p.Value)
		}
		baseline := row.top + rowHeight/2 + 5
		text.Draw(h.panel, row.ctrl.Label, face, panelPadding, baseline, valueColor)
		vw := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, row.minus.Min.X-buttonGap-vw, baseline, valueColor)
		h.button(row.minus, "-")
		h.button(row.plus, "+")
	}
	y := stepperTop + len(h.rows)*rowHeight + lineSpacing
	y = h.drawReadouts(y)
	h.drawLegend(y + lineSpacing/2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// drawReadouts lists the parameters without a stepper and returns the next
// free baseline.
func (h *HUD) drawReadouts(y int) int {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineSpacing
		for _, p := range group.Params {
			if h.hasStepper(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, dimColor)
			y += lineSpacing
		}
	}
	return y
}

func (h *HUD) drawLegend(y int) {
	res := h.gen.Result()
	if res == nil {
		if err := h.gen.Err(); err != nil {
			text.Draw(h.panel, "error: "+err.Error(), basicfont.Face7x13, panelPadding, y, color.RGBA{R: 230, G: 90, B: 80, A: 255})
		}
		return
	}
	face := basicfont.Face7x13
	text.Draw(h.panel, "Legend", face, panelPadding, y, headerColor)
	y += lineSpacing
	coverage := res.Regions.Coverage()
	for _, c := range res.Centroids.All() {
		h.fill(image.Rect(panelPadding+8, y-9, panelPadding+18, y+1), c.Biome.Color)
		label := fmt.Sprintf("%s %s", c.Biome.Name, percent(coverage[c.Biome], res.Size.Area()))
		text.Draw(h.panel, label, face, panelPadding+24, y, dimColor)
		y += lineSpacing
	}
}

func (h *HUD) hasStepper(key string) bool {
	for _, row := range h.rows {
		if row.ctrl.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) button(r image.Rectangle, label string) {
	h.fill(r, buttonColor)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, valueColor)
}

func (h *HUD) fill(r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}
