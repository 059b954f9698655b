//go:build ebiten

package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"biomemap/internal/terrain"
)

// BlockPainter is the 3D block renderer: it collects emitted blocks and
// draws them as isometric columns.
type BlockPainter struct {
	blocks terrain.Buffer
	sorted []terrain.Block
	pixel  *ebiten.Image

	TileW   float64
	TileH   float64
	UnitH   float64
	OriginX float64
	OriginY float64
}

// NewBlockPainter returns a painter with 8x4 pixel tiles and 2 pixels per
// height unit.
func NewBlockPainter() *BlockPainter {
	p := &BlockPainter{TileW: 8, TileH: 4, UnitH: 2}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Reset drops all recorded blocks.
func (p *BlockPainter) Reset() {
	p.blocks.Blocks = p.blocks.Blocks[:0]
	p.sorted = nil
}

// EmitBlock records b for drawing.
func (p *BlockPainter) EmitBlock(b terrain.Block) {
	p.blocks.EmitBlock(b)
	p.sorted = nil
}

// Len reports how many blocks are recorded.
func (p *BlockPainter) Len() int { return len(p.blocks.Blocks) }

// Bounds returns the screen size needed to show a w x h grid whose tallest
// column is maxHeight units.
func (p *BlockPainter) Bounds(w, h, maxHeight int) (int, int) {
	sw := float64(w+h) * p.TileW / 2
	sh := float64(w+h)*p.TileH/2 + float64(maxHeight)*p.UnitH
	return int(sw) + 1, int(sh) + 1
}

// Project maps a grid cell and height to screen space.
func (p *BlockPainter) Project(x, y, height int) mgl64.Vec2 {
	iso := mgl64.Mat2{p.TileW / 2, p.TileH / 2, -p.TileW / 2, p.TileH / 2}
	v := iso.Mul2x1(mgl64.Vec2{float64(x), float64(y)})
	return v.Add(mgl64.Vec2{p.OriginX, p.OriginY - float64(height)*p.UnitH})
}

// Draw paints every block back to front.
func (p *BlockPainter) Draw(dst *ebiten.Image) {
	if p.sorted == nil {
		p.sorted = p.blocks.Sorted()
	}
	for _, b := range p.sorted {
		top := p.Project(b.X, b.Y, b.Height)
		base := p.Project(b.X, b.Y, 0)
		side := terrain.Shade(b.Color, 1, 2)
		p.fill(dst, top.X()-p.TileW/2, top.Y(), p.TileW, base.Y()-top.Y()+p.TileH, side)
		p.fill(dst, top.X()-p.TileW/2, top.Y(), p.TileW, p.TileH, b.Color)
	}
}

func (p *BlockPainter) fill(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(p.pixel, op)
}
