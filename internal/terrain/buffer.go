package terrain

import (
	"image/color"
	"sort"
)

// Buffer collects emitted blocks in memory.
type Buffer struct {
	Blocks []Block
}

// EmitBlock appends b.
func (buf *Buffer) EmitBlock(b Block) { buf.Blocks = append(buf.Blocks, b) }

// Sorted returns the blocks ordered back to front (by y, then x), which is
// the painter's order for an isometric view.
func (buf *Buffer) Sorted() []Block {
	out := append([]Block(nil), buf.Blocks...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// MaxHeight returns the tallest block height, or 0 when empty.
func (buf *Buffer) MaxHeight() int {
	max := 0
	for _, b := range buf.Blocks {
		if b.Height > max {
			max = b.Height
		}
	}
	return max
}

// Multi fans a block out to several emitters.
type Multi []Emitter

// EmitBlock forwards b to every emitter.
func (m Multi) EmitBlock(b Block) {
	for _, e := range m {
		if e != nil {
			e.EmitBlock(b)
		}
	}
}

// Shade darkens c toward black by how far height sits below maxHeight, so a
// flat top-down render still shows relief.
func Shade(c color.RGBA, height, maxHeight int) color.RGBA {
	if maxHeight <= 0 {
		return c
	}
	t := float64(height) / float64(maxHeight)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	const floor = 0.35
	return blend(color.RGBA{A: c.A}, c, floor+(1-floor)*t)
}

func blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: uint8(float64(base.A)*inv + float64(overlay.A)*w + 0.5),
	}
}
