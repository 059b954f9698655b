package render

import "biomemap/internal/terrain"

// Heightmap is a terrain.Emitter that paints blocks top-down, shading each by
// its height. It stands in for a 3D block renderer in headless runs.
type Heightmap struct {
	buf    *PixelBuffer
	blocks terrain.Buffer
}

// NewHeightmap allocates a w x h heightmap with a transparent border.
func NewHeightmap(w, h int) *Heightmap {
	return &Heightmap{buf: NewPixelBuffer(w, h)}
}

// EmitBlock records b.
func (m *Heightmap) EmitBlock(b terrain.Block) { m.blocks.EmitBlock(b) }

// Pixels shades the recorded blocks relative to the tallest one and returns
// the buffer.
func (m *Heightmap) Pixels() *PixelBuffer {
	max := m.blocks.MaxHeight()
	for _, b := range m.blocks.Blocks {
		if b.X < 0 || b.Y < 0 || b.X >= m.buf.W || b.Y >= m.buf.H {
			continue
		}
		m.buf.Set(b.X, b.Y, terrain.Shade(b.Color, b.Height, max))
	}
	return m.buf
}
