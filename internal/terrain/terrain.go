// Package terrain turns a region grid into heightmapped blocks.
package terrain

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"biomemap/internal/biome"
	"biomemap/internal/noise"
	"biomemap/internal/voronoi"
)

// Block is one column of terrain at a grid cell.
type Block struct {
	X, Y   int
	Height int
	Color  color.RGBA
}

// Emitter receives blocks as they are synthesized. Emission order carries
// no meaning.
type Emitter interface {
	EmitBlock(b Block)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(b Block)

// EmitBlock calls f(b).
func (f EmitterFunc) EmitBlock(b Block) { f(b) }

// Synthesize computes a height for every interior cell of grid and hands it
// to emit. Border cells are skipped. Each cell blends five noise samples
// (itself and its four axis neighbours), each scaled by the frequency of the
// region the sample is taken in, and scales the average by the centre
// region's height.
func Synthesize(grid *voronoi.RegionGrid, field noise.Field, offset mgl64.Vec2, emit Emitter) {
	for x := 1; x < grid.W-1; x++ {
		for y := 1; y < grid.H-1; y++ {
			center := grid.At(x, y)
			sum := sample(field, offset, x, y, center) +
				sample(field, offset, x+1, y, grid.At(x+1, y)) +
				sample(field, offset, x-1, y, grid.At(x-1, y)) +
				sample(field, offset, x, y+1, grid.At(x, y+1)) +
				sample(field, offset, x, y-1, grid.At(x, y-1))
			avg := sum / 5
			emit.EmitBlock(Block{
				X:      x,
				Y:      y,
				Height: int(math.Floor(avg * float64(center.Height))),
				Color:  center.Color,
			})
		}
	}
}

func sample(field noise.Field, offset mgl64.Vec2, x, y int, b *biome.Biome) float64 {
	p := offset.Add(mgl64.Vec2{float64(x), float64(y)}).Mul(b.Frequency)
	return noise.Clamp01(field.Noise2D(p.X(), p.Y()))
}
