// Package noise provides the coherent noise source sampled by the height
// synthesizer and the optional classification jitter.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// Field samples 2D coherent noise. Implementations return values in [0, 1]
// and must be deterministic for a given configuration.
type Field interface {
	Noise2D(x, y float64) float64
}

// Func adapts a plain function to the Field interface.
type Func func(x, y float64) float64

// Noise2D calls f(x, y).
func (f Func) Noise2D(x, y float64) float64 { return f(x, y) }

// Perlin is a seeded Perlin noise field remapped from [-1, 1] to [0, 1].
type Perlin struct {
	p *perlin.Perlin
}

const (
	defaultAlpha   = 2.0
	defaultBeta    = 2.0
	defaultOctaves = 3
)

// NewPerlin returns a Perlin field using alpha=2, beta=2 and three octaves.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(defaultAlpha, defaultBeta, defaultOctaves, seed)}
}

// Noise2D samples the field at (x, y).
func (n *Perlin) Noise2D(x, y float64) float64 {
	return Clamp01((n.p.Noise2D(x, y) + 1) / 2)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// OffsetRange is the exclusive upper bound for each offset component.
const OffsetRange = 999999.0

// Ranger draws uniform floats from [lo, hi).
type Ranger interface {
	Range(lo, hi float64) float64
}

// NewOffset draws the per-run noise offset used to decorrelate repeated runs.
func NewOffset(r Ranger) mgl64.Vec2 {
	return mgl64.Vec2{r.Range(0, OffsetRange), r.Range(0, OffsetRange)}
}
