// Package biome holds the biome records that Voronoi regions are painted with.
package biome

import (
	"errors"
	"fmt"
	"image/color"
)

// Biome describes one terrain category. Records are shared by pointer and
// must not be mutated once a registry has been built from them.
type Biome struct {
	Name      string
	Color     color.RGBA
	Height    int     // height scale applied to the blended noise
	Frequency float64 // multiplier applied to grid coordinates before sampling noise
}

func (b *Biome) String() string {
	if b == nil {
		return "<nil biome>"
	}
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("biome#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B)
}

// ErrEmptyRegistry is returned when a registry holds no biomes.
var ErrEmptyRegistry = errors.New("biome registry is empty")

// InvalidBiomeError reports a biome whose parameters break the registry
// invariants.
type InvalidBiomeError struct {
	Index  int
	Name   string
	Reason string
}

func (e *InvalidBiomeError) Error() string {
	return fmt.Sprintf("biome %d (%q): %s", e.Index, e.Name, e.Reason)
}

// Registry is an ordered, read-only list of biomes.
type Registry struct {
	biomes []*Biome
}

// New builds a registry from the provided records. Order is preserved and
// determines centroid sampling order.
func New(biomes ...*Biome) *Registry {
	return &Registry{biomes: append([]*Biome(nil), biomes...)}
}

// Len returns the number of biomes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.biomes)
}

// At returns the i-th biome.
func (r *Registry) At(i int) *Biome { return r.biomes[i] }

// All returns a copy of the biome list.
func (r *Registry) All() []*Biome {
	if r == nil {
		return nil
	}
	return append([]*Biome(nil), r.biomes...)
}

// Contains reports whether b is one of the registry's records (by identity).
func (r *Registry) Contains(b *Biome) bool {
	if r == nil {
		return false
	}
	for _, x := range r.biomes {
		if x == b {
			return true
		}
	}
	return false
}

// Validate checks that the registry is non-empty and every biome has a
// positive frequency and a non-negative height.
func (r *Registry) Validate() error {
	if r.Len() == 0 {
		return ErrEmptyRegistry
	}
	for i, b := range r.biomes {
		if b == nil {
			return &InvalidBiomeError{Index: i, Reason: "nil record"}
		}
		if !(b.Frequency > 0) {
			return &InvalidBiomeError{Index: i, Name: b.Name, Reason: fmt.Sprintf("frequency %v must be positive", b.Frequency)}
		}
		if b.Height < 0 {
			return &InvalidBiomeError{Index: i, Name: b.Name, Reason: fmt.Sprintf("height %d must not be negative", b.Height)}
		}
	}
	return nil
}

// Default returns the built-in registry used when no biome file is given.
func Default() *Registry {
	return New(
		&Biome{Name: "ocean", Color: color.RGBA{R: 40, G: 80, B: 170, A: 255}, Height: 4, Frequency: 0.05},
		&Biome{Name: "plains", Color: color.RGBA{R: 110, G: 180, B: 80, A: 255}, Height: 8, Frequency: 0.06},
		&Biome{Name: "forest", Color: color.RGBA{R: 40, G: 110, B: 55, A: 255}, Height: 14, Frequency: 0.1},
		&Biome{Name: "desert", Color: color.RGBA{R: 220, G: 200, B: 120, A: 255}, Height: 6, Frequency: 0.04},
		&Biome{Name: "mountains", Color: color.RGBA{R: 150, G: 150, B: 160, A: 255}, Height: 40, Frequency: 0.15},
	)
}
