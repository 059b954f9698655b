// Package voronoi partitions a grid into nearest-centroid regions.
package voronoi

import (
	"image"

	"biomemap/internal/biome"
	"biomemap/internal/core"
)

// Random is the integer source used to place centroids.
type Random interface {
	IntN(n int) int
}

// Centroid seeds one biome's region.
type Centroid struct {
	Pos   image.Point
	Biome *biome.Biome
}

// CentroidSet is an ordered set of centroids keyed by position. Putting a
// position that is already present replaces its biome but keeps the
// original slot, so enumeration order is first-insertion order.
type CentroidSet struct {
	items      []Centroid
	index      map[image.Point]int
	collisions int
}

// NewCentroidSet returns an empty set.
func NewCentroidSet() *CentroidSet {
	return &CentroidSet{index: map[image.Point]int{}}
}

// Put stores b at p, overwriting any biome already seeded there.
func (s *CentroidSet) Put(p image.Point, b *biome.Biome) {
	if s.index == nil {
		s.index = map[image.Point]int{}
	}
	if i, ok := s.index[p]; ok {
		s.items[i].Biome = b
		s.collisions++
		return
	}
	s.index[p] = len(s.items)
	s.items = append(s.items, Centroid{Pos: p, Biome: b})
}

// Len returns the number of surviving centroids.
func (s *CentroidSet) Len() int { return len(s.items) }

// At returns the i-th centroid in enumeration order.
func (s *CentroidSet) At(i int) Centroid { return s.items[i] }

// All returns a copy of the centroids in enumeration order.
func (s *CentroidSet) All() []Centroid { return append([]Centroid(nil), s.items...) }

// Lookup returns the biome seeded at p.
func (s *CentroidSet) Lookup(p image.Point) (*biome.Biome, bool) {
	i, ok := s.index[p]
	if !ok {
		return nil, false
	}
	return s.items[i].Biome, true
}

// Collisions reports how many Put calls landed on an occupied position.
func (s *CentroidSet) Collisions() int { return s.collisions }

// SampleCentroids draws one uniformly random position per biome, in registry
// order. Duplicate draws collapse onto one centroid owned by the later biome.
func SampleCentroids(reg *biome.Registry, size core.Size, rng Random) *CentroidSet {
	set := NewCentroidSet()
	for i := 0; i < reg.Len(); i++ {
		x := rng.IntN(size.W)
		y := rng.IntN(size.H)
		set.Put(image.Pt(x, y), reg.At(i))
	}
	return set
}
