package voronoi

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"biomemap/internal/biome"
	"biomemap/internal/core"
	"biomemap/internal/noise"
)

// RegionGrid holds the biome assigned to every cell.
type RegionGrid struct {
	*core.Grid[*biome.Biome]
}

// Jitter displaces each query point by floor(noise(x, y) * Amount) on both
// axes before the nearest-centroid search. A zero Amount disables it.
type Jitter struct {
	Amount float64
	Field  noise.Field
}

func (j Jitter) enabled() bool { return j.Amount > 0 && j.Field != nil }

func (j Jitter) offset(x, y int) int {
	return int(math.Floor(j.Field.Noise2D(float64(x), float64(y)) * j.Amount))
}

// Options tunes classification. The zero value is plain nearest-centroid.
type Options struct {
	Jitter Jitter
}

// Classify assigns every cell the biome of its nearest centroid. Ties go to
// the centroid enumerated first. The set must not be empty.
func Classify(set *CentroidSet, size core.Size, opts Options) *RegionGrid {
	grid := RegionGrid{core.NewGrid[*biome.Biome](size.W, size.H)}
	cells := grid.Cells()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			q := image.Pt(x, y)
			if opts.Jitter.enabled() {
				d := opts.Jitter.offset(x, y)
				q = q.Add(image.Pt(d, d))
			}
			c, _ := Nearest(q, set)
			cells[grid.Index(x, y)] = c.Biome
		}
	}
	return &grid
}

// Nearest scans every centroid and returns the closest one to p along with
// its Euclidean distance. The first centroid at the minimum distance wins.
func Nearest(p image.Point, set *CentroidSet) (Centroid, float64) {
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range set.items {
		d := Distance(p, c.Pos)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return Centroid{}, math.Inf(1)
	}
	return set.items[best], bestDist
}

// Distance returns the Euclidean distance between two grid points.
func Distance(a, b image.Point) float64 {
	return vec(a).Sub(vec(b)).Len()
}

func vec(p image.Point) mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X), float64(p.Y)}
}

// Coverage counts the cells assigned to each biome.
func (g *RegionGrid) Coverage() map[*biome.Biome]int {
	counts := map[*biome.Biome]int{}
	for _, b := range g.Cells() {
		counts[b]++
	}
	return counts
}
