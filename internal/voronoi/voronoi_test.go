package voronoi

import (
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"biomemap/internal/biome"
	"biomemap/internal/core"
	"biomemap/internal/noise"
	pkgcore "biomemap/pkg/core"
)

// scripted replays a fixed sequence of integer draws.
type scripted struct {
	vals []int
	pos  int
}

func (s *scripted) IntN(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

var (
	red   = &biome.Biome{Name: "red", Color: color.RGBA{R: 255, A: 255}, Height: 10, Frequency: 0.1}
	green = &biome.Biome{Name: "green", Color: color.RGBA{G: 255, A: 255}, Height: 5, Frequency: 0.2}
	blue  = &biome.Biome{Name: "blue", Color: color.RGBA{B: 255, A: 255}, Height: 3, Frequency: 0.3}
)

func TestSampleCentroidsOnePerBiome(t *testing.T) {
	reg := biome.New(red, green, blue)
	set := SampleCentroids(reg, core.Size{W: 10, H: 10}, &scripted{vals: []int{1, 2, 3, 4, 5, 6}})
	if set.Len() != 3 || set.Collisions() != 0 {
		t.Fatalf("expected 3 centroids without collisions, got %d/%d", set.Len(), set.Collisions())
	}
	want := []Centroid{
		{Pos: image.Pt(1, 2), Biome: red},
		{Pos: image.Pt(3, 4), Biome: green},
		{Pos: image.Pt(5, 6), Biome: blue},
	}
	if !slices.Equal(set.All(), want) {
		t.Fatalf("unexpected centroids %+v", set.All())
	}
}

func TestSampleCentroidsCollisionLastWriteWins(t *testing.T) {
	reg := biome.New(red, green, blue)
	set := SampleCentroids(reg, core.Size{W: 10, H: 10}, &scripted{vals: []int{1, 1, 7, 7, 1, 1}})
	if set.Len() != 2 {
		t.Fatalf("expected 2 surviving centroids, got %d", set.Len())
	}
	if set.Collisions() != 1 {
		t.Fatalf("expected 1 collision, got %d", set.Collisions())
	}
	b, ok := set.Lookup(image.Pt(1, 1))
	if !ok || b != blue {
		t.Fatalf("expected later biome to own (1,1), got %v", b)
	}
	if set.At(0).Pos != image.Pt(1, 1) || set.At(1).Pos != image.Pt(7, 7) {
		t.Fatal("overwrite must keep the original enumeration slot")
	}
}

func TestSampleCentroidsWithinBounds(t *testing.T) {
	reg := biome.Default()
	size := core.Size{W: 7, H: 3}
	for seed := int64(0); seed < 50; seed++ {
		set := SampleCentroids(reg, size, pkgcore.NewRNG(seed))
		if set.Len()+set.Collisions() != reg.Len() {
			t.Fatalf("seed %d: %d centroids + %d collisions != %d biomes", seed, set.Len(), set.Collisions(), reg.Len())
		}
		for _, c := range set.All() {
			if !size.Contains(c.Pos.X, c.Pos.Y) {
				t.Fatalf("seed %d: centroid %v outside %+v", seed, c.Pos, size)
			}
		}
	}
}

func TestClassifySingleBiome(t *testing.T) {
	reg := biome.New(red)
	size := core.Size{W: 5, H: 5}
	set := SampleCentroids(reg, size, pkgcore.NewRNG(3))
	grid := Classify(set, size, Options{})
	if len(grid.Cells()) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(grid.Cells()))
	}
	for i, b := range grid.Cells() {
		if b != red {
			t.Fatalf("cell %d = %v, want red", i, b)
		}
	}
}

func TestClassifyTwoCornersTieGoesToFirst(t *testing.T) {
	set := NewCentroidSet()
	set.Put(image.Pt(0, 0), red)
	set.Put(image.Pt(4, 4), green)
	grid := Classify(set, core.Size{W: 5, H: 5}, Options{})
	if grid.At(0, 0) != red {
		t.Fatalf("(0,0) = %v, want red", grid.At(0, 0))
	}
	if grid.At(4, 4) != green {
		t.Fatalf("(4,4) = %v, want green", grid.At(4, 4))
	}
	if grid.At(2, 2) != red {
		t.Fatalf("(2,2) equidistant, want first-enumerated red, got %v", grid.At(2, 2))
	}
}

func TestClassifyNearestProperty(t *testing.T) {
	reg := biome.Default()
	size := core.Size{W: 23, H: 17}
	set := SampleCentroids(reg, size, pkgcore.NewRNG(11))
	grid := Classify(set, size, Options{})
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got := grid.At(x, y)
			if !reg.Contains(got) {
				t.Fatalf("(%d,%d) references a biome outside the registry", x, y)
			}
			var assigned Centroid
			for _, c := range set.All() {
				if c.Biome == got {
					assigned = c
				}
			}
			d := Distance(image.Pt(x, y), assigned.Pos)
			for _, c := range set.All() {
				if Distance(image.Pt(x, y), c.Pos) < d {
					t.Fatalf("(%d,%d): centroid %v is strictly closer than assigned %v", x, y, c.Pos, assigned.Pos)
				}
			}
		}
	}
}

func TestClassifyCoverage(t *testing.T) {
	set := NewCentroidSet()
	set.Put(image.Pt(1, 1), red)
	set.Put(image.Pt(8, 1), green)
	set.Put(image.Pt(4, 8), blue)
	grid := Classify(set, core.Size{W: 10, H: 10}, Options{})
	cov := grid.Coverage()
	for _, b := range []*biome.Biome{red, green, blue} {
		if cov[b] == 0 {
			t.Fatalf("biome %v has no cells", b)
		}
	}
	if cov[red]+cov[green]+cov[blue] != 100 {
		t.Fatalf("coverage does not add up: %v", cov)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	reg := biome.Default()
	size := core.Size{W: 31, H: 12}
	set := SampleCentroids(reg, size, pkgcore.NewRNG(5))
	a := Classify(set, size, Options{})
	b := Classify(set, size, Options{})
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("classifying the same centroids twice must give identical grids")
	}
}

func TestClassifyJitterShiftsQuery(t *testing.T) {
	set := NewCentroidSet()
	set.Put(image.Pt(0, 0), red)
	set.Put(image.Pt(6, 6), green)
	size := core.Size{W: 7, H: 7}

	plain := Classify(set, size, Options{Jitter: Jitter{Amount: 3}})
	if plain.At(2, 2) != red {
		t.Fatal("jitter without a field must be ignored")
	}

	half := noise.Func(func(x, y float64) float64 { return 0.5 })
	shifted := Classify(set, size, Options{Jitter: Jitter{Amount: 4, Field: half}})
	// (2,2) is queried at (4,4), which is closer to (6,6).
	if shifted.At(2, 2) != green {
		t.Fatalf("jittered (2,2) = %v, want green", shifted.At(2, 2))
	}
}

func TestNearestDistance(t *testing.T) {
	set := NewCentroidSet()
	set.Put(image.Pt(0, 0), red)
	c, d := Nearest(image.Pt(3, 4), set)
	if c.Biome != red || d != 5 {
		t.Fatalf("Nearest = (%v, %v), want (red, 5)", c.Biome, d)
	}
	if _, d := Nearest(image.Pt(0, 0), NewCentroidSet()); !math.IsInf(d, 1) {
		t.Fatalf("empty set distance = %v, want +Inf", d)
	}
}
