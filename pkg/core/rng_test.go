package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(17), b.IntN(17); x != y {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, x, y)
		}
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v for identical seeds", i, x, y)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if v := r.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d out of range", v)
		}
		if v := r.Range(10, 20); v < 10 || v >= 20 {
			t.Fatalf("Range(10,20) = %v out of range", v)
		}
	}
	if v := r.IntN(0); v != 0 {
		t.Fatalf("IntN(0) = %d, want 0", v)
	}
	if v := r.Range(3, 3); v != 3 {
		t.Fatalf("Range(3,3) = %v, want 3", v)
	}
}
