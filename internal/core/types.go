package core

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Area returns the number of cells covered by the grid.
func (s Size) Area() int {
	if !s.Valid() {
		return 0
	}
	return s.W * s.H
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Interior reports whether (x, y) lies inside the grid with a one-cell margin
// on every side.
func (s Size) Interior(x, y int) bool {
	return x >= 1 && y >= 1 && x < s.W-1 && y < s.H-1
}
