// Package render turns generated maps into pixels.
package render

import (
	"image"
	"image/color"
	"math"

	"biomemap/internal/core"
	"biomemap/internal/voronoi"
)

// PixelBuffer is a dense row-major color buffer.
type PixelBuffer struct {
	W, H int
	Pix  []color.RGBA
}

// NewPixelBuffer allocates a transparent buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// At returns the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) color.RGBA { return b.Pix[y*b.W+x] }

// Set stores c at (x, y).
func (b *PixelBuffer) Set(x, y int, c color.RGBA) { b.Pix[y*b.W+x] = c }

// Image copies the buffer into an *image.RGBA.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	fillRGBA(img.Pix, b.Pix)
	return img
}

// Direct paints every cell, borders included, with its region's color.
func Direct(grid *voronoi.RegionGrid) *PixelBuffer {
	buf := NewPixelBuffer(grid.W, grid.H)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			buf.Set(x, y, grid.At(x, y).Color)
		}
	}
	return buf
}

// DistanceValue returns the gray level d/255 for the cell at p, where d is
// the distance to its nearest centroid. The value is not clamped.
func DistanceValue(p image.Point, set *voronoi.CentroidSet) float64 {
	_, d := voronoi.Nearest(p, set)
	return d / 255
}

// DistanceField paints each cell gray by its distance to the nearest
// centroid. The search is run afresh per cell.
func DistanceField(set *voronoi.CentroidSet, size core.Size) *PixelBuffer {
	buf := NewPixelBuffer(size.W, size.H)
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			buf.Set(x, y, Gray(DistanceValue(image.Pt(x, y), set)))
		}
	}
	return buf
}

// Gray quantizes v in [0, 1] to an opaque gray pixel. Values above 1 saturate.
func Gray(v float64) color.RGBA {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	g := uint8(math.Round(v * 255))
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// MarkCentroids paints every centroid position with c.
func MarkCentroids(buf *PixelBuffer, set *voronoi.CentroidSet, c color.RGBA) {
	for _, cen := range set.All() {
		if cen.Pos.X < 0 || cen.Pos.Y < 0 || cen.Pos.X >= buf.W || cen.Pos.Y >= buf.H {
			continue
		}
		buf.Set(cen.Pos.X, cen.Pos.Y, c)
	}
}

// fillRGBA writes pixels into an RGBA byte buffer.
func fillRGBA(buf []byte, pix []color.RGBA) {
	for i, c := range pix {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
