//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a PixelBuffer into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Upload copies pix into the painter image. Buffers of the wrong size are
// ignored.
func (gp *GridPainter) Upload(pix *PixelBuffer) {
	if pix == nil || pix.W != gp.w || pix.H != gp.h {
		return
	}
	fillRGBA(gp.buf, pix.Pix)
	gp.img.WritePixels(gp.buf)
}

// Blit draws the last uploaded image scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
