package render

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// EncodePNG writes the buffer as a PNG, upscaling each cell to a scale x scale
// square.
func EncodePNG(w io.Writer, buf *PixelBuffer, scale int) error {
	return png.Encode(w, Upscale(buf.Image(), scale))
}

// Upscale repeats every pixel of src scale times on both axes.
func Upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
