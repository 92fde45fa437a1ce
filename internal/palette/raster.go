package palette

import (
	"image"

	"github.com/disintegration/imaging"
)

// Raster is a dense, row-major buffer of non-premultiplied RGBA samples,
// four bytes per pixel.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster wraps an existing sample buffer. The buffer is not copied.
func NewRaster(width, height int, pix []uint8) *Raster {
	return &Raster{Width: width, Height: height, Pix: pix}
}

// FromImage converts any decoded image into a Raster whose origin is the
// image's top-left corner.
func FromImage(img image.Image) *Raster {
	if img == nil {
		return &Raster{}
	}
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	pix := make([]uint8, 4*w*h)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*w]
		copy(pix[y*4*w:], src)
	}
	return &Raster{Width: w, Height: h, Pix: pix}
}

// Empty reports whether the raster has no usable samples: nil, zero area,
// or a buffer too short for its declared dimensions.
func (r *Raster) Empty() bool {
	if r == nil || r.Width <= 0 || r.Height <= 0 {
		return true
	}
	return len(r.Pix) < 4*r.Width*r.Height
}

// offset returns the index of pixel (x, y) in Pix.
func (r *Raster) offset(x, y int) int {
	return 4 * (y*r.Width + x)
}
