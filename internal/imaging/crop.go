package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// SourceOptions narrows and shrinks an image before it is sampled.
type SourceOptions struct {
	// Region limits sampling to a rectangle. Takes precedence over Quadrant.
	Region *Region

	// Quadrant names a region: top-left, top-right, bottom-left,
	// bottom-right, top-half, bottom-half, left-half, right-half, center.
	Quadrant string

	// MaxDimension, when positive, shrinks the image so neither side
	// exceeds it. Smaller images are left alone.
	MaxDimension int
}

// Prepare applies opts to img: crop first, then downscale.
func Prepare(img image.Image, opts SourceOptions) (image.Image, error) {
	out := img

	switch {
	case opts.Region != nil:
		cropped, err := Crop(out, *opts.Region)
		if err != nil {
			return nil, err
		}
		out = cropped
	case opts.Quadrant != "":
		r, err := QuadrantRegion(out.Bounds(), opts.Quadrant)
		if err != nil {
			return nil, err
		}
		cropped, err := Crop(out, r)
		if err != nil {
			return nil, err
		}
		out = cropped
	}

	if opts.MaxDimension > 0 {
		b := out.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			out = imaging.Fit(out, opts.MaxDimension, opts.MaxDimension, imaging.Box)
		}
	}
	return out, nil
}

// Crop extracts a rectangular region, given relative to the image's
// top-left corner.
func Crop(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if r.X1 < 0 || r.Y1 < 0 || r.X2 > w || r.Y2 > h {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (0,0)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, w, h)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}

// QuadrantRegion resolves a named region against image bounds.
func QuadrantRegion(bounds image.Rectangle, name string) (Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	switch name {
	case "top-left":
		return Region{0, 0, midX, midY}, nil
	case "top-right":
		return Region{midX, 0, w, midY}, nil
	case "bottom-left":
		return Region{0, midY, midX, h}, nil
	case "bottom-right":
		return Region{midX, midY, w, h}, nil
	case "top-half":
		return Region{0, 0, w, midY}, nil
	case "bottom-half":
		return Region{0, midY, w, h}, nil
	case "left-half":
		return Region{0, 0, midX, h}, nil
	case "right-half":
		return Region{midX, 0, w, h}, nil
	case "center":
		// Center 50% of the image
		qW := w / 4
		qH := h / 4
		return Region{qW, qH, w - qW, h - qH}, nil
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}
}
