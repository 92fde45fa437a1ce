package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/ironsheep/gradient-mcp/internal/palette"
)

// MosaicResult is a preview of the sampled grid: every cell painted with
// its average color.
type MosaicResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
	GridSize    int    `json:"grid_size"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Mosaic renders cells (row-major, cols x rows) as an opaque PNG where each
// cell covers gridSize x gridSize pixels. Display alpha is not rendered.
func Mosaic(cells []palette.Color, cols, rows, gridSize int) (*MosaicResult, error) {
	if cols <= 0 || rows <= 0 || len(cells) == 0 {
		return nil, fmt.Errorf("no cells to render: image is smaller than grid size %d", gridSize)
	}
	if len(cells) != cols*rows {
		return nil, fmt.Errorf("cell count %d does not match %dx%d grid", len(cells), cols, rows)
	}
	if gridSize < 1 {
		gridSize = 1
	}

	small := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for i, c := range cells {
		small.SetNRGBA(i%cols, i/cols, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}

	full := transform.Resize(small, cols*gridSize, rows*gridSize, transform.NearestNeighbor)

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, full); err != nil {
		return nil, fmt.Errorf("failed to encode mosaic: %w", err)
	}

	return &MosaicResult{
		Width:       full.Bounds().Dx(),
		Height:      full.Bounds().Dy(),
		Columns:     cols,
		Rows:        rows,
		GridSize:    gridSize,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
