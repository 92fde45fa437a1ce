package palette

import "math/rand"

// Result is everything the pipeline produced for one raster.
type Result struct {
	// GridSize is the cell edge length used.
	GridSize int `json:"grid_size"`

	// Columns and Rows count the whole cells sampled along each axis.
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// Cells is the per-cell average in row-major order.
	Cells []Color `json:"-"`

	// Ranked lists the distinct cell colors by descending frequency.
	Ranked []ColorCount `json:"ranked"`

	Palette  []Color  `json:"palette"`
	Fallback bool     `json:"fallback"`
	Padded   int      `json:"padded"`
	Gradient Gradient `json:"gradient"`
	CSS      string   `json:"css"`
}

// Extract runs sampling, ranking, selection and composition over r.
// rnd is only consulted for StyleSplotch.
func Extract(r *Raster, cfg Config, rnd *rand.Rand) *Result {
	cols, rows := GridDims(r, cfg.GridSize)
	cells := SampleGrid(r, cfg.GridSize)
	ranked := Rank(cells)
	sel := Select(Colors(ranked), cfg)
	grad := Compose(sel.Palette, cfg.Style, cfg.Angle, rnd)

	return &Result{
		GridSize: cfg.GridSize,
		Columns:  cols,
		Rows:     rows,
		Cells:    cells,
		Ranked:   ranked,
		Palette:  sel.Palette,
		Fallback: sel.Fallback,
		Padded:   sel.Padded,
		Gradient: grad,
		CSS:      grad.CSS(),
	}
}
