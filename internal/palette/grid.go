package palette

// DefaultGridSize is the default cell edge length in pixels.
const DefaultGridSize = 10

// GridDims returns the number of whole cells along each axis. Partial
// trailing cells are not counted.
func GridDims(r *Raster, gridSize int) (cols, rows int) {
	if r.Empty() || gridSize < 1 {
		return 0, 0
	}
	return r.Width / gridSize, r.Height / gridSize
}

// SampleGrid partitions the raster into gridSize x gridSize cells and
// returns one average color per cell in row-major order (y outer, x
// inner).
//
// Each channel is the arithmetic mean over the cell's pixels, rounded half
// up. Alpha samples are ignored; every result carries SampleAlpha.
// An empty raster, a non-positive gridSize, or a gridSize exceeding either
// dimension yields no cells.
func SampleGrid(r *Raster, gridSize int) []Color {
	cols, rows := GridDims(r, gridSize)
	if cols == 0 || rows == 0 {
		return nil
	}

	colors := make([]Color, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			colors = append(colors, averageCell(r, x*gridSize, y*gridSize, gridSize))
		}
	}
	return colors
}

// averageCell averages the size x size block whose top-left pixel is
// (x0, y0). The block always lies inside the raster.
func averageCell(r *Raster, x0, y0, size int) Color {
	var sumR, sumG, sumB int
	for y := y0; y < y0+size; y++ {
		i := r.offset(x0, y)
		for x := 0; x < size; x++ {
			sumR += int(r.Pix[i])
			sumG += int(r.Pix[i+1])
			sumB += int(r.Pix[i+2])
			i += 4
		}
	}
	count := size * size
	return RGBA(roundDiv(sumR, count), roundDiv(sumG, count), roundDiv(sumB, count), SampleAlpha)
}

// roundDiv returns sum/count rounded half up. Both are non-negative.
func roundDiv(sum, count int) uint8 {
	return uint8((2*sum + count) / (2 * count))
}
