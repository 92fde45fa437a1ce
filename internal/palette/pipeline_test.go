package palette

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract_UniformRed(t *testing.T) {
	ras := uniformRaster(20, 20, 255, 0, 0)
	cfg := DefaultConfig()

	res := Extract(ras, cfg, nil)

	red := RGBA(255, 0, 0, SampleAlpha)
	if len(res.Cells) != 4 {
		t.Fatalf("cells: got %d, want 4", len(res.Cells))
	}
	for i, c := range res.Cells {
		if c != red {
			t.Errorf("cell %d: got %v, want %v", i, c, red)
		}
	}
	if red.Opaque().String() != "rgb(255, 0, 0)" {
		t.Errorf("opaque red: got %s", red.Opaque())
	}

	wantRanked := []ColorCount{{Color: red, Count: 4}}
	if diff := cmp.Diff(wantRanked, res.Ranked); diff != "" {
		t.Errorf("ranked mismatch (-want +got):\n%s", diff)
	}

	wantPalette := []Color{red, FallbackMid, FallbackDark}
	if diff := cmp.Diff(wantPalette, res.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	wantCSS := "linear-gradient(315deg, rgba(255, 0, 0, 0.3) 0%, rgba(77, 77, 77, 0.6) 50%, rgba(13, 13, 13, 0.6) 100%)"
	if res.CSS != wantCSS {
		t.Errorf("CSS:\n got %s\nwant %s", res.CSS, wantCSS)
	}
	if res.Columns != 2 || res.Rows != 2 {
		t.Errorf("grid: got %dx%d, want 2x2", res.Columns, res.Rows)
	}
}

func TestExtract_DegenerateGridFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 100

	res := Extract(uniformRaster(20, 20, 255, 0, 0), cfg, nil)

	if len(res.Cells) != 0 {
		t.Errorf("cells: got %d, want 0", len(res.Cells))
	}
	if !res.Fallback {
		t.Error("Fallback: got false, want true")
	}
	if diff := cmp.Diff(FallbackPalette(), res.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
	if res.CSS != DefaultGradient().CSS() {
		t.Errorf("CSS: got %s, want default gradient", res.CSS)
	}
}

func TestExtract_EmptyInputFallsBack(t *testing.T) {
	for _, ras := range []*Raster{nil, NewRaster(0, 0, nil)} {
		res := Extract(ras, DefaultConfig(), nil)
		if !res.Fallback || len(res.Palette) != 3 {
			t.Errorf("Extract(%v): fallback=%v palette=%v", ras, res.Fallback, res.Palette)
		}
	}
}

func TestExtract_MostlyWhiteFallsBack(t *testing.T) {
	ras := uniformRaster(40, 40, 250, 250, 250)
	// One dark cell is not enough to escape the neutral fallback.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			setPixel(ras, x, y, 5, 5, 5, 255)
		}
	}
	res := Extract(ras, DefaultConfig(), nil)

	if !res.Fallback {
		t.Errorf("Fallback: got false, palette %v", res.Palette)
	}
}

// fillCell paints one gridSize x gridSize cell.
func fillCell(ras *Raster, col, row, gridSize int, r, g, b uint8) {
	for y := row * gridSize; y < (row+1)*gridSize; y++ {
		for x := col * gridSize; x < (col+1)*gridSize; x++ {
			setPixel(ras, x, y, r, g, b, 255)
		}
	}
}

func TestExtract_RedOnWhiteKeepsRed(t *testing.T) {
	ras := uniformRaster(20, 20, 250, 250, 250)
	fillCell(ras, 1, 1, 10, 220, 20, 20)

	res := Extract(ras, DefaultConfig(), nil)

	if res.Fallback {
		t.Fatalf("Fallback: got true, palette %v", res.Palette)
	}
	want := []Color{
		RGBA(250, 250, 250, SampleAlpha),
		RGBA(220, 20, 20, SampleAlpha),
		FallbackDark,
	}
	if diff := cmp.Diff(want, res.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_WhiteAndBlackMajorityFallsBack(t *testing.T) {
	ras := uniformRaster(40, 40, 255, 255, 255)
	fillCell(ras, 0, 0, 10, 0, 0, 0)
	fillCell(ras, 1, 0, 10, 0, 0, 0)
	fillCell(ras, 3, 3, 10, 0, 0, 200)

	res := Extract(ras, DefaultConfig(), nil)

	if !res.Fallback {
		t.Errorf("Fallback: got false, palette %v", res.Palette)
	}
	if diff := cmp.Diff(FallbackPalette(), res.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_QuadrantsBrightest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyBrightest
	cfg.HueFilter = false

	res := Extract(FromImage(createQuadrantImage(20, 20)), cfg, nil)

	// Each quadrant color covers one cell. White ranks fourth, outside the
	// neutral check, but still wins on brightness.
	if res.Fallback {
		t.Fatal("Fallback: got true, want false")
	}
	white := RGBA(255, 255, 255, SampleAlpha)
	if res.Palette[0] != white {
		t.Errorf("brightest: got %v, want %v", res.Palette[0], white)
	}
	if res.Palette[1] != RGB(102, 102, 102) || res.Palette[2] != res.Palette[1] {
		t.Errorf("dark shades: got %v", res.Palette[1:])
	}
}

func TestExtract_SplotchUsesSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = StyleSplotch
	ras := FromImage(createQuadrantImage(20, 20))

	a := Extract(ras, cfg, rand.New(rand.NewSource(3)))
	b := Extract(ras, cfg, rand.New(rand.NewSource(3)))

	if a.CSS != b.CSS {
		t.Errorf("seeded splotch CSS differs:\n%s\n%s", a.CSS, b.CSS)
	}
	if len(a.Gradient.Splotches) != len(a.Palette) {
		t.Errorf("splotches: got %d, want %d", len(a.Gradient.Splotches), len(a.Palette))
	}
}

func TestExtract_RepeatableWithoutHiddenState(t *testing.T) {
	ras := FromImage(createQuadrantImage(30, 30))
	cfg := DefaultConfig()

	first := Extract(ras, cfg, nil)
	second := Extract(ras, cfg, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated extraction differs (-first +second):\n%s", diff)
	}
}
