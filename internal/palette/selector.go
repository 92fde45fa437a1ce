package palette

// MinPaletteSize is the shortest palette Select ever returns.
const MinPaletteSize = 3

// Selection is the outcome of Select.
type Selection struct {
	// Palette holds at least MinPaletteSize colors.
	Palette []Color `json:"palette"`

	// Fallback is set when the neutral fallback palette replaced the
	// extracted colors, including the no-input case.
	Fallback bool `json:"fallback"`

	// Padded counts the fallback grays appended to reach MinPaletteSize.
	Padded int `json:"padded"`
}

// Select reduces frequency-ranked colors to a palette.
//
// Policies apply in order: the hue-uniqueness filter (when enabled), the
// neutral fallback check over the first PaletteSize surviving
// candidates, then top-N or brightest/darkest pairing, and finally
// positional padding from the fallback grays.
func Select(ranked []Color, cfg Config) Selection {
	if len(ranked) == 0 {
		return Selection{Palette: FallbackPalette(), Fallback: true}
	}

	candidates := ranked
	if cfg.HueFilter {
		candidates = FilterHues(candidates, cfg.MinHueDistance)
	}

	n := cfg.PaletteSize
	if n < 1 {
		n = DefaultPaletteSize
	}
	considered := candidates
	if len(considered) > n {
		considered = considered[:n]
	}

	if CountNeutral(considered) >= neutralThreshold(cfg, len(considered)) {
		return Selection{Palette: FallbackPalette(), Fallback: true}
	}

	var selected []Color
	switch cfg.Policy {
	case PolicyBrightest:
		factor := cfg.DarkenFactor
		if factor == 0 {
			factor = DefaultDarkenFactor
		}
		bright := Brightest(candidates)
		dark := bright.Darken(factor)
		selected = []Color{bright, dark, dark}
	default:
		selected = append([]Color(nil), considered...)
	}

	padded, added := Pad(selected)
	return Selection{Palette: padded, Padded: added}
}

// FilterHues walks colors in order and keeps a color only when its hue is
// at least minDistance degrees (cyclically) from every color kept so far.
// Achromatic colors are always kept and never block a later color.
func FilterHues(colors []Color, minDistance float64) []Color {
	kept := make([]Color, 0, len(colors))
	hues := make([]float64, 0, len(colors))
	for _, c := range colors {
		if c.Achromatic() {
			kept = append(kept, c)
			continue
		}
		h := c.Hue()
		distinct := true
		for _, kh := range hues {
			if HueDistance(h, kh) < minDistance {
				distinct = false
				break
			}
		}
		if distinct {
			kept = append(kept, c)
			hues = append(hues, h)
		}
	}
	return kept
}

// CountNeutral returns how many colors are neutral.
func CountNeutral(colors []Color) int {
	n := 0
	for _, c := range colors {
		if c.IsNeutral() {
			n++
		}
	}
	return n
}

// Brightest returns the first color with the highest perceptual
// brightness. colors must not be empty.
func Brightest(colors []Color) Color {
	best := colors[0]
	max := best.Brightness()
	for _, c := range colors[1:] {
		if b := c.Brightness(); b > max {
			best, max = c, b
		}
	}
	return best
}

// Pad fills slots up to MinPaletteSize positionally from the fallback
// grays: slot i receives fallback gray i. It returns the padded palette
// and the number of grays added.
func Pad(colors []Color) ([]Color, int) {
	if len(colors) >= MinPaletteSize {
		return colors, 0
	}
	out := make([]Color, len(colors), MinPaletteSize)
	copy(out, colors)
	fallback := FallbackPalette()
	for i := len(colors); i < MinPaletteSize; i++ {
		out = append(out, fallback[i])
	}
	return out, MinPaletteSize - len(colors)
}

func neutralThreshold(cfg Config, considered int) int {
	if cfg.NeutralThreshold > 0 {
		return cfg.NeutralThreshold
	}
	return considered/2 + 1
}
