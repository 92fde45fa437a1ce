package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Display alpha values attached to colors for rendering.
const (
	// SampleAlpha is attached to every cell average produced by SampleGrid.
	SampleAlpha = 0.3

	// FallbackAlpha is attached to the neutral fallback grays.
	FallbackAlpha = 0.6
)

// Color is an immutable RGB triple with an optional display alpha.
//
// Colors compare equal with == exactly when their CSS strings are equal,
// which makes Color usable as a frequency-table key. An alpha of 1 (or
// more) means opaque and renders as rgb(...); anything lower renders as
// rgba(...).
type Color struct {
	R uint8   `json:"r"` // Red component (0-255)
	G uint8   `json:"g"` // Green component (0-255)
	B uint8   `json:"b"` // Blue component (0-255)
	A float64 `json:"a"` // Display alpha (0-1)
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color carrying display alpha a.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Fallback grays used for the neutral gradient and for padding.
var (
	FallbackLight = RGBA(204, 204, 204, FallbackAlpha)
	FallbackMid   = RGBA(77, 77, 77, FallbackAlpha)
	FallbackDark  = RGBA(13, 13, 13, FallbackAlpha)
)

// FallbackPalette returns a fresh copy of the light/mid/dark neutral palette.
func FallbackPalette() []Color {
	return []Color{FallbackLight, FallbackMid, FallbackDark}
}

// String returns the CSS form, rgb(r, g, b) or rgba(r, g, b, a).
func (c Color) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex returns the "#RRGGBB" form. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Opaque returns c with its alpha set to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// MarshalText encodes the color as its CSS string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseColor accepts.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hue returns the hue in degrees [0, 360) using the max/min channel
// formula. Exact grays have hue 0; see Achromatic.
func (c Color) Hue() float64 {
	h, _, _ := c.colorful().Hsv()
	if math.IsNaN(h) {
		return 0
	}
	return math.Mod(h, 360)
}

// Saturation returns the HSV saturation in [0, 1].
func (c Color) Saturation() float64 {
	_, s, _ := c.colorful().Hsv()
	return s
}

// Achromatic reports whether c carries no usable hue: an exact gray, or a
// near-black or near-white neutral whose hue is dominated by rounding.
func (c Color) Achromatic() bool {
	return c.Saturation() == 0 || c.IsNeutral()
}

// Brightness returns the perceptual brightness 0.2126R + 0.7152G + 0.0722B
// on the 0-255 scale.
func (c Color) Brightness() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// IsNeutral reports whether c is a near-black or near-white gray: the
// channels lie within 15 of each other (R/G and G/B) and the channel
// average is below 60 or above 190.
func (c Color) IsNeutral() bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	if absInt(r-g) >= 15 || absInt(g-b) >= 15 {
		return false
	}
	avg := float64(r+g+b) / 3
	return avg < 60 || avg > 190
}

// Darken scales every channel by factor, rounding half away from zero.
// The result is opaque.
func (c Color) Darken(factor float64) Color {
	scale := func(v uint8) uint8 {
		return clampChannel(math.Round(float64(v) * factor))
	}
	return RGB(scale(c.R), scale(c.G), scale(c.B))
}

// HueDistance returns the cyclic distance between two hues in degrees.
func HueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ParseColor parses "rgb(r, g, b)", "rgba(r, g, b, a)", "#RRGGBB" or
// "#RRGGBBAA". Channels must be integers in 0-255 and alpha a number in
// 0-1.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color string")
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	var inner string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		inner, wantAlpha = s[len("rgba("):len(s)-1], true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		inner = s[len("rgb(") : len(s)-1]
	default:
		return Color{}, fmt.Errorf("unrecognised color %q", s)
	}

	parts := strings.Split(inner, ",")
	want := 3
	if wantAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("color %q: got %d components, want %d", s, len(parts), want)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Color{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("color %q: channel %d out of range: %d", s, i, v)
		}
		ch[i] = uint8(v)
	}

	alpha := 1.0
	if wantAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: alpha: %w", s, err)
		}
		if math.IsNaN(a) || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("color %q: alpha out of range: %v", s, a)
		}
		alpha = a
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}

// ParseColors parses every entry and silently drops the ones that do not
// parse. The second return value lists the rejected entries.
func ParseColors(entries []string) ([]Color, []string) {
	colors := make([]Color, 0, len(entries))
	var rejected []string
	for _, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			rejected = append(rejected, e)
			continue
		}
		colors = append(colors, c)
	}
	return colors, rejected
}

// parseHexColor parses "RRGGBB" or "RRGGBBAA" (without the leading '#').
func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		return RGB(uint8(val>>16), uint8(val>>8), uint8(val)), nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		return RGBA(uint8(val>>24), uint8(val>>16), uint8(val>>8), float64(uint8(val))/255.0), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color length")
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
