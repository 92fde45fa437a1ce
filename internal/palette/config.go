package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects how Compose lays colors out.
type Style string

const (
	StyleLinear  Style = "linear"
	StyleRadial  Style = "radial"
	StyleSplotch Style = "splotch"
)

// Policy selects how Select reduces the ranked colors.
type Policy string

const (
	// PolicyTop keeps the first N ranked candidates.
	PolicyTop Policy = "top"

	// PolicyBrightest pairs the brightest candidate with a darkened shade.
	PolicyBrightest Policy = "brightest"
)

// Defaults applied by DefaultConfig.
const (
	DefaultPaletteSize    = 3
	DefaultMinHueDistance = 30.0
	DefaultDarkenFactor   = 0.4
	DefaultAngle          = 315
)

// Config controls the extraction pipeline.
type Config struct {
	// GridSize is the cell edge length in pixels. Must be >= 1.
	GridSize int `json:"grid_size"`

	// PaletteSize is the target palette length for PolicyTop and the
	// number of leading candidates checked for neutrality. Must be >= 1.
	// Palettes are always padded to at least three colors.
	PaletteSize int `json:"palette_size"`

	Style  Style  `json:"style"`
	Policy Policy `json:"policy"`

	// HueFilter drops candidates whose hue lies within MinHueDistance
	// degrees of an already kept candidate.
	HueFilter      bool    `json:"hue_filter"`
	MinHueDistance float64 `json:"min_hue_distance"`

	// NeutralThreshold is the number of neutral colors among the leading
	// candidates that triggers the neutral fallback. Zero means a strict
	// majority of the candidates considered.
	NeutralThreshold int `json:"neutral_threshold"`

	// DarkenFactor scales the brightest color into its dark shade under
	// PolicyBrightest. Zero means DefaultDarkenFactor; an explicit black
	// shade is not expressible.
	DarkenFactor float64 `json:"darken_factor"`

	// Angle is the linear gradient direction in degrees.
	Angle int `json:"angle"`
}

// DefaultConfig returns the canonical configuration: 10px cells, three
// hue-distinct top colors, 315deg linear gradient.
func DefaultConfig() Config {
	return Config{
		GridSize:       DefaultGridSize,
		PaletteSize:    DefaultPaletteSize,
		Style:          StyleLinear,
		Policy:         PolicyTop,
		HueFilter:      true,
		MinHueDistance: DefaultMinHueDistance,
		DarkenFactor:   DefaultDarkenFactor,
		Angle:          DefaultAngle,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	}
	if c.PaletteSize < 1 {
		return fmt.Errorf("palette size must be positive, got %d", c.PaletteSize)
	}
	if _, err := ParseStyle(string(c.Style)); err != nil {
		return err
	}
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	if c.MinHueDistance < 0 || c.MinHueDistance > 180 {
		return fmt.Errorf("minimum hue distance must be within 0-180, got %v", c.MinHueDistance)
	}
	if c.NeutralThreshold < 0 {
		return fmt.Errorf("neutral threshold must not be negative, got %d", c.NeutralThreshold)
	}
	if c.DarkenFactor < 0 || c.DarkenFactor > 1 {
		return fmt.Errorf("darken factor must be within 0-1, got %v", c.DarkenFactor)
	}
	return nil
}

// ParseStyle maps a style name to a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleLinear:
		return StyleLinear, nil
	case StyleRadial:
		return StyleRadial, nil
	case StyleSplotch:
		return StyleSplotch, nil
	default:
		return "", fmt.Errorf("unknown gradient style: %q (valid: linear, radial, splotch)", s)
	}
}

// ParsePolicy maps a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyTop:
		return PolicyTop, nil
	case PolicyBrightest:
		return PolicyBrightest, nil
	default:
		return "", fmt.Errorf("unknown palette policy: %q (valid: top, brightest)", s)
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvGridSize    = "GRADIENT_MCP_GRID_SIZE"
	EnvPaletteSize = "GRADIENT_MCP_PALETTE_SIZE"
	EnvStyle       = "GRADIENT_MCP_STYLE"
	EnvPolicy      = "GRADIENT_MCP_POLICY"
	EnvHueFilter   = "GRADIENT_MCP_HUE_FILTER"
)

// ConfigFromEnv starts from DefaultConfig and applies any overrides found
// through getenv (typically os.Getenv). Unset variables are ignored.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvGridSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvGridSize, err)
		}
		cfg.GridSize = n
	}
	if v := getenv(EnvPaletteSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPaletteSize, err)
		}
		cfg.PaletteSize = n
	}
	if v := getenv(EnvStyle); v != "" {
		style, err := ParseStyle(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStyle, err)
		}
		cfg.Style = style
	}
	if v := getenv(EnvPolicy); v != "" {
		policy, err := ParsePolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPolicy, err)
		}
		cfg.Policy = policy
	}
	if v := getenv(EnvHueFilter); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHueFilter, err)
		}
		cfg.HueFilter = on
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
