package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Splotch placement bounds, in percent of the rendered box.
const (
	SplotchMinRadius = 20.0
	SplotchMaxRadius = 70.0
)

// Stop is a gradient color stop at Position percent along the gradient.
type Stop struct {
	Color    Color   `json:"color"`
	Position float64 `json:"position"`
}

// Splotch is a radial color patch centred at (X, Y) percent with the
// given radius percent.
type Splotch struct {
	Color  Color   `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Gradient describes a background. Linear and radial gradients carry
// Stops; splotch gradients carry Splotches in palette order, later
// entries painting over earlier ones.
type Gradient struct {
	Style Style `json:"style"`

	// Angle is the linear direction in degrees, zero for other styles.
	Angle     int       `json:"angle"`
	Stops     []Stop    `json:"stops,omitempty"`
	Splotches []Splotch `json:"splotches,omitempty"`
}

// Compose builds a gradient from colors. An empty palette always yields
// DefaultGradient, whatever the requested style.
//
// Linear and radial output is fully determined by its inputs: color i of
// n sits at i/(n-1)*100 percent. Splotch output draws positions in
// [0, 100] and radii in [20, 70] from rnd; a nil rnd is replaced by a
// time-seeded source.
func Compose(colors []Color, style Style, angle int, rnd *rand.Rand) Gradient {
	if len(colors) == 0 {
		return DefaultGradient()
	}

	switch style {
	case StyleSplotch:
		if rnd == nil {
			rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		splotches := make([]Splotch, len(colors))
		for i, c := range colors {
			splotches[i] = Splotch{
				Color:  c,
				X:      round2(rnd.Float64() * 100),
				Y:      round2(rnd.Float64() * 100),
				Radius: round2(SplotchMinRadius + rnd.Float64()*(SplotchMaxRadius-SplotchMinRadius)),
			}
		}
		return Gradient{Style: StyleSplotch, Splotches: splotches}
	case StyleRadial:
		return Gradient{Style: StyleRadial, Stops: evenStops(colors)}
	default:
		return Gradient{Style: StyleLinear, Angle: angle, Stops: evenStops(colors)}
	}
}

// DefaultGradient is the gradient shown when nothing has been extracted.
func DefaultGradient() Gradient {
	return Gradient{Style: StyleLinear, Angle: DefaultAngle, Stops: evenStops(FallbackPalette())}
}

// CSS renders the gradient as a CSS background value.
func (g Gradient) CSS() string {
	switch g.Style {
	case StyleSplotch:
		// CSS paints the first listed layer on top.
		layers := make([]string, 0, len(g.Splotches))
		for i := len(g.Splotches) - 1; i >= 0; i-- {
			s := g.Splotches[i]
			layers = append(layers, fmt.Sprintf("radial-gradient(circle at %s %s, %s 0%%, transparent %s)",
				percent(s.X), percent(s.Y), s.Color, percent(s.Radius)))
		}
		return strings.Join(layers, ", ")
	case StyleRadial:
		return "radial-gradient(circle, " + joinStops(g.Stops) + ")"
	default:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Angle, joinStops(g.Stops))
	}
}

func evenStops(colors []Color) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = round2(float64(i) / float64(len(colors)-1) * 100)
		}
		stops[i] = Stop{Color: c, Position: pos}
	}
	return stops
}

func joinStops(stops []Stop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = s.Color.String() + " " + percent(s.Position)
	}
	return strings.Join(parts, ", ")
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
