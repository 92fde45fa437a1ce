package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cfgWith returns the default config with the hue filter and policy set.
func cfgWith(hueFilter bool, policy Policy) Config {
	cfg := DefaultConfig()
	cfg.HueFilter = hueFilter
	cfg.Policy = policy
	return cfg
}

func TestSelect_EmptyFallsBack(t *testing.T) {
	sel := Select(nil, DefaultConfig())

	if !sel.Fallback {
		t.Error("Fallback: got false, want true")
	}
	if diff := cmp.Diff(FallbackPalette(), sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_PadsPositionally(t *testing.T) {
	red := RGBA(255, 0, 0, SampleAlpha)

	sel := Select([]Color{red}, DefaultConfig())

	want := []Color{red, FallbackMid, FallbackDark}
	if diff := cmp.Diff(want, sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
	if sel.Fallback {
		t.Error("Fallback: got true, want false")
	}
	if sel.Padded != 2 {
		t.Errorf("Padded: got %d, want 2", sel.Padded)
	}
}

func TestSelect_TopN(t *testing.T) {
	ranked := []Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(255, 255, 0)}

	sel := Select(ranked, cfgWith(false, PolicyTop))

	if diff := cmp.Diff(ranked[:3], sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_LargerPaletteSize(t *testing.T) {
	ranked := []Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(255, 255, 0), RGB(200, 0, 200)}
	cfg := cfgWith(false, PolicyTop)
	cfg.PaletteSize = 5

	sel := Select(ranked, cfg)

	if len(sel.Palette) != 5 {
		t.Errorf("palette length: got %d, want 5", len(sel.Palette))
	}
}

func TestSelect_HueFilterDropsNearTints(t *testing.T) {
	red := RGB(255, 0, 0)
	orangeRed := RGB(255, 60, 0) // hue ~14
	green := RGB(0, 255, 0)
	blue := RGB(0, 0, 255)

	sel := Select([]Color{red, orangeRed, green, blue}, cfgWith(true, PolicyTop))

	want := []Color{red, green, blue}
	if diff := cmp.Diff(want, sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_NeutralMajorityFallsBack(t *testing.T) {
	ranked := []Color{RGB(250, 250, 250), RGB(5, 5, 5), RGB(255, 0, 0)}

	for _, policy := range []Policy{PolicyTop, PolicyBrightest} {
		t.Run(string(policy), func(t *testing.T) {
			sel := Select(ranked, cfgWith(false, policy))
			if !sel.Fallback {
				t.Fatal("Fallback: got false, want true")
			}
			if diff := cmp.Diff(FallbackPalette(), sel.Palette); diff != "" {
				t.Errorf("palette mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelect_NeutralMinorityKept(t *testing.T) {
	ranked := []Color{RGB(255, 0, 0), RGB(250, 250, 250), RGB(0, 0, 255)}

	sel := Select(ranked, cfgWith(false, PolicyTop))

	if sel.Fallback {
		t.Fatal("Fallback: got true, want false")
	}
	if diff := cmp.Diff(ranked, sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_NeutralBeyondTopNIgnored(t *testing.T) {
	ranked := []Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(0, 0, 0), RGB(255, 255, 255)}

	sel := Select(ranked, cfgWith(false, PolicyTop))

	if sel.Fallback {
		t.Error("neutral colors outside the leading candidates should not trigger the fallback")
	}
}

func TestSelect_ExplicitNeutralThreshold(t *testing.T) {
	ranked := []Color{RGB(255, 0, 0), RGB(250, 250, 250), RGB(0, 0, 255)}
	cfg := cfgWith(false, PolicyTop)
	cfg.NeutralThreshold = 1

	if sel := Select(ranked, cfg); !sel.Fallback {
		t.Error("Fallback: got false, want true with threshold 1")
	}
}

func TestSelect_SingleNeutralFallsBack(t *testing.T) {
	sel := Select([]Color{RGBA(255, 255, 255, SampleAlpha)}, DefaultConfig())
	if !sel.Fallback {
		t.Error("a lone near-white candidate is a neutral majority")
	}
}

func TestSelect_Brightest(t *testing.T) {
	dimRed := RGBA(100, 0, 0, SampleAlpha)
	green := RGBA(0, 200, 0, SampleAlpha)
	blue := RGBA(0, 0, 255, SampleAlpha)

	sel := Select([]Color{dimRed, green, blue}, cfgWith(false, PolicyBrightest))

	dark := RGB(0, 80, 0)
	want := []Color{green, dark, dark}
	if diff := cmp.Diff(want, sel.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_BrightestCustomFactor(t *testing.T) {
	cfg := cfgWith(false, PolicyBrightest)
	cfg.DarkenFactor = 0.5

	sel := Select([]Color{RGB(200, 100, 0)}, cfg)

	if sel.Palette[1] != RGB(100, 50, 0) {
		t.Errorf("dark shade: got %v, want rgb(100, 50, 0)", sel.Palette[1])
	}
}

func TestSelect_ZeroDarkenFactorUsesDefault(t *testing.T) {
	cfg := cfgWith(false, PolicyBrightest)
	cfg.DarkenFactor = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sel := Select([]Color{RGB(200, 100, 0)}, cfg)

	if want := RGB(200, 100, 0).Darken(DefaultDarkenFactor); sel.Palette[1] != want {
		t.Errorf("dark shade: got %v, want %v", sel.Palette[1], want)
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	ranked := make([]Color, 1, 8)
	ranked[0] = RGB(255, 0, 0)
	backing := ranked[:8]

	Select(ranked, DefaultConfig())

	if backing[1] != (Color{}) {
		t.Errorf("input backing array modified: %v", backing[1])
	}
}

func TestFilterHues_MinimumDistance(t *testing.T) {
	var colors []Color
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				colors = append(colors, RGB(uint8(r), uint8(g), uint8(b)))
			}
		}
	}

	kept := FilterHues(colors, 30)

	if len(kept) == 0 {
		t.Fatal("FilterHues kept nothing")
	}
	for i := range kept {
		for j := i + 1; j < len(kept); j++ {
			if kept[i].Achromatic() || kept[j].Achromatic() {
				continue
			}
			if d := HueDistance(kept[i].Hue(), kept[j].Hue()); d < 30 {
				t.Errorf("%v and %v are %v degrees apart", kept[i], kept[j], d)
			}
		}
	}
}

func TestFilterHues_Wraparound(t *testing.T) {
	red := RGB(255, 0, 0)      // 0
	crimson := RGB(255, 0, 40) // ~351
	violet := RGB(255, 0, 255) // 300
	kept := FilterHues([]Color{red, crimson, violet}, 30)

	want := []Color{red, violet}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("kept mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterHues_AchromaticNeverBlocks(t *testing.T) {
	white := RGB(255, 255, 255)
	black := RGB(0, 0, 0)
	gray := RGB(128, 128, 128)
	red := RGB(220, 20, 20)
	nearWhite := RGB(250, 248, 252)
	violet := RGB(200, 0, 255)

	kept := FilterHues([]Color{white, black, gray, red, nearWhite, violet}, 30)

	want := []Color{white, black, gray, red, nearWhite, violet}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("kept mismatch (-want +got):\n%s", diff)
	}
}

func TestBrightest_FirstWinsTies(t *testing.T) {
	a := RGB(10, 20, 30)
	b := RGBA(10, 20, 30, FallbackAlpha)
	c := RGBA(10, 20, 30, SampleAlpha)

	if got := Brightest([]Color{c, a, b}); got != c {
		t.Errorf("Brightest: got %v, want first of equals %v", got, c)
	}
}

func TestPad(t *testing.T) {
	got, added := Pad(nil)
	if added != 3 {
		t.Errorf("added: got %d, want 3", added)
	}
	if diff := cmp.Diff(FallbackPalette(), got); diff != "" {
		t.Errorf("padded mismatch (-want +got):\n%s", diff)
	}

	two := []Color{RGB(1, 1, 1), RGB(2, 2, 2)}
	got, added = Pad(two)
	if added != 1 || got[2] != FallbackDark {
		t.Errorf("Pad(two): got %v (+%d)", got, added)
	}

	four := []Color{RGB(1, 1, 1), RGB(2, 2, 2), RGB(3, 3, 3), RGB(4, 4, 4)}
	got, added = Pad(four)
	if added != 0 || len(got) != 4 {
		t.Errorf("Pad(four): got %v (+%d)", got, added)
	}
}
