// Package palette extracts a small representative color palette from a
// raster and composes a background gradient from it.
//
// The pipeline runs in a fixed order:
//
//	Raster -> SampleGrid -> Rank -> Select -> Compose
//
// Every stage is a pure function of its inputs. The only source of
// non-determinism is splotch placement in Compose, which draws from a
// caller-supplied *rand.Rand.
//
// # Fallbacks
//
// None of the stages fail. An empty or zero-area raster, or a grid size
// larger than the raster, produces no cells; Select then returns the fixed
// neutral fallback palette:
//
//	rgba(204, 204, 204, 0.6)  light gray
//	rgba(77, 77, 77, 0.6)     mid gray
//	rgba(13, 13, 13, 0.6)     near black
//
// When fewer colors than the target palette size survive selection, the
// missing slots are filled positionally from the same three grays, so a
// single surviving color c yields [c, mid gray, near black].
//
// # Selection policies
//
// PolicyTop keeps the most frequent (optionally hue-distinct) colors. Grays
// carry no hue and are exempt from the hue-distinct filter.
// PolicyBrightest picks the brightest candidate and pairs it with a
// darkened shade. Both fall back to the neutral palette when most of the
// leading candidates are near-black or near-white grays.
package palette
