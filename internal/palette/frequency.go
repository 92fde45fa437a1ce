package palette

import "sort"

// ColorCount is a distinct color and the number of cells that averaged to it.
type ColorCount struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Rank counts exact occurrences of each color and returns the distinct
// colors by descending count. Ties keep first-occurrence order.
func Rank(cells []Color) []ColorCount {
	index := make(map[Color]int, len(cells))
	ranked := make([]ColorCount, 0)
	for _, c := range cells {
		if i, ok := index[c]; ok {
			ranked[i].Count++
			continue
		}
		index[c] = len(ranked)
		ranked = append(ranked, ColorCount{Color: c, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Colors strips the counts from a ranking.
func Colors(ranked []ColorCount) []Color {
	out := make([]Color, len(ranked))
	for i, rc := range ranked {
		out[i] = rc.Color
	}
	return out
}
