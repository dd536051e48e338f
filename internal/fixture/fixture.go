// Package fixture parses the ASCII-grid literals used throughout this
// module's tests into a grid.Grid[rune], generalising the per-package
// str_slice_to_test helpers duplicated across the search engines this
// module was built from into one shared implementation.
package fixture

import "github.com/katalvlaran/cardinalgrid/grid"

// ParseGrid reads lines (all equal length) into a grid.Grid[rune] and
// reports the coordinate of the first '@' rune found, if any. Each test
// package interprets the resulting runes according to its own cell model
// (solid/traversable, scored, weighted).
func ParseGrid(lines []string) (g *grid.Grid[rune], start grid.Coord, hasStart bool) {
	if len(lines) == 0 {
		return grid.NewGrid[rune](grid.NewSize(0, 0)), grid.Coord{}, false
	}
	size := grid.NewSize(int32(len(lines[0])), int32(len(lines)))
	g = grid.NewGrid[rune](size)
	for y, line := range lines {
		for x, ch := range line {
			c := grid.NewCoord(int32(x), int32(y))
			g.Set(c, ch)
			if ch == '@' && !hasStart {
				start = c
				hasStart = true
			}
		}
	}
	return g, start, hasStart
}
