package cardinal

import "github.com/katalvlaran/cardinalgrid/grid"

// Step is a single unit-length move: the coordinate arrived at, and the
// direction it was entered from.
type Step struct {
	ToCoord     grid.Coord
	InDirection UnitCoord
}

// Forward advances the step one cell further in the same direction.
func (s Step) Forward() Step {
	return Step{ToCoord: s.ToCoord.Add(s.InDirection.Coord()), InDirection: s.InDirection}
}

// Left turns the step's direction 90 degrees left and advances one cell.
// Never a u-turn: the three of Forward/Left/Right are the only
// non-reversing successors of a Step.
func (s Step) Left() Step {
	d := s.InDirection.Left90()
	return Step{ToCoord: s.ToCoord.Add(d.Coord()), InDirection: d}
}

// Right turns the step's direction 90 degrees right and advances one cell.
func (s Step) Right() Step {
	d := s.InDirection.Right90()
	return Step{ToCoord: s.ToCoord.Add(d.Coord()), InDirection: d}
}
