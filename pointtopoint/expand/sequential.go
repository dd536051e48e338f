package expand

import (
	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/pointtopoint"
)

// Sequential expands one cell at a time: from any popped node it tries
// continuing forward, turning left, and turning right (never a u-turn,
// since the open set already guarantees optimality without revisiting the
// cell behind).
type Sequential struct{}

// String implements fmt.Stringer for diagnostic output.
func (Sequential) String() string { return "Sequential" }

// Seed pushes start's four cardinal one-step successors.
func (Sequential) Seed(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, start, goal grid.Coord) bool {
	for _, unit := range cardinal.UNIT_COORDS {
		step := cardinal.Step{ToCoord: start.Add(unit.Coord()), InDirection: unit}
		if c.ConsiderStep(search, step, 1, goal) {
			return true
		}
	}
	return false
}

// Expand tries forward, left, and right successors of node.
func (Sequential) Expand(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, node pointtopoint.Node, goal grid.Coord) bool {
	nextCost := node.Cost + 1
	if c.ConsiderStep(search, node.Step.Forward(), nextCost, goal) {
		return true
	}
	if c.ConsiderStep(search, node.Step.Left(), nextCost, goal) {
		return true
	}
	if c.ConsiderStep(search, node.Step.Right(), nextCost, goal) {
		return true
	}
	return false
}
