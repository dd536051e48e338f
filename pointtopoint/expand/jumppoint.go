package expand

import (
	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/pointtopoint"
)

// JumpPoint expands by Jump Point Search: instead of considering one cell
// at a time, it walks a straight run until it hits the goal, a dead end,
// or a forced neighbour (a cell whose only useful way around an adjacent
// obstacle is through it), and records the whole run as one Jump.
type JumpPoint struct{}

// String implements fmt.Stringer for diagnostic output.
func (JumpPoint) String() string { return "JumpPoint" }

// Seed runs a jump scan in each of the four cardinal directions from start.
func (JumpPoint) Seed(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, start, goal grid.Coord) bool {
	for _, unit := range cardinal.UNIT_COORDS {
		step := cardinal.Step{ToCoord: start.Add(unit.Coord()), InDirection: unit}
		if jumpScan(c, search, step, 1, goal) {
			return true
		}
	}
	return false
}

// Expand runs a jump scan forward, left, and right from node.
func (JumpPoint) Expand(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, node pointtopoint.Node, goal grid.Coord) bool {
	nextCost := node.Cost + 1
	if jumpScan(c, search, node.Step.Forward(), nextCost, goal) {
		return true
	}
	if jumpScan(c, search, node.Step.Left(), nextCost, goal) {
		return true
	}
	if jumpScan(c, search, node.Step.Right(), nextCost, goal) {
		return true
	}
	return false
}

// jumpScan walks forward from step in a straight line, one cell at a
// time, looking for the goal or a jump point. cost is the cost of
// reaching step.ToCoord (the run's first cell). At every cell that is
// neither the goal nor a forced-neighbour jump point, it also tries a
// perpendicular side-step (sideStepScan, left only) before advancing: on
// a stretch of open ground with no obstacles at all, has_forced_neighbour
// never fires — only the boundary blocks anything — so without the
// side-step a straight run would walk off the edge of the grid and report
// no path, even though the goal is easily reachable by turning. The
// side-step lets every cell along the run also probe for a turn toward
// the goal, which is what lets an open run eventually align with the
// goal's row or column.
func jumpScan(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, step cardinal.Step, cost uint32, goal grid.Coord) bool {
	cur := step
	runLength := uint32(1)
	for {
		if cur.ToCoord == goal {
			jump := cardinal.Jump{ToCoord: goal, InDirection: cur.InDirection.Scale(runLength)}
			return c.ConsiderJump(search, jump, cost+runLength-1, goal)
		}
		if !search.CanEnter(cur.ToCoord) {
			return false
		}
		if hasForcedNeighbour(search, cur, goal) {
			jump := cardinal.Jump{ToCoord: cur.ToCoord, InDirection: cur.InDirection.Scale(runLength)}
			return c.ConsiderJump(search, jump, cost+runLength-1, goal)
		}
		if sideStepScan(c, search, cur, runLength, cost, goal) {
			return true
		}
		cur = cur.Forward()
		runLength++
	}
}

// sideStepScan probes left of main (perpendicular to its direction of
// travel) for the goal or a jump point, one cell at a time. It never
// aborts the outer straight run: if the side-step walks off the grid or
// into a wall before finding anything, it simply reports false and
// jumpScan advances main forward as usual. Finding something records two
// back-pointers — an intermediate jump back to main's current cell, and
// the side jump from there to wherever the side-step landed — and pushes
// a node continuing from the side jump's landing cell.
func sideStepScan(c *pointtopoint.Context, search pointtopoint.PointToPointSearch, main cardinal.Step, mainLength uint32, cost uint32, goal grid.Coord) bool {
	left := main.InDirection.Left90()
	side := cardinal.Step{ToCoord: main.ToCoord.Add(left.Coord()), InDirection: left}
	sideLength := uint32(1)
	for {
		found := side.ToCoord == goal
		if !found {
			if !search.CanEnter(side.ToCoord) {
				return false
			}
			found = hasForcedNeighbour(search, side, goal)
		}
		if found {
			intermediateCost := cost + mainLength - 1
			intermediate := cardinal.Jump{ToCoord: main.ToCoord, InDirection: main.InDirection.Scale(mainLength)}
			c.ConsiderJump(search, intermediate, intermediateCost, goal)

			sideJump := cardinal.Jump{ToCoord: side.ToCoord, InDirection: side.InDirection.Scale(sideLength)}
			return c.ConsiderJump(search, sideJump, intermediateCost+sideLength, goal)
		}
		side = side.Forward()
		sideLength++
	}
}

// hasForcedNeighbour is the cardinal-4 JPS symmetry-breaking predicate: a
// cell diagonally behind step is forced when it is itself blocked but the
// perpendicular cell on the same side is open (or is the goal) — meaning a
// traveller coming from behind would have to turn through step.ToCoord to
// reach it, making step.ToCoord a jump point rather than a cell safe to
// skip past.
func hasForcedNeighbour(search pointtopoint.PointToPointSearch, step cardinal.Step, goal grid.Coord) bool {
	unit := step.InDirection

	leftBehind := step.ToCoord.Add(unit.Left135())
	leftPerp := step.ToCoord.Add(unit.Left90().Coord())
	if !search.CanEnter(leftBehind) && (leftPerp == goal || search.CanEnter(leftPerp)) {
		return true
	}

	rightBehind := step.ToCoord.Add(unit.Right135())
	rightPerp := step.ToCoord.Add(unit.Right90().Coord())
	if !search.CanEnter(rightBehind) && (rightPerp == goal || search.CanEnter(rightPerp)) {
		return true
	}

	return false
}
