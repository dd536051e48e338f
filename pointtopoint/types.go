package pointtopoint

import (
	"errors"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// ErrNoPath is returned when a search exhausts its open set without
// reaching the goal. It is distinct from the start==goal case, which
// succeeds with a zero-step path holding only the start cell.
var ErrNoPath = errors.New("pointtopoint: no path to goal")

// PointToPointSearch is the caller's sole authority over which cells a
// search may enter. Unlike cardinal.CanEnter it is named for this
// package's domain so call sites read clearly; the two are structurally
// identical and a cardinal.CanEnterFunc satisfies both.
type PointToPointSearch interface {
	CanEnter(c grid.Coord) bool
}

// Node is one entry in the A* open set: the step it represents, its true
// cost from the start, and its f-score (cost plus heuristic).
type Node struct {
	Cost              uint32
	CostPlusHeuristic uint32
	Step              cardinal.Step
}

// Profile reports diagnostic counters from a single search; it has no
// effect on the search's outcome.
type Profile struct {
	CellsVisited int
	JumpsTaken   int
	NodesPopped  int
}
