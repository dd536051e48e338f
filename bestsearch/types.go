package bestsearch

import "github.com/katalvlaran/cardinalgrid/grid"

// Depth counts cells from the search's start, not a physical distance.
type Depth uint64

// BestSearch is the caller-supplied policy a bounded best-search runs
// against. The search calls CanEnterUpdatingBest for every candidate cell
// in depth order; the implementation decides whether the cell is passable
// and, if so, updates its own notion of the best cell seen so far.
type BestSearch interface {
	// IsAtMaxDepth reports whether depth has reached this search's limit;
	// cells at a depth for which this returns true are not expanded further.
	IsAtMaxDepth(depth Depth) bool

	// CanEnterUpdatingBest reports whether c may be entered. Implementations
	// that want to track a best cell should do so here, since every
	// admitted cell is passed through exactly once.
	CanEnterUpdatingBest(c grid.Coord) bool

	// BestCoord returns the best cell found so far, if any.
	BestCoord() (grid.Coord, bool)
}
