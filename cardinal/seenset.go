package cardinal

import (
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// seenCell is SeenSet's per-cell record. epoch ties the cell to the search
// that last touched it; cost and inDirection are only meaningful when
// epoch equals the owning SeenSet's current epoch.
type seenCell struct {
	epoch       uint64
	cost        uint32
	inDirection CardinalCoord
	hasIn       bool
}

// SeenSet is the reusable per-search visitation record shared by every
// engine in this module. Instead of re-zeroing a grid before each search,
// SeenSet bumps an epoch counter in Init; a cell counts as visited this
// search only if its stored epoch matches the current one. This makes
// starting a new search O(1) regardless of grid size.
type SeenSet struct {
	epoch uint64
	grid  *grid.Grid[seenCell]
	start grid.Coord
}

// NewSeenSet allocates a SeenSet over a grid of the given size. The zero
// epoch is reserved as "never visited", so the first Init call always
// invalidates every pre-existing cell.
func NewSeenSet(size grid.Size) *SeenSet {
	return &SeenSet{grid: grid.NewGrid[seenCell](size)}
}

// Init starts a new search from start: bumps the epoch and marks start
// visited at cost 0 with no incoming direction.
func (s *SeenSet) Init(start grid.Coord) {
	s.epoch++
	s.start = start
	cell := s.grid.GetCheckedMutable(start)
	cell.epoch = s.epoch
	cell.cost = 0
	cell.hasIn = false
}

// IsVisited reports whether c was visited during the current search.
func (s *SeenSet) IsVisited(c grid.Coord) bool {
	cell, ok := s.grid.Get(c)
	return ok && cell.epoch == s.epoch
}

// Cost returns the recorded cost for c in the current search, and whether
// c has been visited at all.
func (s *SeenSet) Cost(c grid.Coord) (uint32, bool) {
	cell, ok := s.grid.Get(c)
	if !ok || cell.epoch != s.epoch {
		return 0, false
	}
	return cell.cost, true
}

// TryVisitStep marks step.ToCoord visited at cost. If the cell is out of
// bounds, or was already visited this epoch at a cost no higher than the
// new one, nothing changes and false is returned; if it was unvisited, or
// visited at a strictly higher cost, the visit (or relaxation) is recorded
// and true is returned. A* needs this relaxation because its priority-queue
// expansion order is by f-score, not by true path cost, so a costlier route
// can reach a cell before a cheaper one does; plain BFS callers never hit
// the relaxation branch since their visit order already guarantees
// minimality.
func (s *SeenSet) TryVisitStep(step Step, cost uint32) bool {
	cell := s.grid.GetMutable(step.ToCoord)
	if cell == nil {
		return false
	}
	if cell.epoch == s.epoch {
		if cost >= cell.cost {
			return false
		}
	} else {
		cell.epoch = s.epoch
	}
	cell.cost = cost
	cell.hasIn = true
	cell.inDirection = step.InDirection.ToCardinalCoord()
	return true
}

// TryVisitJump is TryVisitStep's counterpart for a Jump-Point-Search
// compressed run, with the same rules: out-of-bounds targets are rejected,
// and a target already visited this epoch at a strictly higher cost is
// relaxed to the new, cheaper cost and direction. The recorded back-pointer
// keeps the jump's full run length.
func (s *SeenSet) TryVisitJump(jump Jump, cost uint32) bool {
	cell := s.grid.GetMutable(jump.ToCoord)
	if cell == nil {
		return false
	}
	if cell.epoch == s.epoch {
		if cost >= cell.cost {
			return false
		}
	} else {
		cell.epoch = s.epoch
	}
	cell.cost = cost
	cell.hasIn = true
	cell.inDirection = jump.InDirection
	return true
}

// BuildPathTo reconstructs the path from the search's start to end by
// walking back pointers from end, prepending each coordinate into out. A
// back-pointer recorded by TryVisitJump can span several cells at once
// (Jump Point Search compresses a straight run into one edge); each such
// jump is expanded into its individual unit cells here, so the resulting
// path always lists every cell walked, regardless of which engine produced
// it. Reports false, leaving out untouched, if end was never visited.
func (s *SeenSet) BuildPathTo(end grid.Coord, out *Path) bool {
	if !s.IsVisited(end) {
		return false
	}
	out.Clear()
	cur := end
	for {
		out.Prepend(cur)
		if cur == s.start {
			break
		}
		cell := s.grid.GetChecked(cur)
		if !cell.hasIn {
			break
		}
		unit := cell.inDirection.ToUnitCoord()
		magnitude := cell.inDirection.Magnitude()
		for i := uint32(1); i < magnitude; i++ {
			cur = cur.Sub(unit.Coord())
			out.Prepend(cur)
		}
		cur = cur.Sub(unit.Coord())
	}
	return true
}

// FirstDirectionTowards reports the direction the very first step out of
// start must take to eventually reach end, without materialising the full
// path. Reports false if end was never visited or end equals start.
func (s *SeenSet) FirstDirectionTowards(end grid.Coord) (direction.CardinalDirection, bool) {
	if !s.IsVisited(end) || end == s.start {
		return 0, false
	}
	cur := end
	var firstHop grid.Coord
	for cur != s.start {
		cell := s.grid.GetChecked(cur)
		if !cell.hasIn {
			return 0, false
		}
		firstHop = cur
		cur = cur.Sub(cell.inDirection.Coord())
	}
	cc, ok := FromCoord(firstHop.Sub(s.start))
	if !ok {
		return 0, false
	}
	return cc.ToCardinalDirection(), true
}
