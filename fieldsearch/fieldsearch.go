package fieldsearch

import (
	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/distancemap"
	"github.com/katalvlaran/cardinalgrid/grid"
)

type queueItem struct {
	step  cardinal.Step
	depth uint32
}

// searchState tracks the closest-to-goal cell found so far, by the
// distance field's own units.
type searchState struct {
	distanceToGoal uint32
	closestCoord   grid.Coord
}

// Context holds the reusable state for bounded field-guided searches over
// a fixed grid size.
type Context struct {
	seen  *cardinal.SeenSet
	queue []queueItem
}

// NewContext allocates a Context for a grid of the given size.
func NewContext(size grid.Size) *Context {
	return &Context{seen: cardinal.NewSeenSet(size)}
}

func saturatingSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

// consider is the search's inner step: visit, filter by enterability and
// field coverage, prune branches that cannot beat the current best even in
// the best case, then track the best and keep expanding.
func (c *Context) consider(canEnter cardinal.CanEnter, step cardinal.Step, depth uint32, maxDistance uint32, dm *distancemap.DistanceMap, state *searchState) {
	if !c.seen.TryVisitStep(step, depth) {
		return
	}
	if !canEnter.CanEnter(step.ToCoord) {
		return
	}
	distanceHere, ok := dm.Distance(step.ToCoord)
	if !ok {
		return
	}
	remaining := saturatingSub(maxDistance, depth)
	if saturatingSub(distanceHere, remaining) > state.distanceToGoal {
		return
	}
	if depth > maxDistance {
		return
	}
	if distanceHere < state.distanceToGoal {
		state.distanceToGoal = distanceHere
		state.closestCoord = step.ToCoord
	}
	c.queue = append(c.queue, queueItem{step: step, depth: depth})
}

// run drives the bounded search from start, returning the closest-to-goal
// coordinate reached and whether start itself had a defined distance to
// begin with.
func (c *Context) run(canEnter cardinal.CanEnter, start grid.Coord, maxDistance uint32, dm *distancemap.DistanceMap) (grid.Coord, bool) {
	startDistance, ok := dm.Distance(start)
	if !ok {
		return grid.Coord{}, false
	}
	state := searchState{distanceToGoal: startDistance, closestCoord: start}

	c.queue = c.queue[:0]
	c.seen.Init(start)
	for _, unit := range cardinal.UNIT_COORDS {
		step := cardinal.Step{ToCoord: start.Add(unit.Coord()), InDirection: unit}
		c.consider(canEnter, step, 1, maxDistance, dm, &state)
	}
	for len(c.queue) > 0 {
		item := c.queue[0]
		c.queue = c.queue[1:]
		nextDepth := item.depth + 1
		c.consider(canEnter, item.step.Forward(), nextDepth, maxDistance, dm, &state)
		c.consider(canEnter, item.step.Left(), nextDepth, maxDistance, dm, &state)
		c.consider(canEnter, item.step.Right(), nextDepth, maxDistance, dm, &state)
	}
	return state.closestCoord, true
}

// SearchPath runs a bounded field-guided search from start and writes the
// path to the closest cell found into path. Reports false, leaving path
// untouched, if start has no defined distance in dm.
func (c *Context) SearchPath(canEnter cardinal.CanEnter, start grid.Coord, maxDistance uint32, dm *distancemap.DistanceMap, path *cardinal.Path) bool {
	end, ok := c.run(canEnter, start, maxDistance, dm)
	if !ok {
		return false
	}
	if !c.seen.BuildPathTo(end, path) {
		path.Clear()
	}
	return true
}

// SearchFirst runs a bounded field-guided search from start and reports the
// direction of the first step toward the closest cell found.
func (c *Context) SearchFirst(canEnter cardinal.CanEnter, start grid.Coord, maxDistance uint32, dm *distancemap.DistanceMap) (direction.CardinalDirection, bool) {
	end, ok := c.run(canEnter, start, maxDistance, dm)
	if !ok {
		return 0, false
	}
	return c.seen.FirstDirectionTowards(end)
}
