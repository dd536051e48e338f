package bestsearch

import (
	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// queueItem pairs a pending step with its depth from the search's start.
type queueItem struct {
	step  cardinal.Step
	depth Depth
}

// Context holds the reusable state for bounded best-searches over a fixed
// grid size: a seen-set (bumped once per search) and a FIFO queue.
type Context struct {
	seen  *cardinal.SeenSet
	queue []queueItem
}

// NewContext allocates a Context for a grid of the given size.
func NewContext(size grid.Size) *Context {
	return &Context{seen: cardinal.NewSeenSet(size)}
}

// considerBest admits step.ToCoord into the search if it has not already
// been seen this epoch and the policy allows entering it, then enqueues it
// for further expansion unless it is already at the depth limit.
func (c *Context) considerBest(best BestSearch, step cardinal.Step, depth Depth) {
	if c.seen.IsVisited(step.ToCoord) {
		return
	}
	if !best.CanEnterUpdatingBest(step.ToCoord) {
		return
	}
	c.seen.TryVisitStep(step, uint32(depth))
	if !best.IsAtMaxDepth(depth) {
		c.queue = append(c.queue, queueItem{step: step, depth: depth})
	}
}

// run drives the bounded BFS from start, leaving the final visitation
// state in c.seen for the caller to reconstruct a path from.
func (c *Context) run(best BestSearch, start grid.Coord) {
	c.queue = c.queue[:0]
	c.seen.Init(start)

	if !best.CanEnterUpdatingBest(start) {
		return
	}
	if best.IsAtMaxDepth(0) {
		return
	}
	for _, unit := range cardinal.UNIT_COORDS {
		step := cardinal.Step{ToCoord: start.Add(unit.Coord()), InDirection: unit}
		c.considerBest(best, step, 1)
	}
	if best.IsAtMaxDepth(1) {
		return
	}
	for len(c.queue) > 0 {
		item := c.queue[0]
		c.queue = c.queue[1:]
		nextDepth := item.depth + 1
		c.considerBest(best, item.step.Forward(), nextDepth)
		c.considerBest(best, item.step.Left(), nextDepth)
		c.considerBest(best, item.step.Right(), nextDepth)
	}
}

// BestSearchPath runs best against the grid from start and writes the path
// to the best cell found into path. If best.BestCoord reports no cell, the
// search falls back to start, so path holds start alone.
func (c *Context) BestSearchPath(best BestSearch, start grid.Coord, path *cardinal.Path) {
	c.run(best, start)
	end, ok := best.BestCoord()
	if !ok {
		end = start
	}
	if !c.seen.BuildPathTo(end, path) {
		path.Clear()
	}
}

// BestSearchFirst runs best against the grid from start and reports the
// direction of the first step toward the best cell found, if any.
func (c *Context) BestSearchFirst(best BestSearch, start grid.Coord) (direction.CardinalDirection, bool) {
	c.run(best, start)
	end, ok := best.BestCoord()
	if !ok {
		end = start
	}
	return c.seen.FirstDirectionTowards(end)
}
