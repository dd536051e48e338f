package pointtopoint

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// ExpandPolicy decides how a search turns a popped open-set Node into new
// candidates. Sequential and JumpPoint, in the sibling expand package, are
// the two implementations; both are interchangeable at any call site.
type ExpandPolicy interface {
	fmt.Stringer

	// Seed pushes start's initial successors into the open set. Returns
	// true if the goal was reached while seeding.
	Seed(c *Context, search PointToPointSearch, start, goal grid.Coord) bool

	// Expand processes one popped Node, pushing further successors.
	// Returns true if the goal was reached.
	Expand(c *Context, search PointToPointSearch, node Node, goal grid.Coord) bool
}

// Context holds the reusable state for point-to-point searches over a
// fixed grid size: a seen-set and an open-set priority queue.
type Context struct {
	seen    *cardinal.SeenSet
	pq      nodeHeap
	profile Profile
}

// NewContext allocates a Context for a grid of the given size.
func NewContext(size grid.Size) *Context {
	return &Context{seen: cardinal.NewSeenSet(size)}
}

// ConsiderStep evaluates a single-cell successor: if step.ToCoord is in
// bounds and either unvisited this search or previously reached at a
// higher cost, it is marked visited at cost; reaching the goal stops the
// search; otherwise, if enterable, it is pushed onto the open set.
// Exported for use by ExpandPolicy implementations.
func (c *Context) ConsiderStep(search PointToPointSearch, step cardinal.Step, cost uint32, goal grid.Coord) bool {
	if !c.seen.TryVisitStep(step, cost) {
		return false
	}
	c.profile.CellsVisited++
	if step.ToCoord == goal {
		return true
	}
	if search.CanEnter(step.ToCoord) {
		heuristic := step.ToCoord.ManhattanDistance(goal)
		heap.Push(&c.pq, Node{Cost: cost, CostPlusHeuristic: cost + heuristic, Step: step})
	}
	return false
}

// ConsiderJump is ConsiderStep's counterpart for a Jump-Point-Search
// compressed run: jump.ToCoord is marked visited (with relaxation, since
// A*'s pop order is by f-score) and, if it is not the goal and is
// enterable, a Node continuing from it is pushed. Exported for use by
// ExpandPolicy implementations.
func (c *Context) ConsiderJump(search PointToPointSearch, jump cardinal.Jump, cost uint32, goal grid.Coord) bool {
	if !c.seen.TryVisitJump(jump, cost) {
		return false
	}
	c.profile.CellsVisited++
	c.profile.JumpsTaken++
	if jump.ToCoord == goal {
		return true
	}
	if search.CanEnter(jump.ToCoord) {
		heuristic := jump.ToCoord.ManhattanDistance(goal)
		step := cardinal.Step{ToCoord: jump.ToCoord, InDirection: jump.Unit()}
		heap.Push(&c.pq, Node{Cost: cost, CostPlusHeuristic: cost + heuristic, Step: step})
	}
	return false
}

// search drives the A* loop, returning whether the goal was reached.
func (c *Context) search(policy ExpandPolicy, search PointToPointSearch, start, goal grid.Coord) bool {
	c.profile = Profile{}
	c.seen.Init(start)
	c.pq = c.pq[:0]

	if start == goal {
		return true
	}
	if policy.Seed(c, search, start, goal) {
		return true
	}
	for c.pq.Len() > 0 {
		node := heap.Pop(&c.pq).(Node)
		c.profile.NodesPopped++
		if policy.Expand(c, search, node, goal) {
			return true
		}
	}
	return false
}

// PointToPointSearchPath searches from start to goal using policy and
// writes the resulting path into path. Returns ErrNoPath if the goal is
// unreachable.
func (c *Context) PointToPointSearchPath(policy ExpandPolicy, search PointToPointSearch, start, goal grid.Coord, path *cardinal.Path) error {
	if !c.search(policy, search, start, goal) {
		return ErrNoPath
	}
	if !c.seen.BuildPathTo(goal, path) {
		path.Clear()
	}
	return nil
}

// PointToPointSearchFirst searches from start to goal using policy and
// reports the direction of the first step. The second return value is
// false when start equals goal (no step is needed). Returns ErrNoPath if
// the goal is unreachable.
func (c *Context) PointToPointSearchFirst(policy ExpandPolicy, search PointToPointSearch, start, goal grid.Coord) (direction.CardinalDirection, bool, error) {
	if !c.search(policy, search, start, goal) {
		return 0, false, ErrNoPath
	}
	dir, ok := c.seen.FirstDirectionTowards(goal)
	return dir, ok, nil
}

// PointToPointSearchProfile runs the same search as PointToPointSearchPath
// but, instead of producing a path, reports counters useful for comparing
// Sequential against JumpPoint on a given grid and query.
func (c *Context) PointToPointSearchProfile(policy ExpandPolicy, search PointToPointSearch, start, goal grid.Coord) (Profile, error) {
	if !c.search(policy, search, start, goal) {
		return c.profile, ErrNoPath
	}
	return c.profile, nil
}
