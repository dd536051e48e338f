package distancemap

import (
	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

type node struct {
	coord    grid.Coord
	distance uint32
}

// PopulateContext holds the seed queue for a flood-fill: the set of cells
// a populate call treats as distance-zero sources. Reusable across calls.
type PopulateContext struct {
	queue []node
}

// NewPopulateContext returns an empty PopulateContext.
func NewPopulateContext() *PopulateContext {
	return &PopulateContext{}
}

// Clear empties the seed queue without populating anything.
func (p *PopulateContext) Clear() {
	p.queue = p.queue[:0]
}

// Add seeds coord as a distance-zero source for the next populate call.
func (p *PopulateContext) Add(coord grid.Coord) {
	p.queue = append(p.queue, node{coord: coord, distance: 0})
}

// PopulateApproach fills m with the distance from every reachable cell to
// the nearest seeded source, via multi-source BFS capped at maxDistance.
// Consumes the seed queue.
func (p *PopulateContext) PopulateApproach(canEnter cardinal.CanEnter, maxDistance uint32, m *DistanceMap) {
	m.Clear()
	for _, n := range p.queue {
		if c := m.grid.GetMutable(n.coord); c != nil {
			c.epoch = m.epoch
			c.distance = 0
		}
	}
	if maxDistance == 0 {
		p.queue = p.queue[:0]
		return
	}

	for len(p.queue) > 0 {
		n := p.queue[0]
		p.queue = p.queue[1:]
		neighbourDistance := n.distance + 1
		for _, d := range direction.CardinalDirections() {
			nc := n.coord.Add(d.Coord())
			if !canEnter.CanEnter(nc) {
				continue
			}
			c := m.grid.GetMutable(nc)
			if c == nil || c.epoch == m.epoch {
				continue
			}
			c.epoch = m.epoch
			c.distance = neighbourDistance
			if neighbourDistance != maxDistance {
				p.queue = append(p.queue, node{coord: nc, distance: neighbourDistance})
			}
		}
	}
}

// PopulateFlee fills m so that distances shrink moving away from the
// seeded sources: descending the field (as DirectionToBestNeighbour does)
// leads away from a threat. This runs two flood-fills: the
// first (distance 0..maxDistance, same rule as PopulateApproach) finds the
// maxDistance frontier; the second flood-fills outward from that frontier,
// so a cell's "flee distance" is how far it sits from the danger's edge.
// Consumes the seed queue.
func (p *PopulateContext) PopulateFlee(canEnter cardinal.CanEnter, maxDistance uint32, m *DistanceMap) {
	m.Clear()
	for _, n := range p.queue {
		if c := m.grid.GetMutable(n.coord); c != nil {
			c.epoch = m.epoch
			c.distance = 0
		}
	}
	if maxDistance == 0 {
		p.queue = p.queue[:0]
		return
	}

	var frontier []node
	for len(p.queue) > 0 {
		n := p.queue[0]
		p.queue = p.queue[1:]
		if n.distance == maxDistance {
			frontier = append(frontier, n)
			continue
		}
		neighbourDistance := n.distance + 1
		for _, d := range direction.CardinalDirections() {
			nc := n.coord.Add(d.Coord())
			if !canEnter.CanEnter(nc) {
				continue
			}
			c := m.grid.GetMutable(nc)
			if c == nil || c.epoch == m.epoch {
				continue
			}
			c.epoch = m.epoch
			c.distance = neighbourDistance
			p.queue = append(p.queue, node{coord: nc, distance: neighbourDistance})
		}
	}

	if len(frontier) == 0 {
		return
	}

	// Second phase: reverse flood-fill from the frontier. Every cell
	// touched in phase one carries m.epoch; cells touched here must carry
	// exactly m.epoch-1 to be eligible, which both protects frontier cells
	// from being re-expanded and stops the fill leaking past phase one's
	// reachable set.
	phaseOneEpoch := m.epoch
	m.epoch++
	for i := range frontier {
		frontier[i].distance = 0
		if c := m.grid.GetMutable(frontier[i].coord); c != nil {
			c.epoch = m.epoch
			c.distance = 0
		}
	}
	queue := frontier
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		neighbourDistance := n.distance + 1
		for _, d := range direction.CardinalDirections() {
			nc := n.coord.Add(d.Coord())
			c := m.grid.GetMutable(nc)
			if c == nil || c.epoch != phaseOneEpoch {
				continue
			}
			c.epoch = m.epoch
			c.distance = neighbourDistance
			queue = append(queue, node{coord: nc, distance: neighbourDistance})
		}
	}
}
