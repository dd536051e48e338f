package cardinal

import "github.com/katalvlaran/cardinalgrid/grid"

// Jump is a Jump-Point-Search move: a straight-line run of one or more
// cells compressed into a single edge, plus the direction it was entered
// from. Unlike Step, InDirection here is a CardinalCoord so the run's
// length survives without walking every intermediate cell.
type Jump struct {
	ToCoord     grid.Coord
	InDirection CardinalCoord
}

// Forward extends the jump by its own direction's magnitude again, i.e.
// repeats the same straight run one more time.
func (j Jump) Forward() Jump {
	return Jump{ToCoord: j.ToCoord.Add(j.InDirection.Coord()), InDirection: j.InDirection}
}

// Unit narrows j's direction to the cardinal unit it travels in,
// discarding the run length.
func (j Jump) Unit() UnitCoord {
	return j.InDirection.ToUnitCoord()
}
