package cardinal

import (
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
)

// UnitCoord is a grid.Coord constrained to one of the four cardinal unit
// offsets. The zero value is not a valid UnitCoord; construct one via
// UNIT_COORDS, FromCardinalDirection, or by narrowing a CardinalCoord.
type UnitCoord struct {
	c grid.Coord
}

// UNIT_COORDS enumerates the four unit offsets in the module's fixed N,E,S,W
// scan order.
var UNIT_COORDS = [4]UnitCoord{
	{c: direction.North.Coord()},
	{c: direction.East.Coord()},
	{c: direction.South.Coord()},
	{c: direction.West.Coord()},
}

// FromCardinalDirection converts a CardinalDirection to its UnitCoord.
func FromCardinalDirection(d direction.CardinalDirection) UnitCoord {
	return UnitCoord{c: d.Coord()}
}

// Coord returns the underlying unit offset.
func (u UnitCoord) Coord() grid.Coord {
	return u.c
}

// Left90 rotates u 90 degrees counter-clockwise.
func (u UnitCoord) Left90() UnitCoord {
	return UnitCoord{c: u.c.Left90()}
}

// Right90 rotates u 90 degrees clockwise.
func (u UnitCoord) Right90() UnitCoord {
	return UnitCoord{c: u.c.Right90()}
}

// Left135 returns the offset of the cell diagonally behind-and-to-the-left
// of a traveller facing u: the cell reached by stepping backward then left.
// Used by JPS's forced-neighbour test; the result is not itself cardinal.
func (u UnitCoord) Left135() grid.Coord {
	return u.c.Scale(-1).Add(u.Left90().c)
}

// Right135 is Left135's mirror: backward then right.
func (u UnitCoord) Right135() grid.Coord {
	return u.c.Scale(-1).Add(u.Right90().c)
}

// ToCardinalDirection converts u to its CardinalDirection.
func (u UnitCoord) ToCardinalDirection() direction.CardinalDirection {
	return direction.FromUnitCoord(u.c)
}

// ToCardinalCoord widens u to a magnitude-1 CardinalCoord.
func (u UnitCoord) ToCardinalCoord() CardinalCoord {
	return CardinalCoord{c: u.c}
}

// Scale returns a CardinalCoord of magnitude by in direction u. Panics if
// by == 0, mirroring the original crate's assert_ne!(by, 0): a zero-length
// jump is a caller bug, not a representable value.
func (u UnitCoord) Scale(by uint32) CardinalCoord {
	if by == 0 {
		panic("cardinal: scale by zero")
	}
	return CardinalCoord{c: u.c.Scale(int32(by))}
}

// CardinalCoord is a grid.Coord whose X or Y (but not both) is nonzero: any
// nonzero integer multiple of a UnitCoord. It represents a compressed
// straight-line run, as produced by Jump Point Search.
type CardinalCoord struct {
	c grid.Coord
}

func isCardinal(c grid.Coord) bool {
	return (c.X == 0) != (c.Y == 0)
}

// FromCoord narrows a grid.Coord to a CardinalCoord, returning false if it
// is not cardinal (both axes zero, or both nonzero).
func FromCoord(c grid.Coord) (CardinalCoord, bool) {
	if !isCardinal(c) {
		return CardinalCoord{}, false
	}
	return CardinalCoord{c: c}, true
}

// Coord returns the underlying offset.
func (c CardinalCoord) Coord() grid.Coord {
	return c.c
}

// Magnitude returns |x|+|y|, the run length this CardinalCoord represents.
func (c CardinalCoord) Magnitude() uint32 {
	if c.c.X != 0 {
		return absI32(c.c.X)
	}
	return absI32(c.c.Y)
}

func absI32(v int32) uint32 {
	if v < 0 {
		return uint32(-v)
	}
	return uint32(v)
}

// Left90 rotates c 90 degrees counter-clockwise, preserving magnitude.
func (c CardinalCoord) Left90() CardinalCoord {
	return CardinalCoord{c: c.c.Left90()}
}

// Right90 rotates c 90 degrees clockwise, preserving magnitude.
func (c CardinalCoord) Right90() CardinalCoord {
	return CardinalCoord{c: c.c.Right90()}
}

// ToUnitCoord normalises c to its magnitude-1 direction.
func (c CardinalCoord) ToUnitCoord() UnitCoord {
	return UnitCoord{c: c.ToCardinalDirection().Coord()}
}

// ToCardinalDirection returns the direction c points in, independent of magnitude.
func (c CardinalCoord) ToCardinalDirection() direction.CardinalDirection {
	if c.c.X == 0 {
		if c.c.Y < 0 {
			return direction.North
		}
		return direction.South
	}
	if c.c.X < 0 {
		return direction.West
	}
	return direction.East
}
