// Package direction defines the four cardinal directions used throughout
// cardinalgrid's grid-search engines and the fixed N,E,S,W order in which
// every engine scans a cell's neighbours.
package direction

import "github.com/katalvlaran/cardinalgrid/grid"

// CardinalDirection is one of the four axis-aligned directions on a grid
// whose y coordinate increases downward (row index).
type CardinalDirection int

const (
	North CardinalDirection = iota
	East
	South
	West
)

// String renders the direction's name, mostly for debug output.
func (d CardinalDirection) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}

// Coord returns the unit offset for d.
func (d CardinalDirection) Coord() grid.Coord {
	switch d {
	case North:
		return grid.NewCoord(0, -1)
	case East:
		return grid.NewCoord(1, 0)
	case South:
		return grid.NewCoord(0, 1)
	case West:
		return grid.NewCoord(-1, 0)
	default:
		panic("direction: invalid CardinalDirection")
	}
}

// cardinalDirections is the scan order every engine in this module uses:
// north, east, south, west. distancemap's direction-to-best-neighbour
// tie-break depends on this exact order.
var cardinalDirections = [4]CardinalDirection{North, East, South, West}

// CardinalDirections returns the four directions in the fixed N,E,S,W scan
// order used by every neighbour-iteration in this module.
func CardinalDirections() [4]CardinalDirection {
	return cardinalDirections
}

// FromUnitCoord maps a unit offset back to its CardinalDirection. It panics
// if c is not one of the four unit offsets; callers that already hold a
// cardinal.UnitCoord can rely on this never happening.
func FromUnitCoord(c grid.Coord) CardinalDirection {
	switch {
	case c.X == 0 && c.Y == -1:
		return North
	case c.X == 1 && c.Y == 0:
		return East
	case c.X == 0 && c.Y == 1:
		return South
	case c.X == -1 && c.Y == 0:
		return West
	default:
		panic("direction: not a unit coord")
	}
}
