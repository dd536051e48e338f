package direction_test

import (
	"testing"

	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/stretchr/testify/assert"
)

func TestCardinalDirectionsOrder(t *testing.T) {
	got := direction.CardinalDirections()
	assert.Equal(t, [4]direction.CardinalDirection{
		direction.North, direction.East, direction.South, direction.West,
	}, got)
}

func TestCoordRoundTrip(t *testing.T) {
	for _, d := range direction.CardinalDirections() {
		assert.Equal(t, d, direction.FromUnitCoord(d.Coord()))
	}
}

func TestCoordValues(t *testing.T) {
	assert.Equal(t, grid.NewCoord(0, -1), direction.North.Coord())
	assert.Equal(t, grid.NewCoord(1, 0), direction.East.Coord())
	assert.Equal(t, grid.NewCoord(0, 1), direction.South.Coord())
	assert.Equal(t, grid.NewCoord(-1, 0), direction.West.Coord())
}
