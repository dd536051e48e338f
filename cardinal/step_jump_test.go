package cardinal_test

import (
	"testing"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/stretchr/testify/assert"
)

func TestStepForwardLeftRight(t *testing.T) {
	start := cardinal.Step{ToCoord: grid.NewCoord(5, 5), InDirection: cardinal.FromCardinalDirection(direction.East)}

	fwd := start.Forward()
	assert.Equal(t, grid.NewCoord(6, 5), fwd.ToCoord)
	assert.Equal(t, direction.East, fwd.InDirection.ToCardinalDirection())

	left := start.Left()
	assert.Equal(t, grid.NewCoord(5, 4), left.ToCoord)
	assert.Equal(t, direction.North, left.InDirection.ToCardinalDirection())

	right := start.Right()
	assert.Equal(t, grid.NewCoord(5, 6), right.ToCoord)
	assert.Equal(t, direction.South, right.InDirection.ToCardinalDirection())
}

func TestJumpForwardRepeatsRun(t *testing.T) {
	east := cardinal.FromCardinalDirection(direction.East)
	j := cardinal.Jump{ToCoord: grid.NewCoord(3, 0), InDirection: east.Scale(3)}

	next := j.Forward()
	assert.Equal(t, grid.NewCoord(6, 0), next.ToCoord)
	assert.Equal(t, uint32(3), next.InDirection.Magnitude())
	assert.Equal(t, east, next.Unit())
}
