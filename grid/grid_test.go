package grid_test

import (
	"testing"

	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordRotations(t *testing.T) {
	c := grid.NewCoord(1, 0)
	assert.Equal(t, grid.NewCoord(0, -1), c.Left90())
	assert.Equal(t, grid.NewCoord(0, 1), c.Right90())
}

func TestManhattanDistance(t *testing.T) {
	a := grid.NewCoord(1, 1)
	b := grid.NewCoord(4, 5)
	assert.Equal(t, uint32(7), a.ManhattanDistance(b))
}

func TestGridBoundsAndIndex(t *testing.T) {
	size := grid.NewSize(3, 2)
	g := grid.NewGridFunc(size, func(c grid.Coord) int {
		return int(c.Y)*3 + int(c.X)
	})
	v, ok := g.Get(grid.NewCoord(2, 1))
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = g.Get(grid.NewCoord(3, 0))
	assert.False(t, ok)

	g.Set(grid.NewCoord(0, 0), 99)
	v, _ = g.Get(grid.NewCoord(0, 0))
	assert.Equal(t, 99, v)

	row := g.Row(1)
	assert.Equal(t, []int{3, 4, 5}, row)
}

func TestGridScaleSub(t *testing.T) {
	in := grid.NewSize(5, 5)
	out := in.ScaleSub(2, grid.NewSize(1, 1))
	assert.Equal(t, grid.NewSize(9, 9), out)
}
