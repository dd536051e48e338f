package fieldsearch_test

import (
	"testing"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/distancemap"
	"github.com/katalvlaran/cardinalgrid/fieldsearch"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An open 10x1 hallway with the goal at the far east end: distance(x) = 9-x.
func buildHallway(t *testing.T) *distancemap.DistanceMap {
	t.Helper()
	size := grid.NewSize(10, 1)
	canEnter := cardinal.CanEnterFunc(func(c grid.Coord) bool {
		return size.Contains(c)
	})
	dm := distancemap.New(size)
	ctx := distancemap.NewPopulateContext()
	ctx.Add(grid.NewCoord(9, 0))
	ctx.PopulateApproach(canEnter, 20, dm)
	return dm
}

func TestSearchPathStopsAtStepBudget(t *testing.T) {
	dm := buildHallway(t)
	size := grid.NewSize(10, 1)
	canEnter := cardinal.CanEnterFunc(func(c grid.Coord) bool {
		return size.Contains(c)
	})

	ctx := fieldsearch.NewContext(size)
	path := cardinal.NewPath()
	ok := ctx.SearchPath(canEnter, grid.NewCoord(0, 0), 3, dm, path)
	require.True(t, ok)

	end, found := path.Front()
	require.True(t, found)
	_ = end
	coords := path.ToSlice()
	last := coords[len(coords)-1]
	assert.Equal(t, grid.NewCoord(3, 0), last)

	dist, ok := dm.Distance(last)
	require.True(t, ok)
	assert.Equal(t, uint32(6), dist)
}

func TestSearchFirstPointsTowardGoal(t *testing.T) {
	dm := buildHallway(t)
	size := grid.NewSize(10, 1)
	canEnter := cardinal.CanEnterFunc(func(c grid.Coord) bool {
		return size.Contains(c)
	})

	ctx := fieldsearch.NewContext(size)
	dir, ok := ctx.SearchFirst(canEnter, grid.NewCoord(0, 0), 5, dm)
	require.True(t, ok)
	assert.Equal(t, direction.East, dir)
}

func TestSearchPathFailsWithoutFieldCoverage(t *testing.T) {
	size := grid.NewSize(10, 1)
	dm := distancemap.New(size)
	canEnter := cardinal.CanEnterFunc(func(c grid.Coord) bool { return size.Contains(c) })

	ctx := fieldsearch.NewContext(size)
	path := cardinal.NewPath()
	ok := ctx.SearchPath(canEnter, grid.NewCoord(0, 0), 3, dm, path)
	assert.False(t, ok)
}
