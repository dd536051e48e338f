package distancemap_test

import (
	"testing"

	"github.com/katalvlaran/cardinalgrid/cardinal"
	"github.com/katalvlaran/cardinalgrid/direction"
	"github.com/katalvlaran/cardinalgrid/distancemap"
	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldCanEnter(world *grid.Grid[rune]) cardinal.CanEnter {
	return cardinal.CanEnterFunc(func(c grid.Coord) bool {
		ch, ok := world.Get(c)
		return ok && ch != '#'
	})
}

func goalsOf(world *grid.Grid[rune]) []grid.Coord {
	var goals []grid.Coord
	world.Enumerate(func(c grid.Coord, ch rune) {
		if ch == '@' {
			goals = append(goals, c)
		}
	})
	return goals
}

var gridA = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"####.#####",
	"..........",
	".@........",
	"..........",
}

func TestDistanceMapGridA(t *testing.T) {
	world, _, _ := fixture.ParseGrid(gridA)
	canEnter := worldCanEnter(world)

	ctx := distancemap.NewPopulateContext()
	dm := distancemap.New(world.Size())
	for _, g := range goalsOf(world) {
		ctx.Add(g)
	}
	ctx.PopulateApproach(canEnter, 7, dm)

	assertDistance(t, dm, grid.NewCoord(4, 6), 5)
	assertDistance(t, dm, grid.NewCoord(4, 5), 6)
	assertDistance(t, dm, grid.NewCoord(3, 5), 7)
	assertDistance(t, dm, grid.NewCoord(5, 5), 7)
	assertDistance(t, dm, grid.NewCoord(4, 4), 7)

	_, ok := dm.Distance(grid.NewCoord(4, 3))
	assert.False(t, ok)

	dir, ok := dm.DirectionToBestNeighbour(grid.NewCoord(4, 6))
	require.True(t, ok)
	assert.Equal(t, direction.South, dir)

	_, ok = dm.DirectionToBestNeighbour(grid.NewCoord(1, 8))
	assert.False(t, ok)

	for _, g := range goalsOf(world) {
		ctx.Add(g)
	}
	ctx.PopulateFlee(canEnter, 10, dm)

	assertDistance(t, dm, grid.NewCoord(4, 6), 5)
	assertDistance(t, dm, grid.NewCoord(9, 7), 11)
	assertDistance(t, dm, grid.NewCoord(1, 8), 10)

	dir, ok = dm.DirectionToBestNeighbour(grid.NewCoord(1, 7))
	require.True(t, ok)
	assert.Equal(t, direction.East, dir)
}

var gridB = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
}

func TestDistanceMapGridBNoGoals(t *testing.T) {
	world, _, _ := fixture.ParseGrid(gridB)
	canEnter := worldCanEnter(world)

	ctx := distancemap.NewPopulateContext()
	dm := distancemap.New(world.Size())
	ctx.PopulateApproach(canEnter, 7, dm)
	_, ok := dm.Distance(grid.NewCoord(4, 5))
	assert.False(t, ok)

	ctx.PopulateFlee(canEnter, 7, dm)
	_, ok = dm.Distance(grid.NewCoord(4, 5))
	assert.False(t, ok)
}

var gridC = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"####.#####",
	".@.......@",
	".@........",
	"..........",
}

func TestDistanceMapGridCTwoGoals(t *testing.T) {
	world, _, _ := fixture.ParseGrid(gridC)
	canEnter := worldCanEnter(world)

	ctx := distancemap.NewPopulateContext()
	dm := distancemap.New(world.Size())
	for _, g := range goalsOf(world) {
		ctx.Add(g)
	}
	ctx.PopulateApproach(canEnter, 7, dm)
	assertDistance(t, dm, grid.NewCoord(4, 6), 4)
	dir, ok := dm.DirectionToBestNeighbour(grid.NewCoord(4, 6))
	require.True(t, ok)
	assert.Equal(t, direction.South, dir)

	for _, g := range goalsOf(world) {
		ctx.Add(g)
	}
	ctx.PopulateFlee(canEnter, 10, dm)
	assertDistance(t, dm, grid.NewCoord(4, 6), 6)

	dir, ok = dm.DirectionToBestNeighbour(grid.NewCoord(1, 7))
	require.True(t, ok)
	assert.Equal(t, direction.East, dir)

	dir, ok = dm.DirectionToBestNeighbour(grid.NewCoord(6, 7))
	require.True(t, ok)
	assert.Equal(t, direction.West, dir)
}

func assertDistance(t *testing.T, dm *distancemap.DistanceMap, c grid.Coord, want uint32) {
	t.Helper()
	got, ok := dm.Distance(c)
	require.True(t, ok, "expected %v to be reachable", c)
	assert.Equal(t, want, got)
}
