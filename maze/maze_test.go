package maze_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOutputSize(t *testing.T) {
	gen := maze.New(grid.NewSize(5, 5))
	m := gen.Generate(grid.NewCoord(0, 0), rand.New(rand.NewSource(0)))
	assert.Equal(t, grid.NewSize(9, 9), m.Size())
}

func TestGenerateStartIsPassage(t *testing.T) {
	gen := maze.New(grid.NewSize(5, 5))
	m := gen.Generate(grid.NewCoord(2, 2), rand.New(rand.NewSource(1)))
	cell, ok := m.Get(grid.NewCoord(4, 4))
	require.True(t, ok)
	assert.Equal(t, maze.Passage, cell)
}

func TestGenerateIsFullyConnected(t *testing.T) {
	gen := maze.New(grid.NewSize(6, 6))
	m := gen.Generate(grid.NewCoord(0, 0), rand.New(rand.NewSource(7)))

	size := m.Size()
	visited := grid.NewGridClone(size, false)
	queue := []grid.Coord{grid.NewCoord(0, 0)}
	visited.Set(queue[0], true)
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, d := range []grid.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
			nc := c.Add(d)
			cell, ok := m.Get(nc)
			if !ok || cell != maze.Passage {
				continue
			}
			seen, _ := visited.Get(nc)
			if seen {
				continue
			}
			visited.Set(nc, true)
			queue = append(queue, nc)
		}
	}

	passages := 0
	m.Enumerate(func(_ grid.Coord, cell maze.MazeCell) {
		if cell == maze.Passage {
			passages++
		}
	})
	assert.Equal(t, passages, count)
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	gen1 := maze.New(grid.NewSize(8, 8))
	gen2 := maze.New(grid.NewSize(8, 8))

	m1 := gen1.Generate(grid.NewCoord(0, 0), rand.New(rand.NewSource(42)))
	m2 := gen2.Generate(grid.NewCoord(0, 0), rand.New(rand.NewSource(42)))

	var diffs int
	m1.Enumerate(func(c grid.Coord, cell maze.MazeCell) {
		other, _ := m2.Get(c)
		if other != cell {
			diffs++
		}
	})
	assert.Zero(t, diffs)
}
