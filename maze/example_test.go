package maze_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/maze"
)

// ExampleMazeGenerator_Generate carves a maze from a 4x3 cell grid and
// reports the rendered output size and the state of the start cell, which
// Generate always carves into a passage.
func ExampleMazeGenerator_Generate() {
	gen := maze.New(grid.NewSize(4, 3))
	start := grid.NewCoord(0, 0)
	m := gen.Generate(start, rand.New(rand.NewSource(1)))

	startCell, _ := m.Get(start)
	fmt.Println(m.Size(), startCell)
	// Output:
	// {7 5} Passage
}
