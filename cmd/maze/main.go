// Command maze prints a deterministic 100x100 maze to stdout, '.' for
// passage and '█' for wall.
package main

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cardinalgrid/grid"
	"github.com/katalvlaran/cardinalgrid/maze"
)

func main() {
	size := grid.NewSize(100, 100)
	rng := rand.New(rand.NewSource(0))
	gen := maze.New(size)
	m := gen.Generate(grid.NewCoord(1, 1), rng)

	out := m.Size()
	for y := int32(0); y < out.H; y++ {
		for _, cell := range m.Row(y) {
			if cell == maze.Passage {
				fmt.Print(".")
			} else {
				fmt.Print("█")
			}
		}
		fmt.Println()
	}
}
