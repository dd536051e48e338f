// Package maze generates perfect mazes (spanning trees with no cycles or
// isolated regions) over a rectangular grid using randomised Prim's
// algorithm.
//
// What
//
//   - MazeGenerator.Generate carves passages between cells of an input
//     Size-shaped grid, then renders the result onto an output grid twice
//     the size minus one: even coordinates are cells, odd coordinates
//     between two carved neighbours are the passages connecting them.
//
// Why
//
//   - Randomised Prim's produces a maze with no isolated regions and
//     exactly one path between any two cells, which makes it a convenient,
//     reproducible exercise grid for the rest of this module's pathfinding
//     engines.
//
// Complexity
//
//   - Time:   O(cells) — each wall is visited and removed from the
//     frontier at most once.
//   - Memory: O(cells) for the generation grid and wall frontier.
package maze
