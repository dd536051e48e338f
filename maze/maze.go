package maze

import (
	"math/rand"

	"github.com/katalvlaran/cardinalgrid/grid"
)

// MazeCell is the rendered state of one cell of a generated maze.
type MazeCell int

const (
	Wall MazeCell = iota
	Passage
)

// String renders the cell for debug output.
func (c MazeCell) String() string {
	if c == Passage {
		return "Passage"
	}
	return "Wall"
}

// wallDirection names one of the two walls a cell owns: its east wall
// (shared with the cell to its east) and its south wall (shared with the
// cell below). Every wall in the grid belongs to exactly one cell this way.
type wallDirection int

const (
	east wallDirection = iota
	south
)

type wall struct {
	coord     grid.Coord
	direction wallDirection
}

// wallsAround returns the four walls adjacent to coord: its own east and
// south walls, plus its west neighbour's east wall and north neighbour's
// south wall.
func wallsAround(c grid.Coord) [4]wall {
	return [4]wall{
		{coord: c, direction: east},
		{coord: c, direction: south},
		{coord: c.Sub(grid.NewCoord(1, 0)), direction: east},
		{coord: c.Sub(grid.NewCoord(0, 1)), direction: south},
	}
}

// coords returns the two cells a wall separates.
func (w wall) coords() [2]grid.Coord {
	switch w.direction {
	case east:
		return [2]grid.Coord{w.coord, w.coord.Add(grid.NewCoord(1, 0))}
	default:
		return [2]grid.Coord{w.coord, w.coord.Add(grid.NewCoord(0, 1))}
	}
}

type walls struct {
	east  bool
	south bool
}

func (w *walls) get(d wallDirection) *bool {
	if d == east {
		return &w.east
	}
	return &w.south
}

type generationCell struct {
	inMaze    bool
	seenWalls walls
	passages  walls
}

// MazeGenerator runs randomised Prim's algorithm over a Size-shaped cell
// grid, reusable across repeated Generate calls.
type MazeGenerator struct {
	size         grid.Size
	cells        *grid.Grid[generationCell]
	wallsToVisit []wall
}

// New allocates a MazeGenerator for a grid of the given size.
func New(size grid.Size) *MazeGenerator {
	return &MazeGenerator{size: size, cells: grid.NewGrid[generationCell](size)}
}

func (g *MazeGenerator) addWall(w wall) {
	cell := g.cells.GetMutable(w.coord)
	if cell == nil {
		return
	}
	seen := cell.seenWalls.get(w.direction)
	if !*seen {
		*seen = true
		g.wallsToVisit = append(g.wallsToVisit, w)
	}
}

func (g *MazeGenerator) addCellAt(c grid.Coord) {
	cell := g.cells.GetMutable(c)
	if cell == nil || cell.inMaze {
		return
	}
	cell.inMaze = true
	for _, w := range wallsAround(c) {
		g.addWall(w)
	}
}

func (g *MazeGenerator) addPassage(w wall) {
	if cell := g.cells.GetMutable(w.coord); cell != nil {
		*cell.passages.get(w.direction) = true
	}
}

// processWall carves w into a passage if it separates exactly one
// already-in-maze cell from one not yet in the maze, pulling the new cell
// into the maze. Returns false if both or neither side was already in
// the maze (nothing to do), or if w is out of bounds on either side.
func (g *MazeGenerator) processWall(w wall) bool {
	coords := w.coords()
	cellA, okA := g.cells.Get(coords[0])
	cellB, okB := g.cells.Get(coords[1])
	if !okA || !okB {
		return false
	}
	switch {
	case cellA.inMaze && cellB.inMaze:
		return false
	case cellA.inMaze:
		g.addCellAt(coords[1])
	case cellB.inMaze:
		g.addCellAt(coords[0])
	default:
		return false
	}
	g.addPassage(w)
	return true
}

func (g *MazeGenerator) removeRandomWall(rng *rand.Rand) (wall, bool) {
	if len(g.wallsToVisit) == 0 {
		return wall{}, false
	}
	i := rng.Intn(len(g.wallsToVisit))
	w := g.wallsToVisit[i]
	last := len(g.wallsToVisit) - 1
	g.wallsToVisit[i] = g.wallsToVisit[last]
	g.wallsToVisit = g.wallsToVisit[:last]
	return w, true
}

// buildMaze renders the carved cell/wall state onto a grid double the
// input size minus one: cell (x,y) lands at (2x,2y); a carved east/south
// passage lands at the odd coordinate between a cell and its neighbour.
func (g *MazeGenerator) buildMaze() *grid.Grid[MazeCell] {
	outSize := g.size.ScaleSub(2, grid.NewSize(1, 1))
	out := grid.NewGridClone(outSize, Wall)

	g.cells.Enumerate(func(c grid.Coord, cell generationCell) {
		mazeCoord := c.Scale(2)
		if cell.inMaze {
			out.Set(mazeCoord, Passage)
		}
		if cell.passages.east {
			out.Set(mazeCoord.Add(grid.NewCoord(1, 0)), Passage)
		}
		if cell.passages.south {
			out.Set(mazeCoord.Add(grid.NewCoord(0, 1)), Passage)
		}
	})
	return out
}

// Generate carves a fresh maze from start using rng for wall selection,
// discarding any previous generation's state.
func (g *MazeGenerator) Generate(start grid.Coord, rng *rand.Rand) *grid.Grid[MazeCell] {
	g.cells = grid.NewGrid[generationCell](g.size)
	g.wallsToVisit = g.wallsToVisit[:0]

	g.addCellAt(start)
	for {
		w, ok := g.removeRandomWall(rng)
		if !ok {
			break
		}
		g.processWall(w)
	}
	return g.buildMaze()
}
