package grid

// Grid[T] is a rectangular container of T addressed by Coord, backed by a
// single flat slice in row-major order.
type Grid[T any] struct {
	size  Size
	cells []T
}

// NewGrid allocates a Size-shaped grid with every cell set to the zero value of T.
func NewGrid[T any](size Size) *Grid[T] {
	return &Grid[T]{
		size:  size,
		cells: make([]T, size.Area()),
	}
}

// NewGridFunc allocates a Size-shaped grid, calling fn(coord) to populate
// each cell in row-major order.
func NewGridFunc[T any](size Size, fn func(Coord) T) *Grid[T] {
	g := &Grid[T]{size: size, cells: make([]T, size.Area())}
	i := 0
	for y := int32(0); y < size.H; y++ {
		for x := int32(0); x < size.W; x++ {
			g.cells[i] = fn(NewCoord(x, y))
			i++
		}
	}
	return g
}

// NewGridClone allocates a Size-shaped grid with every cell set to a copy of v.
func NewGridClone[T any](size Size, v T) *Grid[T] {
	return NewGridFunc(size, func(Coord) T { return v })
}

// Size returns the grid's dimensions.
func (g *Grid[T]) Size() Size {
	return g.size
}

func (g *Grid[T]) index(c Coord) (int, bool) {
	if !g.size.Contains(c) {
		return 0, false
	}
	return int(c.Y)*int(g.size.W) + int(c.X), true
}

// Get returns the cell at c and whether c was in bounds.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	i, ok := g.index(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// GetChecked returns the cell at c, panicking if c is out of bounds.
// Reserved for call sites that have already established c is in bounds
// (e.g. walking a back-pointer chain); it mirrors grid_2d's get_checked/expect.
func (g *Grid[T]) GetChecked(c Coord) T {
	i, ok := g.index(c)
	if !ok {
		panic("grid: coord out of bounds")
	}
	return g.cells[i]
}

// GetMutable returns a pointer to the cell at c, or nil if out of bounds.
func (g *Grid[T]) GetMutable(c Coord) *T {
	i, ok := g.index(c)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// GetCheckedMutable returns a pointer to the cell at c, panicking if out of bounds.
func (g *Grid[T]) GetCheckedMutable(c Coord) *T {
	i, ok := g.index(c)
	if !ok {
		panic("grid: coord out of bounds")
	}
	return &g.cells[i]
}

// Set writes v to the cell at c. It is a no-op if c is out of bounds.
func (g *Grid[T]) Set(c Coord, v T) {
	if i, ok := g.index(c); ok {
		g.cells[i] = v
	}
}

// Row returns the cells of row y in x-ascending order. Returns nil if y is
// out of bounds.
func (g *Grid[T]) Row(y int32) []T {
	if y < 0 || y >= g.size.H {
		return nil
	}
	start := int(y) * int(g.size.W)
	return g.cells[start : start+int(g.size.W)]
}

// Enumerate calls fn once per cell in row-major order with its coordinate and value.
func (g *Grid[T]) Enumerate(fn func(Coord, T)) {
	i := 0
	for y := int32(0); y < g.size.H; y++ {
		for x := int32(0); x < g.size.W; x++ {
			fn(NewCoord(x, y), g.cells[i])
			i++
		}
	}
}

// Fill resets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
