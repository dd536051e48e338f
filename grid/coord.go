package grid

// Coord is a signed 2D integer coordinate.
type Coord struct {
	X, Y int32
}

// NewCoord constructs a Coord from x, y.
func NewCoord(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c+other, componentwise.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c-other, componentwise.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale returns c scaled by the integer factor by (which may be negative).
func (c Coord) Scale(by int32) Coord {
	return Coord{X: c.X * by, Y: c.Y * by}
}

// Left90 rotates c by 90 degrees counter-clockwise: (x,y) -> (y,-x).
func (c Coord) Left90() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

// Right90 rotates c by 90 degrees clockwise: (x,y) -> (-y,x).
func (c Coord) Right90() Coord {
	return Coord{X: -c.Y, Y: c.X}
}

// ManhattanDistance returns |dx|+|dy| between c and other.
func (c Coord) ManhattanDistance(other Coord) uint32 {
	return absI32(c.X-other.X) + absI32(c.Y-other.Y)
}

func absI32(v int32) uint32 {
	if v < 0 {
		return uint32(-v)
	}
	return uint32(v)
}

// Size is the width/height of a rectangular grid.
type Size struct {
	W, H int32
}

// NewSize constructs a Size from width, height.
func NewSize(w, h int32) Size {
	return Size{W: w, H: h}
}

// Area returns w*h.
func (s Size) Area() int {
	return int(s.W) * int(s.H)
}

// Contains reports whether c lies within a grid of this size, anchored at (0,0).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < s.W && c.Y < s.H
}

// ScaleSub returns size*factor - sub, used by the maze generator to compute
// the dual-grid output size (2*input - (1,1)).
func (s Size) ScaleSub(factor int32, sub Size) Size {
	return Size{W: s.W*factor - sub.W, H: s.H*factor - sub.H}
}
