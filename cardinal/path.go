package cardinal

import "github.com/katalvlaran/cardinalgrid/grid"

// PathNode is one link in a Path's singly linked list, walked from start to
// goal.
type PathNode struct {
	Coord grid.Coord
	Next  *PathNode
}

// Path is a caller-owned, reusable output buffer for a reconstructed route.
// Search entry points that return a full path write into a Path the caller
// passes in, rather than allocating their own slice every call; Clear lets
// the same Path be reused across repeated searches.
//
// Reconstruction walks a SeenSet's back-pointer chain from goal to start,
// so Path is built by repeated Prepend rather than Append.
type Path struct {
	head *PathNode
	tail *PathNode
	len  int
}

// NewPath returns an empty Path.
func NewPath() *Path {
	return &Path{}
}

// Len returns the number of coordinates in the path.
func (p *Path) Len() int {
	return p.len
}

// Clear empties the path for reuse, without releasing its node allocations
// to the garbage collector any sooner than necessary.
func (p *Path) Clear() {
	p.head = nil
	p.tail = nil
	p.len = 0
}

// Prepend inserts c as the new first element of the path. Used during
// back-pointer reconstruction, which walks goal-to-start.
func (p *Path) Prepend(c grid.Coord) {
	n := &PathNode{Coord: c, Next: p.head}
	p.head = n
	if p.tail == nil {
		p.tail = n
	}
	p.len++
}

// Append inserts c as the new last element of the path.
func (p *Path) Append(c grid.Coord) {
	n := &PathNode{Coord: c}
	if p.tail == nil {
		p.head = n
	} else {
		p.tail.Next = n
	}
	p.tail = n
	p.len++
}

// PopFront removes and returns the first coordinate in the path, reporting
// false if the path is empty.
func (p *Path) PopFront() (grid.Coord, bool) {
	if p.head == nil {
		return grid.Coord{}, false
	}
	n := p.head
	p.head = n.Next
	if p.head == nil {
		p.tail = nil
	}
	p.len--
	return n.Coord, true
}

// Front returns the first coordinate without removing it.
func (p *Path) Front() (grid.Coord, bool) {
	if p.head == nil {
		return grid.Coord{}, false
	}
	return p.head.Coord, true
}

// Walk calls fn for every coordinate in the path, start to goal.
func (p *Path) Walk(fn func(grid.Coord)) {
	for n := p.head; n != nil; n = n.Next {
		fn(n.Coord)
	}
}

// ToSlice materialises the path as a []grid.Coord, start to goal.
func (p *Path) ToSlice() []grid.Coord {
	out := make([]grid.Coord, 0, p.len)
	p.Walk(func(c grid.Coord) { out = append(out, c) })
	return out
}
