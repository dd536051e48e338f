package cardinal

import "github.com/katalvlaran/cardinalgrid/grid"

// CanEnter reports whether a cell may be entered by a search. fieldsearch
// and distancemap's populate calls take one of these rather than reading
// grid state themselves, and pointtopoint's PointToPointSearch has the same
// method set; bestsearch folds the same check into
// BestSearch.CanEnterUpdatingBest. Callers can model blocking however suits
// them: a solid-wall bitmap, a cost threshold, a capability check.
type CanEnter interface {
	CanEnter(c grid.Coord) bool
}

// CanEnterFunc adapts a plain function to CanEnter.
type CanEnterFunc func(c grid.Coord) bool

// CanEnter implements CanEnter.
func (f CanEnterFunc) CanEnter(c grid.Coord) bool {
	return f(c)
}
