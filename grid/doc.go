// Package grid provides the rectangular coordinate system every search
// engine in cardinalgrid is built on: Coord, Size and a generic Grid[T]
// container addressed by Coord.
//
// Grid[T] is deliberately minimal: bounds-checked accessors, row iteration,
// and a handful of constructors. It carries no search-specific behaviour —
// that lives in cardinal, bestsearch, distancemap, fieldsearch and
// pointtopoint, all of which address a Grid[T] or a Grid-shaped scratch
// structure by Coord.
package grid
