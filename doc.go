// Package cardinalgrid is a small toolkit for searching and generating
// cardinal-4 (no-diagonal) rectangular grids.
//
// 🚀 What is cardinalgrid?
//
//	A pure-Go, zero-runtime-dependency toolkit that brings together:
//
//	  - bestsearch    — bounded best-effort breadth-first search
//	  - distancemap   — multi-source flood-fill distance fields
//	  - fieldsearch   — field-guided local search over a distance field
//	  - pointtopoint  — A* and jump-point-search pathfinding
//	  - maze          — randomised Prim's-algorithm maze generation
//
// ✨ Why cardinalgrid?
//
//   - Reusable        — every search type carries its own Context so
//     one allocation serves many searches via an internal epoch counter
//   - Pluggable       — CanEnter, BestSearch and ExpandPolicy are small
//     capability interfaces a caller implements against its own grid
//   - Pure Go          — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under:
//
//	grid/         — Coord, Size and the generic Grid[T] container
//	direction/    — the CardinalDirection enum and its fixed scan order
//	cardinal/     — SeenSet, Path, Step/Jump: the shared search substrate
//	bestsearch/   — bounded best-effort BFS
//	distancemap/  — approach/flee distance-field flood-fill
//	fieldsearch/  — distance-field-guided local search
//	pointtopoint/ — A* / jump-point-search point-to-point pathfinding
//	maze/         — randomised Prim's-algorithm maze generation
//	cmd/maze/     — a CLI that prints a generated maze
//
// See DESIGN.md for how each package traces back to its reference
// implementation.
package cardinalgrid
