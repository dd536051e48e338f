// Package cardinal holds the substrate every search engine in cardinalgrid
// shares: the unit/cardinal coordinate helpers, a Step/Jump move record,
// the epoch-counter SeenSet used for O(1)-reset per-search visitation
// state, and the Path type used to report results.
//
// What
//
//   - UnitCoord / CardinalCoord wrap grid.Coord with the invariants the
//     rest of the module relies on: a UnitCoord is one of the four
//     cardinal unit offsets; a CardinalCoord is any nonzero integer
//     multiple of one.
//   - Step records a single unit move and its arrival direction; Jump
//     records a Jump-Point-Search compressed straight run of one or more
//     cells.
//   - SeenSet is the reusable per-search visitation record: every engine
//     in this module (bestsearch, fieldsearch, pointtopoint) owns one and
//     bumps its epoch counter once per search instead of re-zeroing a
//     potentially million-cell grid.
//   - Path/PathNode is the caller-owned output buffer every "full path"
//     entry point writes into.
//
// Why
//
//   - Sharing this substrate keeps the three search engines' seen-set
//     semantics, back-pointer chains, and path reconstruction bit-for-bit
//     identical, which is what makes cross-engine invariants like
//     "Sequential and JumpPoint agree on path length" checkable at all.
//
// Complexity
//
//   - SeenSet.Init / TryVisit*: O(1) amortised (epoch bump, no full clear).
//   - SeenSet.BuildPathTo / FirstDirectionTowards: O(path length).
package cardinal
