// Package pointtopoint finds a shortest cardinal-4 path between two cells
// using A*, with the expansion rule itself pluggable via the sibling
// pointtopoint/expand package: plain single-cell expansion (Sequential) or
// Jump Point Search's run-compressing expansion (JumpPoint).
//
// What
//
//   - Context runs A* with a Manhattan-distance heuristic (admissible and
//     consistent for unit-cost cardinal movement), ordering its open set by
//     (lowest cost+heuristic, ties broken toward higher cost — i.e. closer
//     to the goal).
//   - PointToPointSearchPath/_First/_Profile share one search core; they
//     differ only in what they read out of the resulting seen-set.
//   - The search never interprets the grid directly: PointToPointSearch is
//     the caller's sole say over which cells may be entered.
//
// Why
//
//   - Sequential and JumpPoint are interchangeable at the call site (both
//     satisfy ExpandPolicy) and provably agree on path length, so callers
//     can pick JumpPoint for raw speed on open terrain without touching
//     anything but the policy argument.
//
// Complexity
//
//   - Time:   O(k log k) where k is the number of cells the search opens,
//     dominated by the priority queue.
//   - Memory: O(grid size) for the reused seen-set, O(k) for the open set.
//
// Errors
//
//   - ErrNoPath is returned when the open set is exhausted without
//     reaching the goal. A start cell equal to the goal is not an error —
//     it is the zero-step path, holding only the start cell.
package pointtopoint
