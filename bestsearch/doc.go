// Package bestsearch runs a bounded breadth-first search that reports the
// best cell it found by a caller-defined scoring rule, rather than the
// first or nearest matching cell.
//
// What
//
//   - BestSearchPath/BestSearchFirst explore a grid outward from a start
//     cell in non-decreasing depth order, stopping each branch at a
//     caller-supplied depth limit.
//   - The caller's BestSearch implementation both gates which cells may be
//     entered and tracks which entered cell scores highest; the search
//     itself never interprets scores.
//   - Context reuses a cardinal.SeenSet across calls, so repeated searches
//     over the same grid size cost no re-allocation.
//
// Why
//
//   - Exploring every cell within a radius and keeping the best one is a
//     recurring shape for local decision-making — pick the richest nearby
//     resource, the safest nearby tile — where the "best" criterion is
//     domain-specific but the traversal is not.
//
// Complexity
//
//   - Time:   O(k) where k is the number of cells within MaxDepth that
//     CanEnterUpdatingBest admits, each visited once.
//   - Memory: O(grid size) for the reused seen-set, O(k) for the queue.
package bestsearch
