// Package fieldsearch runs a bounded local search guided by a pre-populated
// distancemap.DistanceMap, finding the reachable cell closest to that
// field's goal within a limited number of steps.
//
// What
//
//   - SearchPath/SearchFirst explore outward from a start cell in
//     non-decreasing step order, treating the supplied DistanceMap as an
//     admissible heuristic: a branch is abandoned as soon as it can no
//     longer reach a cell closer to the goal than the best one already
//     found, even accounting for every remaining step.
//
// Why
//
//   - A populated distance field tells an agent how far every cell is from
//     a goal, but not which reachable cell to walk to from its exact
//     current position without crossing obstacles; this package answers
//     that question without re-deriving the field.
//
// Complexity
//
//   - Time:   O(k) where k is the number of cells within MaxDistance the
//     prune rule does not eliminate.
//   - Memory: O(grid size) for the reused seen-set, O(k) for the queue.
package fieldsearch
