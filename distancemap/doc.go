// Package distancemap computes, by multi-source breadth-first flood-fill,
// the distance from every reachable cell to the nearest of a set of goal
// cells, and exposes a step-by-step descent/ascent of that field.
//
// What
//
//   - DistanceMap stores one distance value per cell, valid only for the
//     most recent populate call (tracked by an epoch counter, as in
//     cardinal.SeenSet).
//   - PopulateContext runs the flood-fill that fills a DistanceMap, in one
//     of two modes:
//   - PopulateApproach: ordinary multi-source BFS — distance to the
//     nearest goal, capped at MaxDistance.
//   - PopulateFlee: a two-phase fill that instead favours distance
//     *from* the goals — useful for a fleeing agent that wants to put
//     as much distance as possible between itself and a threat while
//     staying within MaxDistance of it.
//   - DirectionToBestNeighbour reads the field at a cell and reports which
//     cardinal neighbour to step to next, continuing that cell's
//     approach or flee.
//
// Why
//
//   - A flood-filled distance field answers "which way from here" for
//     every cell in one pass, which is cheaper than re-running a
//     point-to-point search per agent per tick when many agents share the
//     same goal set (it particularly pays off for flee behaviour, which
//     has no single target to search toward).
//
// Complexity
//
//   - PopulateApproach/PopulateFlee: O(cells within MaxDistance).
//   - Distance/DirectionToBestNeighbour: O(1).
package distancemap
