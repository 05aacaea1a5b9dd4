// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning unweighted shortest-path distances, parent links and visit order.
//
// What:
//
//   - BFS(gg, start, opts...): distances from one position.
//   - Distances(gg): the all-pairs distance table, one BFS per position.
//
// Why:
//
//   - The path enumerator uses the distance table to drop branches that can
//     no longer reach their end tile within the length bound.
//
// Complexity:
//
//   - BFS:       Time O(V+E), Memory O(V).
//   - Distances: Time O(V×(V+E)), Memory O(V²).
//
// Options:
//
//   - WithContext(ctx)   cancellation.
//   - WithMaxDepth(d)    stop expanding beyond depth d (d > 0).
//   - WithOnVisit(fn)    hook on visit; error aborts.
//
// Errors:
//
//   - ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation.
package bfs
