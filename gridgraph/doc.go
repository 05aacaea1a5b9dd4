// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular board of tiles as a graph whose
// vertices are row-major cell positions and whose edges follow 4- or
// 8-connectivity.
//
// What:
//
//   - GridGraph precomputes, for every Position, the ascending list of
//     neighbouring Positions (Conn4: N/E/S/W, Conn8: king moves).
//   - Board() exposes the fixed 4×4 Conn8 board used by the solver:
//     corners have 3 neighbours, edge cells 5, interior cells 8.
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
//
// Why:
//
//   - Path enumeration asks for the neighbours of the same 16 cells millions
//     of times; a precomputed table keeps that lookup O(1) and allocation free.
//
// Complexity:
//
//   - NewGridGraph: O(W×H×d), Memory: O(W×H×d)  (d = 4 or 8).
//   - Neighbors:    O(1).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//
// Adjacency is symmetric by construction: an offset and its negation are both
// present in each offset set.
package gridgraph
