// SPDX-License-Identifier: MIT

// Package solver collects every dictionary word that can be traced on a
// 4×4 board.
//
// Config is the immutable puzzle: tiles, word length bounds and result
// order. Solve drives dfs.Paths over every ordered pair of distinct
// positions, keeps paths of at least MinLen tiles whose letters are in the
// dictionary, and returns one exemplar path per word.
//
// Exemplar selection is deterministic. Pairs are visited in canonical order
// (ascending start, then ascending end) and paths within a pair in discovery
// order; the first path found for a word wins. With WithWorkers(n > 1) pairs
// are searched concurrently but merged in the same canonical order, so the
// result is identical to a sequential run.
//
// Length bounds follow the historical command-line policy:
//
//   - MinLen defaults to 3; an explicit value replaces it only when > 1.
//   - MaxLen defaults to 12; an explicit value replaces it only when > 16,
//     so any explicit value up to 16 leaves the default of 12 in place.
//   - Explicit values ≤ 0 are rejected with ErrInvalidBound.
package solver
