// SPDX-License-Identifier: MIT

// Package dfs enumerates simple paths between two tiles of the 4×4 board by
// depth-first search, pruning every branch whose letters are not a known
// word prefix.
//
// What:
//
//   - Paths(t, prefixes, start, end, opts...): every simple path from start
//     to end (both inclusive) of at most MaxLen tiles whose every prefix
//     string longer than one letter is in the prefix filter.
//   - The walker keeps one explicit path stack and pushes, recurses and pops;
//     a tile already on the stack is never revisited.
//   - A neighbour is skipped when its king-move distance to end (from
//     bfs.Distances) would push the path past MaxLen.
//   - Reaching end closes the branch: end is on the stack, so no longer
//     simple path can end there again.
//
// Why:
//
//   - Interior tiles have 8 neighbours, so the unpruned number of simple
//     paths grows exponentially with length. Prefix pruning cuts every branch
//     as soon as its letters cannot start a dictionary word.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithMaxLen(n)     bounds the number of tiles per path (default 12).
//   - WithOnPath(fn)    hook called for each completed path; error aborts.
//
// Complexity:
//
//   - Time:   O(number of prefix-surviving simple paths), each step O(1)
//     amortized plus one prefix lookup.
//   - Memory: O(MaxLen) for the stack, plus the returned paths.
//
// Errors:
//
//   - ErrNilPrefixes    prefix filter is nil.
//   - ErrPositionRange  start or end outside the board.
//   - ErrBadMaxLen      MaxLen below one.
//   - context.Canceled  if ctx is done.
//   - any error returned by OnPath.
package dfs
