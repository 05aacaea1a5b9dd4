// SPDX-License-Identifier: MIT

// Package tiles assigns letter values to the 16 positions of the board.
//
// Input is the board read left to right, top to bottom. A 16-letter input
// maps one letter per position. A 17-letter input carries exactly one digraph
// tile: every 'q' swallows the letter that follows it ("qu" on the classic
// tile), so 17 letters still produce 16 tiles.
//
// Errors:
//
//   - ErrInvalidLetters: non-alphabetic input (validation).
//   - ErrLetterCount:    input length other than 16 or 17 (validation).
//   - ErrTileCount:      digraph accounting did not yield 16 tiles. This is an
//     internal consistency failure and is never returned for input that
//     Normalize accepted and that holds a single 'q' before its last letter.
package tiles
