// SPDX-License-Identifier: MIT

package tiles

import "errors"

// ErrInvalidLetters indicates input containing non-alphabetic characters.
var ErrInvalidLetters = errors.New("tiles: invalid characters in letters")

// ErrLetterCount indicates input that is neither 16 nor 17 letters long.
var ErrLetterCount = errors.New("tiles: there must be 16 or 17 letters")

// ErrTileCount indicates the tile builder produced a board that does not
// hold exactly 16 tiles. Callers should treat it as a defect, not bad input.
var ErrTileCount = errors.New("tiles: tile count invariant violated")
