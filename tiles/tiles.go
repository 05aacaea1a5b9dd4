// SPDX-License-Identifier: MIT

package tiles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/scramble/gridgraph"
)

const (
	plainLen   = gridgraph.Cells     // one letter per tile
	digraphLen = gridgraph.Cells + 1 // one two-letter tile
	digraphLed = 'q'                 // letter that opens a digraph tile
)

// Tiles holds the letter value of every board position in row-major order.
type Tiles [gridgraph.Cells]string

// Normalize lowercases raw and checks that it is alphabetic and 16 or 17
// letters long. The error wraps ErrInvalidLetters or ErrLetterCount.
func Normalize(raw string) (string, error) {
	letters := strings.ToLower(raw)
	if letters == "" {
		return "", fmt.Errorf("%w: you entered 0", ErrLetterCount)
	}
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidLetters, r)
		}
	}
	if n := len(letters); n != plainLen && n != digraphLen {
		return "", fmt.Errorf("%w: you entered %d", ErrLetterCount, n)
	}

	return letters, nil
}

// Build assigns letters to the 16 positions. letters must already be
// normalized. With 17 letters each 'q' is joined with the following letter.
// Returns ErrTileCount if the result does not fill the board exactly.
func Build(letters string) (Tiles, error) {
	var t Tiles
	digraphs := len(letters) == digraphLen

	n := 0
	for i := 0; i < len(letters); i++ {
		if n == len(t) {
			return Tiles{}, fmt.Errorf("%w: %q overflows %d tiles", ErrTileCount, letters, len(t))
		}
		if digraphs && letters[i] == digraphLed && i+1 < len(letters) {
			t[n] = letters[i : i+2]
			i++
		} else {
			t[n] = letters[i : i+1]
		}
		n++
	}
	if n != len(t) {
		return Tiles{}, fmt.Errorf("%w: %q yields %d tiles", ErrTileCount, letters, n)
	}

	return t, nil
}

// Parse normalizes raw and builds its Tiles.
func Parse(raw string) (Tiles, error) {
	letters, err := Normalize(raw)
	if err != nil {
		return Tiles{}, err
	}
	return Build(letters)
}

// Tile returns the value at p, or "" when p is off the board.
func (t Tiles) Tile(p gridgraph.Position) string {
	if p < 0 || int(p) >= len(t) {
		return ""
	}
	return t[p]
}

// Word concatenates the tile values along path.
func (t Tiles) Word(path []gridgraph.Position) string {
	var sb strings.Builder
	sb.Grow(len(path) + 1)
	for _, p := range path {
		sb.WriteString(t.Tile(p))
	}
	return sb.String()
}

// Rows returns the tile values grouped by board row.
func (t Tiles) Rows() [gridgraph.Size][gridgraph.Size]string {
	var rows [gridgraph.Size][gridgraph.Size]string
	for i, v := range t {
		rows[i/gridgraph.Size][i%gridgraph.Size] = v
	}
	return rows
}

// String renders the board one row per line, tiles separated by spaces.
func (t Tiles) String() string {
	var sb strings.Builder
	for y, row := range t.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(row[:], " "))
	}
	return sb.String()
}
