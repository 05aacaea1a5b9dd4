// SPDX-License-Identifier: MIT

package presenter

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/scramble/dfs"
	"github.com/katalvlaran/scramble/solver"
)

// Entry is one found word with its exemplar path.
type Entry struct {
	Word string
	Path dfs.Path
}

// Sort lists words by length in the given order; words of equal length are
// in lexicographic order.
func Sort(words map[string]dfs.Path, order solver.Order) []Entry {
	entries := make([]Entry, 0, len(words))
	for w, p := range words {
		entries = append(entries, Entry{Word: w, Path: p})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if la, lb := len(a.Word), len(b.Word); la != lb {
			if order == solver.Ascending {
				return la - lb
			}
			return lb - la
		}
		return strings.Compare(a.Word, b.Word)
	})
	return entries
}
