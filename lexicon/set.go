// SPDX-License-Identifier: MIT

package lexicon

import "golang.org/x/exp/slices"

// Set answers membership queries for the word oracle and the prefix filter.
type Set interface {
	Contains(s string) bool
}

// HashSet is a map-backed Set. The zero value is not usable; use NewHashSet.
type HashSet struct {
	items map[string]struct{}
}

var _ Set = (*HashSet)(nil)

// NewHashSet returns a set holding words exactly as given.
func NewHashSet(words ...string) *HashSet {
	s := &HashSet{items: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w. Empty strings are ignored.
// Add must not be called once the set is shared with a running solver.
func (s *HashSet) Add(w string) {
	if w == "" {
		return
	}
	s.items[w] = struct{}{}
}

// Contains reports whether w is in the set.
func (s *HashSet) Contains(w string) bool {
	_, ok := s.items[w]
	return ok
}

// Len returns the number of members.
func (s *HashSet) Len() int {
	return len(s.items)
}

// Words returns the members in lexicographic order.
func (s *HashSet) Words() []string {
	words := make([]string, 0, len(s.items))
	for w := range s.items {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// PrefixesOf returns the set of every non-empty prefix of every word in
// dict, words included. The result is a complete prefix filter for dict.
func PrefixesOf(dict *HashSet) *HashSet {
	out := NewHashSet()
	for w := range dict.items {
		for i := len(w); i > 0; i-- {
			p := w[:i]
			if out.Contains(p) {
				break
			}
			out.Add(p)
		}
	}
	return out
}
