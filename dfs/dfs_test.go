// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scramble/dfs"
	"github.com/katalvlaran/scramble/gridgraph"
	"github.com/katalvlaran/scramble/lexicon"
	"github.com/katalvlaran/scramble/tiles"
)

// uniform returns a board where every tile is letter.
func uniform(letter string) tiles.Tiles {
	var t tiles.Tiles
	for i := range t {
		t[i] = letter
	}
	return t
}

// repeated returns a prefix set {a, aa, ..., a×n}, which never prunes a uniform "a" board.
func repeated(letter string, n int) *lexicon.HashSet {
	s := lexicon.NewHashSet()
	for i := 1; i <= n; i++ {
		s.Add(strings.Repeat(letter, i))
	}
	return s
}

func mustTiles(t *testing.T, letters string) tiles.Tiles {
	t.Helper()
	tl, err := tiles.Parse(letters)
	require.NoError(t, err)
	return tl
}

func TestPaths_NilPrefixes(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), nil, 0, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilPrefixes)
}

func TestPaths_PositionRange(t *testing.T) {
	for _, se := range [][2]gridgraph.Position{{-1, 0}, {0, 16}, {20, 3}} {
		_, err := dfs.Paths(uniform("a"), repeated("a", 16), se[0], se[1])
		assert.ErrorIs(t, err, dfs.ErrPositionRange, "start=%d end=%d", se[0], se[1])
	}
}

func TestPaths_BadMaxLen(t *testing.T) {
	_, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(0))
	assert.ErrorIs(t, err, dfs.ErrBadMaxLen)
}

func TestPaths_AdjacentShortest(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(2))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1}}, res.Paths)
}

// TestPaths_DiscoveryOrder pins the ascending-neighbor discovery order.
func TestPaths_DiscoveryOrder(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1}, {0, 4, 1}, {0, 5, 1}}, res.Paths)
}

func TestPaths_MaxLenOneSkipsOthers(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(1))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestPaths_StartEqualsEnd(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 7, 7)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{7}}, res.Paths)
}

// TestPaths_SimpleBoundedAdjacent checks every invariant of returned paths on
// an unpruned uniform board.
func TestPaths_SimpleBoundedAdjacent(t *testing.T) {
	const maxLen = 6
	board := gridgraph.Board()
	tl := uniform("a")
	res, err := dfs.Paths(tl, repeated("a", 16), 0, 15, dfs.WithMaxLen(maxLen))
	require.NoError(t, err)
	require.NotEmpty(t, res.Paths)

	seen := map[string]bool{}
	for _, p := range res.Paths {
		require.GreaterOrEqual(t, len(p), 1)
		require.LessOrEqual(t, len(p), maxLen)
		assert.Equal(t, gridgraph.Position(0), p[0])
		assert.Equal(t, gridgraph.Position(15), p[len(p)-1])

		visited := map[gridgraph.Position]bool{}
		for i, pos := range p {
			assert.False(t, visited[pos], "repeated position %d in %v", pos, p)
			visited[pos] = true
			if i > 0 {
				assert.True(t, board.Adjacent(p[i-1], pos), "%d-%d not adjacent in %v", p[i-1], pos, p)
			}
		}
		assert.Equal(t, strings.Repeat("a", len(p)), tl.Word(p))

		key := pathKey(p)
		assert.False(t, seen[key], "duplicate path %v", p)
		seen[key] = true
	}
	// Shortest 0→15 path runs the diagonal: 0,5,10,15.
	assert.Equal(t, dfs.Path{0, 5, 10, 15}, shortest(res.Paths))
}

func pathKey(p dfs.Path) string {
	var sb strings.Builder
	for _, pos := range p {
		sb.WriteByte(byte('a' + pos))
	}
	return sb.String()
}

func shortest(paths []dfs.Path) dfs.Path {
	var best dfs.Path
	for _, p := range paths {
		if best == nil || len(p) < len(best) {
			best = p
		}
	}
	return best
}

func TestPaths_PrefixPruning(t *testing.T) {
	tl := mustTiles(t, "catxxxxxxxxxxxxx")

	res, err := dfs.Paths(tl, lexicon.NewHashSet("c", "ca", "cat"), 0, 2, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 2}}, res.Paths)
	assert.Positive(t, res.Pruned)

	// Without "ca" the only route through 1 is cut before it reaches 2.
	res, err = dfs.Paths(tl, lexicon.NewHashSet("c", "cat"), 0, 2, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

// TestPaths_SingleLetterNotChecked verifies that one-letter prefixes are never looked up.
func TestPaths_SingleLetterNotChecked(t *testing.T) {
	tl := mustTiles(t, "catxxxxxxxxxxxxx")
	res, err := dfs.Paths(tl, lexicon.NewHashSet("ca"), 0, 2, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 1, 2}}, res.Paths)
}

func TestPaths_DigraphTile(t *testing.T) {
	tl := mustTiles(t, "quitxxxxxxxxxxxxx")
	require.Equal(t, "qu", tl[0])

	res, err := dfs.Paths(tl, lexicon.NewHashSet("qu", "qui"), 0, 2, dfs.WithMaxLen(3))
	require.NoError(t, err)
	require.Equal(t, []dfs.Path{{0, 1, 2}}, res.Paths)
	assert.Equal(t, "quit", tl.Word(res.Paths[0]))

	// "qu" alone is already two letters long and must pass the filter.
	res, err = dfs.Paths(tl, lexicon.NewHashSet("qui"), 0, 2, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
}

func TestPaths_Deterministic(t *testing.T) {
	a, err := dfs.Paths(uniform("a"), repeated("a", 16), 3, 12, dfs.WithMaxLen(7))
	require.NoError(t, err)
	b, err := dfs.Paths(uniform("a"), repeated("a", 16), 3, 12, dfs.WithMaxLen(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPaths_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 15, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaths_OnPathHook(t *testing.T) {
	var got []dfs.Path
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(3),
		dfs.WithOnPath(func(p dfs.Path) error {
			got = append(got, p)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, res.Paths, got)
}

func TestPaths_OnPathError(t *testing.T) {
	halt := errors.New("halt")
	calls := 0
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 1, dfs.WithMaxLen(3),
		dfs.WithOnPath(func(p dfs.Path) error {
			calls++
			return halt
		}))
	assert.ErrorIs(t, err, halt)
	assert.Equal(t, 1, calls)
	require.NotNil(t, res)
	assert.Len(t, res.Paths, 1)
}

func TestPath_Helpers(t *testing.T) {
	p := dfs.Path{4, 9, 14}
	assert.True(t, p.Contains(9))
	assert.False(t, p.Contains(0))
	assert.Equal(t, 2, p.Step(9))
	assert.Equal(t, 0, p.Step(0))

	c := p.Clone()
	c[0] = 0
	assert.Equal(t, gridgraph.Position(4), p[0])
}

// TestPaths_OutOfReach skips neighbors that cannot reach the end in time.
func TestPaths_OutOfReach(t *testing.T) {
	res, err := dfs.Paths(uniform("a"), repeated("a", 16), 0, 15, dfs.WithMaxLen(3))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Positive(t, res.OutOfReach)
	assert.Equal(t, 1, res.Steps, "only the start tile is pushed")

	res, err = dfs.Paths(uniform("a"), repeated("a", 16), 0, 15, dfs.WithMaxLen(4))
	require.NoError(t, err)
	assert.Equal(t, []dfs.Path{{0, 5, 10, 15}}, res.Paths)
}
