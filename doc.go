// SPDX-License-Identifier: MIT

// Package scramble finds every dictionary word that can be traced on a 4×4
// Scramble board by moving between neighbouring tiles, diagonals included,
// without reusing a tile.
//
// Everything is organized under small subpackages:
//
//	gridgraph/ — the 4×4 king-adjacency board and its neighbour tables
//	bfs/       — breadth-first distances on the board
//	tiles/     — letters to tiles, including the "qu" digraph tile
//	lexicon/   — dictionary and prefix sets, word-list loading
//	dfs/       — prefix-pruned enumeration of simple paths between two tiles
//	solver/    — puzzle configuration and word collection over all tile pairs
//	presenter/ — ordering, grid rendering and paged output
//	cmd/scramble — the command line
//
// Quick example:
//
//	cfg, _ := solver.NewConfig("catsxxxxxxxxxxxx")
//	dict := lexicon.NewHashSet("cat", "cats")
//	res, _ := solver.Solve(ctx, cfg, dict, lexicon.PrefixesOf(dict))
//	for _, e := range presenter.Sort(res.Words, cfg.Order) {
//		_ = presenter.RenderGrid(os.Stdout, e)
//	}
package scramble
