// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/scramble/bfs"
	"github.com/katalvlaran/scramble/gridgraph"
	"github.com/katalvlaran/scramble/lexicon"
	"github.com/katalvlaran/scramble/tiles"
)

// distances holds king-move distances between board positions.
var distances = func() [][]int {
	d, err := bfs.Distances(gridgraph.Board())
	if err != nil {
		panic(err)
	}
	return d
}()

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	board    *gridgraph.GridGraph
	tiles    *tiles.Tiles
	prefixes lexicon.Set
	end      gridgraph.Position
	opts     Options
	res      *Result

	path   Path                  // stack of positions, start first
	onPath [gridgraph.Cells]bool // membership flags for path
	word   []byte                // letters of path
}

// Paths enumerates every simple path from start to end on the 4×4 board,
// with at most MaxLen tiles, whose letters survive the prefix filter.
// Paths are returned in discovery order: neighbors are tried in ascending
// position order, so the result is deterministic.
func Paths(t tiles.Tiles, prefixes lexicon.Set, start, end gridgraph.Position, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if prefixes == nil {
		return nil, ErrNilPrefixes
	}
	board := gridgraph.Board()
	if !board.Valid(start) || !board.Valid(end) {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrPositionRange, start, end)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.MaxLen < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxLen, dopts.MaxLen)
	}

	// 3. Walk
	w := &pathWalker{
		board:    board,
		tiles:    &t,
		prefixes: prefixes,
		end:      end,
		opts:     dopts,
		res:      &Result{},
		path:     make(Path, 0, dopts.MaxLen),
		word:     make([]byte, 0, 2*dopts.MaxLen),
	}
	if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse pushes p, reports or extends the path, and pops p on return.
func (w *pathWalker) traverse(p gridgraph.Position) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.push(p)
	defer w.pop(p)

	// 2. Completed path
	if p == w.end {
		return w.emit()
	}

	// 3. Length bound: a longer path could not end within MaxLen
	if len(w.path) >= w.opts.MaxLen {
		return nil
	}

	// 4. Prefix pruning
	if len(w.word) > 1 && !w.prefixes.Contains(string(w.word)) {
		w.res.Pruned++
		return nil
	}

	// 5. Extend by each unvisited neighbor that can still reach end in time
	toEnd := distances[w.end]
	for _, n := range w.board.Neighbors(p) {
		if w.onPath[n] {
			continue
		}
		if len(w.path)+1+toEnd[n] > w.opts.MaxLen {
			w.res.OutOfReach++
			continue
		}
		if err := w.traverse(n); err != nil {
			return err
		}
	}

	return nil
}

func (w *pathWalker) push(p gridgraph.Position) {
	w.path = append(w.path, p)
	w.onPath[p] = true
	w.word = append(w.word, w.tiles[p]...)
	w.res.Steps++
}

func (w *pathWalker) pop(p gridgraph.Position) {
	w.path = w.path[:len(w.path)-1]
	w.onPath[p] = false
	w.word = w.word[:len(w.word)-len(w.tiles[p])]
}

// emit records a copy of the current path and runs the hook.
func (w *pathWalker) emit() error {
	found := w.path.Clone()
	w.res.Paths = append(w.res.Paths, found)
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(found); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %v: %w", found, err)
		}
	}
	return nil
}
