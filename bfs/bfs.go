// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/scramble/gridgraph"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.GridGraph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on gg starting from start.
// Returns ErrGraphNil, ErrStartOutOfRange or ErrOptionViolation for invalid
// input, the context error on cancellation, or any OnVisit error.
func BFS(gg *gridgraph.GridGraph, start gridgraph.Position, opts ...Option) (*BFSResult, error) {
	if gg == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !gg.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	n := gg.Len()
	w := &walker{
		grid:  gg,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make([]int, n),
			Parent: make([]gridgraph.Position, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue records depth and parent for p and appends it to the queue.
func (w *walker) enqueue(p gridgraph.Position, d int, parent gridgraph.Position) {
	w.res.Depth[p] = d
	w.res.Parent[p] = parent
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.pos, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.grid.Neighbors(item.pos) {
			if w.res.Depth[nbr] == Unreachable {
				w.enqueue(nbr, next, item.pos)
			}
		}
	}
	return nil
}

// Distances returns dist[a][b], the number of steps on a shortest path
// from a to b, or Unreachable.
func Distances(gg *gridgraph.GridGraph) ([][]int, error) {
	if gg == nil {
		return nil, ErrGraphNil
	}
	dist := make([][]int, gg.Len())
	for p := range dist {
		res, err := BFS(gg, gridgraph.Position(p))
		if err != nil {
			return nil, err
		}
		dist[p] = res.Depth
	}
	return dist, nil
}
