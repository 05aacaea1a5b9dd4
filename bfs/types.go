// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.GridGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/scramble/gridgraph"
)

// Unreachable marks a position the search never reached.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start position is not on the grid.
	ErrStartOutOfRange = errors.New("bfs: start position out of range")

	// ErrGraphNil is returned if a nil grid pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a position. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with a background context, no depth
// limit and a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(gridgraph.Position, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of one search.
type BFSResult struct {
	// Order lists positions in visit order.
	Order []gridgraph.Position

	// Depth holds the distance from start per position, or Unreachable.
	Depth []int

	// Parent holds the position each one was discovered from; the start
	// and unreached positions hold -1.
	Parent []gridgraph.Position
}

// PathTo rebuilds the shortest path from the start to p, or nil when p was
// not reached.
func (r *BFSResult) PathTo(p gridgraph.Position) []gridgraph.Position {
	if p < 0 || int(p) >= len(r.Depth) || r.Depth[p] == Unreachable {
		return nil
	}
	path := make([]gridgraph.Position, r.Depth[p]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = p
		p = r.Parent[p]
	}
	return path
}
