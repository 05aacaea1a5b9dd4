// SPDX-License-Identifier: MIT

// Package dfs defines types and options for path enumeration: cancellation,
// the path length bound and the completed-path hook.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/scramble/gridgraph"
)

// DefaultMaxLen is the default upper bound on tiles per path.
const DefaultMaxLen = 12

var (
	// ErrNilPrefixes is returned when no prefix filter is supplied.
	ErrNilPrefixes = errors.New("dfs: prefix filter is nil")

	// ErrPositionRange indicates that start or end is not a board position.
	ErrPositionRange = errors.New("dfs: position out of range")

	// ErrBadMaxLen indicates a path length bound below one.
	ErrBadMaxLen = errors.New("dfs: max length must be at least 1")
)

// Path is a sequence of distinct, pairwise-adjacent board positions.
type Path []gridgraph.Position

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Contains reports whether pos appears in p.
func (p Path) Contains(pos gridgraph.Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}
	return false
}

// Step returns the 1-based index of pos in p, or 0 when pos is absent.
func (p Path) Step(pos gridgraph.Position) int {
	for i, q := range p {
		if q == pos {
			return i + 1
		}
	}
	return 0
}

// Option configures optional behavior of Paths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxLen bounds the number of tiles in a path. Default is DefaultMaxLen.
	MaxLen int

	// OnPath, if non-nil, is invoked with each completed path (a copy).
	// Returning an error aborts enumeration with that error.
	OnPath func(p Path) error
}

// DefaultOptions returns Options with a background context, MaxLen
// DefaultMaxLen and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		MaxLen: DefaultMaxLen,
		OnPath: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLen returns an Option that limits paths to n tiles.
func WithMaxLen(n int) Option {
	return func(o *Options) {
		o.MaxLen = n
	}
}

// WithOnPath returns an Option that installs fn as a completed-path hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// Result captures the outcome of one start/end enumeration.
type Result struct {
	// Paths lists completed paths in discovery order.
	Paths []Path

	// Pruned counts branches abandoned because their letters were not a
	// known prefix.
	Pruned int

	// OutOfReach counts neighbors skipped because no path through them
	// could reach the end tile within MaxLen.
	OutOfReach int

	// Steps counts tiles pushed onto the path stack.
	Steps int
}
