// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/scramble/dfs"
	"github.com/katalvlaran/scramble/gridgraph"
	"github.com/katalvlaran/scramble/lexicon"
)

// ErrNilLexicon is returned when the dictionary or the prefix filter is nil.
var ErrNilLexicon = errors.New("solver: dictionary and prefix filter are required")

// Pair is one ordered start/end combination searched by Solve.
type Pair struct {
	Start, End gridgraph.Position
}

// pairs holds the canonical search order: ascending start, then ascending end.
var pairs = func() []Pair {
	out := make([]Pair, 0, gridgraph.Cells*(gridgraph.Cells-1))
	for i := gridgraph.Position(0); i < gridgraph.Cells; i++ {
		for j := gridgraph.Position(0); j < gridgraph.Cells; j++ {
			if i == j {
				continue
			}
			out = append(out, Pair{Start: i, End: j})
		}
	}
	return out
}()

// Pairs returns a copy of the canonical pair order.
func Pairs() []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}

// Result holds the found words and search diagnostics.
type Result struct {
	// Words maps each found word to its exemplar path.
	Words map[string]dfs.Path
	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
	// Paths counts completed start/end paths examined.
	Paths int
	// Pruned counts branches cut by the prefix filter.
	Pruned int
}

// Option configures Solve.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers searches up to n pairs concurrently. Values below 2 keep the
// search on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// hit is a dictionary word found within one pair.
type hit struct {
	word string
	path dfs.Path
}

// slot collects the outcome of one pair; each slot has a single writer.
type slot struct {
	hits   []hit
	paths  int
	pruned int
}

// Solve finds every word of cfg's board that is in dict, using prefixes to
// prune the search. The context cancels the search.
func Solve(ctx context.Context, cfg Config, dict, prefixes lexicon.Set, opts ...Option) (*Result, error) {
	if dict == nil || prefixes == nil {
		return nil, ErrNilLexicon
	}
	o := options{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(zap.Int("min", cfg.MinLen), zap.Int("max", cfg.MaxLen))
	log.Debug("search started", zap.Int("pairs", len(pairs)), zap.Int("workers", o.workers))

	start := time.Now()
	slots := make([]slot, len(pairs))
	var err error
	if o.workers < 2 {
		for i := range pairs {
			if err = collect(ctx, cfg, dict, prefixes, pairs[i], &slots[i]); err != nil {
				break
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for i := range pairs {
			i := i
			g.Go(func() error {
				return collect(gctx, cfg, dict, prefixes, pairs[i], &slots[i])
			})
		}
		err = g.Wait()
	}
	if err != nil {
		log.Debug("search aborted", zap.Error(err))
		return nil, err
	}

	res := merge(slots)
	res.Elapsed = time.Since(start)
	log.Info("search finished",
		zap.Int("words", len(res.Words)),
		zap.Int("paths", res.Paths),
		zap.Int("pruned", res.Pruned),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// collect enumerates one pair and keeps dictionary words of at least MinLen tiles.
func collect(ctx context.Context, cfg Config, dict, prefixes lexicon.Set, p Pair, out *slot) error {
	res, err := dfs.Paths(cfg.Tiles, prefixes, p.Start, p.End,
		dfs.WithContext(ctx), dfs.WithMaxLen(cfg.MaxLen))
	if err != nil {
		return fmt.Errorf("solver: pair %d→%d: %w", p.Start, p.End, err)
	}
	out.paths = len(res.Paths)
	out.pruned = res.Pruned
	for _, path := range res.Paths {
		if len(path) < cfg.MinLen {
			continue
		}
		if w := cfg.Tiles.Word(path); dict.Contains(w) {
			out.hits = append(out.hits, hit{word: w, path: path})
		}
	}
	return nil
}

// merge folds slots in canonical pair order; the first path for a word wins.
func merge(slots []slot) *Result {
	res := &Result{Words: make(map[string]dfs.Path)}
	for _, s := range slots {
		res.Paths += s.paths
		res.Pruned += s.pruned
		for _, h := range s.hits {
			if _, ok := res.Words[h.word]; !ok {
				res.Words[h.word] = h.path
			}
		}
	}
	return res
}
