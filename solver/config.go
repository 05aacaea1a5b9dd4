// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scramble/gridgraph"
	"github.com/katalvlaran/scramble/tiles"
)

const (
	// DefaultMinLen is the shortest word reported when no bound is given.
	DefaultMinLen = 3
	// DefaultMaxLen is the longest word searched when no bound is given.
	DefaultMaxLen = 12

	minLenFloor = 1               // explicit MinLen must exceed this to apply
	maxLenFloor = gridgraph.Cells // explicit MaxLen must exceed this to apply
)

// ErrInvalidBound indicates a non-positive explicit length bound.
var ErrInvalidBound = errors.New("solver: length bound must be positive")

// Order selects how found words are listed by length.
type Order int

const (
	// Descending lists the longest words first.
	Descending Order = iota
	// Ascending lists the shortest words first.
	Ascending
)

// String returns "desc" or "asc".
func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// Config is the immutable description of one puzzle.
type Config struct {
	Tiles  tiles.Tiles
	MinLen int
	MaxLen int
	Order  Order
}

// ConfigOption records an explicit setting for NewConfig.
type ConfigOption func(*settings)

type settings struct {
	minLen, maxLen int
	minSet, maxSet bool
	order          Order
}

// WithMinLen requests an explicit minimum word length.
func WithMinLen(n int) ConfigOption {
	return func(s *settings) {
		s.minLen, s.minSet = n, true
	}
}

// WithMaxLen requests an explicit maximum word length.
func WithMaxLen(n int) ConfigOption {
	return func(s *settings) {
		s.maxLen, s.maxSet = n, true
	}
}

// WithOrder sets the result order.
func WithOrder(o Order) ConfigOption {
	return func(s *settings) {
		s.order = o
	}
}

// NewConfig validates letters, builds the tiles and resolves the length
// bounds. Errors wrap tiles.ErrInvalidLetters, tiles.ErrLetterCount,
// tiles.ErrTileCount or ErrInvalidBound.
func NewConfig(letters string, opts ...ConfigOption) (Config, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	t, err := tiles.Parse(letters)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Tiles: t, MinLen: DefaultMinLen, MaxLen: DefaultMaxLen, Order: s.order}
	if s.minSet {
		if cfg.MinLen, err = ClampMinLen(s.minLen); err != nil {
			return Config{}, err
		}
	}
	if s.maxSet {
		if cfg.MaxLen, err = ClampMaxLen(s.maxLen); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// ClampMinLen applies the MinLen policy to an explicit value.
func ClampMinLen(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: min %d", ErrInvalidBound, n)
	}
	if n > minLenFloor {
		return n, nil
	}
	return DefaultMinLen, nil
}

// ClampMaxLen applies the MaxLen policy to an explicit value: only values
// above 16 replace the default.
func ClampMaxLen(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: max %d", ErrInvalidBound, n)
	}
	if n > maxLenFloor {
		return n, nil
	}
	return DefaultMaxLen, nil
}
