// SPDX-License-Identifier: MIT

package presenter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultPageSize is the number of grids shown between prompts.
const DefaultPageSize = 3

// ClearSequence moves the cursor home and clears an ANSI terminal.
const ClearSequence = "\x1b[H\x1b[2J"

// ErrStopped indicates the reader closed its input or the context was
// cancelled before every entry was shown.
var ErrStopped = errors.New("presenter: output stopped")

var prompt = strings.Repeat("\n", 6) + ":"

// Stream sends entries on the returned channel in order and closes it.
// It stops early when ctx is done.
func Stream(ctx context.Context, entries []Entry) <-chan Entry {
	ch := make(chan Entry)
	go func() {
		defer close(ch)
		for _, e := range entries {
			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Pager renders entries and waits for acknowledgement after each page.
type Pager struct {
	out      io.Writer
	in       io.Reader
	pageSize int
	clear    bool
	render   []RenderOption
	lines    chan struct{}
}

// PagerOption configures a Pager.
type PagerOption func(*Pager)

// WithPageSize sets the grids per page; 0 disables prompting.
func WithPageSize(n int) PagerOption {
	return func(p *Pager) {
		if n >= 0 {
			p.pageSize = n
		}
	}
}

// WithClearScreen clears the terminal before the first page and after each prompt.
func WithClearScreen(enabled bool) PagerOption {
	return func(p *Pager) {
		p.clear = enabled
	}
}

// WithRenderOptions passes options through to RenderGrid.
func WithRenderOptions(opts ...RenderOption) PagerOption {
	return func(p *Pager) {
		p.render = append(p.render, opts...)
	}
}

// NewPager returns a Pager writing to out and reading acknowledgements from in.
func NewPager(out io.Writer, in io.Reader, opts ...PagerOption) *Pager {
	p := &Pager{out: out, in: in, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run renders every entry received from entries until the channel closes.
// It returns ErrStopped (wrapping the context error, if any) when input ends
// or ctx is done while waiting at a prompt.
func (p *Pager) Run(ctx context.Context, entries <-chan Entry) error {
	if err := p.clearScreen(); err != nil {
		return err
	}
	shown := 0
	for {
		var (
			e  Entry
			ok bool
		)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrStopped, ctx.Err())
		case e, ok = <-entries:
		}
		if !ok {
			return nil
		}
		if err := RenderGrid(p.out, e, p.render...); err != nil {
			return err
		}
		shown++
		if p.pageSize > 0 && shown%p.pageSize == 0 {
			if err := p.wait(ctx); err != nil {
				_ = p.clearScreen()
				return err
			}
			if err := p.clearScreen(); err != nil {
				return err
			}
		}
	}
}

// wait prompts and blocks until a line is read, input ends or ctx is done.
func (p *Pager) wait(ctx context.Context) error {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return fmt.Errorf("presenter: write prompt: %w", err)
	}
	if p.lines == nil {
		p.lines = readLines(p.in)
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrStopped, ctx.Err())
	case _, ok := <-p.lines:
		if !ok {
			return ErrStopped
		}
		return nil
	}
}

func (p *Pager) clearScreen() error {
	if !p.clear {
		return nil
	}
	if _, err := io.WriteString(p.out, ClearSequence); err != nil {
		return fmt.Errorf("presenter: clear screen: %w", err)
	}
	return nil
}

// readLines signals every line read from r and closes the channel at EOF.
// A blocked read outlives a cancelled pager; the process exits right after.
func readLines(r io.Reader) chan struct{} {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		if r == nil {
			return
		}
		s := bufio.NewScanner(r)
		for s.Scan() {
			ch <- struct{}{}
		}
	}()
	return ch
}

// Summary writes the elapsed search time the way the command line shows it.
func Summary(w io.Writer, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "Took %.2f secs\n", elapsed.Seconds())
	return err
}
