// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/scramble/gridgraph"
)

const (
	cellWidth = 6
	wordWidth = 28
)

// RenderOption configures RenderGrid.
type RenderOption func(*renderOptions)

type renderOptions struct {
	color bool
}

// WithColor highlights step numbers with ANSI colors.
func WithColor(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.color = enabled
	}
}

// RenderGrid writes the bordered grid for e followed by the centered word.
func RenderGrid(w io.Writer, e Entry, opts ...RenderOption) error {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	au := aurora.NewAurora(o.color)

	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", gridgraph.Size) + "\n"

	var sb strings.Builder
	for y := 0; y < gridgraph.Size; y++ {
		sb.WriteString(border)
		sb.WriteByte('|')
		for x := 0; x < gridgraph.Size; x++ {
			step := e.Path.Step(gridgraph.Position(y*gridgraph.Size + x))
			if step == 0 {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			} else {
				label := strconv.Itoa(step)
				left, right := pad(len(label), cellWidth)
				sb.WriteString(strings.Repeat(" ", left))
				sb.WriteString(au.Bold(au.Green(label)).String())
				sb.WriteString(strings.Repeat(" ", right))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteString(center(e.Word, wordWidth))
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("presenter: write grid for %q: %w", e.Word, err)
	}
	return nil
}

// pad splits the free space around a label of length n in a field of width;
// odd remainders go to the right.
func pad(n, width int) (left, right int) {
	if n >= width {
		return 0, 0
	}
	free := width - n
	return free / 2, free - free/2
}

func center(s string, width int) string {
	left, right := pad(len(s), width)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
