// SPDX-License-Identifier: MIT

package presenter_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scramble/dfs"
	"github.com/katalvlaran/scramble/presenter"
)

func fourEntries() []presenter.Entry {
	return []presenter.Entry{
		{Word: "alpha", Path: dfs.Path{0, 1, 2, 3, 7}},
		{Word: "beta", Path: dfs.Path{4, 5, 6, 7}},
		{Word: "gam", Path: dfs.Path{8, 9, 10}},
		{Word: "zed", Path: dfs.Path{12, 13, 14}},
	}
}

func TestPager_PausesPerPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	p := presenter.NewPager(&out, strings.NewReader("\n"))

	require.NoError(t, p.Run(ctx, presenter.Stream(ctx, fourEntries())))
	s := out.String()
	assert.Equal(t, 1, strings.Count(s, ":"), "one prompt after the first page")
	for _, w := range []string{"alpha", "beta", "gam", "zed"} {
		assert.Contains(t, s, w)
	}
	assert.Less(t, strings.Index(s, "gam"), strings.Index(s, ":"))
	assert.Greater(t, strings.Index(s, "zed"), strings.Index(s, ":"))
}

func TestPager_StopsAtEOF(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	p := presenter.NewPager(&out, strings.NewReader(""))

	err := p.Run(ctx, presenter.Stream(ctx, fourEntries()))
	assert.ErrorIs(t, err, presenter.ErrStopped)
	assert.Contains(t, out.String(), "gam")
	assert.NotContains(t, out.String(), "zed")
}

func TestPager_StopsOnCancel(t *testing.T) {
	streamCtx, stopStream := context.WithCancel(context.Background())
	defer stopStream()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	p := presenter.NewPager(&out, pr)

	err := p.Run(ctx, presenter.Stream(streamCtx, fourEntries()))
	assert.ErrorIs(t, err, presenter.ErrStopped)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "zed")
}

func TestPager_NoPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	p := presenter.NewPager(&out, nil, presenter.WithPageSize(0))

	require.NoError(t, p.Run(ctx, presenter.Stream(ctx, fourEntries())))
	assert.NotContains(t, out.String(), ":")
	assert.Contains(t, out.String(), "zed")
}

func TestPager_ClearScreen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out bytes.Buffer
	p := presenter.NewPager(&out, strings.NewReader("\n"), presenter.WithClearScreen(true))

	require.NoError(t, p.Run(ctx, presenter.Stream(ctx, fourEntries())))
	assert.Equal(t, 2, strings.Count(out.String(), presenter.ClearSequence))
}

func TestStream_Order(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var got []string
	for e := range presenter.Stream(ctx, fourEntries()) {
		got = append(got, e.Word)
	}
	assert.Equal(t, []string{"alpha", "beta", "gam", "zed"}, got)
}
