// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/scramble/lexicon"
	"github.com/katalvlaran/scramble/presenter"
	"github.com/katalvlaran/scramble/solver"
)

// errNoLetters is returned when neither --letters nor an argument is given.
var errNoLetters = errors.New("the letters in the grid are required")

type flags struct {
	letters    string
	minLen     int
	maxLen     int
	ascending  bool
	dictPath   string
	prefixPath string
	workers    int
	noPause    bool
	color      bool
	logLevel   string
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "scramble [letters]",
		Short:         "Find every word on a 4x4 Scramble board",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.letters, "letters", "l", "", "the letters in the grid, as one string, from left to right and top to bottom")
	fs.IntVarP(&f.minLen, "min", "m", solver.DefaultMinLen, "the minimum length of word to find")
	fs.IntVarP(&f.maxLen, "max", "x", solver.DefaultMaxLen, "the maximum length of word to find")
	fs.BoolVarP(&f.ascending, "asc", "a", false, "display the results in ascending order by length")
	fs.StringVarP(&f.dictPath, "dict", "d", "dict", "word list file (plain, zlib or gzip)")
	fs.StringVarP(&f.prefixPath, "prefixes", "p", "", "prefix list file; derived from the word list when empty")
	fs.IntVarP(&f.workers, "workers", "w", runtime.GOMAXPROCS(0), "number of concurrent searches")
	fs.BoolVar(&f.noPause, "no-pause", false, "print every grid without waiting between pages")
	fs.BoolVar(&f.color, "color", false, "highlight path steps with colors")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if f.letters == "" {
		if len(args) != 1 {
			_ = cmd.Help()
			return errNoLetters
		}
		f.letters = args[0]
	}

	var opts []solver.ConfigOption
	if cmd.Flags().Changed("min") {
		opts = append(opts, solver.WithMinLen(f.minLen))
	}
	if cmd.Flags().Changed("max") {
		opts = append(opts, solver.WithMaxLen(f.maxLen))
	}
	if f.ascending {
		opts = append(opts, solver.WithOrder(solver.Ascending))
	}
	cfg, err := solver.NewConfig(f.letters, opts...)
	if err != nil {
		return err
	}
	logger.Debug("board", zap.Stringer("tiles", cfg.Tiles), zap.Stringer("order", cfg.Order))

	dict, prefixes, err := loadLexicon(f.dictPath, f.prefixPath)
	if err != nil {
		return err
	}
	logger.Debug("lexicon loaded", zap.Int("words", dict.Len()), zap.Int("prefixes", prefixes.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := solver.Solve(ctx, cfg, dict, prefixes,
		solver.WithWorkers(f.workers), solver.WithLogger(logger))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err = presenter.Summary(out, res.Elapsed); err != nil {
		return err
	}

	pageSize := presenter.DefaultPageSize
	if f.noPause {
		pageSize = 0
	}
	pager := presenter.NewPager(out, cmd.InOrStdin(),
		presenter.WithPageSize(pageSize),
		presenter.WithClearScreen(!f.noPause),
		presenter.WithRenderOptions(presenter.WithColor(f.color)))
	entries := presenter.Sort(res.Words, cfg.Order)
	err = pager.Run(ctx, presenter.Stream(ctx, entries))
	if errors.Is(err, presenter.ErrStopped) {
		logger.Debug("output stopped", zap.Error(err))
		return nil
	}
	return err
}

func loadLexicon(dictPath, prefixPath string) (dict, prefixes *lexicon.HashSet, err error) {
	dict, err = lexicon.LoadFile(dictPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load dictionary: %w", err)
	}
	if prefixPath == "" {
		return dict, lexicon.PrefixesOf(dict), nil
	}
	prefixes, err = lexicon.LoadFile(prefixPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load prefixes: %w", err)
	}
	return dict, prefixes, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		lvl,
	)), nil
}
