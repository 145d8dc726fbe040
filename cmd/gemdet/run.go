// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gemdet/config"
	"github.com/katalvlaran/gemdet/crosscheck"
	"github.com/katalvlaran/gemdet/determinant"
	"github.com/katalvlaran/gemdet/gem"
	"github.com/katalvlaran/gemdet/logging"
	"github.com/katalvlaran/gemdet/matrix"
	"github.com/katalvlaran/gemdet/metrics"
	"github.com/katalvlaran/gemdet/textformat"
)

// Exit codes.
const (
	exitOK         = 0
	exitCompute    = 1 // the determinant could not be computed (e.g. non-square input)
	exitUsage      = 2
	exitProcessing = 3 // I/O or parse failure
)

// run parses args and executes the command. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gemdet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg, err := config.ParseConfig(fs, args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, usageHint)

		return exitUsage
	}
	if cfg.Help {
		printHelp(stdout)

		return exitOK
	}
	if cfg.FormatHelp {
		printFormat(stdout)

		return exitOK
	}
	if len(cfg.Input) == 0 {
		fmt.Fprintln(stderr, usageHint)

		return exitUsage
	}
	if cfg.Threads < 0 || (cfg.Threads == 0 && flagSet(fs, "t")) {
		fmt.Fprintln(stderr, "invalid number of threads specified, using default instead")
		cfg.Threads = gem.DefaultThreads
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev}, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	return Run(ctx, cfg, log, stdout, stderr)
}

// Run parses the input named by cfg, computes and prints its determinant.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger, stdout, stderr io.Writer) int {
	start := time.Now()
	m, err := parseInput(cfg)
	parsing := time.Since(start)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitProcessing
	}
	rows, cols := m.Shape()
	log.Debug("matrix parsed", zap.Int("rows", rows), zap.Int("cols", cols), zap.Duration("parsing", parsing))

	rec := metrics.NewRecorder()
	gemOpts := []gem.Option{gem.WithLogger(log), gem.WithRecorder(rec), gem.WithBarrier(cfg.BarrierMode())}
	if cfg.Threads > 0 {
		gemOpts = append(gemOpts, gem.WithThreads(cfg.Threads))
	}
	opts := []determinant.Option{determinant.WithGem(gemOpts...)}
	if cfg.SingleThread {
		opts = append(opts, determinant.WithSingleThread())
	}

	res, err := determinant.Compute(ctx, m, opts...)
	if errors.Is(err, matrix.ErrNonSquare) {
		fmt.Fprintf(stderr, "Cannot compute determinant of a matrix that is not square (input matrix has %d columns and %d rows)\n", cols, rows)

		return exitCompute
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitCompute
	}

	if cfg.PrintStats {
		printStats(stdout, parsing, res)
		fmt.Fprint(stdout, "\nDeterminant: ")
	}
	fmt.Fprintln(stdout, res.Format(cfg.Digits))

	if cfg.Verify {
		want, err := crosscheck.Verify(m, res.Value, cfg.Tolerance)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return exitCompute
		}
		if cfg.PrintStats {
			fmt.Fprintf(stdout, "Float64 check: %g\n", want)
		}
	}
	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)

			return exitProcessing
		}
	}

	return exitOK
}

func parseInput(cfg config.Config) (*matrix.Matrix, error) {
	opts := []textformat.Option{
		textformat.WithDelimiter(cfg.DelimiterByte()),
		textformat.WithPrecision(int32(cfg.Precision)),
	}
	input := strings.Join(cfg.Input, " ")
	if cfg.DirectInput {
		return textformat.ParseString(input, opts...)
	}

	return textformat.ParseFile(input, opts...)
}

// printStats writes the phase timings in milliseconds.
func printStats(w io.Writer, parsing time.Duration, res determinant.Result) {
	t := res.Timings
	fmt.Fprintf(w, "Parsing time: %dms\n", parsing.Milliseconds())
	if res.Mode == gem.ModeSingle {
		fmt.Fprintf(w, "Singlethread gauss elimination time: %dms\n", t.Computation.Milliseconds())
		fmt.Fprintf(w, "=== TOTAL TIME: %dms ===\n", (parsing + t.Total()).Milliseconds())

		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Multithreaded gauss elimination performance statistics:")
	fmt.Fprintf(w, "Setup time: %dms\n", t.Setup.Milliseconds())
	fmt.Fprintf(w, "Computation time: %dms\n", t.Computation.Milliseconds())
	fmt.Fprintf(w, "Time spent synchronizing: %dms\n", t.SyncWait.Milliseconds())
	fmt.Fprintf(w, "Cleanup time: %dms\n", t.Cleanup.Milliseconds())
	fmt.Fprintf(w, "TOTAL GEM TIME: %dms\n", t.Total().Milliseconds())
	fmt.Fprintf(w, "=== TOTAL TIME: %dms ===\n", (parsing + t.Total()).Milliseconds())
	fmt.Fprintf(w, "Threads used: %d\n", res.Threads)
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}
