// SPDX-License-Identifier: MIT

// Package gem - Coordinator: parallel elimination over a worker pool.
//
// Purpose:
//   - Reduce an owned matrix to row-echelon form, splitting each
//     (current row, previous row) elimination across threads column
//     partitions: threads-1 Workers plus the calling goroutine (partition 0).
//
// Contract:
//   - Every pair is followed by a barrier: no worker starts pair N+1 before
//     every partition of pair N is done.
//   - Compute is idempotent. The first result (or error) is cached and
//     Timings stay frozen afterwards.
//
// Complexity:
//   - Time O(n²·c / threads) arithmetic plus O(n²·threads) synchronization.

package gem

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gemdet/matrix"
)

const (
	opNewCoordinator = "gem.NewCoordinator"
	opCompute        = "gem.Coordinator.Compute"
	spanParallel     = "gem.Coordinator.Compute"
)

// Coordinator owns a matrix and reduces it with a pool of Workers.
type Coordinator struct {
	mu sync.Mutex

	m        *matrix.Matrix
	opts     Options
	threads  int
	computed bool
	err      error
	timings  Timings
}

// NewCoordinator takes ownership of m: the rows are moved into the
// coordinator and m is left empty. See NewCoordinatorCopy to keep m.
// Implementation:
//   - Stage 1: validate m (non-nil, all rows of one width).
//   - Stage 2: resolve options and clamp the thread count to
//     [1, max(1, m.Cols())], defaulting to runtime.NumCPU().
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func NewCoordinator(m *matrix.Matrix, opts ...Option) (*Coordinator, error) {
	if err := matrix.ValidateRectangular(m); err != nil {
		return nil, gemErrorf(opNewCoordinator, err)
	}

	return newCoordinator(m.Move(), opts...), nil
}

// NewCoordinatorCopy is NewCoordinator on a deep copy of m.
func NewCoordinatorCopy(m *matrix.Matrix, opts ...Option) (*Coordinator, error) {
	if err := matrix.ValidateRectangular(m); err != nil {
		return nil, gemErrorf(opNewCoordinator, err)
	}

	return newCoordinator(m.Clone(), opts...), nil
}

func newCoordinator(m *matrix.Matrix, opts ...Option) *Coordinator {
	o := gatherOptions(opts...)
	c := &Coordinator{m: m, opts: o}
	c.threads = clampThreads(o.threads, m.Cols())

	return c
}

// clampThreads maps a requested count onto [1, max(1, cols)]; n ≤ 0 asks
// for the platform parallelism.
func clampThreads(n, cols int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > cols {
		n = cols
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Threads returns the effective thread count, the calling goroutine included.
func (c *Coordinator) Threads() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.threads
}

// SetThreads changes the thread count (clamped like the constructor).
// It is a no-op once the result has been computed.
func (c *Coordinator) SetThreads(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.computed {
		return
	}
	c.threads = clampThreads(n, c.m.Cols())
}

// Computed reports whether Compute has already run (successfully or not).
func (c *Coordinator) Computed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.computed
}

// Timings returns the phase durations of the computation. All zero before
// Compute, frozen after it.
func (c *Coordinator) Timings() Timings {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.timings
}

// Result computes on first access and returns the reduced matrix. The
// matrix stays owned by the coordinator; later calls return the same pointer.
func (c *Coordinator) Result(ctx context.Context) (*matrix.Matrix, error) {
	if err := c.Compute(ctx); err != nil {
		return nil, err
	}

	return c.m, nil
}

// Compute reduces the owned matrix in place.
// Implementation:
//   - Stage 1 (setup): start threads-1 Workers with indices 1..threads-1.
//   - Stage 2 (computation): for cur in 1..n-1, for prev in 0..cur-1:
//     pick the divisor (swap on a zero pivot), broadcast the task, run
//     partition 0 here, then barrier on every worker.
//   - Stage 3 (cleanup): close all workers concurrently and join them.
//
// Behavior highlights:
//   - ctx is checked between pairs; cancellation leaves the matrix partially
//     reduced and is reported (and cached) like any other failure.
//   - Idempotent: a second call returns the cached error without running.
//
// Errors:
//   - ErrProtocolViolation, matrix row errors, ctx.Err().
func (c *Coordinator) Compute(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.computed {
		return c.err
	}
	c.err = c.compute(ctx)
	c.computed = true

	return c.err
}

func (c *Coordinator) compute(ctx context.Context) error {
	rows, cols := c.m.Shape()
	log := c.opts.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.Int("threads", c.threads),
		zap.Int("rows", rows),
		zap.Stringer("barrier", c.opts.barrier),
	)
	ctx, span := c.opts.tracer.Start(ctx, spanParallel, trace.WithAttributes(
		attribute.Int("gem.threads", c.threads),
		attribute.Int("gem.rows", rows),
		attribute.Int("gem.cols", cols),
		attribute.String("gem.barrier", c.opts.barrier.String()),
	))
	defer span.End()
	log.Debug("parallel elimination started")
	swapsBefore := c.m.Swaps()

	start := time.Now()
	workers, err := startWorkers(c.threads, cols)
	c.timings.Setup = time.Since(start)

	if err == nil {
		start = time.Now()
		err = c.eliminate(ctx, workers)
		c.timings.Computation = time.Since(start)

		start = time.Now()
		if closeErr := closeWorkers(ctx, workers); err == nil {
			err = closeErr
		}
		c.timings.Cleanup = time.Since(start)
	}

	stats := Stats{
		Mode:    ModeParallel,
		Threads: c.threads,
		Rows:    rows,
		Swaps:   c.m.Swaps() - swapsBefore,
		Timings: c.timings,
		Err:     err,
	}
	if c.opts.recorder != nil {
		c.opts.recorder.Record(stats)
	}
	span.SetAttributes(attribute.Int("gem.swaps", stats.Swaps))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Debug("parallel elimination failed", zap.Error(err))

		return err
	}
	log.Debug("parallel elimination done",
		zap.Int("swaps", stats.Swaps),
		zap.Duration("setup", c.timings.Setup),
		zap.Duration("computation", c.timings.Computation),
		zap.Duration("sync_wait", c.timings.SyncWait),
		zap.Duration("cleanup", c.timings.Cleanup),
	)

	return nil
}

// startWorkers creates the workers for partitions 1..threads-1. On failure
// the already started ones are closed.
func startWorkers(threads, width int) ([]*Worker, error) {
	workers := make([]*Worker, 0, threads-1)
	for i := 1; i < threads; i++ {
		w, err := NewWorker(i, threads, width)
		if err != nil {
			_ = closeWorkers(context.Background(), workers)

			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// closeWorkers stops and joins every worker concurrently. Cancellation of
// ctx does not cut the join short: no goroutine outlives the coordinator.
func closeWorkers(ctx context.Context, workers []*Worker) error {
	ctx = context.WithoutCancel(ctx)
	var g errgroup.Group
	for _, w := range workers {
		g.Go(func() error { return w.Close(ctx) })
	}

	return g.Wait()
}

func (c *Coordinator) eliminate(ctx context.Context, workers []*Worker) error {
	n := c.m.Rows()
	for cur := 1; cur < n; cur++ {
		for prev := 0; prev < cur; prev++ {
			if err := ctx.Err(); err != nil {
				return gemErrorf(opCompute, err)
			}
			if err := c.eliminatePair(workers, prev, cur); err != nil {
				return err
			}
		}
	}

	return nil
}

// eliminatePair runs one (cur, prev) task across all partitions.
// Implementation:
//   - Stage 1: divisor = row_prev[prev]; on zero (or out of width) swap prev
//     and cur and read it again.
//   - Stage 2: coef = row_cur[prev] / divisor, or 1 when the divisor is still
//     zero.
//   - Stage 3: broadcast, compute partition 0, barrier.
func (c *Coordinator) eliminatePair(workers []*Worker, prev, cur int) error {
	width := c.m.Cols()
	prevRow, err := c.m.Row(prev)
	if err != nil {
		return gemErrorf(opCompute, err)
	}
	divisor := diagonalOf(prevRow, prev, width)
	if divisor.IsZero() {
		if err = c.m.SwapRows(prev, cur); err != nil {
			return gemErrorf(opCompute, err)
		}
		prevRow, _ = c.m.Row(prev)
		divisor = diagonalOf(prevRow, prev, width)
	}
	curRow, err := c.m.Row(cur)
	if err != nil {
		return gemErrorf(opCompute, err)
	}

	coef := decimal.NewFromInt(1)
	if !divisor.IsZero() {
		v, err := curRow.At(prev)
		if err != nil {
			return gemErrorf(opCompute, err)
		}
		coef = matrix.DivSignificant(v, divisor, c.m.Precision())
	}

	var assignErr error
	for _, w := range workers {
		if assignErr = w.Assign(curRow, prevRow, coef); assignErr != nil {
			break
		}
	}
	var ownErr error
	if assignErr == nil {
		ownErr = curRow.EliminateStrided(prevRow, coef, 0, c.threads, width)
	}
	waitErr := c.barrier(workers)

	switch {
	case assignErr != nil:
		return gemErrorf(opCompute, assignErr)
	case ownErr != nil:
		return gemErrorf(opCompute, ownErr)
	case waitErr != nil:
		return gemErrorf(opCompute, waitErr)
	}

	return nil
}

// barrier waits for every worker in index order and returns the first task
// error. It always waits for all of them, even after an error.
func (c *Coordinator) barrier(workers []*Worker) error {
	start := time.Now()
	defer func() { c.timings.SyncWait += time.Since(start) }()

	var first error
	for _, w := range workers {
		var err error
		if c.opts.barrier == BarrierSpin {
			for !w.IsFinished() {
				runtime.Gosched()
			}
			err = w.Err()
		} else {
			err = w.Wait()
		}
		if err != nil && first == nil {
			first = err
		}
	}

	return first
}

// diagonalOf returns row[i], or zero when i is outside the matrix width.
func diagonalOf(row *matrix.Row, i, width int) decimal.Decimal {
	if i >= width {
		return decimal.Zero
	}
	v, err := row.At(i)
	if err != nil {
		return decimal.Zero
	}

	return v
}

// String summarizes the coordinator for logs.
func (c *Coordinator) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, cols := c.m.Shape()

	return fmt.Sprintf("Coordinator{%dx%d threads=%d computed=%t}", rows, cols, c.threads, c.computed)
}
