// SPDX-License-Identifier: MIT

// Package gem - single-threaded reference elimination.
//
// Purpose:
//   - Reduce a square matrix to row-echelon form on the calling goroutine.
//   - Serve as the oracle the parallel coordinator is tested against.
//
// Notes:
//   - The only pivoting is the reactive swap on an exact zero pivot. It is
//     NOT partial pivoting and must stay that way: the sign of the result
//     depends on exactly which swaps ran.

package gem

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/gemdet/matrix"
)

const (
	opEliminatePair = "gem.EliminatePair"
	opEliminate     = "gem.Eliminate"
	spanSingle      = "gem.RunSingle"
)

// EliminatePair eliminates column pivot of row j using row pivot.
// Implementation:
//   - Stage 1: if the pivot row's own diagonal entry exists and is exactly
//     zero, swap rows pivot and j (the swapped-in row becomes the pivot).
//   - Stage 2: coef = 0 when the diagonal is outside the pivot row or still
//     zero (nothing to eliminate), otherwise row_j[pivot] / row_pivot[pivot].
//   - Stage 3: row_j -= row_pivot * coef through the mutating row operators.
//
// Errors:
//   - matrix.ErrOutOfRange for bad indices, matrix.ErrDimensionMismatch for
//     rows of unequal width.
//
// Complexity:
//   - Time O(c), Space O(c) for the scaled temporary.
func EliminatePair(m *matrix.Matrix, pivot, j int) error {
	pivotRow, err := m.Row(pivot)
	if err != nil {
		return gemErrorf(opEliminatePair, err)
	}
	if pivot < pivotRow.Len() {
		diag, _ := pivotRow.At(pivot)
		if diag.IsZero() {
			if err = m.SwapRows(pivot, j); err != nil {
				return gemErrorf(opEliminatePair, err)
			}
			pivotRow, _ = m.Row(pivot)
		}
	}
	row, err := m.Row(j)
	if err != nil {
		return gemErrorf(opEliminatePair, err)
	}

	coef := decimal.Zero
	if pivot < pivotRow.Len() {
		diag, _ := pivotRow.At(pivot)
		if !diag.IsZero() {
			v, err := row.At(pivot)
			if err != nil {
				return gemErrorf(opEliminatePair, err)
			}
			coef = matrix.DivSignificant(v, diag, m.Precision())
		}
	}
	scaled, err := pivotRow.Scale(coef)
	if err != nil {
		return gemErrorf(opEliminatePair, err)
	}
	if err = row.SubAssign(scaled); err != nil {
		return gemErrorf(opEliminatePair, err)
	}

	return nil
}

// EliminateInPlace reduces m to row-echelon form on the calling goroutine.
// For every pivot row i and every later row j it runs EliminatePair(m, i, j).
// ctx is checked once per pivot row.
// Complexity: Time O(n²·c), Space O(c).
func EliminateInPlace(ctx context.Context, m *matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return gemErrorf(opEliminate, err)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return gemErrorf(opEliminate, err)
		}
		for j := i + 1; j < n; j++ {
			if err := EliminatePair(m, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// Eliminate returns a reduced deep copy of m; m itself is not modified.
func Eliminate(ctx context.Context, m *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gemErrorf(opEliminate, err)
	}
	out := m.Clone()
	if err := EliminateInPlace(ctx, out); err != nil {
		return nil, err
	}

	return out, nil
}

// RunSingle is Eliminate with the ambient hooks of Options: a trace span,
// a debug log line and a Recorder entry. Only Timings.Computation is set.
// Thread and barrier options are ignored.
func RunSingle(ctx context.Context, m *matrix.Matrix, opts ...Option) (*matrix.Matrix, Timings, error) {
	o := gatherOptions(opts...)
	ctx, span := o.tracer.Start(ctx, spanSingle, trace.WithAttributes(
		attribute.Int("gem.rows", rowsOf(m)),
	))
	defer span.End()

	start := time.Now()
	out, err := Eliminate(ctx, m)
	timings := Timings{Computation: time.Since(start)}

	stats := Stats{Mode: ModeSingle, Threads: 1, Rows: rowsOf(m), Timings: timings, Err: err}
	if out != nil {
		stats.Swaps = out.Swaps() - m.Swaps()
	}
	if o.recorder != nil {
		o.recorder.Record(stats)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Debug("single-thread elimination failed", zap.Error(err))

		return nil, timings, err
	}
	o.logger.Debug("single-thread elimination done",
		zap.Int("rows", stats.Rows),
		zap.Int("swaps", stats.Swaps),
		zap.Duration("computation", timings.Computation),
	)

	return out, timings, nil
}

// rowsOf tolerates a nil matrix for logging purposes.
func rowsOf(m *matrix.Matrix) int {
	if m == nil {
		return 0
	}

	return m.Rows()
}
