// SPDX-License-Identifier: MIT

// Package determinant - caller-side assembly of a determinant.
//
// Purpose:
//   - Reject non-square input before any elimination runs.
//   - Run the chosen elimination path on a copy of the input.
//   - Multiply the reduced diagonal by the swap sign.

package determinant

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/gemdet/gem"
	"github.com/katalvlaran/gemdet/matrix"
)

const opCompute = "determinant.Compute"

// Result is a computed determinant together with how it was obtained.
type Result struct {
	Value   decimal.Decimal
	Sign    int            // swap sign of Reduced
	Reduced *matrix.Matrix // the row-echelon form the value was read from
	Mode    gem.Mode
	Threads int
	Timings gem.Timings
}

// Format renders Value with the given number of significant digits.
func (r Result) Format(digits int) string {
	return matrix.FormatSignificant(r.Value, digits)
}

// String renders Value with matrix.DefaultDisplayDigits significant digits.
func (r Result) String() string {
	return r.Format(matrix.DefaultDisplayDigits)
}

// Compute returns det(m). m itself is never modified.
// Implementation:
//   - Stage 1: matrix.ValidateSquare (nothing is eliminated on failure).
//   - Stage 2: gem.RunSingle or a gem.Coordinator over a copy of m.
//   - Stage 3: matrix.Determinant on the reduced matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, any engine error, ctx.Err().
func Compute(ctx context.Context, m *matrix.Matrix, opts ...Option) (Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}
	o := gatherOptions(opts...)

	res := Result{Mode: gem.ModeSingle, Threads: 1}
	if o.single {
		reduced, timings, err := gem.RunSingle(ctx, m, o.gem...)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", opCompute, err)
		}
		res.Reduced, res.Timings = reduced, timings
	} else {
		c, err := gem.NewCoordinatorCopy(m, o.gem...)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", opCompute, err)
		}
		reduced, err := c.Result(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", opCompute, err)
		}
		res.Reduced, res.Timings = reduced, c.Timings()
		res.Mode, res.Threads = gem.ModeParallel, c.Threads()
	}

	value, err := matrix.Determinant(res.Reduced)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCompute, err)
	}
	res.Value, res.Sign = value, res.Reduced.Sign()

	return res, nil
}
