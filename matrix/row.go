// SPDX-License-Identifier: MIT

// Package matrix - Row storage & in-place arithmetic.
//
// Purpose:
//   - Own a fixed-width sequence of fixed-precision decimals.
//   - Guarantee safety at the public surface: bad indices and nil rows are
//     reported as errors (or neutral values for accessors), never panics.
//   - Provide the strided elimination kernel shared by the single-threaded and
//     the parallel eliminators, so both produce bit-identical updates.
//
// Complexity quicksheet:
//   - NewRow: O(w) zero-init; At/Set: O(1); arithmetic: O(w); Clone: O(w).

package matrix

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------- error context tags ----------

const (
	ctxRowAt        = "At"
	ctxRowSet       = "Set"
	ctxRowAdd       = "AddAssign"
	ctxRowSub       = "SubAssign"
	ctxRowScale     = "ScaleAssign"
	ctxRowDiv       = "DivAssign"
	ctxRowEliminate = "EliminateStrided"
)

// rowErrorf wraps a sentinel with a uniform Row context and the offending index.
// Output shape: "Row.<method>(index): <sentinel>".
func rowErrorf(method string, index int, err error) error {
	return fmt.Errorf("Row.%s(%d): %w", method, index, err)
}

// Row is a fixed-width sequence of decimal values.
//   - values has length fixed at construction (never resized).
//   - precision is the significant-digit width applied to arithmetic results.
type Row struct {
	values    []decimal.Decimal // len == column count, zero-initialized
	precision int32             // significant digits kept by arithmetic
}

var _ fmt.Stringer = (*Row)(nil)

// NewRow creates a zero row of the given width.
// Errors:
//   - ErrInvalidDimensions when width < 0.
//
// Complexity:
//   - Time O(w), Space O(w).
func NewRow(width int, opts ...Option) (*Row, error) {
	if width < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return newRow(width, o.precision), nil
}

// newRow is the unchecked constructor used by Matrix.
func newRow(width int, precision int32) *Row {
	// decimal.Decimal's zero value is 0, so make() is enough.
	return &Row{values: make([]decimal.Decimal, width), precision: precision}
}

// Len returns the column count of the row (0 for a nil row).
func (r *Row) Len() int {
	if r == nil {
		return 0
	}

	return len(r.values)
}

// Precision returns the significant digits kept by this row's arithmetic.
func (r *Row) Precision() int32 { return r.precision }

// At returns the value at column i or ErrOutOfRange.
func (r *Row) At(i int) (decimal.Decimal, error) {
	if r == nil {
		return decimal.Zero, ErrNilMatrix
	}
	if i < 0 || i >= len(r.values) {
		return decimal.Zero, rowErrorf(ctxRowAt, i, ErrOutOfRange)
	}

	return r.values[i], nil
}

// Set stores v at column i exactly; the row precision applies only to
// arithmetic results.
func (r *Row) Set(i int, v decimal.Decimal) error {
	if r == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= len(r.values) {
		return rowErrorf(ctxRowSet, i, ErrOutOfRange)
	}
	r.values[i] = v

	return nil
}

// Values returns a copy of the row contents (nil for a nil row).
func (r *Row) Values() []decimal.Decimal {
	if r == nil {
		return nil
	}
	out := make([]decimal.Decimal, len(r.values))
	copy(out, r.values)

	return out
}

// Clone returns a deep copy with the same width and precision.
// Cloning a nil row yields nil.
func (r *Row) Clone() *Row {
	if r == nil {
		return nil
	}
	cp := make([]decimal.Decimal, len(r.values))
	copy(cp, r.values) // decimals are immutable values; a shallow copy is deep

	return &Row{values: cp, precision: r.precision}
}

// AddAssign adds other element-wise into r.
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when widths differ.
func (r *Row) AddAssign(other *Row) error {
	if r == nil || other == nil {
		return ErrNilMatrix
	}
	if len(other.values) != len(r.values) {
		return rowErrorf(ctxRowAdd, len(other.values), ErrDimensionMismatch)
	}
	for i := range r.values {
		r.values[i] = RoundSignificant(r.values[i].Add(other.values[i]), r.precision)
	}

	return nil
}

// SubAssign subtracts other element-wise from r.
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when widths differ.
func (r *Row) SubAssign(other *Row) error {
	if r == nil || other == nil {
		return ErrNilMatrix
	}
	if len(other.values) != len(r.values) {
		return rowErrorf(ctxRowSub, len(other.values), ErrDimensionMismatch)
	}
	for i := range r.values {
		r.values[i] = RoundSignificant(r.values[i].Sub(other.values[i]), r.precision)
	}

	return nil
}

// ScaleAssign multiplies every value by k, rounding each product.
// Errors:
//   - ErrNilMatrix when r is nil.
func (r *Row) ScaleAssign(k decimal.Decimal) error {
	if r == nil {
		return rowErrorf(ctxRowScale, 0, ErrNilMatrix)
	}
	for i := range r.values {
		r.values[i] = mulSignificant(r.values[i], k, r.precision)
	}

	return nil
}

// DivAssign divides every value by k, rounding each quotient.
// Errors:
//   - ErrDivisionByZero when k == 0; r is left untouched.
func (r *Row) DivAssign(k decimal.Decimal) error {
	if r == nil {
		return ErrNilMatrix
	}
	if k.IsZero() {
		return rowErrorf(ctxRowDiv, 0, ErrDivisionByZero)
	}
	for i := range r.values {
		r.values[i] = DivSignificant(r.values[i], k, r.precision)
	}

	return nil
}

// Add returns a new row r + other. Neither operand is modified.
func (r *Row) Add(other *Row) (*Row, error) {
	if r == nil {
		return nil, ErrNilMatrix
	}
	out := r.Clone()
	if err := out.AddAssign(other); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a new row r - other. Neither operand is modified.
// The result is always the computed difference, never an operand.
func (r *Row) Sub(other *Row) (*Row, error) {
	if r == nil {
		return nil, ErrNilMatrix
	}
	out := r.Clone()
	if err := out.SubAssign(other); err != nil {
		return nil, err
	}

	return out, nil
}

// Scale returns a new row r * k.
func (r *Row) Scale(k decimal.Decimal) (*Row, error) {
	if r == nil {
		return nil, ErrNilMatrix
	}
	out := r.Clone()
	if err := out.ScaleAssign(k); err != nil {
		return nil, err
	}

	return out, nil
}

// Div returns a new row r / k.
func (r *Row) Div(k decimal.Decimal) (*Row, error) {
	if r == nil {
		return nil, ErrNilMatrix
	}
	out := r.Clone()
	if err := out.DivAssign(k); err != nil {
		return nil, err
	}

	return out, nil
}

// EliminateStrided performs r[c] -= prev[c]*coef for every column
// c ∈ {start, start+step, start+2·step, …} ∩ [0, width).
// MAIN DESCRIPTION:
//   - The partition kernel of Gaussian elimination. For a fixed step, the
//     offsets 0..step-1 select pairwise disjoint column sets whose union is
//     [0, width), so concurrent calls with distinct offsets never write the
//     same element of r.
//
// Implementation:
//   - Stage 1: validate start ≥ 0, step ≥ 1 and both rows at least width wide.
//   - Stage 2: walk the stride and update r's backing slice in place.
//
// Behavior highlights:
//   - prev is only read. The product and the difference are rounded exactly
//     as Scale and SubAssign round them, so SubAssign(prev.Scale(coef)) and
//     this kernel agree bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad start/step), ErrDimensionMismatch (rows too narrow).
//
// Complexity:
//   - Time O(width/step), Space O(1).
func (r *Row) EliminateStrided(prev *Row, coef decimal.Decimal, start, step, width int) error {
	if r == nil || prev == nil {
		return ErrNilMatrix
	}
	if start < 0 || step < 1 {
		return rowErrorf(ctxRowEliminate, start, ErrOutOfRange)
	}
	if width > len(r.values) || width > len(prev.values) {
		return rowErrorf(ctxRowEliminate, width, ErrDimensionMismatch)
	}
	cur, src := r.values[:width], prev.values[:width]
	for c := start; c < width; c += step {
		cur[c] = RoundSignificant(cur[c].Sub(mulSignificant(src[c], coef, prev.precision)), r.precision)
	}

	return nil
}

// String renders the row as "[v0, v1, ...]".
func (r *Row) String() string {
	if r == nil {
		return _fmtRowOpen + _fmtRowEnd
	}
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, v := range r.values {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(_fmtRowEnd)

	return sb.String()
}
