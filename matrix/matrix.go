// SPDX-License-Identifier: MIT

// Package matrix - Matrix of owned rows with a swap sign.
//
// Purpose:
//   - Own an ordered set of *Row slots; swapping two rows is an O(1) pointer
//     exchange that flips the sign multiplier.
//   - Keep every public accessor bounds-checked (errors, never panics).
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) zero-init; Row/SetRow/SwapRows: O(1); At/Set: O(1);
//     Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------- error context tags ----------

const (
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxSwap   = "SwapRows"
	ctxFrom   = "FromValues"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen = "["
	_fmtRowEnd  = "]"
	_fmtSep     = ", "
	_fmtNewline = "\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
// Output shape: "Matrix.<method>(a,b): <sentinel>".
func matrixErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}

// Matrix is an ordered collection of rows plus the sign multiplier that
// records the parity of row swaps.
//   - rows holds exactly rowCount slots; every slot owns its *Row.
//   - sign is +1 or -1 and flips on every SwapRows.
//   - swaps counts successful SwapRows calls, so Sign() == (-1)^Swaps().
//   - precision is the significant-digit width handed to rows created by this matrix.
type Matrix struct {
	rows      []*Row
	sign      int
	swaps     int
	precision int32
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates a rows×cols zero matrix with sign +1.
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0.
//   - Stage 2: resolve options and allocate one zero row per slot.
//
// Behavior highlights:
//   - Zero-sized shapes are legal: a 0×0 matrix has Cols() == 0.
//
// Errors:
//   - ErrInvalidDimensions on negative sizes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	m := &Matrix{rows: make([]*Row, rows), sign: 1, precision: o.precision}
	for i := range m.rows {
		m.rows[i] = newRow(cols, o.precision)
	}

	return m, nil
}

// FromValues builds a matrix from a rectangular slice of decimals.
// Shorter rows are zero-padded on the right up to the longest row.
func FromValues(values [][]decimal.Decimal, opts ...Option) (*Matrix, error) {
	cols := 0
	for _, row := range values {
		if len(row) > cols {
			cols = len(row)
		}
	}
	m, err := NewMatrix(len(values), cols, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		for j, v := range row {
			if err = m.rows[i].Set(j, v); err != nil {
				return nil, matrixErrorf(ctxFrom, i, j, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the width of row 0, or 0 when the matrix has no rows.
func (m *Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return m.rows[0].Len()
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Sign returns the swap sign multiplier (+1 or -1).
func (m *Matrix) Sign() int { return m.sign }

// Swaps returns the number of row swaps performed so far.
func (m *Matrix) Swaps() int { return m.swaps }

// Precision returns the significant digits used for rows created by this matrix.
func (m *Matrix) Precision() int32 { return m.precision }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// Row returns the row stored in slot i. The row stays owned by the matrix:
// mutations through the returned pointer are mutations of the matrix.
func (m *Matrix) Row(i int) (*Row, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// SetRow transfers ownership of r into slot i, releasing the previous row.
// The width of r is NOT checked against the other rows; keeping the matrix
// rectangular is the caller's responsibility.
func (m *Matrix) SetRow(i int, r *Row) error {
	if m == nil || r == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) {
		return matrixErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	m.rows[i] = r

	return nil
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) (decimal.Decimal, error) {
	row, err := m.Row(i)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := row.At(j)
	if err != nil {
		return decimal.Zero, matrixErrorf(ctxAt, i, j, err)
	}

	return v, nil
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v decimal.Decimal) error {
	row, err := m.Row(i)
	if err != nil {
		return err
	}
	if err = row.Set(j, v); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}

	return nil
}

// SwapRows exchanges the rows in slots a and b and flips the sign.
// Swapping a slot with itself still flips the sign: the sign counts swaps,
// not permutations.
// Complexity: O(1).
func (m *Matrix) SwapRows(a, b int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if a < 0 || a >= len(m.rows) || b < 0 || b >= len(m.rows) {
		return matrixErrorf(ctxSwap, a, b, ErrOutOfRange)
	}
	m.rows[a], m.rows[b] = m.rows[b], m.rows[a]
	m.sign = -m.sign
	m.swaps++

	return nil
}

// Clone returns a deep copy: independent rows, same sign and precision.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{rows: make([]*Row, len(m.rows)), sign: m.sign, swaps: m.swaps, precision: m.precision}
	for i, r := range m.rows {
		cp.rows[i] = r.Clone()
	}

	return cp
}

// Move transfers row ownership to a new Matrix and leaves m empty (0×0,
// sign +1, no swaps). Any later access on m fails with ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Move() *Matrix {
	moved := &Matrix{rows: m.rows, sign: m.sign, swaps: m.swaps, precision: m.precision}
	m.rows = nil
	m.sign = 1
	m.swaps = 0

	return moved
}

// String renders one "[...]" line per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(r.String())
		sb.WriteString(_fmtNewline)
	}

	return sb.String()
}
