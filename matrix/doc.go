// Package matrix is the data model of gemdet: fixed-precision decimal rows
// owned by a matrix that tracks the sign of its row swaps.
//
// The matrix package provides:
//
//   - Row: a fixed-width sequence of decimals with bounds-checked access and
//     in-place arithmetic (AddAssign, SubAssign, ScaleAssign, DivAssign) plus
//     the strided elimination kernel EliminateStrided.
//   - Matrix: an ordered set of owned rows; SwapRows is an O(1) pointer swap
//     that flips Sign().
//   - DiagonalProduct / Determinant: determinant assembly once a matrix has
//     been reduced to row-echelon form (see package gem).
//   - FormatSignificant: "%g"-style rendering with a fixed number of
//     significant digits.
//
// Numeric policy:
//
//	Values are shopspring decimals used as a floating decimal: every arithmetic
//	result is rounded half away from zero to Precision() significant digits
//	(DefaultPrecision = 34, see WithPrecision). Values stored with Set are
//	kept exactly. RoundSignificant and DivSignificant expose the rounding.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch,
//	ErrDivisionByZero, ErrNonSquare, ErrNilMatrix.
//
// Example:
//
//	m, _ := matrix.NewMatrix(2, 2)
//	_ = m.Set(0, 0, decimal.NewFromInt(2))
//	_ = m.Set(1, 1, decimal.NewFromInt(3))
//	det, _ := matrix.Determinant(m) // already triangular: 6
package matrix
