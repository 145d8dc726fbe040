// SPDX-License-Identifier: MIT
// Package matrix: determinant assembly from a reduced matrix.
//
// Purpose:
//   - Multiply the diagonal of a matrix already in row-echelon form and apply
//     the swap sign. Elimination itself lives in package gem.

package matrix

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	opDiagonalProduct = "DiagonalProduct"
	opDeterminant     = "Determinant"
)

// DiagonalProduct multiplies the diagonal entries (i, i) for every row i.
// Implementation:
//   - Stage 1: an empty matrix yields 0.
//   - Stage 2: return 0 at the first zero diagonal entry; otherwise
//     accumulate the product, rounding each step to the matrix precision
//     (significant digits, so a product of non-zero entries never rounds
//     to 0).
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when a row is narrower than its index.
//
// Complexity:
//   - Time O(r), Space O(1).
func DiagonalProduct(m *Matrix) (decimal.Decimal, error) {
	if err := ValidateNotNil(m); err != nil {
		return decimal.Zero, err
	}
	if m.Rows() == 0 {
		return decimal.Zero, nil
	}
	product := decimal.NewFromInt(1)
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", opDiagonalProduct, err)
		}
		if v.IsZero() {
			return decimal.Zero, nil
		}
		product = mulSignificant(product, v, m.precision)
	}

	return product, nil
}

// Determinant returns DiagonalProduct(m) * Sign() for a square matrix that
// has already been reduced to row-echelon form.
// Errors:
//   - ErrNonSquare before touching any value.
func Determinant(m *Matrix) (decimal.Decimal, error) {
	if err := ValidateSquare(m); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", opDeterminant, err)
	}
	product, err := DiagonalProduct(m)
	if err != nil {
		return decimal.Zero, err
	}
	if product.IsZero() {
		// Never report -0 for singular matrices.
		return decimal.Zero, nil
	}

	return product.Mul(decimal.NewFromInt(int64(m.sign))), nil
}
