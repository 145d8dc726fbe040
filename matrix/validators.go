// SPDX-License-Identifier: MIT
// Package matrix: shared validators.
//
// Purpose:
//   - One place for shape checks, so every caller reports the same sentinel.
//
// Notes:
//   - Validators never mutate their input and never panic.

package matrix

import "fmt"

// Operation tags used for validator error context.
const (
	opValidateSquare      = "ValidateSquare"
	opValidateRectangular = "ValidateRectangular"
)

// validatorErrorf wraps err with a validator tag: "<tag>: <err>".
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare returns ErrNonSquare (with the observed shape) unless
// Rows() == Cols().
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return validatorErrorf(opValidateSquare,
			fmt.Errorf("%d rows, %d columns: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateRectangular returns ErrDimensionMismatch when some row is not as
// wide as row 0. Matrices built by NewMatrix are always rectangular; rows
// installed through SetRow may break it.
// Complexity: O(r).
func ValidateRectangular(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	width := m.Cols()
	for i, r := range m.rows {
		if r.Len() != width {
			return validatorErrorf(opValidateRectangular,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, r.Len(), width, ErrDimensionMismatch))
		}
	}

	return nil
}
