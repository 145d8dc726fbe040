// SPDX-License-Identifier: MIT

// Package crosscheck compares a decimal determinant with an independent
// float64 computation (gonum's LU-based mat.Det).
//
// The float64 value is only a plausibility check: it uses partial pivoting
// and binary floating point, so agreement is judged with a relative
// tolerance, never by equality.
package crosscheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gemdet/matrix"
)

// DefaultTolerance is the relative tolerance used by Verify.
const DefaultTolerance = 1e-9

// ErrDisagree indicates the decimal determinant differs from the float64
// reference by more than the tolerance.
var ErrDisagree = errors.New("crosscheck: determinant disagrees with float64 reference")

// Dense copies a square matrix into a gonum Dense.
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Dense(m *matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("crosscheck.Dense: %w", err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, fmt.Errorf("crosscheck.Dense: empty matrix: %w", matrix.ErrInvalidDimensions)
	}
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("crosscheck.Dense: %w", err)
		}
		for _, v := range row.Values() {
			data = append(data, v.InexactFloat64())
		}
	}

	return mat.NewDense(n, n, data), nil
}

// Float64Det returns the float64 determinant of m.
// The 0x0 matrix has determinant 0, matching matrix.Determinant.
func Float64Det(m *matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("crosscheck.Float64Det: %w", err)
	}
	if m.Rows() == 0 {
		return 0, nil
	}
	d, err := Dense(m)
	if err != nil {
		return 0, err
	}

	return mat.Det(d), nil
}

// Agree reports |got - want| <= tol * max(1, |want|).
func Agree(got decimal.Decimal, want, tol float64) bool {
	diff := math.Abs(got.InexactFloat64() - want)

	return diff <= tol*math.Max(1, math.Abs(want))
}

// Verify recomputes det(m) in float64 and checks it against got.
// Errors:
//   - ErrDisagree (with both values) when Agree fails.
func Verify(m *matrix.Matrix, got decimal.Decimal, tol float64) (float64, error) {
	want, err := Float64Det(m)
	if err != nil {
		return 0, err
	}
	if !Agree(got, want, tol) {
		return want, fmt.Errorf("decimal %s, float64 %g: %w", got, want, ErrDisagree)
	}

	return want, nil
}
