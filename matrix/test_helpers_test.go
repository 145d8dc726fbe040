// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures built from integer literals.
//   • Compare decimals by value (Equal), not by representation.

package matrix_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gemdet/matrix"
)

// dec is shorthand for an integer decimal.
func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// MustMatrix builds a matrix from integer rows or fails the test.
// Shorter rows are zero-padded, as FromValues does.
func MustMatrix(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	values := make([][]decimal.Decimal, len(rows))
	for i, row := range rows {
		values[i] = make([]decimal.Decimal, len(row))
		for j, v := range row {
			values[i][j] = dec(v)
		}
	}
	m, err := matrix.FromValues(values, opts...)
	require.NoError(t, err)

	return m
}

// MustRow builds a row from integers or fails the test.
func MustRow(t testing.TB, values ...int64) *matrix.Row {
	t.Helper()
	r, err := matrix.NewRow(len(values))
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, r.Set(i, dec(v)))
	}

	return r
}

// RequireDecEqual asserts want == got by decimal value.
func RequireDecEqual(t testing.TB, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

// RequireRowEqual asserts r holds exactly the integers in want.
func RequireRowEqual(t testing.TB, want []int64, r *matrix.Row) {
	t.Helper()
	require.Equal(t, len(want), r.Len())
	for i, w := range want {
		v, err := r.At(i)
		require.NoError(t, err)
		RequireDecEqual(t, dec(w), v, "column", i)
	}
}
