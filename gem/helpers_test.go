// SPDX-License-Identifier: MIT
// Package gem_test contains shared fixtures for the elimination tests.
//
// Purpose:
//   - Build matrices from integer literals.
//   - Generate L·U products whose elimination stays exact in decimal, so both
//     paths can be compared by value instead of by tolerance.

package gem_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gemdet/gem"
	"github.com/katalvlaran/gemdet/matrix"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// mustMatrix builds a matrix from integer rows or fails the test.
func mustMatrix(t testing.TB, rows [][]int64) *matrix.Matrix {
	t.Helper()
	values := make([][]decimal.Decimal, len(rows))
	for i, row := range rows {
		values[i] = make([]decimal.Decimal, len(row))
		for j, v := range row {
			values[i][j] = dec(v)
		}
	}
	m, err := matrix.FromValues(values)
	require.NoError(t, err)

	return m
}

// mustRow builds a row from integers or fails the test.
func mustRow(t testing.TB, values ...int64) *matrix.Row {
	t.Helper()
	r, err := matrix.NewRow(len(values))
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, r.Set(i, dec(v)))
	}

	return r
}

// requireDet asserts the determinant of a reduced matrix.
func requireDet(t testing.TB, want int64, reduced *matrix.Matrix) {
	t.Helper()
	got, err := matrix.Determinant(reduced)
	require.NoError(t, err)
	require.Truef(t, dec(want).Equal(got), "determinant: want %d, got %s", want, got)
}

// luMatrix returns A = L·U and det(A) for a unit lower-triangular integer L
// and an upper-triangular integer U whose diagonal is drawn from {±1, ±2}.
// Every pivot of A is a diagonal entry of U, so no row swap happens and all
// intermediate values have power-of-two denominators (exact in decimal).
func luMatrix(rng *rand.Rand, n int) ([][]int64, int64) {
	pivots := []int64{1, -1, 2, -2}
	l := make([][]int64, n)
	u := make([][]int64, n)
	det := int64(1)
	for i := 0; i < n; i++ {
		l[i] = make([]int64, n)
		u[i] = make([]int64, n)
		l[i][i] = 1
		for j := 0; j < i; j++ {
			l[i][j] = rng.Int64N(7) - 3
		}
		u[i][i] = pivots[rng.IntN(len(pivots))]
		det *= u[i][i]
		for j := i + 1; j < n; j++ {
			u[i][j] = rng.Int64N(7) - 3
		}
	}

	a := make([][]int64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				a[i][j] += l[i][k] * u[k][j]
			}
		}
	}

	return a, det
}

// permutations returns every permutation of 0..n-1 with its parity sign.
func permutations(n int) ([][]int, []int64) {
	var perms [][]int
	var signs []int64
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var walk func(k int, sign int64)
	walk = func(k int, sign int64) {
		if k == n {
			perms = append(perms, append([]int(nil), p...))
			signs = append(signs, sign)

			return
		}
		for i := k; i < n; i++ {
			p[k], p[i] = p[i], p[k]
			s := sign
			if i != k {
				s = -s
			}
			walk(k+1, s)
			p[k], p[i] = p[i], p[k]
		}
	}
	walk(0, 1)

	return perms, signs
}

// permutationMatrix has a 1 at (i, perm[i]).
func permutationMatrix(perm []int) [][]int64 {
	rows := make([][]int64, len(perm))
	for i, c := range perm {
		rows[i] = make([]int64, len(perm))
		rows[i][c] = 1
	}

	return rows
}

// statsRecorder collects every Stats it receives.
type statsRecorder struct {
	mu    sync.Mutex
	stats []gem.Stats
}

func (r *statsRecorder) Record(s gem.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, s)
}

func (r *statsRecorder) all() []gem.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]gem.Stats(nil), r.stats...)
}
