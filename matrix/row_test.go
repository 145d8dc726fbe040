// Package matrix_test contains unit tests for Row.
package matrix_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gemdet/matrix"
)

// TestNewRowInvalidWidth ensures that NewRow rejects negative widths.
func TestNewRowInvalidWidth(t *testing.T) {
	_, err := matrix.NewRow(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	r, err := matrix.NewRow(0) // zero width is legal
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
}

// TestRowZeroInitialized verifies fresh rows hold zeros.
func TestRowZeroInitialized(t *testing.T) {
	r, err := matrix.NewRow(4)
	require.NoError(t, err)
	RequireRowEqual(t, []int64{0, 0, 0, 0}, r)
}

// TestRowAtSetOutOfRange ensures At() and Set() never clamp.
func TestRowAtSetOutOfRange(t *testing.T) {
	r := MustRow(t, 1, 2, 3)

	_, err := r.At(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = r.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, r.Set(3, dec(1)), matrix.ErrOutOfRange)
	require.ErrorIs(t, r.Set(-2, dec(1)), matrix.ErrOutOfRange)

	RequireRowEqual(t, []int64{1, 2, 3}, r) // failed writes left r untouched
}

// TestRowSetKeepsValuesExact checks Set never rounds, whatever the precision.
func TestRowSetKeepsValuesExact(t *testing.T) {
	r, err := matrix.NewRow(2, matrix.WithPrecision(2))
	require.NoError(t, err)
	require.NoError(t, r.Set(0, decimal.RequireFromString("1.005")))
	require.NoError(t, r.Set(1, decimal.RequireFromString("1.23e-18")))

	v, err := r.At(0)
	require.NoError(t, err)
	RequireDecEqual(t, decimal.RequireFromString("1.005"), v)
	v, err = r.At(1)
	require.NoError(t, err)
	RequireDecEqual(t, decimal.RequireFromString("1.23e-18"), v)
}

func TestRowAddSubAssign(t *testing.T) {
	a := MustRow(t, 1, 2, 3)
	b := MustRow(t, 10, 20, 30)

	require.NoError(t, a.AddAssign(b))
	RequireRowEqual(t, []int64{11, 22, 33}, a)
	RequireRowEqual(t, []int64{10, 20, 30}, b) // operand untouched

	require.NoError(t, a.SubAssign(b))
	RequireRowEqual(t, []int64{1, 2, 3}, a)
}

func TestRowArithmeticDimensionMismatch(t *testing.T) {
	a := MustRow(t, 1, 2, 3)
	b := MustRow(t, 1, 2)

	require.ErrorIs(t, a.AddAssign(b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubAssign(b), matrix.ErrDimensionMismatch)
	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.AddAssign(nil), matrix.ErrNilMatrix)
}

func TestRowScaleDivAssign(t *testing.T) {
	r := MustRow(t, 2, -4, 6)

	require.NoError(t, r.ScaleAssign(dec(3)))
	RequireRowEqual(t, []int64{6, -12, 18}, r)

	require.NoError(t, r.DivAssign(dec(6)))
	RequireRowEqual(t, []int64{1, -2, 3}, r)
}

// TestRowDivAssignByZero ensures division by zero fails and leaves the row intact.
func TestRowDivAssignByZero(t *testing.T) {
	r := MustRow(t, 5, 7)
	require.ErrorIs(t, r.DivAssign(decimal.Zero), matrix.ErrDivisionByZero)
	RequireRowEqual(t, []int64{5, 7}, r)

	_, err := r.Div(decimal.Zero)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

// TestRowDivRoundsToPrecision checks quotients keep Precision() significant
// digits at every magnitude.
func TestRowDivRoundsToPrecision(t *testing.T) {
	r, err := matrix.NewRow(4, matrix.WithPrecision(4))
	require.NoError(t, err)
	require.NoError(t, r.Set(0, dec(1)))
	require.NoError(t, r.Set(1, dec(2)))
	require.NoError(t, r.Set(2, dec(2000)))
	require.NoError(t, r.Set(3, decimal.RequireFromString("1e-9")))

	require.NoError(t, r.DivAssign(dec(3)))
	want := []string{"0.3333", "0.6667", "666.7", "3.333e-10"}
	for i, w := range want {
		v, _ := r.At(i)
		RequireDecEqual(t, decimal.RequireFromString(w), v, "column", i)
	}
}

// TestRowArithmeticRoundsToPrecision checks sums and products are rounded
// relative to their own magnitude.
func TestRowArithmeticRoundsToPrecision(t *testing.T) {
	a, err := matrix.NewRow(2, matrix.WithPrecision(3))
	require.NoError(t, err)
	require.NoError(t, a.Set(0, dec(1000)))
	require.NoError(t, a.Set(1, decimal.RequireFromString("0.0001234")))

	b, err := matrix.NewRow(2, matrix.WithPrecision(3))
	require.NoError(t, err)
	require.NoError(t, b.Set(0, dec(5)))
	require.NoError(t, b.Set(1, decimal.RequireFromString("0.0000001")))

	require.NoError(t, a.AddAssign(b))
	v0, _ := a.At(0)
	v1, _ := a.At(1)
	// 1005 and 0.0001235 both round half away from zero.
	RequireDecEqual(t, dec(1010), v0)
	RequireDecEqual(t, decimal.RequireFromString("0.000124"), v1)

	require.NoError(t, a.ScaleAssign(decimal.RequireFromString("1e-20")))
	v0, _ = a.At(0)
	RequireDecEqual(t, decimal.RequireFromString("1.01e-17"), v0)
}

// TestRowNilReceiver checks every Row method tolerates a nil receiver.
func TestRowNilReceiver(t *testing.T) {
	var r *matrix.Row

	require.ErrorIs(t, r.ScaleAssign(dec(2)), matrix.ErrNilMatrix)
	_, err := r.Scale(dec(2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, r.DivAssign(dec(2)), matrix.ErrNilMatrix)
	require.ErrorIs(t, r.SubAssign(MustRow(t, 1)), matrix.ErrNilMatrix)
	_, err = r.At(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Equal(t, 0, r.Len())
	require.Nil(t, r.Values())
	require.Nil(t, r.Clone())
	require.Equal(t, "[]", r.String())
}

// TestRowNonMutatingOperatorsReturnResult pins the behavior of Add, Sub, Scale
// and Div: they return the computed row and leave both operands unchanged.
// Sub in particular returns a - b, not b.
func TestRowNonMutatingOperatorsReturnResult(t *testing.T) {
	a := MustRow(t, 5, 7, 9)
	b := MustRow(t, 1, 2, 3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	RequireRowEqual(t, []int64{6, 9, 12}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	RequireRowEqual(t, []int64{4, 5, 6}, diff)
	require.NotSame(t, b, diff)

	scaled, err := a.Scale(dec(2))
	require.NoError(t, err)
	RequireRowEqual(t, []int64{10, 14, 18}, scaled)

	q, err := a.Div(dec(-1))
	require.NoError(t, err)
	RequireRowEqual(t, []int64{-5, -7, -9}, q)

	RequireRowEqual(t, []int64{5, 7, 9}, a)
	RequireRowEqual(t, []int64{1, 2, 3}, b)
}

func TestRowCloneIndependence(t *testing.T) {
	r := MustRow(t, 1, 2)
	cp := r.Clone()
	require.NoError(t, cp.Set(0, dec(42)))

	RequireRowEqual(t, []int64{1, 2}, r)
	RequireRowEqual(t, []int64{42, 2}, cp)

	vals := r.Values()
	vals[1] = dec(99) // Values is a copy
	RequireRowEqual(t, []int64{1, 2}, r)
}

// TestEliminateStridedPartitionCoverage verifies that for every thread count
// the offsets 0..step-1 touch each column of [0, width) exactly once.
func TestEliminateStridedPartitionCoverage(t *testing.T) {
	const width = 11
	ones := make([]int64, width)
	for i := range ones {
		ones[i] = 1
	}
	prev := MustRow(t, ones...)

	for step := 1; step <= width+2; step++ {
		cur, err := matrix.NewRow(width)
		require.NoError(t, err)
		for start := 0; start < step; start++ {
			require.NoError(t, cur.EliminateStrided(prev, dec(1), start, step, width))
		}
		want := make([]int64, width)
		for i := range want {
			want[i] = -1 // each column decremented exactly once
		}
		RequireRowEqual(t, want, cur)
	}
}

// TestEliminateStridedMatchesSubScale checks the kernel agrees with
// SubAssign(prev.Scale(coef)) bit for bit, including rounding.
func TestEliminateStridedMatchesSubScale(t *testing.T) {
	prev := MustRow(t, 3, 7, 11, 13)
	coef := matrix.DivSignificant(dec(2), dec(3), matrix.DefaultPrecision)

	viaKernel := MustRow(t, 1, 2, 3, 4)
	for start := 0; start < 3; start++ {
		require.NoError(t, viaKernel.EliminateStrided(prev, coef, start, 3, 4))
	}

	viaOps := MustRow(t, 1, 2, 3, 4)
	scaled, err := prev.Scale(coef)
	require.NoError(t, err)
	require.NoError(t, viaOps.SubAssign(scaled))

	for i := 0; i < 4; i++ {
		a, _ := viaKernel.At(i)
		b, _ := viaOps.At(i)
		RequireDecEqual(t, b, a, "column", i)
	}
}

func TestEliminateStridedErrors(t *testing.T) {
	cur := MustRow(t, 1, 2, 3)
	prev := MustRow(t, 1, 2)

	require.ErrorIs(t, cur.EliminateStrided(prev, dec(1), 0, 1, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, cur.EliminateStrided(prev, dec(1), -1, 1, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, cur.EliminateStrided(prev, dec(1), 0, 0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, cur.EliminateStrided(nil, dec(1), 0, 1, 2), matrix.ErrNilMatrix)

	// Narrower width than the rows is fine: only [0, width) is touched.
	require.NoError(t, cur.EliminateStrided(prev, dec(1), 0, 1, 2))
	RequireRowEqual(t, []int64{0, 0, 3}, cur)
}

func TestRowString(t *testing.T) {
	r := MustRow(t, 1, -2)
	require.NoError(t, r.Set(1, decimal.RequireFromString("2.5")))
	require.Equal(t, "[1, 2.5]", r.String())
}
