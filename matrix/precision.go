// SPDX-License-Identifier: MIT
// Package matrix: significant-digit rounding.
//
// Purpose:
//   - Give shopspring decimals the behavior of a floating decimal with a
//     fixed significand width: the rounding position follows the magnitude
//     of each value, so 1e-30 and 1e30 keep the same number of digits.
//
// Notes:
//   - Rounding is half away from zero (shopspring Round / DivRound).

package matrix

import "github.com/shopspring/decimal"

// RoundSignificant rounds d to digits significant digits. Values that already
// fit are returned unchanged, so exact integers never grow trailing zeros.
// digits < 1 is treated as 1.
// Complexity: O(len(coefficient)).
func RoundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if digits < 1 {
		digits = 1
	}
	if d.IsZero() {
		return d
	}
	places := digits - 1 - int32(magnitude(d))
	if -d.Exponent() <= places {
		return d
	}

	return d.Round(places)
}

// DivSignificant returns a / b rounded once to digits significant digits.
// The quotient's magnitude is derived from the operands, so no intermediate
// rounding happens. b must be non-zero.
func DivSignificant(a, b decimal.Decimal, digits int32) decimal.Decimal {
	if digits < 1 {
		digits = 1
	}
	if a.IsZero() {
		return decimal.Zero
	}
	ma, mb := magnitude(a), magnitude(b)
	qmag := ma - mb
	// Leading digits of |a| smaller than those of |b|: one magnitude lower.
	if a.Shift(int32(-ma)).Abs().LessThan(b.Shift(int32(-mb)).Abs()) {
		qmag--
	}

	return a.DivRound(b, digits-1-int32(qmag))
}

// mulSignificant returns a * b rounded to digits significant digits.
func mulSignificant(a, b decimal.Decimal, digits int32) decimal.Decimal {
	return RoundSignificant(a.Mul(b), digits)
}
