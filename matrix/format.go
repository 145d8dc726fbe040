// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultDisplayDigits is the number of significant digits used when a
// determinant is printed.
const DefaultDisplayDigits = 5

// FormatSignificant renders d with at most digits significant digits in the
// "%g" style: plain notation when the decimal exponent is in [-4, digits),
// scientific ("1.2346e+10") otherwise. Trailing zeros are dropped.
// digits < 1 is treated as 1.
func FormatSignificant(d decimal.Decimal, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if d.IsZero() {
		return "0"
	}
	exp := magnitude(d)
	r := d.Round(int32(digits - 1 - exp))
	// Rounding may carry into a new leading digit (9.99996 -> 10.000).
	if m := magnitude(r); m != exp {
		exp = m
		r = d.Round(int32(digits - 1 - exp))
	}
	if exp < -4 || exp >= digits {
		mant := r.Shift(int32(-exp))
		return mant.String() + "e" + exponentString(exp)
	}

	return r.String()
}

// magnitude returns floor(log10(|d|)) for d != 0.
func magnitude(d decimal.Decimal) int {
	coef := d.Coefficient() // fresh *big.Int, safe to mutate
	digits := len(coef.Abs(coef).String())

	return digits - 1 + int(d.Exponent())
}

// exponentString formats e with an explicit sign and at least two digits.
func exponentString(e int) string {
	sign := "+"
	if e < 0 {
		sign = "-"
		e = -e
	}
	s := strconv.Itoa(e)
	if len(s) < 2 {
		s = "0" + s
	}

	return sign + s
}
