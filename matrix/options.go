// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Precision is expressed in SIGNIFICANT DIGITS, as in a floating decimal:
//     every product, quotient, sum and difference is rounded half away from
//     zero to that many digits relative to its own magnitude, so tiny values
//     keep their digits instead of collapsing to zero.
//   - Values stored with Set are kept exactly; only arithmetic rounds.
//   - Every Row carries the precision of the Matrix that created it, so a row
//     moved between matrices keeps its own policy.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits kept by row
	// arithmetic (the significand width of IEEE 754 decimal128).
	DefaultPrecision int32 = 34

	// MaxPrecision bounds WithPrecision; beyond this the cost of every
	// multiplication grows without any benefit for determinant work.
	MaxPrecision int32 = 128
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: digits must be in [1, MaxPrecision]"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	precision int32 // DefaultPrecision
}

// Precision reports the significant digits of the resolved options.
func (o Options) Precision() int32 { return o.precision }

// WithPrecision sets the number of significant digits kept by row arithmetic.
// Implementation:
//   - Stage 1: validate 1 ≤ digits ≤ MaxPrecision.
//   - Stage 2: return a setter that writes digits into Options.
//
// Errors:
//   - Panics with a stable message when digits is out of range.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPrecision(digits int32) Option {
	if digits < 1 || digits > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
