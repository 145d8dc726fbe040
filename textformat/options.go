// SPDX-License-Identifier: MIT

// Package textformat: functional configuration for Parse and Format.
//
// Notes:
//   - The delimiter separates rows; every other non-numeric byte separates
//     values and is otherwise ignored.
//   - Precision is forwarded to the matrix the parser builds.
package textformat

import (
	"fmt"

	"github.com/katalvlaran/gemdet/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates rows: "1 0/0 1" is the 2x2 identity.
	DefaultDelimiter byte = '/'
)

const (
	panicDelimiterInvalid = "textformat: WithDelimiter: delimiter must not be a digit, '-' or '.'"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	delimiter byte
	matrix    []matrix.Option
}

// WithDelimiter overrides the row delimiter. Panics when d could be part of a
// number; use ParseDelimiter to validate user input first.
func WithDelimiter(d byte) Option {
	if !validDelimiter(d) {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = d }
}

// WithPrecision sets the significant digits of the parsed matrix
// (see matrix.WithPrecision; panics on the same values).
func WithPrecision(digits int32) Option {
	set := matrix.WithPrecision(digits)

	return func(o *Options) { o.matrix = append(o.matrix, set) }
}

// ParseDelimiter validates a user supplied delimiter string.
// Errors:
//   - ErrBadDelimiter unless s is exactly one byte that cannot start or
//     continue a number.
func ParseDelimiter(s string) (byte, error) {
	if len(s) != 1 || !validDelimiter(s[0]) {
		return 0, fmt.Errorf("%q: %w", s, ErrBadDelimiter)
	}

	return s[0], nil
}

func validDelimiter(d byte) bool {
	return !isDigit(d) && d != '-' && d != '.'
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{delimiter: DefaultDelimiter}
	for _, set := range user {
		set(&o)
	}

	return o
}
