// SPDX-License-Identifier: MIT
// Package textformat: sentinel error set.
// Every parse failure is one of these, wrapped with the byte offset where it
// was detected; callers match with errors.Is.

package textformat

import "errors"

var (
	// ErrMalformedNumber indicates a '-' that is not followed by a digit.
	ErrMalformedNumber = errors.New("textformat: malformed number")

	// ErrBadDelimiter indicates a row delimiter that is not a single byte, or
	// one that could be part of a number ('0'-'9', '-', '.').
	ErrBadDelimiter = errors.New("textformat: invalid row delimiter")
)
