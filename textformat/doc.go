// Package textformat reads and writes matrices in the compact text form used
// on the gemdet command line and in input files.
//
// Rows are separated by a delimiter byte ('/' by default). Inside a row every
// number ("-?digits(.digits)?") is a value and every other byte is ignored:
//
//	2.5  3/
//	0  0  1/
//
// parses as the 3x3 matrix
//
//	2.5  3  0
//	0    0  1
//	0    0  0
//
// because the widest row has three values and the trailing delimiter opens an
// empty third row.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrMalformedNumber, ErrBadDelimiter.
package textformat
