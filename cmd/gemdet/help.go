// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
)

const usageHint = "Error: invalid usage. Use -h to print help."

const helpText = `
gemdet: computes the determinant of a square matrix

Usage:  gemdet [OPTIONS] INPUT

Expected INPUT is a file containing the matrix to be processed, unless the -m option is used.

Available OPTIONS:  -s                 Single-threaded implementation is used for computing the result.
                    -t NUMBER          NUMBER of threads is used for computing the result. Ignored with -s.
                    -p                 Prints performance statistics. TOTAL GEM TIME is setup + computation + cleanup;
                                       synchronization time is part of computation and is not added again.
                    -m                 INPUT is processed directly (as a matrix).
                    -h, -help          Prints this message. No input is required and any provided input is ignored.
                    -f                 Prints information about the expected matrix format. No input is required.
                    -verify            Cross-checks the result against a float64 determinant.
                    -tolerance X       Relative tolerance of -verify (default 1e-9).
                    -metrics-file PATH Writes Prometheus metrics of the run to PATH.
                    -config PATH       Reads defaults from a TOML file (also GEMDET_CONFIG).
                    -log-level LEVEL   debug, info, warn or error (default warn). -log-dev for console logs.
                    -precision N       Significant digits kept by arithmetic (default 34).
                    -digits N          Significant digits of the printed determinant (default 5).
                    -delimiter C       Row delimiter (default '/').
                    -barrier MODE      Worker barrier: block (default) or spin.

Every option can also be set through a GEMDET_* environment variable, e.g. GEMDET_THREADS=4.
`

const formatText = `
Expected matrix format:
'/' as row separator, ' ' (space) as column separator, '.' as decimal point. Any unknown character is ignored. Number of columns is based on the row with the most specified columns. Missing values are replaced with 0.

Example 2x2 identity matrix:    1 0/
                                0 1

Example of a more complex matrix:    2.5  3/
                                     0  0  1/

is parsed as   2.5   3   0
               0     0   1
               0     0   0
because the second row has 3 columns, the first row does not have a third column specified and the third row does not have any column specified.
`

func printHelp(w io.Writer) { fmt.Fprint(w, helpText) }
func printFormat(w io.Writer) { fmt.Fprint(w, formatText) }
