// SPDX-License-Identifier: MIT

// Command gemdet computes the determinant of a square matrix by Gaussian
// elimination, on a pool of worker goroutines or on a single one.
//
// Usage:
//
//	gemdet [OPTIONS] INPUT
//	gemdet -m "1 2/3 4"
//
// Run "gemdet -h" for the options and "gemdet -f" for the input format.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
