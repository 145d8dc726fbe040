// SPDX-License-Identifier: MIT
// Package gem: sentinel error set.
// Row and matrix errors (out of range, dimension mismatch, ...) are the
// matrix package sentinels and pass through unchanged; this file defines only
// the errors of the elimination protocol itself.

package gem

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocolViolation is returned when work is assigned to a Worker that
	// has not finished its previous task. It is a programming error: the
	// coordinator aborts the computation and never retries.
	ErrProtocolViolation = errors.New("gem: worker assigned before its previous task finished")

	// ErrWorkerStopped is returned when work is assigned to a stopped Worker,
	// or reported for a task that was still queued when the Worker stopped.
	ErrWorkerStopped = errors.New("gem: worker stopped")

	// ErrBadPartition indicates an invalid (index, threads) worker descriptor.
	ErrBadPartition = errors.New("gem: invalid worker partition")
)

// gemErrorf wraps err with an operation tag: "<tag>: <err>".
func gemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
