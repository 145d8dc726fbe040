// Package gem reduces a matrix to row-echelon form by Gaussian elimination,
// either on the calling goroutine or across a fixed pool of worker goroutines.
//
// Overview:
//
//   - EliminateInPlace / Eliminate: the single-threaded reference. For pivot
//     row i and every later row j it swaps on an exact zero pivot, computes
//     coef = row_j[i] / row_i[i] (0 when there is nothing to divide by) and
//     subtracts row_i * coef from row_j.
//   - Coordinator: the parallel eliminator. It drives every row against all
//     earlier rows (cur in 1..n-1, prev in 0..cur-1), splits each step into
//     column partitions {t, t+T, t+2T, …} and runs partition 0 itself while
//     T-1 Workers run the others.
//   - Worker: an Idle/Busy/Stopped goroutine executing exactly one task at a
//     time; assigning to a busy worker is ErrProtocolViolation.
//
// Both paths reach an echelon form with the same determinant. They do not
// produce identical matrices: the loop orders differ and the parallel path
// falls back to coef = 1 on an unresolvable zero divisor.
//
// Synchronization:
//
//   - Every (cur, prev) pair ends in a barrier over all workers; the next
//     pair never starts before every partition of the current one is done.
//   - Partitions are column-disjoint by construction, and only the current
//     row is written, so concurrent writes never overlap.
//   - BarrierBlock (default) joins each worker with a blocking wait;
//     BarrierSpin polls IsFinished in index order.
//
// Observability:
//
//   - Timings: Setup, Computation (includes SyncWait), SyncWait, Cleanup.
//   - WithLogger (zap), WithTracer (OpenTelemetry) and WithRecorder hook
//     into every run; all default to no-ops.
//
// Performance and complexity:
//
//   - Time O(n²·c) arithmetic for both paths, divided by T in the parallel
//     one, plus one barrier per pair (n(n-1)/2 barriers).
//   - Space O(c) extra for the single-threaded path, O(T) for the pool.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrProtocolViolation, ErrWorkerStopped, ErrBadPartition, plus the
//     matrix sentinels raised by row arithmetic.
//
// Example:
//
//	c, _ := gem.NewCoordinator(m, gem.WithThreads(4))
//	reduced, err := c.Result(ctx)
//	det, _ := matrix.Determinant(reduced)
package gem
