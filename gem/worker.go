// SPDX-License-Identifier: MIT

// Package gem - Worker: one goroutine owning one column partition.
//
// Purpose:
//   - Execute the strided share of a single elimination task while the
//     coordinator computes partition 0 on its own goroutine.
//
// State machine:
//
//	Idle --Assign--> Busy --partition done--> Idle
//	Idle/Busy --Stop--> (current partition finishes) --> Stopped
//
// Concurrency notes:
//   - At most one outstanding task: Assign on a Busy worker is
//     ErrProtocolViolation and nothing is queued.
//   - The goroutine blocks on a channel while idle (no CPU).
//   - Stop never interrupts a partition in progress; a task still queued
//     when the stop signal is observed is reported as ErrWorkerStopped.
//   - The task error is written before the state returns to Idle, so a
//     caller that observed IsFinished() may read Err() without a lock.

package gem

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/gemdet/matrix"
)

// WorkerState is the observable state of a Worker.
type WorkerState int32

const (
	StateIdle WorkerState = iota
	StateBusy
	StateStopped
)

// String returns a lower-case state name for logs.
func (s WorkerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("WorkerState(%d)", int32(s))
	}
}

// task is one elimination step: cur[c] -= prev[c]*coef over the partition.
// The rows are borrowed from the coordinator's matrix, never owned.
type task struct {
	cur, prev *matrix.Row
	coef      decimal.Decimal
}

// Worker computes columns {index, index+threads, index+2·threads, …} of
// every task assigned to it.
type Worker struct {
	index   int
	threads int
	width   int

	state atomic.Int32

	mu      sync.Mutex // guards stopped and sends on tasks
	stopped bool
	tasks   chan task // capacity 1: the single outstanding task

	quit     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once

	pending sync.WaitGroup
	err     error // result of the last task
}

// NewWorker starts a worker goroutine for partition index of threads over
// rows of the given width.
// Errors:
//   - ErrBadPartition unless 1 ≤ index < threads and width ≥ 0
//     (index 0 belongs to the coordinator).
func NewWorker(index, threads, width int) (*Worker, error) {
	if index < 1 || index >= threads || width < 0 {
		return nil, fmt.Errorf("gem.NewWorker(%d/%d): %w", index, threads, ErrBadPartition)
	}
	w := &Worker{
		index:   index,
		threads: threads,
		width:   width,
		tasks:   make(chan task, 1),
		quit:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	w.state.Store(int32(StateIdle))
	go w.run()

	return w, nil
}

// Index returns the partition offset of the worker.
func (w *Worker) Index() int { return w.index }

// State returns the current state without blocking.
func (w *Worker) State() WorkerState { return WorkerState(w.state.Load()) }

// IsFinished reports, without blocking, that no task is in flight.
func (w *Worker) IsFinished() bool { return w.State() != StateBusy }

// Err returns the error of the last finished task. Only meaningful once
// IsFinished() reported true or Wait returned.
func (w *Worker) Err() error { return w.err }

// Assign hands the worker its next task and wakes it.
// Errors:
//   - ErrWorkerStopped after Stop.
//   - ErrProtocolViolation when the previous task has not finished.
func (w *Worker) Assign(cur, prev *matrix.Row, coef decimal.Decimal) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("gem.Worker(%d).Assign: %w", w.index, ErrWorkerStopped)
	}
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateBusy)) {
		return fmt.Errorf("gem.Worker(%d).Assign: %w", w.index, ErrProtocolViolation)
	}
	w.err = nil
	w.pending.Add(1)
	w.tasks <- task{cur: cur, prev: prev, coef: coef}

	return nil
}

// Wait blocks until the assigned task (if any) has finished and returns its
// error.
func (w *Worker) Wait() error {
	w.pending.Wait()

	return w.err
}

// Stop asks the goroutine to exit once the current partition is done.
// Idempotent and non-blocking.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()
		close(w.quit)
	})
}

// Close stops the worker and blocks until its goroutine has exited, or
// until ctx is done.
func (w *Worker) Close(ctx context.Context) error {
	w.Stop()
	select {
	case <-w.exited:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("gem.Worker(%d).Close: %w", w.index, ctx.Err())
	}
}

func (w *Worker) run() {
	defer close(w.exited)
	for {
		select {
		case <-w.quit:
			w.shutdown()

			return
		case t := <-w.tasks:
			w.execute(t)
		}
	}
}

// execute runs one partition. The state must be Idle before Done so the
// next Assign issued after the barrier always passes its CAS.
func (w *Worker) execute(t task) {
	if err := t.cur.EliminateStrided(t.prev, t.coef, w.index, w.threads, w.width); err != nil {
		w.err = fmt.Errorf("gem.Worker(%d): %w", w.index, err)
	}
	w.state.Store(int32(StateIdle))
	w.pending.Done()
}

// shutdown fails a task that was queued but never started.
func (w *Worker) shutdown() {
	select {
	case <-w.tasks:
		w.err = fmt.Errorf("gem.Worker(%d): %w", w.index, ErrWorkerStopped)
		w.state.Store(int32(StateStopped))
		w.pending.Done()
	default:
		w.state.Store(int32(StateStopped))
	}
}
