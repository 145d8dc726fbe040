// SPDX-License-Identifier: MIT

package gem

import "time"

// Mode names the elimination path that produced a Stats value.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeParallel Mode = "parallel"
)

// Phase names used by Recorder implementations.
const (
	PhaseSetup       = "setup"
	PhaseComputation = "computation"
	PhaseSyncWait    = "sync_wait"
	PhaseCleanup     = "cleanup"
)

// Timings are the observational phase durations of one run, measured on the
// monotonic clock. Computation spans the whole elimination loop and therefore
// contains SyncWait. They never influence the result.
type Timings struct {
	Setup       time.Duration // starting the workers
	Computation time.Duration // the elimination loop
	SyncWait    time.Duration // time spent in barriers, part of Computation
	Cleanup     time.Duration // stopping and joining the workers
}

// Total is Setup + Computation + Cleanup.
func (t Timings) Total() time.Duration {
	return t.Setup + t.Computation + t.Cleanup
}

// Phases returns the durations keyed by Phase* names.
func (t Timings) Phases() map[string]time.Duration {
	return map[string]time.Duration{
		PhaseSetup:       t.Setup,
		PhaseComputation: t.Computation,
		PhaseSyncWait:    t.SyncWait,
		PhaseCleanup:     t.Cleanup,
	}
}

// Stats summarizes a finished (or failed) run for a Recorder.
type Stats struct {
	Mode    Mode
	Threads int
	Rows    int
	Swaps   int
	Timings Timings
	Err     error
}

// Recorder receives the Stats of every run. Implementations must be safe for
// concurrent use when shared between coordinators.
type Recorder interface {
	Record(Stats)
}
