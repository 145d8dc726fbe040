// SPDX-License-Identifier: MIT

// Package gem: functional configuration for the eliminators.
//
// Design goals:
//   - No global state: thread count, barrier policy and observability hooks
//     are carried by an explicit Options value built from ...Option.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - A zero thread count means "use the platform parallelism"; the
//     coordinator clamps the effective count to [1, max(1, columns)].
//   - Logger, tracer and recorder default to no-ops so the engine runs
//     silently unless the caller opts in.
package gem

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// BarrierMode selects how the coordinator waits for its workers after each
// (current, previous) pair.
type BarrierMode int

const (
	// BarrierBlock joins each worker with a blocking wait (no CPU while waiting).
	BarrierBlock BarrierMode = iota

	// BarrierSpin polls every worker's IsFinished in index order, trading CPU
	// for wake-up latency.
	BarrierSpin
)

// String returns the flag spelling of the mode.
func (b BarrierMode) String() string {
	switch b {
	case BarrierSpin:
		return "spin"
	default:
		return "block"
	}
}

// ParseBarrierMode maps "block" / "spin" to a BarrierMode.
func ParseBarrierMode(s string) (BarrierMode, bool) {
	switch s {
	case "block", "":
		return BarrierBlock, true
	case "spin":
		return BarrierSpin, true
	default:
		return BarrierBlock, false
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreads requests the platform parallelism (runtime.NumCPU).
	DefaultThreads = 0

	// DefaultBarrier is the blocking join.
	DefaultBarrier = BarrierBlock

	// TracerName is the instrumentation scope used when no tracer is supplied.
	TracerName = "github.com/katalvlaran/gemdet/gem"
)

const (
	panicThreadsInvalid = "gem: WithThreads: threads must be >= 1"
	panicBarrierInvalid = "gem: WithBarrier: unknown barrier mode"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threads  int
	barrier  BarrierMode
	logger   *zap.Logger
	tracer   trace.Tracer
	recorder Recorder
}

// WithThreads overrides the thread count (the calling goroutine included).
// Panics when n < 1; use no option at all for the platform default.
func WithThreads(n int) Option {
	if n < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithBarrier selects the barrier implementation.
func WithBarrier(mode BarrierMode) Option {
	if mode != BarrierBlock && mode != BarrierSpin {
		panic(panicBarrierInvalid)
	}

	return func(o *Options) { o.barrier = mode }
}

// WithLogger routes engine logs to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer overrides the tracer used for elimination spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithRecorder attaches a Recorder that receives the Stats of every run.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.recorder = r }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		threads: DefaultThreads,
		barrier: DefaultBarrier,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(TracerName),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
