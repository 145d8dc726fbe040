// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gemdet/gem"
)

const namespace = "gemdet"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder holds the Prometheus metrics of elimination runs on its own
// registry. It implements gem.Recorder.
type Recorder struct {
	PhaseDuration *prometheus.HistogramVec // mode, phase
	RunsTotal     *prometheus.CounterVec   // mode, result
	SwapsTotal    *prometheus.CounterVec   // mode
	Threads       prometheus.Gauge
	MatrixRows    prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
	last     gem.Stats
}

var _ gem.Recorder = (*Recorder)(nil)

// NewRecorder creates the metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		PhaseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Duration of elimination phases in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 60},
			},
			[]string{"mode", "phase"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of elimination runs",
			},
			[]string{"mode", "result"},
		),
		SwapsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "row_swaps_total",
				Help:      "Total number of row swaps performed",
			},
			[]string{"mode"},
		),
		Threads: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "threads",
				Help:      "Threads used by the last run",
			},
		),
		MatrixRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "matrix_rows",
				Help:      "Row count of the last eliminated matrix",
			},
		),
	}
}

// Registry exposes the registry, e.g. for an HTTP handler or a pusher.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Record implements gem.Recorder. Single-threaded runs only have a
// computation phase; parallel runs report all four.
func (r *Recorder) Record(s gem.Stats) {
	mode := string(s.Mode)
	result := ResultOK
	if s.Err != nil {
		result = ResultError
	}
	r.RunsTotal.WithLabelValues(mode, result).Inc()
	r.SwapsTotal.WithLabelValues(mode).Add(float64(s.Swaps))
	r.Threads.Set(float64(s.Threads))
	r.MatrixRows.Set(float64(s.Rows))

	for phase, d := range s.Timings.Phases() {
		if s.Mode == gem.ModeSingle && phase != gem.PhaseComputation {
			continue
		}
		r.PhaseDuration.WithLabelValues(mode, phase).Observe(d.Seconds())
	}

	r.mu.Lock()
	r.last = s
	r.mu.Unlock()
}

// Last returns the most recently recorded Stats.
func (r *Recorder) Last() gem.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last
}

// WriteTextfile writes the registry in the node-exporter textfile format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}

	return nil
}
