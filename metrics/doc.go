// Package metrics exports elimination statistics as Prometheus metrics.
//
// A Recorder is passed to the engine with gem.WithRecorder. It tracks:
//
//   - gemdet_phase_duration_seconds{mode,phase}: histogram of setup,
//     computation, sync_wait and cleanup durations.
//   - gemdet_runs_total{mode,result}: runs by outcome.
//   - gemdet_row_swaps_total{mode}: row swaps.
//   - gemdet_threads, gemdet_matrix_rows: gauges of the last run.
//
// For batch use the CLI writes the registry to a node-exporter textfile with
// WriteTextfile.
package metrics
