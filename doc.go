// Package gemdet computes determinants of square decimal matrices by
// Gaussian elimination, with a parallel engine that splits every elimination
// step across a fixed pool of worker goroutines.
//
// What is inside?
//
//	• Data model: fixed-precision decimal rows owned by a matrix that tracks
//	  the sign of its row swaps
//	• Reference eliminator: single goroutine, swap on an exact zero pivot
//	• Parallel eliminator: column-partitioned workers with a barrier on every
//	  (row, pivot row) pair
//	• Text format: '/'-delimited rows, zero padded to the widest row
//	• Tooling: float64 cross-check, Prometheus metrics, zap logging, CLI
//
// Packages:
//
//	matrix/      - Row, Matrix, sentinel errors, diagonal product, formatting
//	gem/         - EliminateInPlace, Worker, Coordinator, Timings, options
//	determinant/ - square check + elimination + diagonal × sign in one call
//	textformat/  - parser and writer of the text format
//	crosscheck/  - gonum float64 reference determinant
//	metrics/     - Prometheus recorder for elimination runs
//	logging/     - zap logger construction
//	config/      - defaults < TOML file < GEMDET_* env < flags
//	cmd/gemdet/  - the command-line tool
//
// Quick start:
//
//	m, _ := textformat.ParseString("2 1 1/4 3 3/8 7 9")
//	res, _ := determinant.Compute(ctx, m, determinant.WithGem(gem.WithThreads(4)))
//	fmt.Println(res) // 4
package gemdet
