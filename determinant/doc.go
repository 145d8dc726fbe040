// Package determinant computes the determinant of a square decimal matrix
// with one call:
//
//	res, err := determinant.Compute(ctx, m, determinant.WithGem(gem.WithThreads(4)))
//	fmt.Println(res) // 5 significant digits
//
// The parallel engine is the default; WithSingleThread selects the reference
// path. Non-square input fails with matrix.ErrNonSquare before elimination.
package determinant
