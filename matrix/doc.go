// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used by the lusolve solver.
//
// The package offers:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) so algorithms can
//     accept any implementation while Dense remains the concrete workhorse.
//   - Dense, a row-major matrix backed by a flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateVecLen, ValidateFinite)
//     returning the package sentinels from errors.go.
//   - The kernel set a direct solver and its tests need: Mul, MatVec, Transpose,
//     NewIdentity, Norm1, NormInf, MaxAbs, Residual and AllClose.
//
// Every kernel allocates its result; operands are never mutated.
//
// Errors are sentinels checked with errors.Is:
//
//	if errors.Is(err, matrix.ErrDimensionMismatch) { ... }
package matrix
