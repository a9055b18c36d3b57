// SPDX-License-Identifier: MIT

// Package lu solves dense square systems Ax = b by LU decomposition with
// partial pivoting, refusing to answer when A is singular or ill-conditioned.
//
// The package is organized leaf-first:
//
//	Check           : conditioning gate: Usable, Singular or IllConditioned.
//	Factorize       : PA = LU by Gaussian elimination with partial pivoting.
//	SolveTriangular : permute b, forward substitution on L, back substitution on U.
//	Solve           : the facade: Check, then substitute with the same factors.
//
// Check and Solve share one factorization: the verdict is derived from the
// pivots and the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁ of the very
// factors used for substitution, so the gate and the solve can never disagree.
//
// Failures are values, never panics. Solve returns a *Failure (matching
// ErrSingular or ErrIllConditioned via errors.Is) when the system is refused,
// and errors wrapping the matrix sentinels (ErrDimensionMismatch, ErrNilMatrix,
// ErrBadShape, ErrNaNInf) when the caller breaks the n×n / length-n contract.
// A failure never carries a partially computed solution.
//
// Every call is a pure function of its inputs: A and b are never mutated, each
// call allocates its own working copy, P, L, U and x, and no state is shared
// between calls. Independent solves may run on separate goroutines.
//
// Complexity: Factorize O(n³), substitution O(n²), Check O(n³) (the condition
// number solves n extra triangular systems), memory O(n²).
//
// Example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	sol, err := lu.Solve(a, []float64{3, 5})
//	var f *lu.Failure
//	switch {
//	case errors.As(err, &f):
//		fmt.Println("refused:", f.Verdict)
//	case err != nil:
//		return err
//	default:
//		fmt.Println(sol.X) // [0.8 1.4]
//	}
package lu
