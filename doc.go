// Package lusolve solves dense square linear systems Ax = b by LU
// decomposition with partial pivoting, and refuses to answer when the
// answer would be meaningless.
//
// 🚀 What is lusolve?
//
//	A small, deterministic solver library with a command-line front end:
//		• matrix:  dense row-major float64 matrices, validators, norms, residuals
//		• lu:      conditioning gate, PA = LU factorization, triangular solves, Solve
//		• builder: seeded random, diagonally dominant and Hilbert systems
//		• cmd/lusolve: solve, load and hilbert commands
//
// ✨ Guarantees
//
//   - Singular and ill-conditioned matrices are refused with a typed error
//     (*lu.Failure), never answered with a partial solution.
//   - The gate and the solve share one factorization, so they cannot disagree.
//   - Inputs are never mutated; every call is independent and goroutine-safe.
//
// Under the hood:
//
//	matrix/          : Dense, Matrix interface, ErrDimensionMismatch & friends
//	lu/              : Check, Factorize, SolveTriangular, Solve, Det, Inverse
//	builder/         : RandomInteger, RandomWellConditioned, Hilbert, FromRows
//	internal/config  : ~/.lusolve/lusolve.yaml
//	internal/app     : orchestration and slog logging
//	internal/prompt  : huh forms and a line prompter for pipes
//	internal/ux      : lipgloss tables and boxes
//	internal/plot    : gonum/plot charts of x against b
//	internal/store   : versioned JSON documents
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	sol, err := lu.Solve(a, []float64{3, 5})
//	if err != nil {
//		return err // errors.Is(err, lu.ErrSingular) / lu.ErrIllConditioned
//	}
//	fmt.Println(sol.X) // [0.8 1.4]
package lusolve
