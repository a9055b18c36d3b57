// SPDX-License-Identifier: MIT

package lu

import (
	"github.com/katalvlaran/lusolve/matrix"
)

const opSolve = "Solve"

// Solution is the successful outcome of Solve.
// Factors are exposed so callers can display P, L and U without recomputing them.
type Solution struct {
	X        []float64
	Factors  *Factorization
	Det      float64
	Cond     float64 // κ₁(A)
	Residual float64 // ‖Ax − b‖∞
}

// Solve returns the solution of Ax = b.
//
// Blueprint:
//
//	Stage 1 (Validate): a non-nil, square, finite; b finite with len(b) == n.
//	Stage 2 (Check):    Singular or IllConditioned ⇒ *Failure, nothing is substituted.
//	Stage 3 (Solve):    substitute with the factors produced by the check.
//	Stage 4 (Finalize): attach det, κ₁ and the residual ‖Ax − b‖∞.
//
// Errors:
//   - *Failure (errors.Is ErrSingular / ErrIllConditioned) when the system is refused.
//   - matrix.ErrNilMatrix / ErrDimensionMismatch / ErrNaNInf on contract violations.
//
// Complexity: O(n³).
func Solve(a matrix.Matrix, b []float64, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts)

	// Stage 1: Validate
	if err := validateSquareFinite(a); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	// Stage 2: Check
	rep, err := check(a, o)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	switch rep.Verdict {
	case Singular:
		o.logger.Debug("lu: refused", "n", n, "verdict", rep.Verdict.String())
		return nil, &Failure{Verdict: Singular, Det: 0, Cond: rep.Cond, Err: ErrSingular}
	case IllConditioned:
		o.logger.Debug("lu: refused", "n", n, "verdict", rep.Verdict.String(), "cond", rep.Cond)
		return nil, &Failure{Verdict: IllConditioned, Det: rep.Det, Cond: rep.Cond, Err: ErrIllConditioned}
	}

	// Stage 3: Solve
	x, err := rep.Factors.Solve(b)
	if err != nil {
		if isSingular(err) {
			return nil, &Failure{Verdict: Singular, Cond: rep.Cond, Err: err}
		}
		return nil, luErrorf(opSolve, err)
	}

	// Stage 4: Finalize
	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	o.logger.Debug("lu: solved", "n", n, "cond", rep.Cond, "residual", matrix.VecNormInf(r))

	return &Solution{
		X:        x,
		Factors:  rep.Factors,
		Det:      rep.Det,
		Cond:     rep.Cond,
		Residual: matrix.VecNormInf(r),
	}, nil
}
