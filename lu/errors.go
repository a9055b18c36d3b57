// SPDX-License-Identifier: MIT
// Package lu: sentinel errors and the refusal type returned by Solve.
//
// Error policy:
//   • Callers branch with errors.Is on the sentinels below, or errors.As on *Failure.
//   • Shape violations reuse the matrix sentinels (ErrDimensionMismatch, ErrNilMatrix,
//     ErrBadShape, ErrNaNInf) so one vocabulary covers both packages.
//   • Runtime code never panics; only option constructors do, on nonsensical values.

package lu

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular indicates A has no inverse: a pivot collapsed to zero (within
	// the relative pivot tolerance) during elimination.
	ErrSingular = errors.New("lu: matrix is singular")

	// ErrIllConditioned indicates A is invertible but κ₁(A) exceeds the
	// condition threshold, so any computed x would be unreliable.
	ErrIllConditioned = errors.New("lu: matrix is ill-conditioned")

	// ErrInvalidPermutation indicates a permutation that is not a bijection on {0..n-1}.
	ErrInvalidPermutation = errors.New("lu: invalid permutation")
)

// luErrorf wraps err with an operation tag: "Op: underlying".
func luErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Failure is the refusal outcome of Solve. It carries the classification and
// the diagnostics that led to it, never a partial solution.
type Failure struct {
	Verdict Verdict // Singular or IllConditioned
	Det     float64 // pivot-product determinant; 0 when elimination broke down
	Cond    float64 // κ₁(A) estimate; +Inf when Singular
	Err     error   // ErrSingular or ErrIllConditioned, possibly wrapped
}

// Error implements error.
func (f *Failure) Error() string {
	if f.Verdict == IllConditioned {
		return fmt.Sprintf("%v (cond=%.3g)", f.Err, f.Cond)
	}

	return f.Err.Error()
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (f *Failure) Unwrap() error { return f.Err }
