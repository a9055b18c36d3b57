// SPDX-License-Identifier: MIT

package lu

import (
	"errors"
	"math"

	"github.com/katalvlaran/lusolve/matrix"
)

const opCheck = "Check"

// Verdict classifies whether a system may be solved.
type Verdict uint8

const (
	// Usable means the factors are trustworthy and a solve may proceed.
	Usable Verdict = iota
	// Singular means A has no inverse.
	Singular
	// IllConditioned means A is invertible but κ₁(A) exceeds the threshold.
	IllConditioned
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Usable:
		return "usable"
	case Singular:
		return "singular"
	case IllConditioned:
		return "ill-conditioned"
	default:
		return "unknown"
	}
}

// Report is the outcome of Check.
// Factors is nil when Verdict is Singular.
type Report struct {
	Verdict Verdict
	Det     float64
	Cond    float64 // κ₁(A); +Inf when Singular
	Factors *Factorization
}

// isSingular reports whether err carries ErrSingular.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }

// Check decides whether a solve of a should proceed.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square, finite).
//   - Stage 2: n == 1 is Singular iff the entry is exactly zero.
//   - Stage 3: factorize with partial pivoting; a collapsed pivot is Singular.
//   - Stage 4: κ₁(A) = ‖A‖₁·‖A⁻¹‖₁ from the same factors; above the
//     threshold (DefaultConditionThreshold unless overridden) is IllConditioned.
//
// The returned Report carries the factorization so Solve never factorizes twice.
// Errors are returned only for contract violations, never for a refused system.
func Check(a matrix.Matrix, opts ...Option) (*Report, error) {
	o := gatherOptions(opts)

	// Stage 1: Validate
	if err := validateSquareFinite(a); err != nil {
		return nil, luErrorf(opCheck, err)
	}

	rep, err := check(a, o)
	if err != nil {
		return nil, luErrorf(opCheck, err)
	}
	o.logger.Debug("lu: conditioning verdict",
		"n", a.Rows(), "verdict", rep.Verdict.String(), "cond", rep.Cond, "det", rep.Det)

	return rep, nil
}

// check assumes a has been validated.
func check(a matrix.Matrix, o options) (*Report, error) {
	// Stage 2: scalar system
	if a.Rows() == 1 {
		v, err := a.At(0, 0)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return &Report{Verdict: Singular, Cond: math.Inf(1)}, nil
		}
	}

	// Stage 3: factorize
	f, err := factorize(a, o)
	if err != nil {
		if isSingular(err) {
			return &Report{Verdict: Singular, Cond: math.Inf(1)}, nil
		}
		return nil, err
	}

	// Stage 4: condition number
	anorm, err := matrix.Norm1(a)
	if err != nil {
		return nil, err
	}
	ainv, err := f.inverseNorm1()
	if err != nil {
		if isSingular(err) {
			return &Report{Verdict: Singular, Cond: math.Inf(1)}, nil
		}
		return nil, err
	}
	cond := anorm * ainv

	rep := &Report{Verdict: Usable, Det: f.Det(), Cond: cond, Factors: f}
	if math.IsNaN(cond) || cond > o.condThreshold {
		rep.Verdict = IllConditioned
	}

	return rep, nil
}

// inverseNorm1 returns ‖A⁻¹‖₁, the largest absolute column sum of A⁻¹.
// Column j of A⁻¹ solves Ax = e_j, so the inverse is never materialized.
// Complexity: O(n³).
func (f *Factorization) inverseNorm1() (float64, error) {
	var (
		best, sum float64
		e         = make([]float64, f.n)
	)
	for col := 0; col < f.n; col++ {
		e[col] = 1
		x, err := substitute(f.n, f.P, f.l, f.u, e)
		if err != nil {
			return 0, err
		}
		e[col] = 0

		sum = 0
		for _, v := range x {
			sum += math.Abs(v)
		}
		if sum > best || math.IsNaN(sum) {
			best = sum
		}
	}

	return best, nil
}
