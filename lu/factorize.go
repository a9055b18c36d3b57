// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lusolve/matrix"
)

const (
	opFactorize = "Factorize"
	opDet       = "Det"
	opInverse   = "Inverse"
)

// Factorization holds PA = LU for an n×n matrix A.
//
// L is unit lower-triangular with the diagonal stored explicitly as 1,
// U is upper-triangular with the pivots on its diagonal. The flat copies
// l and u back the substitution kernels; L and U are the caller-facing views.
type Factorization struct {
	P Permutation
	L *matrix.Dense
	U *matrix.Dense

	n    int
	l, u []float64 // row-major n×n, same values as L and U
}

// N returns the dimension of the factorized matrix.
func (f *Factorization) N() int { return f.n }

// Pivots returns a copy of the diagonal of U.
func (f *Factorization) Pivots() []float64 {
	out := make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		out[i] = f.u[i*f.n+i]
	}

	return out
}

// Det returns det(A) = sign(P)·∏U[i][i].
// The product may underflow to 0 or overflow to ±Inf for extreme scales;
// Check therefore never classifies by the determinant alone.
func (f *Factorization) Det() float64 {
	det := f.P.Sign()
	for i := 0; i < f.n; i++ {
		det *= f.u[i*f.n+i]
	}

	return det
}

// Factorize decomposes a into P, L, U with PA = LU using Gaussian elimination
// with partial pivoting. a is not modified.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square, finite) and copy it into U.
//   - Stage 2: for each column k pick the largest |U[i][k]|, i ≥ k (first wins ties).
//   - Stage 3: swap rows k and pivot in U, swap the multipliers already stored in
//     L[·][0..k-1], record the swap in P.
//   - Stage 4: eliminate below the pivot, storing multipliers in L[i][k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (from matrix) on bad input.
//   - ErrSingular when the chosen pivot satisfies |p| <= tol·max|a_ij|
//     (tol = n·ε unless WithPivotTolerance is given).
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a matrix.Matrix, opts ...Option) (*Factorization, error) {
	o := gatherOptions(opts)
	if err := validateSquareFinite(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	return factorize(a, o)
}

// validateSquareFinite is the shared input gate for A.
func validateSquareFinite(a matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return err
	}

	return matrix.ValidateFinite(a)
}

// factorize assumes a has been validated.
func factorize(a matrix.Matrix, o options) (*Factorization, error) {
	// Stage 1: working copy and scale
	ad, err := matrix.ToDense(a)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	n := ad.Rows()
	u := ad.Values()
	l := make([]float64, n*n)
	p := identityPermutation(n)

	var scale float64
	for _, v := range u {
		scale = math.Max(scale, math.Abs(v))
	}
	tol := o.relTolerance(n) * scale

	var (
		i, j, k, piv int
		best, m, pk  float64
		rowK, rowI   []float64
	)
	for k = 0; k < n; k++ {
		// Stage 2: partial pivot selection
		piv, best = k, math.Abs(u[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(u[i*n+k]); v > best {
				piv, best = i, v
			}
		}
		if best <= tol {
			o.logger.Debug("lu: zero pivot", "column", k, "pivot", best, "tolerance", tol)
			return nil, luErrorf(opFactorize, fmt.Errorf("zero pivot in column %d: %w", k, ErrSingular))
		}

		// Stage 3: row interchange
		if piv != k {
			for j = 0; j < n; j++ {
				u[k*n+j], u[piv*n+j] = u[piv*n+j], u[k*n+j]
			}
			for j = 0; j < k; j++ {
				l[k*n+j], l[piv*n+j] = l[piv*n+j], l[k*n+j]
			}
			p[k], p[piv] = p[piv], p[k]
			o.logger.Debug("lu: row swap", "column", k, "pivot_row", piv)
		}

		// Stage 4: elimination
		pk = u[k*n+k]
		rowK = u[k*n : (k+1)*n]
		for i = k + 1; i < n; i++ {
			rowI = u[i*n : (i+1)*n]
			m = rowI[k] / pk
			l[i*n+k] = m
			rowI[k] = 0
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				rowI[j] -= m * rowK[j]
			}
		}
	}
	for i = 0; i < n; i++ {
		l[i*n+i] = 1
	}

	// Stage 5: caller-facing views
	L, err := matrix.NewDenseFrom(n, n, l)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	U, err := matrix.NewDenseFrom(n, n, u)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	return &Factorization{P: p, L: L, U: U, n: n, l: l, u: u}, nil
}

// Det returns det(a) from the pivoted factorization. A matrix whose
// elimination breaks down reports 0 with a nil error.
func Det(a matrix.Matrix, opts ...Option) (float64, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		if isSingular(err) {
			return 0, nil
		}
		return 0, luErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns A⁻¹ built column by column from one factorization.
// Returns an error wrapping ErrSingular when elimination breaks down.
// Complexity: O(n³).
func Inverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Inverse returns A⁻¹ from the stored factors.
func (f *Factorization) Inverse() (*matrix.Dense, error) {
	inv, err := matrix.NewDense(f.n, f.n)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}
	e := make([]float64, f.n)
	for col := 0; col < f.n; col++ {
		e[col] = 1
		x, err := substitute(f.n, f.P, f.l, f.u, e)
		if err != nil {
			return nil, luErrorf(opInverse, err)
		}
		e[col] = 0
		for i, v := range x {
			_ = inv.Set(i, col, v)
		}
	}

	return inv, nil
}
