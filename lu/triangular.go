// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

const opSolveTriangular = "SolveTriangular"

// SolveTriangular returns x with LUx = Pb, i.e. the solution of Ax = b for PA = LU.
//
// Blueprint:
//
//	Stage 1 (Validate): L and U n×n, len(p) == len(b) == n, p a bijection.
//	Stage 2 (Permute):  b' = Pb.
//	Stage 3 (Forward):  y[i] = b'[i] − Σ_{j<i} L[i][j]·y[j]; the diagonal of L is taken as 1.
//	Stage 4 (Backward): x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i].
//
// x is in the row order of the original A and b. Inputs are not modified.
// Returns an error wrapping ErrSingular if a diagonal entry of U is zero.
// Complexity: O(n²).
func SolveTriangular(p Permutation, l, u matrix.Matrix, b []float64) ([]float64, error) {
	// Stage 1: Validate
	if err := matrix.ValidateSquareNonNil(l); err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}
	if err := matrix.ValidateSquareNonNil(u); err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}
	n := l.Rows()
	if u.Rows() != n || len(p) != n {
		return nil, luErrorf(opSolveTriangular, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}
	if err := p.Validate(); err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}

	ld, err := matrix.ToDense(l)
	if err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}
	ud, err := matrix.ToDense(u)
	if err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}

	x, err := substitute(n, p, ld.Values(), ud.Values(), b)
	if err != nil {
		return nil, luErrorf(opSolveTriangular, err)
	}

	return x, nil
}

// Solve returns x with Ax = b using the stored factors.
// Returns ErrDimensionMismatch (or ErrNilMatrix) when len(b) != N().
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, luErrorf("Factorization.Solve", err)
	}

	return substitute(f.n, f.P, f.l, f.u, b)
}

// substitute runs stages 2-4 of SolveTriangular on row-major flats.
// Assumes all shapes were validated.
func substitute(n int, p Permutation, l, u, b []float64) ([]float64, error) {
	var (
		i, j int
		sum  float64
		row  []float64
	)

	// Permute and forward substitution, fused: y[i] starts from b[P[i]]
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[p[i]]
		row = l[i*n : i*n+i]
		for j = 0; j < i; j++ {
			sum -= row[j] * y[j]
		}
		y[i] = sum
	}

	// Back substitution
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		row = u[i*n : (i+1)*n]
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		if row[i] == 0 {
			return nil, fmt.Errorf("zero diagonal U[%d][%d]: %w", i, i, ErrSingular)
		}
		x[i] = sum / row[i]
	}

	return x, nil
}
