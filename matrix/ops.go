// SPDX-License-Identifier: MIT
// Package matrix: universal operations on any Matrix implementation.
//
// Purpose:
//   - Provide the small algebra surface the solver and its callers rely on
//     (products, transposition, identity, closeness checks).
//
// Notes:
//   - Every operation allocates a fresh *Dense result; inputs are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opIdentity  = "NewIdentity"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag: "Op: underlying".
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Returns ErrNilMatrix for nil operands and ErrDimensionMismatch if a.Cols != b.Rows.
// Complexity: O(r*k*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Normalize operands to Dense for flat indexing
	ad, err := ToDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := ToDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: i-k-j loop order keeps the inner loop on contiguous rows
	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = A·x.
// Returns ErrDimensionMismatch when len(x) != a.Cols().
// Complexity: O(r*c).
func MatVec(a Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	ad, err := ToDense(a)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, ad.r)
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < ad.r; i++ {
		sum = 0
		for j = 0; j < ad.c; j++ {
			sum += ad.data[i*ad.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	md, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < md.r; i++ {
		for j := 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// AllClose reports whether |a_ij - b_ij| <= atol + rtol*|b_ij| for every element.
// Returns ErrDimensionMismatch if shapes differ.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ad, err := ToDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := ToDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if ad.r != bd.r || ad.c != bd.c {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	for idx, av := range ad.data {
		bv := bd.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
