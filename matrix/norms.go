// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	opNorm1    = "Norm1"
	opNormInf  = "NormInf"
	opMaxAbs   = "MaxAbs"
	opResidual = "Residual"
)

// Norm1 returns the maximum absolute column sum ‖m‖₁.
// Complexity: O(r*c).
func Norm1(m Matrix) (float64, error) {
	md, err := ToDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm1, err)
	}
	var best, sum float64
	for j := 0; j < md.c; j++ {
		sum = 0
		for i := 0; i < md.r; i++ {
			sum += math.Abs(md.data[i*md.c+j])
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// NormInf returns the maximum absolute row sum ‖m‖∞.
// Complexity: O(r*c).
func NormInf(m Matrix) (float64, error) {
	md, err := ToDense(m)
	if err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	var best, sum float64
	for i := 0; i < md.r; i++ {
		sum = 0
		for _, v := range md.data[i*md.c : (i+1)*md.c] {
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxAbs returns max |m_ij|. Used as the scale for relative pivot tolerances.
func MaxAbs(m Matrix) (float64, error) {
	md, err := ToDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	var best float64
	for _, v := range md.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// VecNormInf returns max |x_i|; zero for an empty vector.
func VecNormInf(x []float64) float64 {
	var best float64
	for _, v := range x {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// Residual returns r = A·x − b.
// Returns ErrDimensionMismatch when x or b do not match A.
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}
