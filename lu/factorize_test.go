// SPDX-License-Identifier: MIT
package lu_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lusolve/builder"
	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requirePALU asserts P·A == L·U within tol.
func requirePALU(t *testing.T, a *matrix.Dense, f *lu.Factorization) {
	t.Helper()
	pm, err := f.P.Matrix()
	require.NoError(t, err)
	pa, err := matrix.Mul(pm, a)
	require.NoError(t, err)
	prod, err := matrix.Mul(f.L, f.U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(pa, prod, tol, tol)
	require.NoError(t, err)
	require.True(t, ok, "PA != LU\nPA=\n%v\nLU=\n%v", pa, prod)
}

func TestFactorize_Shape(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
	f, err := lu.Factorize(a)
	require.NoError(t, err)
	require.Equal(t, 3, f.N())
	require.NoError(t, f.P.Validate())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			l, _ := f.L.At(i, j)
			u, _ := f.U.At(i, j)
			switch {
			case i == j:
				require.Equal(t, 1.0, l, "unit diagonal L")
			case i < j:
				require.Zero(t, l, "L[%d][%d]", i, j)
			default:
				require.Zero(t, u, "U[%d][%d]", i, j)
				require.LessOrEqual(t, math.Abs(l), 1.0, "partial pivoting bounds multipliers")
			}
		}
	}
	requirePALU(t, a, f)
}

func TestFactorize_PivotsLargestFirst(t *testing.T) {
	t.Parallel()

	// zero leading entry forces a swap
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	f, err := lu.Factorize(a)
	require.NoError(t, err)
	require.Equal(t, lu.Permutation{1, 0}, f.P)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, f.L.RowsSlice())
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, f.U.RowsSlice())
	require.Equal(t, -1.0, f.Det())

	// ties go to the first candidate row
	b := mustDense(t, [][]float64{{2, 1}, {-2, 3}})
	f, err = lu.Factorize(b)
	require.NoError(t, err)
	require.Equal(t, lu.Permutation{0, 1}, f.P)
	require.Equal(t, []float64{2, 4}, f.Pivots())
}

func TestFactorize_SwapsStoredMultipliers(t *testing.T) {
	t.Parallel()

	// column 1 pivots after column 0 has stored multipliers
	a := mustDense(t, [][]float64{
		{4, 1, 2, 3},
		{2, 0.5, 1, 9},
		{1, 7, 3, 1},
		{3, 2, 8, 5},
	})
	f, err := lu.Factorize(a)
	require.NoError(t, err)
	requirePALU(t, a, f)
}

func TestFactorize_RandomRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		s, err := builder.RandomWellConditioned(n, builder.WithSeed(int64(100+n)))
		require.NoError(t, err)
		f, err := lu.Factorize(s.A)
		require.NoError(t, err)
		requirePALU(t, s.A, f)
	}
}

func TestFactorize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	before := a.Values()
	_, err := lu.Factorize(a)
	require.NoError(t, err)
	require.Equal(t, before, a.Values())
}

func TestFactorize_Singular(t *testing.T) {
	t.Parallel()

	cases := map[string][][]float64{
		"zero row":       {{1, 2, 3}, {0, 0, 0}, {4, 5, 6}},
		"identical rows": {{1, 2}, {1, 2}},
		"zero matrix":    {{0, 0}, {0, 0}},
		"rank two":       {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, rows := range cases {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := lu.Factorize(mustDense(t, rows))
			require.ErrorIs(t, err, lu.ErrSingular)
		})
	}
}

func TestFactorize_InputErrors(t *testing.T) {
	t.Parallel()

	_, err := lu.Factorize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = lu.Factorize(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = lu.Factorize(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lu.Factorize(mustDense(t, [][]float64{{1, math.NaN()}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = lu.Factorize(mustDense(t, [][]float64{{math.Inf(-1)}}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDet(t *testing.T) {
	t.Parallel()

	d, err := lu.Det(mustDense(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.InDelta(t, -2, d, tol)

	d, err = lu.Det(mustDense(t, [][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}))
	require.NoError(t, err)
	require.Equal(t, 24.0, d)

	d, err = lu.Det(mustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = lu.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := lu.Inverse(a)
	require.NoError(t, err)
	want := mustDense(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	ok, err := matrix.AllClose(inv, want, tol, tol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v", inv)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	ok, err = matrix.AllClose(prod, id, tol, tol)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = lu.Inverse(mustDense(t, [][]float64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, lu.ErrSingular)
}
