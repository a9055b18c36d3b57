// SPDX-License-Identifier: MIT
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lusolve/builder"
	"github.com/katalvlaran/lusolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestRandomInteger_RangeAndShape(t *testing.T) {
	t.Parallel()

	s, err := builder.RandomInteger(5, builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, 5, s.N())
	require.Len(t, s.B, 5)
	require.Nil(t, s.Want)

	for _, v := range s.A.Values() {
		require.Equal(t, math.Trunc(v), v, "entries must be integers")
		require.GreaterOrEqual(t, v, float64(builder.DefaultMin))
		require.LessOrEqual(t, v, float64(builder.DefaultMax))
	}
	for _, v := range s.B {
		require.GreaterOrEqual(t, v, float64(builder.DefaultMin))
		require.LessOrEqual(t, v, float64(builder.DefaultMax))
	}
}

func TestRandomInteger_CustomRange(t *testing.T) {
	t.Parallel()

	s, err := builder.RandomInteger(4, builder.WithSeed(7), builder.WithRange(-3, -3))
	require.NoError(t, err)
	for _, v := range s.A.Values() {
		require.Equal(t, -3.0, v)
	}
	for _, v := range s.B {
		require.Equal(t, -3.0, v)
	}
}

func TestRandomInteger_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomInteger(6, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.RandomInteger(6, builder.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.A.Values(), b.A.Values())
	require.Equal(t, a.B, b.B)

	// WithSeed(0) and no seed both resolve to DefaultSeed.
	c, err := builder.RandomInteger(6, builder.WithSeed(0))
	require.NoError(t, err)
	d, err := builder.RandomInteger(6)
	require.NoError(t, err)
	require.Equal(t, c.A.Values(), d.A.Values())

	// An explicit RNG is honoured.
	e, err := builder.RandomInteger(6, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	require.Equal(t, a.A.Values(), e.A.Values())
}

func TestRandomWellConditioned_DominantAndConsistent(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		s, err := builder.RandomWellConditioned(6, builder.WithSeed(seed))
		require.NoError(t, err)
		require.Len(t, s.Want, 6)

		rows := s.A.RowsSlice()
		for i, row := range rows {
			var off float64
			for j, v := range row {
				if j != i {
					off += math.Abs(v)
				}
			}
			require.Greater(t, math.Abs(row[i]), off, "row %d must be strictly dominant", i)
		}

		r, err := matrix.Residual(s.A, s.Want, s.B)
		require.NoError(t, err)
		require.InDelta(t, 0, matrix.VecNormInf(r), 1e-12)
	}
}

func TestHilbert_Entries(t *testing.T) {
	t.Parallel()

	h, err := builder.Hilbert(3)
	require.NoError(t, err)
	want := [][]float64{
		{1, 1.0 / 2, 1.0 / 3},
		{1.0 / 2, 1.0 / 3, 1.0 / 4},
		{1.0 / 3, 1.0 / 4, 1.0 / 5},
	}
	require.Equal(t, want, h.RowsSlice())
}

func TestHilbertSystem_RowSums(t *testing.T) {
	t.Parallel()

	s, err := builder.HilbertSystem(4)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, s.Want)
	for i, row := range s.A.RowsSlice() {
		var sum float64
		for _, v := range row {
			sum += v
		}
		require.InDelta(t, sum, s.B[i], 1e-15)
	}
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{2, 1}, {1, 3}}
	b := []float64{3, 5}
	s, err := builder.FromRows(rows, b)
	require.NoError(t, err)
	require.Equal(t, rows, s.A.RowsSlice())
	require.Equal(t, b, s.B)

	b[0] = 100
	require.Equal(t, 3.0, s.B[0], "system must not alias caller slice")

	_, err = builder.FromRows(rows, []float64{1})
	require.ErrorIs(t, err, builder.ErrShape)
	_, err = builder.FromRows([][]float64{{1, 2}, {3}}, []float64{1, 2})
	require.ErrorIs(t, err, builder.ErrShape)
	_, err = builder.FromRows(nil, nil)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestConstructors_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomInteger(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.RandomWellConditioned(-1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Hilbert(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.HilbertSystem(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithRange(5, 1) })
	require.NotPanics(t, func() { builder.WithRange(1, 1) })
}
