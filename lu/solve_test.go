// SPDX-License-Identifier: MIT
package lu_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lusolve/builder"
	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// requireFailure asserts err is a *lu.Failure with the given verdict.
func requireFailure(t *testing.T, err error, want lu.Verdict) *lu.Failure {
	t.Helper()
	var f *lu.Failure
	require.True(t, errors.As(err, &f), "want *lu.Failure, got %v", err)
	require.Equal(t, want, f.Verdict)

	return f
}

func TestSolve_Known(t *testing.T) {
	t.Parallel()

	sol, err := lu.Solve(mustDense(t, [][]float64{{2, 1}, {1, 3}}), []float64{3, 5})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.8, 1.4}, sol.X, tol)
	require.InDelta(t, 5, sol.Det, tol)
	require.InDelta(t, 3.2, sol.Cond, tol)
	require.Less(t, sol.Residual, 1e-14)
	require.NotNil(t, sol.Factors)
}

func TestSolve_Scalar(t *testing.T) {
	t.Parallel()

	sol, err := lu.Solve(mustDense(t, [][]float64{{3}}), []float64{9})
	require.NoError(t, err)
	require.Equal(t, []float64{3}, sol.X)
	require.InDelta(t, 1, sol.Cond, tol)

	// any non-zero scalar is usable, however small
	sol, err = lu.Solve(mustDense(t, [][]float64{{1e-300}}), []float64{2e-300})
	require.NoError(t, err)
	require.InDelta(t, 2, sol.X[0], tol)

	sol, err = lu.Solve(mustDense(t, [][]float64{{0}}), []float64{1})
	require.Nil(t, sol)
	f := requireFailure(t, err, lu.Singular)
	require.ErrorIs(t, err, lu.ErrSingular)
	require.True(t, math.IsInf(f.Cond, 1))
	require.Zero(t, f.Det)
}

func TestSolve_Singular(t *testing.T) {
	t.Parallel()

	cases := map[string][][]float64{
		"zero row":       {{1, 2, 3}, {0, 0, 0}, {4, 5, 6}},
		"identical rows": {{1, 2}, {1, 2}},
		"rank two":       {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, rows := range cases {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := make([]float64, len(rows))
			for i := range b {
				b[i] = 1
			}
			sol, err := lu.Solve(mustDense(t, rows), b)
			require.Nil(t, sol)
			requireFailure(t, err, lu.Singular)
			require.ErrorIs(t, err, lu.ErrSingular)
			require.NotErrorIs(t, err, lu.ErrIllConditioned)
		})
	}
}

func TestSolve_IllConditionedHilbert(t *testing.T) {
	t.Parallel()

	for n := 8; n <= 11; n++ {
		s, err := builder.HilbertSystem(n)
		require.NoError(t, err)

		sol, err := lu.Solve(s.A, s.B)
		require.Nil(t, sol, "n=%d", n)
		f := requireFailure(t, err, lu.IllConditioned)
		require.ErrorIs(t, err, lu.ErrIllConditioned)
		require.Greater(t, f.Cond, lu.DefaultConditionThreshold)
		require.NotZero(t, f.Det)
		require.Contains(t, err.Error(), "cond=")
	}
}

func TestSolve_HilbertBelowThreshold(t *testing.T) {
	t.Parallel()

	s, err := builder.HilbertSystem(7)
	require.NoError(t, err)
	sol, err := lu.Solve(s.A, s.B)
	require.NoError(t, err)
	require.Less(t, sol.Cond, lu.DefaultConditionThreshold)
	require.InDeltaSlice(t, s.Want, sol.X, 1e-5)

	// a looser threshold admits H8
	s, err = builder.HilbertSystem(8)
	require.NoError(t, err)
	_, err = lu.Solve(s.A, s.B, lu.WithConditionThreshold(1e12))
	require.NoError(t, err)
}

func TestSolve_AgainstGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		n := 2 + int(seed)%5
		s, err := builder.RandomWellConditioned(n, builder.WithSeed(seed))
		require.NoError(t, err)

		sol, err := lu.Solve(s.A, s.B)
		require.NoError(t, err, "seed=%d", seed)

		ga := mat.NewDense(n, n, s.A.Values())
		var gx mat.VecDense
		require.NoError(t, gx.SolveVec(ga, mat.NewVecDense(n, append([]float64(nil), s.B...))))
		require.InDeltaSlice(t, gx.RawVector().Data, sol.X, 1e-9, "seed=%d", seed)
		require.InDeltaSlice(t, s.Want, sol.X, 1e-9, "seed=%d", seed)

		// κ₁ from the factors matches the explicit inverse
		var inv mat.Dense
		require.NoError(t, inv.Inverse(ga))
		want := mat.Norm(ga, 1) * mat.Norm(&inv, 1)
		require.InEpsilon(t, want, sol.Cond, 1e-9, "seed=%d", seed)
	}
}

func TestSolve_RandomIntegerResidual(t *testing.T) {
	t.Parallel()

	var solved int
	for seed := int64(1); seed <= 30; seed++ {
		s, err := builder.RandomInteger(4, builder.WithSeed(seed))
		require.NoError(t, err)

		sol, err := lu.Solve(s.A, s.B)
		var f *lu.Failure
		if errors.As(err, &f) {
			continue
		}
		require.NoError(t, err)
		solved++

		r, err := matrix.Residual(s.A, sol.X, s.B)
		require.NoError(t, err)
		// backward stable: ‖Ax − b‖ ≲ n·ε·‖A‖·‖x‖
		require.LessOrEqual(t, matrix.VecNormInf(r), 1e-12*36*(1+matrix.VecNormInf(sol.X)), "seed=%d", seed)
		require.Equal(t, matrix.VecNormInf(r), sol.Residual)
	}
	require.Positive(t, solved)
}

func TestSolve_TinyScaleIsNotSingular(t *testing.T) {
	t.Parallel()

	// det underflows to 0, yet A is perfectly conditioned
	a := mustDense(t, [][]float64{{1e-200, 0}, {0, 1e-200}})
	rep, err := lu.Check(a)
	require.NoError(t, err)
	require.Equal(t, lu.Usable, rep.Verdict)
	require.Zero(t, rep.Det)
	require.InDelta(t, 1, rep.Cond, tol)

	sol, err := lu.Solve(a, []float64{1e-200, 2e-200})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, sol.X, tol)
}

func TestCheck_PivotTolerance(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{1, 0}, {0, 1e-17}})

	rep, err := lu.Check(a)
	require.NoError(t, err)
	require.Equal(t, lu.Singular, rep.Verdict)
	require.Nil(t, rep.Factors)
	require.True(t, math.IsInf(rep.Cond, 1))

	rep, err = lu.Check(a, lu.WithPivotTolerance(0))
	require.NoError(t, err)
	require.Equal(t, lu.IllConditioned, rep.Verdict)
	require.InEpsilon(t, 1e17, rep.Cond, 1e-12)
	require.NotNil(t, rep.Factors)
}

func TestCheck_UsableCarriesFactors(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{4, 3}, {6, 3}})
	rep, err := lu.Check(a)
	require.NoError(t, err)
	require.Equal(t, lu.Usable, rep.Verdict)
	require.InDelta(t, -6, rep.Det, tol)
	requirePALU(t, a, rep.Factors)
}

func TestSolve_InputErrors(t *testing.T) {
	t.Parallel()

	id := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		a    matrix.Matrix
		b    []float64
		want error
	}{
		{"nil matrix", nil, []float64{1, 2}, matrix.ErrNilMatrix},
		{"non-square", rect, []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"short b", id, []float64{1}, matrix.ErrDimensionMismatch},
		{"long b", id, []float64{1, 2, 3}, matrix.ErrDimensionMismatch},
		{"nil b", id, nil, matrix.ErrNilMatrix},
		{"NaN in b", id, []float64{1, math.NaN()}, matrix.ErrNaNInf},
		{"Inf in A", mustDense(t, [][]float64{{math.Inf(1), 0}, {0, 1}}), []float64{1, 2}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		sol, err := lu.Solve(tc.a, tc.b)
		require.Nil(t, sol, tc.name)
		require.ErrorIs(t, err, tc.want, tc.name)

		var f *lu.Failure
		require.False(t, errors.As(err, &f), "%s: contract violations are not refusals", tc.name)
	}
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {3, 0, 2}})
	b := []float64{1, 2, 3}
	aBefore := a.Values()
	bBefore := append([]float64(nil), b...)

	_, err := lu.Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, aBefore, a.Values())
	require.Equal(t, bBefore, b)
}

func TestSolve_Concurrent(t *testing.T) {
	t.Parallel()

	s, err := builder.RandomWellConditioned(6, builder.WithSeed(11))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	errs := make([]error, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			sol, err := lu.Solve(s.A, s.B)
			errs[g] = err
			if err == nil {
				results[g] = sol.X
			}
		}(g)
	}
	wg.Wait()
	for g := range results {
		require.NoError(t, errs[g])
		require.Equal(t, results[0], results[g])
	}
}

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "usable", lu.Usable.String())
	require.Equal(t, "singular", lu.Singular.String())
	require.Equal(t, "ill-conditioned", lu.IllConditioned.String())
	require.Equal(t, "unknown", lu.Verdict(42).String())
}

func TestFailure_Error(t *testing.T) {
	t.Parallel()

	f := &lu.Failure{Verdict: lu.Singular, Cond: math.Inf(1), Err: lu.ErrSingular}
	require.Equal(t, lu.ErrSingular.Error(), f.Error())

	wrapped := fmt.Errorf("solve: %w", &lu.Failure{Verdict: lu.IllConditioned, Cond: 3.4e10, Err: lu.ErrIllConditioned})
	require.ErrorIs(t, wrapped, lu.ErrIllConditioned)
	require.Contains(t, wrapped.Error(), "ill-conditioned (cond=3.4e+10)")
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { lu.WithConditionThreshold(0.5) })
	require.Panics(t, func() { lu.WithConditionThreshold(math.NaN()) })
	require.Panics(t, func() { lu.WithConditionThreshold(math.Inf(1)) })
	require.Panics(t, func() { lu.WithPivotTolerance(-1e-3) })
	require.Panics(t, func() { lu.WithPivotTolerance(1) })
	require.Panics(t, func() { lu.WithPivotTolerance(math.NaN()) })
	require.Panics(t, func() { lu.WithLogger(nil) })
	require.NotPanics(t, func() { lu.WithConditionThreshold(1) })
	require.NotPanics(t, func() { lu.WithPivotTolerance(0) })
}

func TestWithLogger_TracesVerdict(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := lu.Check(mustDense(t, [][]float64{{0, 1}, {1, 0}}), lu.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "lu: row swap")
	require.Contains(t, out, "lu: conditioning verdict")
	require.Contains(t, out, "verdict=usable")
}
