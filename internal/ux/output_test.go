// SPDX-License-Identifier: MIT
package ux_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/lusolve/internal/ux"
	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestDeque(t *testing.T) {
	t.Parallel()

	require.Equal(t, "deque([0.80, 1.40])", ux.Deque([]float64{0.8, 1.4}, 2))
	require.Equal(t, "deque([-3.125])", ux.Deque([]float64{-3.125}, 3))
	require.Equal(t, "deque([])", ux.Deque(nil, 2))
}

func TestPrinter_SystemAndSolution(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
	require.NoError(t, err)
	b := []float64{3, 5}
	sol, err := lu.Solve(a, b)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := ux.NewPrinter(&buf, 2)
	p.System(a, b)
	require.NoError(t, p.Solution(sol, true))

	out := buf.String()
	for _, want := range []string{
		"Matrix A", "Vector b", "2.00", "5.00",
		"deque([0.80, 1.40])", "Solution x", "cond=3.2",
		"Permutation P", "Lower L", "Upper U", "2.50",
	} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "\x1b[", "non-terminal writers get plain text")
}

func TestPrinter_SolutionWithoutFactors(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFromRows([][]float64{{4}})
	require.NoError(t, err)
	sol, err := lu.Solve(a, []float64{2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ux.NewPrinter(&buf, 1).Solution(sol, false))
	require.Contains(t, buf.String(), "deque([0.5])")
	require.NotContains(t, buf.String(), "Upper U")
}

func TestPrinter_Failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := ux.NewPrinter(&buf, 2)

	p.Failure(&lu.Failure{Verdict: lu.Singular, Err: lu.ErrSingular})
	require.Contains(t, buf.String(), "not invertible")

	buf.Reset()
	p.Failure(&lu.Failure{Verdict: lu.IllConditioned, Cond: 3.4e10, Err: lu.ErrIllConditioned})
	require.Contains(t, buf.String(), "ill-conditioned")
	require.Contains(t, buf.String(), "3.4e+10")

	buf.Reset()
	p.Failure(errors.New("boom"))
	require.Contains(t, buf.String(), "boom")
}

func TestPrinter_Verdict(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ux.NewPrinter(&buf, 2).Verdict(&lu.Report{Verdict: lu.IllConditioned, Cond: 3.39e10})
	require.Contains(t, buf.String(), "ill-conditioned")
	require.Contains(t, buf.String(), "cond=3.39e+10")
}
