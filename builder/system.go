// SPDX-License-Identifier: MIT
// Package: lusolve/builder
//
// system.go: constructors for square systems Ax = b.
//
// Determinism:
//   - Entries are drawn row by row (i asc, j asc), then b (i asc), from the
//     resolved RNG only.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// File-local constants (stable method tags, domains).
const (
	methodRandomInteger         = "RandomInteger"
	methodRandomWellConditioned = "RandomWellConditioned"
	methodHilbert               = "Hilbert"
	methodFromRows              = "FromRows"
	minDimension                = 1
)

// System is a square linear system A x = b.
// Want, when non-nil, is the exact solution the constructor planted.
type System struct {
	A    *matrix.Dense
	B    []float64
	Want []float64
}

// N returns the dimension of the system.
func (s *System) N() int { return s.A.Rows() }

func validateN(method string, n int) error {
	if n < minDimension {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minDimension, ErrTooSmall)
	}

	return nil
}

// RandomInteger returns an n×n A and length-n b with integer entries drawn
// uniformly from [lo, hi] (WithRange; default [1, 9]).
// The result may be singular; it is the solver's job to say so.
// Complexity: O(n²).
func RandomInteger(n int, opts ...Option) (*System, error) {
	if err := validateN(methodRandomInteger, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	span := cfg.hi - cfg.lo + 1

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInteger, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = a.Set(i, j, float64(cfg.lo+cfg.rng.Intn(span)))
		}
	}
	b := make([]float64, n)
	for i = range b {
		b[i] = float64(cfg.lo + cfg.rng.Intn(span))
	}

	return &System{A: a, B: b}, nil
}

// RandomWellConditioned returns a strictly diagonally dominant n×n A with
// off-diagonal entries in [-1, 1) and a planted solution Want in [-10, 10),
// b = A·Want. Diagonal dominance keeps κ(A) small for every seed.
// Complexity: O(n²).
func RandomWellConditioned(n int, opts ...Option) (*System, error) {
	if err := validateN(methodRandomWellConditioned, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomWellConditioned, err)
	}
	var (
		i, j   int
		rowAbs float64
		v      float64
	)
	for i = 0; i < n; i++ {
		rowAbs = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = 2*cfg.rng.Float64() - 1
			rowAbs += abs(v)
			_ = a.Set(i, j, v)
		}
		// random sign keeps pivoting non-trivial
		d := rowAbs + 1 + cfg.rng.Float64()
		if cfg.rng.Intn(2) == 0 {
			d = -d
		}
		_ = a.Set(i, i, d)
	}

	want := make([]float64, n)
	for i = range want {
		want[i] = 20*cfg.rng.Float64() - 10
	}
	b, err := matrix.MatVec(a, want)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomWellConditioned, err)
	}

	return &System{A: a, B: b, Want: want}, nil
}

// Hilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1).
// κ₁(H₈) ≈ 3.4e10, so n ≥ 8 exceeds the default condition threshold.
func Hilbert(n int) (*matrix.Dense, error) {
	if err := validateN(methodHilbert, n); err != nil {
		return nil, err
	}
	h, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHilbert, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = h.Set(i, j, 1/float64(i+j+1))
		}
	}

	return h, nil
}

// HilbertSystem returns H x = b with b the row sums of H, so the exact
// solution is the all-ones vector.
func HilbertSystem(n int) (*System, error) {
	h, err := Hilbert(n)
	if err != nil {
		return nil, err
	}
	want := make([]float64, n)
	for i := range want {
		want[i] = 1
	}
	b, err := matrix.MatVec(h, want)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHilbert, err)
	}

	return &System{A: h, B: b, Want: want}, nil
}

// FromRows validates manually entered data and wraps it as a System.
// Returns ErrShape unless rows is n×n and len(b) == n, n ≥ 1.
func FromRows(rows [][]float64, b []float64) (*System, error) {
	n := len(rows)
	if err := validateN(methodFromRows, n); err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, want %d: %w", methodFromRows, len(b), n, ErrShape)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", methodFromRows, i, len(row), n, ErrShape)
		}
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromRows, err)
	}
	bb := make([]float64, n)
	copy(bb, b)

	return &System{A: a, B: bb}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
