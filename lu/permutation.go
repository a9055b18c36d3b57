// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/lusolve/matrix"
)

// Permutation records the row interchanges of a factorization:
// row i of PA is row P[i] of A.
type Permutation []int

// identityPermutation returns [0, 1, ..., n-1].
func identityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports ErrInvalidPermutation unless p is a bijection on {0..len(p)-1}.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("Permutation.Validate: entry %d=%d: %w", i, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Apply returns Pb: out[i] = b[P[i]]. b is not modified.
// Assumes len(b) == len(p).
func (p Permutation) Apply(b []float64) []float64 {
	out := make([]float64, len(p))
	for i, src := range p {
		out[i] = b[src]
	}

	return out
}

// Inverse returns q with q[P[i]] = i, so q.Apply(p.Apply(b)) == b.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, src := range p {
		q[src] = i
	}

	return q
}

// Sign returns the parity of p: +1 for an even number of transpositions, -1 otherwise.
// Complexity: O(n) by cycle decomposition.
func (p Permutation) Sign() float64 {
	visited := make([]bool, len(p))
	sign := 1.0
	for start := range p {
		if visited[start] {
			continue
		}
		length := 0
		for j := start; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		// a cycle of length L is L-1 transpositions
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// Matrix returns the explicit n×n permutation matrix with (PA)[i] = A[P[i]].
func (p Permutation) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(p), len(p))
	if err != nil {
		return nil, luErrorf("Permutation.Matrix", err)
	}
	for i, src := range p {
		if err = m.Set(i, src, 1); err != nil {
			return nil, luErrorf("Permutation.Matrix", err)
		}
	}

	return m, nil
}
