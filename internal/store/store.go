// SPDX-License-Identifier: MIT

// Package store persists solved systems as versioned JSON documents.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
)

// Version is the only document version this package reads and writes.
const Version = 1

var (
	// ErrVersion indicates a document written by an unknown format version.
	ErrVersion = errors.New("store: unsupported document version")
	// ErrInconsistent indicates a document whose arrays do not match n.
	ErrInconsistent = errors.New("store: inconsistent document")
)

// Record is the on-disk form of a system and, when it was solved, its outcome.
// X, Permutation, L and U are empty for refused systems.
type Record struct {
	Version     int         `json:"version"`
	ID          string      `json:"id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	N           int         `json:"n"`
	A           [][]float64 `json:"a"`
	B           []float64   `json:"b"`
	X           []float64   `json:"x,omitempty"`
	Permutation []int       `json:"permutation,omitempty"`
	L           [][]float64 `json:"l,omitempty"`
	U           [][]float64 `json:"u,omitempty"`
	Verdict     string      `json:"verdict"`
	Determinant *float64    `json:"determinant,omitempty"` // nil when not finite
	Condition   *float64    `json:"condition,omitempty"`   // nil when +Inf
}

// NewRecord captures a and b together with the outcome of solving them.
// sol may be nil; failure, when it is a *lu.Failure, supplies the verdict.
func NewRecord(a *matrix.Dense, b []float64, sol *lu.Solution, failure error, now time.Time) *Record {
	rec := &Record{
		Version:   Version,
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		N:         a.Rows(),
		A:         a.RowsSlice(),
		B:         append([]float64(nil), b...),
	}

	var f *lu.Failure
	switch {
	case sol != nil:
		rec.Verdict = lu.Usable.String()
		rec.X = append([]float64(nil), sol.X...)
		rec.Determinant = finite(sol.Det)
		rec.Condition = finite(sol.Cond)
		if sol.Factors != nil {
			rec.Permutation = append([]int(nil), sol.Factors.P...)
			rec.L = sol.Factors.L.RowsSlice()
			rec.U = sol.Factors.U.RowsSlice()
		}
	case errors.As(failure, &f):
		rec.Verdict = f.Verdict.String()
		rec.Determinant = finite(f.Det)
		rec.Condition = finite(f.Cond)
	}

	return rec
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// System rebuilds the dense matrix A stored in the record.
func (r *Record) System() (*matrix.Dense, []float64, error) {
	a, err := matrix.NewDenseFromRows(r.A)
	if err != nil {
		return nil, nil, fmt.Errorf("Record.System: %w", err)
	}

	return a, append([]float64(nil), r.B...), nil
}

// Validate checks the version, the optional ID and that every array agrees with N.
func (r *Record) Validate() error {
	if r.Version != Version {
		return fmt.Errorf("version %d: %w", r.Version, ErrVersion)
	}
	if r.ID != "" {
		if _, err := uuid.Parse(r.ID); err != nil {
			return fmt.Errorf("id %q: %w: %w", r.ID, ErrInconsistent, err)
		}
	}
	if r.N < 1 || len(r.A) != r.N || len(r.B) != r.N {
		return fmt.Errorf("n=%d rows(a)=%d len(b)=%d: %w", r.N, len(r.A), len(r.B), ErrInconsistent)
	}
	if err := square(r.A, r.N); err != nil {
		return fmt.Errorf("a: %w", err)
	}
	if r.X != nil && len(r.X) != r.N {
		return fmt.Errorf("len(x)=%d: %w", len(r.X), ErrInconsistent)
	}
	if r.Permutation != nil {
		if len(r.Permutation) != r.N {
			return fmt.Errorf("len(permutation)=%d: %w", len(r.Permutation), ErrInconsistent)
		}
		if err := lu.Permutation(r.Permutation).Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInconsistent, err)
		}
	}
	if r.L != nil {
		if err := square(r.L, r.N); err != nil {
			return fmt.Errorf("l: %w", err)
		}
	}
	if r.U != nil {
		if err := square(r.U, r.N); err != nil {
			return fmt.Errorf("u: %w", err)
		}
	}

	return nil
}

func square(rows [][]float64, n int) error {
	if len(rows) != n {
		return fmt.Errorf("%d rows, want %d: %w", len(rows), n, ErrInconsistent)
	}
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrInconsistent)
		}
	}

	return nil
}

// Save writes rec as indented JSON.
func Save(w io.Writer, rec *Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// SaveFile writes rec to path, replacing any existing file.
func SaveFile(path string, rec *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = Save(f, rec); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Load decodes and validates one record.
func Load(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return &rec, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}
