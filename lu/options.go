// SPDX-License-Identifier: MIT
// Package lu: functional options for the solver's numeric policy.
//
// Contract:
//   • Option constructors validate and panic on nonsensical values (programmer error).
//   • Algorithms never panic; they resolve options through gatherOptions.
//   • No global state: every call resolves its own options value.

package lu

import (
	"log/slog"
	"math"
)

// DefaultConditionThreshold is the κ₁ above which a system is IllConditioned.
const DefaultConditionThreshold = 1e10

// machineEpsilon is the spacing of float64 values around 1 (2⁻⁵²).
const machineEpsilon = 0x1p-52

const (
	panicThresholdInvalid = "lu: WithConditionThreshold: threshold must be finite and >= 1"
	panicToleranceInvalid = "lu: WithPivotTolerance: tolerance must be finite and in [0, 1)"
	panicLoggerNil        = "lu: WithLogger(nil)"
)

// Option customizes Check, Factorize, Solve, Inverse and Det.
type Option func(*options)

type options struct {
	condThreshold float64      // DefaultConditionThreshold
	pivotTol      float64      // relative pivot tolerance, valid when hasPivotTol
	hasPivotTol   bool         // false ⇒ n·ε
	logger        *slog.Logger // discards by default
}

// WithConditionThreshold sets the κ₁ limit above which Check reports IllConditioned.
// Panics if t is NaN, infinite or below 1 (κ₁ ≥ 1 for every invertible matrix).
func WithConditionThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.condThreshold = t }
}

// WithPivotTolerance sets the relative tolerance for zero-pivot detection:
// a pivot p is treated as zero when |p| <= tol·max|a_ij|. tol=0 demands an
// exact zero. When not set, tol = n·ε.
// Panics if tol is NaN, infinite, negative or >= 1.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) {
		o.pivotTol = tol
		o.hasPivotTol = true
	}
}

// WithLogger routes debug traces (pivot swaps, verdicts) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions resolves opts against the documented defaults; last writer wins.
func gatherOptions(opts []Option) options {
	o := options{
		condThreshold: DefaultConditionThreshold,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// relTolerance returns the relative pivot tolerance for an n×n system.
func (o options) relTolerance(n int) float64 {
	if o.hasPivotTol {
		return o.pivotTol
	}

	return float64(n) * machineEpsilon
}
