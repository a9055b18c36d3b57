// SPDX-License-Identifier: MIT
// Package: lusolve/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w and the constructor name.

package builder

import "errors"

// ErrTooSmall indicates a dimension below the allowed minimum (n < 1).
var ErrTooSmall = errors.New("builder: dimension too small")

// ErrShape indicates manually supplied rows or right-hand side that do not form
// an n×n matrix with a length-n vector.
var ErrShape = errors.New("builder: rows do not form a square system")
