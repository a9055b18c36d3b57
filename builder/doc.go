// Package builder generates deterministic linear systems for the lusolve solver,
// its tests and its command-line front end.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:  a function that mutates the internal config before use.
//     – WithSeed / WithRand: explicit, reproducible randomness (no global source).
//     – WithRange: integer entry bounds for RandomInteger (default [1,9]).
//   - Constructors:
//     – RandomInteger:        integer-valued A and b, the classic "random data" mode.
//     – RandomWellConditioned: strictly diagonally dominant A with a known solution.
//     – Hilbert / HilbertSystem: the textbook ill-conditioned family.
//     – FromRows:             validates manually entered rows and right-hand side.
//
// Guarantees:
//
//   - Same seed and options ⇒ identical systems, on every platform.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are the sentinels in errors.go, wrapped with a method tag.
package builder
