// Package nat implements unsigned magnitudes of unbounded size.
//
// A Nat is an immutable value: every operation returns a fresh result and
// never mutates its operands, so Nats may be shared freely between
// goroutines. Small magnitudes (up to InlineWords words) are stored inline
// in the struct and never allocate; larger ones live in a heap slice.
//
// Multiplication dispatches between schoolbook, Karatsuba and Toom-3
// according to a Thresholds value. Division uses a single-word path,
// Knuth's algorithm D and, for large divisors, a Newton reciprocal.
// Modular exponentiation uses Montgomery reduction for odd moduli.
//
// Failures are reported with the sentinels of package numerr. Violations
// of internal invariants panic with a "nat:" prefix.
package nat
