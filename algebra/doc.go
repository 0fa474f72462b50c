// SPDX-License-Identifier: MIT

// Package algebra implements a configurable 16-element exterior-algebra-like
// system built on signed basis blades ("alphas") over the four generators
// {0,1,2,3}, plus the distinguished identity blade αp.
//
// The algebra A = (allowed, metric, division) is described by a Config:
//
//   - allowed : the ordered list of 16 blade labels; each label is either
//     "p" or a repeat-free string over {0,1,2,3}. Every subset of the four
//     generators must appear exactly once, so the order of the characters
//     inside a label fixes the canonical orientation of that blade.
//   - metric  : one ±1 sign per generator (e.g. "+---"), the square of that
//     generator relative to αp.
//   - division: the convention ("by" or "into") used when a differential
//     operator divides a blade.
//
// Value kinds (the Value sum type):
//
//	Alpha       : a signed basis blade
//	Term        : a signed blade bound to one or more magnitudes (Xi)
//	MultiVector : a sorted, possibly redundant formal sum of Terms
//	Differential: a list of alphas to differentiate with respect to
//
// Operators on a Config:
//
//	Product(i, j)      // O(1) amortised: blade product, memoised per Config
//	Inverse(a)         // unique b such that Product(a, b) == αp
//	Full(a, b)         // full product, Cartesian expansion for MultiVectors
//	DivBy(a, b)        // a · b⁻¹
//	DivInto(a, b)      // a⁻¹ · b
//	Project(v, grade)  // grade projection <v>n
//	Hermitian(v)       // negate everything that squares to -αp
//	Commutator(a, b)   // a · b · a⁻¹ · b⁻¹ (always ±αp for alphas)
//	Dual(m), Diamond(m), MMBar(m)
//
// Rev(v) (reversion) is metric independent and therefore a package function.
//
// Error policy:
//
//	Every failure is reported via the sentinels in errors.go; no operator
//	panics on user input. Combining values built under configurations with
//	different allowed orderings returns ErrConfigMismatch, and an operator
//	applied to an unregistered pair of kinds returns ErrUnsupportedOperands.
//
// Concurrency:
//
//	Alpha, Xi and Term are immutable values. A Config guards its state with
//	a sync.RWMutex and owns its product cache, so concurrent readers are
//	safe; mutation (SetAllowed/SetMetric) invalidates only that Config's
//	cache entries.
package algebra
