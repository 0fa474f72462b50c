// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// All operators return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match them with errors.Is.

package algebra

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidIndex indicates an alpha label that is not part of the allowed set.
	ErrInvalidIndex = errors.New("algebra: invalid alpha index")

	// ErrInvalidSign indicates a sign other than +1 or -1.
	ErrInvalidSign = errors.New("algebra: sign must be +1 or -1")

	// ErrInvalidMetric indicates a metric that is not four ±1 signs.
	ErrInvalidMetric = errors.New("algebra: invalid metric")

	// ErrInvalidAllowed indicates a malformed allowed set (count, alphabet or duplicates).
	ErrInvalidAllowed = errors.New("algebra: invalid allowed set")

	// ErrInvalidDivision indicates a division convention other than "by" or "into".
	ErrInvalidDivision = errors.New("algebra: invalid division type")

	// ErrConfigMismatch indicates values built under different allowed orderings
	// were compared or combined.
	ErrConfigMismatch = errors.New("algebra: inconsistent configuration")

	// ErrUnsupportedOperands indicates an operator has no implementation for
	// the concrete kinds of its operands.
	ErrUnsupportedOperands = errors.New("algebra: operation not supported for these operand kinds")

	// ErrDivisionUndefined indicates division between unsupported operand kinds.
	// Returned errors always wrap ErrUnsupportedOperands as well.
	ErrDivisionUndefined = errors.New("algebra: division undefined for these operand kinds")

	// ErrInvalidGrade indicates a projection grade outside [0,4].
	ErrInvalidGrade = errors.New("algebra: grade must be in [0,4]")

	// ErrInvalidTerm indicates a malformed term specification.
	ErrInvalidTerm = errors.New("algebra: invalid term")

	// ErrEmptyDifferential indicates a differential operator with nothing to
	// differentiate with respect to.
	ErrEmptyDifferential = errors.New("algebra: differential needs at least one alpha")
)

// unsupported builds the dispatch-miss error for op applied to vals.
func unsupported(op string, vals ...Value) error {
	return fmt.Errorf("%s(%s): %w", op, kindList(vals), ErrUnsupportedOperands)
}

// undefinedDivision reports a division dispatch miss; it matches both
// ErrUnsupportedOperands and ErrDivisionUndefined.
func undefinedDivision(op string, a, b Value) error {
	return fmt.Errorf("%s(%s): %w: %w", op, kindList([]Value{a, b}), ErrDivisionUndefined, ErrUnsupportedOperands)
}

// mismatch reports an operation attempted across configurations.
func mismatch(op string, a, b any) error {
	return fmt.Errorf("%s: %v vs %v: %w", op, a, b, ErrConfigMismatch)
}

func kindList(vals []Value) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = KindOf(v).String()
	}

	return strings.Join(names, ", ")
}
