// SPDX-License-Identifier: MIT
// Package cayley: sentinel errors.

package cayley

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperator indicates an operator name other than full, by, into or commutator.
	ErrUnknownOperator = errors.New("cayley: unknown operator")

	// ErrNilOperator indicates Build was called without an operator.
	ErrNilOperator = errors.New("cayley: operator is nil")

	// ErrIndexOutOfBounds indicates a row or column outside [0,16).
	ErrIndexOutOfBounds = errors.New("cayley: index out of bounds")

	// ErrUnknownLabel indicates a label absent from the table's allowed set.
	ErrUnknownLabel = errors.New("cayley: unknown label")

	// ErrNotAlpha indicates an operator result that is not a single blade.
	ErrNotAlpha = errors.New("cayley: operator did not return an alpha")
)

// tableErrorf wraps err with Table method context.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
