// SPDX-License-Identifier: MIT
// Package script: sentinel errors and the per-line error type.

package script

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirective indicates a malformed "// ALLOWED:" or "// METRIC:" line.
	ErrInvalidDirective = errors.New("script: invalid directive")

	// ErrUnknownModifier indicates a "// ..." line naming no known output modifier.
	ErrUnknownModifier = errors.New("script: unknown modifier")

	// ErrInvalidStatement indicates an assignment without a name or a value.
	ErrInvalidStatement = errors.New("script: invalid statement")
)

// LineError attaches a script line to the failure it caused.
type LineError struct {
	Line int    // 1-based line number
	Text string // trimmed line text
	Err  error
}

// Error renders e.g. `line 4 "x = a1 ^": eval: missing operand: ...`.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *LineError) Unwrap() error { return e.Err }
