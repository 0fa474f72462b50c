// SPDX-License-Identifier: MIT
// Package eval: sentinel errors and the positioned SyntaxError.

package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates text the lexer or parser cannot accept.
	ErrSyntax = errors.New("eval: invalid syntax")

	// ErrMissingOperand indicates a binary or postfix operator without an operand.
	ErrMissingOperand = errors.New("eval: missing operand")

	// ErrUndefinedName indicates a name bound neither in the context nor in the scope.
	ErrUndefinedName = errors.New("eval: undefined name")

	// ErrUnbalanced indicates an opening bracket without its closing partner.
	ErrUnbalanced = errors.New("eval: unbalanced brackets")

	// ErrMissingIndex indicates a projection not followed by a grade 0..4.
	ErrMissingIndex = errors.New("eval: missing projection index")

	// ErrEmptyExpression indicates an expression, or sub-expression, with no value.
	ErrEmptyExpression = errors.New("eval: empty expression")

	// ErrInvalidName indicates a binding name that the lexer would never resolve.
	ErrInvalidName = errors.New("eval: invalid binding name")
)

// SyntaxError locates a lexing or parsing failure within the source text.
type SyntaxError struct {
	Text string // full expression
	Pos  int    // byte offset of the offending token
	Msg  string
	Err  error // one of the sentinels above
}

// Error renders e.g. `eval: missing operand: "^" needs a right operand at 3 in "a1 ^"`.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at %d in %q", e.Err, e.Msg, e.Pos, e.Text)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(text string, pos int, err error, format string, args ...any) *SyntaxError {
	return &SyntaxError{Text: text, Pos: pos, Msg: fmt.Sprintf(format, args...), Err: err}
}
