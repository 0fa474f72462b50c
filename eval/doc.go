// SPDX-License-Identifier: MIT

// Package eval turns expression text into algebra values.
//
// An expression is scanned into tokens by a hand written lexer and then
// evaluated eagerly by a recursive-descent parser; no syntax tree is kept.
//
// Syntax:
//
//	a12, -a0, ap      signed alpha literals
//	p1, -p023         terms with the default magnitude ξ<index>
//	{1 2 3[φ]}        set literal MultiVector (whitespace or comma separated)
//	<0 1 2 3>         differential operator literal
//	name, -name       binding lookup (optionally negated)
//	x y, x ^ y        full product (adjacency or explicit ^)
//	x / y, x \ y      divide-by / divide-into
//	x + y             addition
//	x!                Hermitian conjugate
//	<x>n              grade projection, n in 0..4
//	[x, y]            commutator
//	(x)               grouping
//
// Binary operators take the whole remainder of the expression as their
// right operand, so "a1 ^ a2 a3" is a1·(a2·a3).
//
// A Context binds a *algebra.Config together with the standard named values
// (B, E, F, zet_B, Dmu, ...). The standard bindings are rebuilt whenever the
// Config's allowed set, metric or division changes.
//
// Errors:
//
//	Malformed text is reported as a *SyntaxError wrapping one of the
//	sentinels in errors.go. Failures raised by the algebra (unsupported
//	operand kinds, configuration mismatch) are returned unchanged.
package eval
