// SPDX-License-Identifier: MIT

// Package arcalc is a calculator for a configurable 16-blade algebra: the
// identity αp plus every product of the generators 0, 1, 2 and 3.
//
// 🚀 What is arcalc?
//
//	A thread-safe library and CLI that brings together:
//		• Configuration: allowed ordering, metric (+---, -+++, ...) and division convention
//		• Product engine: signed blade products, memoised per configuration
//		• Values: Alpha, Term, MultiVector and Differential with full-product dispatch
//		• Derived operators: division, projection, reversion, Hermitian conjugate,
//		  commutator, dual, diamond
//		• Expression evaluator: "a1 ^ a2", "<F>2", "[a1, a2]", "d F", "F!"
//		• Calculation scripts: line-oriented files with directives and modifiers
//		• Cayley tables: value and sign grids, sign distributions, terminal styling
//
// ✨ Why choose arcalc?
//
//   - Explicit configuration: no process-wide state, values carry their ordering
//   - Sentinel errors throughout, matched with errors.Is
//   - Every operator is pure; only the product cache is shared, safely
//
// Under the hood, everything is organized under four subpackages:
//
//	algebra/ — Config, Alpha, Xi, Term, MultiVector, Differential and the operators
//	eval/    — lexer, evaluator and the Context of named values
//	script/  — the calculation-script runner
//	cayley/  — 16×16 operator tables and their renderings
//
// and the command-line tool cmd/arcalc.
//
// Quick example:
//
//	cfg := algebra.DefaultConfig()
//	ctx := eval.MustContext(cfg)
//	v, _ := ctx.Eval("a1 ^ a2") // α₁₂
//
//	go install github.com/katalvlaran/arcalc/cmd/arcalc@latest
package arcalc
