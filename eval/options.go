// SPDX-License-Identifier: MIT
// Package eval: functional options for Context and for single evaluations.

package eval

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/arcalc/algebra"
)

// Option configures a Context at construction.
type Option func(*Context)

// WithLogger sets the logger; the default discards everything.
// A nil logger panics (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("eval: WithLogger: nil logger")
	}

	return func(c *Context) { c.log = l }
}

// WithBindings seeds the user binding table. Names are validated by
// NewContext.
func WithBindings(b map[string]algebra.Value) Option {
	return func(c *Context) {
		for k, v := range b {
			c.pending[k] = v
		}
	}
}

// EvalOption tunes a single Eval call.
type EvalOption func(*evalOptions)

type evalOptions struct {
	scope  map[string]algebra.Value
	cancel bool
}

// WithScope supplies a fallback scope consulted after the context bindings.
func WithScope(scope map[string]algebra.Value) EvalOption {
	return func(o *evalOptions) { o.scope = scope }
}

// WithCancelTerms cancels a MultiVector result before returning it.
func WithCancelTerms() EvalOption {
	return func(o *evalOptions) { o.cancel = true }
}

func gatherEvalOptions(opts []EvalOption) evalOptions {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
