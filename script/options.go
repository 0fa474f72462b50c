// SPDX-License-Identifier: MIT
// Package script: Runner options.

package script

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/arcalc/algebra"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
// A nil logger panics (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("script: WithLogger: nil logger")
	}

	return func(r *Runner) { r.log = l }
}

// WithDefaults takes the allowed ordering, metric and division a run starts
// from when the script does not set them. cfg itself is never modified.
// Default: algebra.DefaultConfig().
func WithDefaults(cfg *algebra.Config) Option {
	return func(r *Runner) {
		if cfg != nil {
			r.allowed, r.metric, r.division = cfg.Allowed(), cfg.Metric(), cfg.Division()
		}
	}
}

// WithFormat sets the output format used for lines without their own
// modifier. Default: Plain.
func WithFormat(f Format) Option {
	return func(r *Runner) { r.format = f }
}
