// SPDX-License-Identifier: MIT
// Package algebra_test: shared fixtures.

package algebra_test

import (
	"testing"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/stretchr/testify/require"
)

// allMetrics enumerates the 16 possible metrics.
func allMetrics() []algebra.Metric {
	out := make([]algebra.Metric, 0, 16)
	for bits := 0; bits < 16; bits++ {
		var m algebra.Metric
		for g := 0; g < 4; g++ {
			m[g] = algebra.Positive
			if bits&(1<<g) != 0 {
				m[g] = algebra.Negative
			}
		}
		out = append(out, m)
	}

	return out
}

// configWith builds a default-ordered Config under metric m.
func configWith(t testing.TB, m algebra.Metric) *algebra.Config {
	t.Helper()
	cfg, err := algebra.NewConfig(algebra.DefaultAllowed(), m, algebra.DivisionInto)
	require.NoError(t, err)

	return cfg
}

// alphas returns every allowed blade of cfg with positive sign.
func alphas(t testing.TB, cfg *algebra.Config) []algebra.Alpha {
	t.Helper()
	out := make([]algebra.Alpha, 0, algebra.BasisSize)
	for _, l := range cfg.Allowed() {
		a, err := cfg.Alpha(l)
		require.NoError(t, err)
		out = append(out, a)
	}

	return out
}
