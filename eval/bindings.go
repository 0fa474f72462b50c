// SPDX-License-Identifier: MIT
// Package eval: the standard bindings derived from a Config.

package eval

import (
	"fmt"

	"github.com/katalvlaran/arcalc/algebra"
)

// StandardNames lists the names every Context defines, in display order.
var StandardNames = []string{
	"p", "t", "h", "q",
	"A", "B", "E", "F", "T", "G",
	"zet_B", "zet_T", "zet_A", "zet_E",
	"Fp", "zet_F", "Fpq",
	"Dmu", "d", "DG", "DF", "DB", "DT", "DA", "DE",
}

// standardBindings builds the named groupings of cfg's allowed set.
func standardBindings(cfg *algebra.Config) (map[string]algebra.Value, error) {
	var (
		h, q       = cfg.H(), cfg.Q()
		b, t, a, e = cfg.B(), cfg.T(), cfg.A(), cfg.E()
	)
	join := func(parts ...[]string) []string {
		var out []string
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}
	one := func(s string) []string { return []string{s} }

	vectors := map[string][]string{
		"p":     one(algebra.Point),
		"t":     one("0"),
		"h":     one(h),
		"q":     one(q),
		"A":     a,
		"B":     b,
		"E":     e,
		"F":     join(e, b),
		"T":     t,
		"G":     cfg.Allowed(),
		"zet_B": join(one(algebra.Point), b),
		"zet_T": join(one("0"), t),
		"zet_A": join(one(h), a),
		"zet_E": join(one(q), e),
		"Fp":    join(one(algebra.Point), b, e),
		"zet_F": join(one(algebra.Point), b, one(q), e),
	}
	vectors["Fpq"] = vectors["zet_F"]

	diffs := map[string][]string{
		"Dmu": {"0", "1", "2", "3"},
		"DG":  cfg.Allowed(),
		"DF":  join(b, e),
		"DB":  join(one(algebra.Point), b),
		"DT":  join(one("0"), t),
		"DA":  join(one(h), a),
		"DE":  join(one(q), e),
	}
	diffs["d"] = diffs["Dmu"]

	out := make(map[string]algebra.Value, len(vectors)+len(diffs))
	for name, labels := range vectors {
		m, err := cfg.MultiVectorOf(labels...)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		out[name] = m
	}
	for name, labels := range diffs {
		d, err := algebra.NewDifferential(cfg, labels...)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		out[name] = d
	}

	return out, nil
}
