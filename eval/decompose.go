// SPDX-License-Identifier: MIT
// Package eval: expressing the zets in terms of one another.

package eval

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arcalc/algebra"
)

// zetBases are the four spellings of the base zet tried by Decompose,
// paired with their printed form.
var zetBases = []struct{ expr, symbol string }{
	{"zet_%s", "ζ"},
	{"(zet_%s!)", "ζ†"},
	{"-zet_%s", "-ζ"},
	{"(-zet_%s!)", "-ζ†"},
}

// Decompose writes each of the other three zets as a product of base with
// one of α₀, αq or αh, e.g. "T = a0 ^ ζ". Only products whose terms are all
// positive and whose alphas are exactly the target zet are accepted.
//
// Errors:
//   - ErrUndefinedName if base is not one of B, T, A, E.
//   - ErrSyntax (wrapped) if some zet cannot be decomposed.
func (c *Context) Decompose(base string) ([]string, error) {
	if !strings.Contains("BTAE", base) || len(base) != 1 {
		return nil, fmt.Errorf("Decompose(%q): %w", base, ErrUndefinedName)
	}
	cfg := c.cfg
	factors := []string{"a0", "a" + cfg.Q(), "a" + cfg.H()}

	out := []string{fmt.Sprintf("zet_%s = ζ", base)}
	for _, zet := range algebra.Zets {
		if zet.String() == base {
			continue
		}
		line, err := c.decomposeOne(base, zet, factors)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, nil
}

func (c *Context) decomposeOne(base string, zet algebra.Zet, factors []string) (string, error) {
	elems := c.cfg.ZetElements(zet)
	target := setOf(elems[:])

	for _, b := range zetBases {
		expr := fmt.Sprintf(b.expr, base)
		// float a0 to the front and q/h to the back where possible
		orders := [][2]string{
			{factors[0], expr}, {expr, factors[0]},
			{expr, factors[1]}, {factors[1], expr},
			{expr, factors[2]}, {factors[2], expr},
		}
		for _, pair := range orders {
			text := pair[0] + " ^ " + pair[1]
			v, err := c.Eval(text)
			if err != nil {
				return "", err
			}
			if m, ok := v.(*algebra.MultiVector); ok && allPositive(m) && sameSet(target, alphaSet(m)) {
				return fmt.Sprintf("%s = %s", zet, strings.ReplaceAll(text, expr, b.symbol)), nil
			}
		}
	}

	return "", fmt.Errorf("Decompose: no decomposition of %s in terms of %s: %w", zet, base, ErrSyntax)
}

func allPositive(m *algebra.MultiVector) bool {
	for _, t := range m.Terms() {
		if t.Sign() != algebra.Positive {
			return false
		}
	}

	return true
}

func alphaSet(m *algebra.MultiVector) map[string]bool {
	out := make(map[string]bool, m.Len())
	for _, g := range m.IterAlphas() {
		out[g.Alpha.Index()] = true
	}

	return out
}

func setOf(labels []string) map[string]bool {
	out := make(map[string]bool, len(labels))
	for _, l := range labels {
		out[l] = true
	}

	return out
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}

	return true
}
