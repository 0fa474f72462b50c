// SPDX-License-Identifier: MIT
// Package cayley: binary operators over alphas.

package cayley

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arcalc/algebra"
)

// Operator combines two blades of cfg into one.
type Operator func(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error)

// Full is the blade product a·b.
func Full(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error) {
	return cfg.Product(a, b)
}

// DivBy is a·b⁻¹.
func DivBy(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error) {
	return asAlpha(cfg.DivBy(a, b))
}

// DivInto is a⁻¹·b.
func DivInto(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error) {
	return asAlpha(cfg.DivInto(a, b))
}

// Commutator is a·b·a⁻¹·b⁻¹, always ±αp.
func Commutator(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error) {
	return asAlpha(cfg.Commutator(a, b))
}

func asAlpha(v algebra.Value, err error) (algebra.Alpha, error) {
	if err != nil {
		return algebra.Alpha{}, err
	}
	a, ok := v.(algebra.Alpha)
	if !ok {
		return algebra.Alpha{}, fmt.Errorf("got %s: %w", algebra.KindOf(v), ErrNotAlpha)
	}

	return a, nil
}

var operators = map[string]Operator{
	"full":       Full,
	"by":         DivBy,
	"into":       DivInto,
	"commutator": Commutator,
}

// OperatorNamed returns the predefined operator called name.
func OperatorNamed(name string) (Operator, error) {
	op, ok := operators[name]
	if !ok {
		return nil, fmt.Errorf("%q (want one of %v): %w", name, OperatorNames(), ErrUnknownOperator)
	}

	return op, nil
}

// OperatorNames lists the predefined operator names, sorted.
func OperatorNames() []string {
	out := make([]string, 0, len(operators))
	for k := range operators {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
