// SPDX-License-Identifier: MIT
// Package algebra: the product engine for signed basis blades.

package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// Product returns the signed blade i·j under c.
//
// Implementation:
//   - Stage 1: if either operand is αp, drop one "p" from the concatenation.
//   - Stage 2: for each shared generator (in 0123 order) flip the sign once
//     per odd number of symbols between its two occurrences, multiply by
//     its metric sign, and remove both occurrences.
//   - Stage 3: nothing left → αp; otherwise look up the allowed label for
//     the surviving set and apply the parity of reordering into it.
//
// Results are memoised per (metric, allowed-order) signature.
//
// Errors:
//   - ErrConfigMismatch if i or j was built under another allowed order.
//
// Complexity: O(1); at most 8 symbols are involved.
func (c *Config) Product(i, j Alpha) (Alpha, error) {
	b, m, _ := c.state()
	if !i.basis.Same(b) || !j.basis.Same(b) {
		return Alpha{}, fmt.Errorf("Product(%v, %v) under %v: %w", i, j, c, ErrConfigMismatch)
	}

	key := productKey{signature: signature(b, m), left: i.index, right: j.index, ls: i.sign, rs: j.sign}
	if a, ok := c.cache.get(key); ok {
		a.basis = b

		return a, nil
	}

	index, sign, err := multiply(b, m, i.index, j.index)
	if err != nil {
		return Alpha{}, err
	}
	res := Alpha{index: index, sign: sign * i.sign * j.sign, basis: b}
	c.cache.put(key, res)

	return res, nil
}

// MustProduct is Product for blades known to share c's ordering.
func (c *Config) MustProduct(i, j Alpha) Alpha {
	a, err := c.Product(i, j)
	if err != nil {
		panic(err)
	}

	return a
}

// Inverse returns the blade a⁻¹ with a·a⁻¹ = αp.
func (c *Config) Inverse(a Alpha) (Alpha, error) {
	sq, err := c.Product(a, a)
	if err != nil {
		return Alpha{}, fmt.Errorf("Inverse: %w", err)
	}

	return Alpha{index: a.index, sign: sq.sign * a.sign, basis: a.basis}, nil
}

// multiply computes the unsigned-operand product of two labels.
func multiply(b *Basis, m Metric, left, right string) (string, Sign, error) {
	sign := Positive
	if left == Point {
		return right, sign, nil
	}
	if right == Point {
		return left, sign, nil
	}

	components := left + right
	for k := 0; k < len(generators); k++ {
		g := generators[k]
		if strings.IndexByte(left, g) < 0 || strings.IndexByte(right, g) < 0 {
			continue
		}
		first := strings.IndexByte(components, g)
		second := first + 1 + strings.IndexByte(components[first+1:], g)
		if (second-first-1)%2 == 1 {
			sign = -sign
		}
		sign *= m.Of(g)
		components = components[:first] + components[first+1:second] + components[second+1:]
	}

	if components == "" {
		return Point, sign, nil
	}
	target, ok := b.canonical(components)
	if !ok {
		// unreachable for a validated basis: all 16 subsets are present
		return "", 0, fmt.Errorf("product %s·%s: no label for %q: %w", left, right, components, ErrInvalidIndex)
	}
	if target == components {
		return target, sign, nil
	}

	return target, sign * reorderParity(target, components), nil
}

// reorderParity returns the sign of permuting current into target order.
//
// Repeatedly: if the first element's 1-based rank is even, flip; drop it;
// renumber the remaining ranks contiguously.
func reorderParity(target, current string) Sign {
	ranks := make([]int, len(current))
	for i := 0; i < len(current); i++ {
		ranks[i] = strings.IndexByte(target, current[i]) + 1
	}

	sign := Positive
	for len(ranks) > 1 {
		if ranks[0]%2 == 0 {
			sign = -sign
		}
		ranks = renumber(ranks[1:])
	}

	return sign
}

// renumber maps ranks onto 1..n preserving relative order.
func renumber(ranks []int) []int {
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)
	pos := make(map[int]int, len(sorted))
	for i, r := range sorted {
		pos[r] = i + 1
	}
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = pos[r]
	}

	return out
}
