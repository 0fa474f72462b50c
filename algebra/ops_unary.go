// SPDX-License-Identifier: MIT
// Package algebra: projection, conjugations, commutator and the
// MultiVector-only dual/diamond operators.

package algebra

import "fmt"

// Project keeps only the parts of v with the given grade (αp is the only
// grade-0 blade). A non-matching Alpha or Term yields an empty MultiVector.
//
// Errors:
//   - ErrInvalidGrade for grade outside [0,4].
//   - ErrUnsupportedOperands for a Differential.
func (c *Config) Project(v Value, grade int) (Value, error) {
	if grade < 0 || grade > 4 {
		return nil, fmt.Errorf("Project(%d): %w", grade, ErrInvalidGrade)
	}
	switch x := v.(type) {
	case Alpha:
		if matchesGrade(x.index, grade) {
			return x, nil
		}
	case Term:
		if matchesGrade(x.alpha.index, grade) {
			return x, nil
		}
	case *MultiVector:
		return x.Project(grade), nil
	default:
		return nil, unsupported("Project", v)
	}

	return newMultiVectorOn(c.Basis(), nil), nil
}

// reversed reports whether reversion flips a label: grades 2 and 3 need an
// odd number of swaps.
func reversed(index string) bool {
	g := grade(index)
	return g == 2 || g == 3
}

// Rev returns the reversion of v.
//
// Errors:
//   - ErrUnsupportedOperands for a Differential or nil.
func Rev(v Value) (Value, error) {
	switch x := v.(type) {
	case Alpha:
		if reversed(x.index) {
			return x.Neg(), nil
		}
		return x, nil
	case Term:
		if reversed(x.alpha.index) {
			return x.Neg(), nil
		}
		return x, nil
	case *MultiVector:
		terms := make([]Term, len(x.terms))
		for i, t := range x.terms {
			if reversed(t.alpha.index) {
				t = t.Neg()
			}
			terms[i] = t
		}
		return newMultiVectorOn(x.basis, terms), nil
	}

	return nil, unsupported("Rev", v)
}

// negativeSquares returns the labels whose square is -αp under c.
func (c *Config) negativeSquares() (map[string]bool, error) {
	b := c.Basis()
	out := make(map[string]bool, BasisSize)
	for _, l := range b.labels {
		a := Alpha{index: l, sign: Positive, basis: b}
		sq, err := c.Product(a, a)
		if err != nil {
			return nil, err
		}
		if sq.sign == Negative {
			out[l] = true
		}
	}

	return out, nil
}

// Hermitian returns the Hermitian conjugate (†) of v: every blade that
// squares to -αp has its sign flipped.
//
// Errors:
//   - ErrUnsupportedOperands for a Differential.
//   - ErrConfigMismatch for values of another allowed order.
func (c *Config) Hermitian(v Value) (Value, error) {
	if KindOf(v) == KindDifferential || KindOf(v) == KindInvalid {
		return nil, unsupported("Hermitian", v)
	}
	neg, err := c.negativeSquares()
	if err != nil {
		return nil, fmt.Errorf("Hermitian: %w", err)
	}

	switch x := v.(type) {
	case Alpha:
		if !x.basis.Same(c.Basis()) {
			return nil, mismatch("Hermitian", x, c)
		}
		if neg[x.index] {
			return x.Neg(), nil
		}
		return x, nil
	case Term:
		if !x.alpha.basis.Same(c.Basis()) {
			return nil, mismatch("Hermitian", x, c)
		}
		if neg[x.alpha.index] {
			return x.Neg(), nil
		}
		return x, nil
	}

	m := v.(*MultiVector)
	if !m.basis.Same(c.Basis()) {
		return nil, mismatch("Hermitian", m.basis, c)
	}
	terms := make([]Term, len(m.terms))
	for i, t := range m.terms {
		if neg[t.alpha.index] {
			t = t.Neg()
		}
		terms[i] = t
	}

	return newMultiVectorOn(m.basis, terms), nil
}

// Dagger is an alias for Hermitian.
func (c *Config) Dagger(v Value) (Value, error) { return c.Hermitian(v) }

// Commutator returns the group commutator [a, b] = a·b·a⁻¹·b⁻¹. For two
// blades the result is always ±αp.
//
// Errors:
//   - ErrUnsupportedOperands unless both operands are Alphas.
func (c *Config) Commutator(a, b Value) (Value, error) {
	x, okx := a.(Alpha)
	y, oky := b.(Alpha)
	if !okx || !oky {
		return nil, unsupported("Commutator", a, b)
	}

	ix, err := c.Inverse(x)
	if err != nil {
		return nil, fmt.Errorf("Commutator: %w", err)
	}
	iy, err := c.Inverse(y)
	if err != nil {
		return nil, fmt.Errorf("Commutator: %w", err)
	}

	res, err := c.Product(x, y)
	if err != nil {
		return nil, fmt.Errorf("Commutator: %w", err)
	}
	if res, err = c.Product(res, ix); err != nil {
		return nil, fmt.Errorf("Commutator: %w", err)
	}
	if res, err = c.Product(res, iy); err != nil {
		return nil, fmt.Errorf("Commutator: %w", err)
	}

	return res, nil
}

// Dual returns -αq·m where αq is the quadrivector of c.
func (c *Config) Dual(m *MultiVector) (*MultiVector, error) {
	b := c.Basis()
	q := Alpha{index: b.q, sign: Negative, basis: b}

	return c.expand(m, func(t Term) (Term, error) { return c.fullAlphaTerm(q, t) })
}

// Diamond returns 2<m>₀ - m with opposite pairs cancelled: every term with
// a direction is negated.
func (c *Config) Diamond(m *MultiVector) (*MultiVector, error) {
	if !m.basis.Same(c.Basis()) {
		return nil, mismatch("Diamond", m.basis, c)
	}
	res, err := m.Project(0).Scale(2).Sub(m)
	if err != nil {
		return nil, fmt.Errorf("Diamond: %w", err)
	}

	return res.CancelTerms(), nil
}

// MMBar returns m·dual(m), cancelled unless noCancel is set.
func (c *Config) MMBar(m *MultiVector, noCancel bool) (*MultiVector, error) {
	d, err := c.Dual(m)
	if err != nil {
		return nil, fmt.Errorf("MMBar: %w", err)
	}
	res, err := c.fullMultiVectors(m, d)
	if err != nil {
		return nil, fmt.Errorf("MMBar: %w", err)
	}
	if !noCancel {
		res.CancelTerms()
	}

	return res, nil
}

// Negate returns -v for Alpha, Term and MultiVector.
func Negate(v Value) (Value, error) {
	switch x := v.(type) {
	case Alpha:
		return x.Neg(), nil
	case Term:
		return x.Neg(), nil
	case *MultiVector:
		return x.Neg(), nil
	}

	return nil, unsupported("Negate", v)
}

// Add forms the sum a + b as a MultiVector. Alphas are promoted to terms
// with their default magnitude.
//
// Errors:
//   - ErrUnsupportedOperands if either side is a Differential.
//   - ErrConfigMismatch if the sides disagree with c's allowed order.
func (c *Config) Add(a, b Value) (Value, error) {
	left, okl := c.asTerms(a)
	right, okr := c.asTerms(b)
	if !okl || !okr {
		return nil, unsupported("Add", a, b)
	}
	base := c.Basis()
	all := append(left, right...)
	for _, t := range all {
		if !t.alpha.basis.Same(base) {
			return nil, mismatch("Add", t, c)
		}
	}
	if m, ok := a.(*MultiVector); ok && !m.basis.Same(base) {
		return nil, mismatch("Add", m.basis, c)
	}
	if m, ok := b.(*MultiVector); ok && !m.basis.Same(base) {
		return nil, mismatch("Add", m.basis, c)
	}

	return newMultiVectorOn(base, all), nil
}

func (c *Config) asTerms(v Value) ([]Term, bool) {
	switch x := v.(type) {
	case Alpha:
		if x.basis == nil {
			return nil, false
		}
		return []Term{buildTerm(x, nil, nil)}, true
	case Term:
		return []Term{x}, true
	case *MultiVector:
		if x == nil {
			return nil, false
		}
		return x.Terms(), true
	}

	return nil, false
}
