// SPDX-License-Identifier: MIT
// Package algebra: full product and division, dispatched on operand kinds.
//
// Every binary operator is a nested type switch over the concrete pair of
// operand kinds. A pair without an arm fails with ErrUnsupportedOperands;
// nothing is coerced.

package algebra

import "fmt"

// Full returns the full product a·b.
//
// Supported pairs:
//
//	Alpha×Alpha             → Alpha
//	Alpha×Term, Term×Alpha  → Term (magnitudes kept)
//	Term×Term               → Term (magnitudes and partials concatenated, left first)
//	{Alpha,Term,MV}×MV      → MultiVector (Cartesian expansion, no cancellation)
//	MV×{Alpha,Term}         → MultiVector
//	Differential×MV         → Differential.Apply with the configured division
//	MV×Differential         → Differential.Apply with DivisionBy
//
// Errors:
//   - ErrUnsupportedOperands for any other pair.
//   - ErrConfigMismatch if an operand disagrees with c's allowed order.
func (c *Config) Full(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Alpha:
		switch y := b.(type) {
		case Alpha:
			return c.Product(x, y)
		case Term:
			return c.fullAlphaTerm(x, y)
		case *MultiVector:
			return c.expand(y, func(t Term) (Term, error) { return c.fullAlphaTerm(x, t) })
		}
	case Term:
		switch y := b.(type) {
		case Alpha:
			return c.fullTermAlpha(x, y)
		case Term:
			return c.fullTermTerm(x, y)
		case *MultiVector:
			return c.expand(y, func(t Term) (Term, error) { return c.fullTermTerm(x, t) })
		}
	case *MultiVector:
		switch y := b.(type) {
		case Alpha:
			return c.expand(x, func(t Term) (Term, error) { return c.fullTermAlpha(t, y) })
		case Term:
			return c.expand(x, func(t Term) (Term, error) { return c.fullTermTerm(t, y) })
		case *MultiVector:
			return c.fullMultiVectors(x, y)
		case *Differential:
			return y.Apply(c, x, DivisionBy)
		}
	case *Differential:
		if y, ok := b.(*MultiVector); ok {
			return x.Apply(c, y, 0)
		}
	}

	return nil, unsupported("Full", a, b)
}

// MustFull is Full for operands known to be compatible.
func (c *Config) MustFull(a, b Value) Value {
	v, err := c.Full(a, b)
	if err != nil {
		panic(err)
	}

	return v
}

func (c *Config) fullAlphaTerm(a Alpha, t Term) (Term, error) {
	alpha, err := c.Product(a, t.Alpha())
	if err != nil {
		return Term{}, err
	}

	return t.withAlpha(alpha), nil
}

func (c *Config) fullTermAlpha(t Term, a Alpha) (Term, error) {
	alpha, err := c.Product(t.Alpha(), a)
	if err != nil {
		return Term{}, err
	}

	return t.withAlpha(alpha), nil
}

// fullTermTerm does not re-resolve partials already carried by either side.
func (c *Config) fullTermTerm(t, u Term) (Term, error) {
	alpha, err := c.Product(t.Alpha(), u.Alpha())
	if err != nil {
		return Term{}, err
	}
	comps := append(t.Components(), u.components...)
	partials := append(t.ComponentPartials(), u.partials...)

	return buildTerm(alpha, comps, partials), nil
}

// expand maps f over m's terms.
func (c *Config) expand(m *MultiVector, f func(Term) (Term, error)) (*MultiVector, error) {
	b := c.Basis()
	if !m.basis.Same(b) {
		return nil, mismatch("Full", m.basis, c)
	}
	out := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		r, err := f(t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return newMultiVectorOn(b, out), nil
}

// fullMultiVectors forms every left×right term product.
//
// Complexity: O(|m|·|n|).
func (c *Config) fullMultiVectors(m, n *MultiVector) (*MultiVector, error) {
	b := c.Basis()
	if !m.basis.Same(b) || !n.basis.Same(b) {
		return nil, mismatch("Full", m.basis, n.basis)
	}
	out := make([]Term, 0, len(m.terms)*len(n.terms))
	for _, t := range m.terms {
		for _, u := range n.terms {
			r, err := c.fullTermTerm(t, u)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}

	return newMultiVectorOn(b, out), nil
}

// DivBy returns a / b = a·b⁻¹ for Alpha/Alpha and Term/Alpha.
//
// Errors:
//   - ErrDivisionUndefined (also matching ErrUnsupportedOperands) otherwise.
func (c *Config) DivBy(a, b Value) (Value, error) {
	y, ok := b.(Alpha)
	if !ok {
		return nil, undefinedDivision("DivBy", a, b)
	}
	inv, err := c.Inverse(y)
	if err != nil {
		return nil, fmt.Errorf("DivBy: %w", err)
	}
	switch x := a.(type) {
	case Alpha:
		return c.Product(x, inv)
	case Term:
		return c.fullTermAlpha(x, inv)
	}

	return nil, undefinedDivision("DivBy", a, b)
}

// DivInto returns a \ b = a⁻¹·b for Alpha\Alpha and Alpha\Term.
//
// Errors:
//   - ErrDivisionUndefined (also matching ErrUnsupportedOperands) otherwise.
func (c *Config) DivInto(a, b Value) (Value, error) {
	x, ok := a.(Alpha)
	if !ok {
		return nil, undefinedDivision("DivInto", a, b)
	}
	inv, err := c.Inverse(x)
	if err != nil {
		return nil, fmt.Errorf("DivInto: %w", err)
	}
	switch y := b.(type) {
	case Alpha:
		return c.Product(inv, y)
	case Term:
		return c.fullAlphaTerm(inv, y)
	}

	return nil, undefinedDivision("DivInto", a, b)
}

// Div divides under the given convention; zero selects c's own.
func (c *Config) Div(a, b Value, d Division) (Value, error) {
	if d == 0 {
		d = c.Division()
	}
	switch d {
	case DivisionBy:
		return c.DivBy(a, b)
	case DivisionInto:
		return c.DivInto(a, b)
	}

	return nil, fmt.Errorf("Div: %v: %w", d, ErrInvalidDivision)
}
