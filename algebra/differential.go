// SPDX-License-Identifier: MIT
// Package algebra: Differential, a symbolic "with respect to" operator.

package algebra

import (
	"fmt"
	"strings"
)

// Differential differentiates each term of a MultiVector with respect to
// a list of blades. The inverse signs used for rendering are fixed when the
// operator is built.
type Differential struct {
	wrt   []Alpha
	inv   []Sign
	basis *Basis
}

// NewDifferential builds an operator from allowed labels under cfg.
//
// Errors:
//   - ErrEmptyDifferential if no labels are given.
//   - ErrInvalidIndex for a label outside the allowed set.
func NewDifferential(cfg *Config, labels ...string) (*Differential, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("NewDifferential: %w", ErrEmptyDifferential)
	}
	b := cfg.Basis()
	wrt := make([]Alpha, len(labels))
	for i, l := range labels {
		a, err := newAlphaOn(b, l, Positive)
		if err != nil {
			return nil, fmt.Errorf("NewDifferential: %w", err)
		}
		wrt[i] = a
	}

	return newDifferentialOn(cfg, b, wrt)
}

// DifferentialOf takes the alphas of mv's terms, in order, as the operator's
// blades.
func DifferentialOf(cfg *Config, mv *MultiVector) (*Differential, error) {
	if !mv.basis.Same(cfg.Basis()) {
		return nil, mismatch("DifferentialOf", mv.basis, cfg)
	}
	if mv.Len() == 0 {
		return nil, fmt.Errorf("DifferentialOf: %w", ErrEmptyDifferential)
	}
	wrt := make([]Alpha, mv.Len())
	for i, t := range mv.terms {
		wrt[i] = t.Alpha()
	}

	return newDifferentialOn(cfg, mv.basis, wrt)
}

func newDifferentialOn(cfg *Config, b *Basis, wrt []Alpha) (*Differential, error) {
	d := &Differential{wrt: wrt, inv: make([]Sign, len(wrt)), basis: b}
	for i, a := range wrt {
		inv, err := cfg.Inverse(a)
		if err != nil {
			return nil, fmt.Errorf("NewDifferential: %w", err)
		}
		d.inv[i] = inv.sign
	}

	return d, nil
}

// Wrt returns a copy of the blades differentiated against.
func (d *Differential) Wrt() []Alpha { return append([]Alpha(nil), d.wrt...) }

// Basis returns the allowed-order snapshot of d.
func (d *Differential) Basis() *Basis { return d.basis }

// Apply differentiates mv: one output term per (term, wrt blade) pair. The
// new alpha is alpha/wrt under DivisionBy and wrt\alpha under DivisionInto;
// a zero div selects cfg's configured convention. The wrt blade is added to
// the single magnitude's partials, or to the term-level partials when the
// term has several magnitudes.
//
// Errors:
//   - ErrConfigMismatch if d or mv disagree with cfg's allowed order.
//   - ErrInvalidDivision for an unknown convention.
func (d *Differential) Apply(cfg *Config, mv *MultiVector, div Division) (*MultiVector, error) {
	b := cfg.Basis()
	if !d.basis.Same(b) || !mv.basis.Same(b) {
		return nil, mismatch("Differential.Apply", d.basis, mv.basis)
	}
	if div == 0 {
		div = cfg.Division()
	}
	if !div.Valid() {
		return nil, fmt.Errorf("Differential.Apply: %v: %w", div, ErrInvalidDivision)
	}

	out := make([]Term, 0, mv.Len()*len(d.wrt))
	for _, t := range mv.terms {
		for _, w := range d.wrt {
			pt, err := cfg.partial(t, w, div)
			if err != nil {
				return nil, fmt.Errorf("Differential.Apply: %w", err)
			}
			out = append(out, pt)
		}
	}

	return newMultiVectorOn(b, out), nil
}

// partial differentiates one term with respect to w.
func (c *Config) partial(t Term, w Alpha, div Division) (Term, error) {
	inv, err := c.Inverse(w)
	if err != nil {
		return Term{}, err
	}
	var alpha Alpha
	if div == DivisionBy {
		alpha, err = c.Product(t.Alpha(), inv)
	} else {
		alpha, err = c.Product(inv, t.Alpha())
	}
	if err != nil {
		return Term{}, err
	}

	res := t.withAlpha(alpha)
	if len(res.components) == 1 {
		x := res.components[0]
		x.partials = sortedAlphas(append([]Alpha{w}, x.partials...))
		res.components[0] = x
	} else {
		res.partials = sortedAlphas(append([]Alpha{w}, res.partials...))
	}

	return res, nil
}

// Equal compares the operator blades.
func (d *Differential) Equal(o *Differential) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.basis.Same(o.basis) && compareAlphaLists(d.wrt, o.wrt) == 0
}

// Kind implements Value.
func (*Differential) Kind() Kind { return KindDifferential }

func (*Differential) isValue() {}

// String renders e.g. "{ α₀∂₀ -α₁∂₁ -α₂∂₂ -α₃∂₃ }".
func (d *Differential) String() string {
	parts := make([]string, len(d.wrt))
	for i, a := range d.wrt {
		inv := Alpha{index: a.index, sign: d.inv[i], basis: a.basis}
		sub, _ := subscript(a.index)
		parts[i] = inv.String() + "∂" + sub
	}

	return "{ " + strings.Join(parts, " ") + " }"
}

// Tex renders the operator as a LaTeX fragment.
func (d *Differential) Tex() string {
	parts := make([]string, len(d.wrt))
	for i, a := range d.wrt {
		sgn := ""
		if d.inv[i] == Negative {
			sgn = "-"
		}
		parts[i] = fmt.Sprintf(`%s\alpha_{%s}\partial_{%s}`, sgn, a.index, a.index)
	}

	return `\{ ` + strings.Join(parts, " ") + ` \}`
}
