// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strings"
)

// Term is a signed alpha bound to one or more magnitudes.
//
// Invariant: alpha.sign == +1 and every component has sign +1; the net sign
// lives only in Term.sign. partials records differentiation applied to the
// term as a whole, which happens when it has more than one component.
type Term struct {
	alpha      Alpha
	components []Xi
	partials   []Alpha
	sign       Sign
}

// NewTerm binds alpha to components, folding every sign into the term.
// With no components the term gets the default magnitude ξ<alpha index>.
//
// Errors:
//   - ErrInvalidTerm if alpha is the zero value.
//   - ErrConfigMismatch if a component was built under another allowed order.
func NewTerm(alpha Alpha, components ...Xi) (Term, error) {
	if alpha.basis == nil {
		return Term{}, fmt.Errorf("NewTerm: zero alpha: %w", ErrInvalidTerm)
	}
	for _, x := range components {
		if x.basis != nil && !x.basis.Same(alpha.basis) {
			return Term{}, mismatch("NewTerm", alpha, x)
		}
	}

	return buildTerm(alpha, components, nil), nil
}

// MustTerm is NewTerm for literal input; it panics on error.
func MustTerm(alpha Alpha, components ...Xi) Term {
	t, err := NewTerm(alpha, components...)
	if err != nil {
		panic(err)
	}

	return t
}

// buildTerm normalises signs; components and partials are copied.
func buildTerm(alpha Alpha, components []Xi, partials []Alpha) Term {
	sign := alpha.sign
	alpha.sign = Positive

	var comps []Xi
	if len(components) == 0 {
		comps = []Xi{newXiOn(alpha.basis, alpha.index)}
	} else {
		comps = make([]Xi, len(components))
		for i, x := range components {
			if x.sign == Negative {
				sign = -sign
				x.sign = Positive
			}
			x.partials = append([]Alpha(nil), x.partials...)
			comps[i] = x
		}
	}

	return Term{
		alpha:      alpha,
		components: comps,
		partials:   sortedAlphas(partials),
		sign:       sign,
	}
}

// Term parses a term specification under c:
//
//	"12"             → α₁₂ with magnitude ξ₁₂
//	"-12"            → negated
//	"012[sin(kx)]"   → α₀₁₂ with the explicit magnitude "sin(kx)"
func (c *Config) Term(spec string) (Term, error) {
	b := c.Basis()
	index, sign := spec, Positive
	if rest, neg := strings.CutPrefix(index, "-"); neg {
		index, sign = rest, Negative
	}

	var comps []Xi
	if open := strings.IndexByte(index, '['); open >= 0 {
		if !strings.HasSuffix(index, "]") || open == len(index)-1 {
			return Term{}, fmt.Errorf("term %q: unterminated magnitude: %w", spec, ErrInvalidTerm)
		}
		value := index[open+1 : len(index)-1]
		if strings.TrimSpace(value) == "" {
			return Term{}, fmt.Errorf("term %q: empty magnitude: %w", spec, ErrInvalidTerm)
		}
		comps = []Xi{newXiOn(b, value)}
		index = index[:open]
	}

	alpha, err := newAlphaOn(b, index, sign)
	if err != nil {
		return Term{}, fmt.Errorf("term %q: %w", spec, err)
	}

	return buildTerm(alpha, comps, nil), nil
}

// MustTerm is Config.Term for literal input; it panics on error.
func (c *Config) MustTerm(spec string) Term {
	t, err := c.Term(spec)
	if err != nil {
		panic(err)
	}

	return t
}

// Alpha returns the term's alpha carrying the term's sign.
func (t Term) Alpha() Alpha {
	a := t.alpha
	a.sign = t.sign

	return a
}

// Index returns the unsigned alpha label.
func (t Term) Index() string { return t.alpha.index }

// Sign returns the net sign.
func (t Term) Sign() Sign { return t.sign }

// Grade returns the grade of the term's alpha.
func (t Term) Grade() int { return t.alpha.Grade() }

// Basis returns the allowed-order snapshot of the term's alpha.
func (t Term) Basis() *Basis { return t.alpha.basis }

// Components returns a copy of the magnitudes (all positive).
func (t Term) Components() []Xi { return append([]Xi(nil), t.components...) }

// ComponentPartials returns a copy of the term-level partials.
func (t Term) ComponentPartials() []Alpha { return append([]Alpha(nil), t.partials...) }

// WithComponentPartials returns t with the given term-level partials (sorted).
func (t Term) WithComponentPartials(partials ...Alpha) Term {
	return Term{alpha: t.alpha, components: t.Components(), partials: sortedAlphas(partials), sign: t.sign}
}

// Neg returns t with the opposite sign.
func (t Term) Neg() Term {
	return Term{alpha: t.alpha, components: t.Components(), partials: t.ComponentPartials(), sign: -t.sign}
}

// withAlpha rebinds t to a signed alpha, keeping its magnitudes.
func (t Term) withAlpha(a Alpha) Term {
	return buildTerm(a, t.components, t.partials)
}

// Project returns t and true when t has the given grade.
func (t Term) Project(grade int) (Term, bool) {
	return t, matchesGrade(t.alpha.index, grade)
}

// Equal compares allowed order, alpha, sign, sorted components and partials.
func (t Term) Equal(o Term) bool {
	if !t.alpha.basis.Same(o.alpha.basis) || !t.alpha.Equal(o.alpha) || t.sign != o.sign {
		return false
	}
	if compareXiLists(sortedXis(t.components), sortedXis(o.components)) != 0 {
		return false
	}

	return compareAlphaLists(t.partials, o.partials) == 0
}

// Compare orders by alpha position, then sorted components, then partials,
// then sign.
//
// Errors:
//   - ErrConfigMismatch for terms from different allowed orderings.
func (t Term) Compare(o Term) (int, error) {
	if !t.alpha.basis.Same(o.alpha.basis) {
		return 0, mismatch("Term.Compare", t, o)
	}

	return compareTerms(t, o), nil
}

func compareTerms(t, o Term) int {
	if c := compareAlpha(t.alpha, o.alpha); c != 0 {
		return c
	}
	if c := compareXiLists(sortedXis(t.components), sortedXis(o.components)); c != 0 {
		return c
	}
	if c := compareAlphaLists(t.partials, o.partials); c != 0 {
		return c
	}

	return sign3(int(t.sign) - int(o.sign))
}

// magnitudeKey identifies a term up to its sign.
func (t Term) magnitudeKey() string {
	var sb strings.Builder
	sb.WriteString(t.alpha.index)
	for _, x := range sortedXis(t.components) {
		sb.WriteString("/" + x.key())
	}
	for _, p := range t.partials {
		sb.WriteString("#" + p.sign.String() + p.index)
	}

	return sb.String()
}

// Kind implements Value.
func (Term) Kind() Kind { return KindTerm }

func (Term) isValue() {}

// String renders e.g. "(-α₁₂, ∂₀ξ₁.ξ₂)".
func (t Term) String() string {
	sgn := ""
	if t.sign == Negative {
		sgn = "-"
	}

	return "(" + sgn + t.alpha.String() + ", " + partialString(t.partials) + t.componentString(0) + ")"
}

// componentString joins the sorted components from position skip onward.
func (t Term) componentString(skip int) string {
	sorted := sortedXis(t.components)
	if skip > len(sorted) {
		skip = len(sorted)
	}
	strs := make([]string, 0, len(sorted)-skip)
	for _, x := range sorted[skip:] {
		strs = append(strs, x.String())
	}

	return strings.Join(powerNotation(strs), ".")
}

// reprNoAlpha renders "± [count]partials.components", used by MultiVector.
func (t Term) reprNoAlpha(skip, count int) string {
	sgn := "+"
	if t.sign == Negative {
		sgn = "-"
	}
	n := ""
	if count != 1 {
		n = fmt.Sprint(count)
	}

	return sgn + " " + n + partialString(t.partials) + t.componentString(skip)
}

// Tex renders the term as signed alpha times its magnitudes.
func (t Term) Tex() string {
	var sb strings.Builder
	if t.sign == Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(t.alpha.Tex())
	for _, p := range t.partials {
		sb.WriteString(`\partial_{` + p.index + "}")
	}
	for _, x := range sortedXis(t.components) {
		sb.WriteString(strings.TrimPrefix(x.Tex(), "+"))
	}

	return sb.String()
}
