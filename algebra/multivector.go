// SPDX-License-Identifier: MIT
// Package algebra: MultiVector, a formal sum of Terms.
//
// Terms are always kept sorted (Term order) and are not required to be
// unique. Arithmetic never simplifies implicitly: CancelTerms is the only
// simplification contract. A MultiVector owns its terms; every accessor and
// filter returns copies, never aliases.

package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// MultiVector is a sorted collection of terms sharing one allowed ordering.
type MultiVector struct {
	terms []Term
	basis *Basis
}

// NewMultiVector builds a sorted MultiVector from terms under cfg.
//
// Errors:
//   - ErrConfigMismatch if a term was built under a different allowed order.
func NewMultiVector(cfg *Config, terms ...Term) (*MultiVector, error) {
	b := cfg.Basis()
	for _, t := range terms {
		if !t.alpha.basis.Same(b) {
			return nil, mismatch("NewMultiVector", t, cfg)
		}
	}

	return newMultiVectorOn(b, terms), nil
}

// newMultiVectorOn sorts a private copy of terms.
func newMultiVectorOn(b *Basis, terms []Term) *MultiVector {
	m := &MultiVector{terms: append([]Term(nil), terms...), basis: b}
	m.sort()

	return m
}

// MultiVector parses whitespace and/or comma separated term specs under c,
// e.g. "1 2 3", "p, -23", "0[φ] 1 2 3". An empty spec is the empty sum.
func (c *Config) MultiVector(spec string) (*MultiVector, error) {
	return c.MultiVectorOf(splitTermSpecs(spec)...)
}

// MultiVectorOf builds a MultiVector from individual term specs.
func (c *Config) MultiVectorOf(specs ...string) (*MultiVector, error) {
	terms := make([]Term, 0, len(specs))
	for _, s := range specs {
		t, err := c.Term(s)
		if err != nil {
			return nil, fmt.Errorf("MultiVector: %w", err)
		}
		terms = append(terms, t)
	}

	return newMultiVectorOn(c.Basis(), terms), nil
}

// MustMultiVector is Config.MultiVector for literal input; it panics on error.
func (c *Config) MustMultiVector(spec string) *MultiVector {
	m, err := c.MultiVector(spec)
	if err != nil {
		panic(err)
	}

	return m
}

// splitTermSpecs splits on whitespace and commas outside of [...] magnitudes.
func splitTermSpecs(spec string) []string {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range spec {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0 && (r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()

	return out
}

func (m *MultiVector) sort() {
	sort.SliceStable(m.terms, func(i, j int) bool { return compareTerms(m.terms[i], m.terms[j]) < 0 })
}

// Len returns the number of terms, counting repeats.
func (m *MultiVector) Len() int { return len(m.terms) }

// Terms returns a copy of the sorted terms.
func (m *MultiVector) Terms() []Term { return append([]Term(nil), m.terms...) }

// Basis returns the allowed-order snapshot of m.
func (m *MultiVector) Basis() *Basis { return m.basis }

// Clone returns an independent copy.
func (m *MultiVector) Clone() *MultiVector {
	return &MultiVector{terms: m.Terms(), basis: m.basis}
}

// Add returns m + o (concatenation, no cancellation).
func (m *MultiVector) Add(o *MultiVector) (*MultiVector, error) {
	if !m.basis.Same(o.basis) {
		return nil, mismatch("MultiVector.Add", m.basis, o.basis)
	}
	terms := make([]Term, 0, len(m.terms)+len(o.terms))
	terms = append(terms, m.terms...)
	terms = append(terms, o.terms...)

	return newMultiVectorOn(m.basis, terms), nil
}

// AddTerm returns m + t.
func (m *MultiVector) AddTerm(t Term) (*MultiVector, error) {
	if !m.basis.Same(t.alpha.basis) {
		return nil, mismatch("MultiVector.AddTerm", m.basis, t)
	}

	return newMultiVectorOn(m.basis, append(m.Terms(), t)), nil
}

// Sub returns m + (-o).
func (m *MultiVector) Sub(o *MultiVector) (*MultiVector, error) {
	return m.Add(o.Neg())
}

// Neg negates every term.
func (m *MultiVector) Neg() *MultiVector {
	terms := make([]Term, len(m.terms))
	for i, t := range m.terms {
		terms[i] = t.Neg()
	}

	return newMultiVectorOn(m.basis, terms)
}

// Scale returns the integer multiple n·m by repeating terms; a negative n
// also negates, zero yields the empty sum.
func (m *MultiVector) Scale(n int) *MultiVector {
	src := m
	if n < 0 {
		n, src = -n, m.Neg()
	}
	terms := make([]Term, 0, len(m.terms)*n)
	for i := 0; i < n; i++ {
		terms = append(terms, src.terms...)
	}

	return newMultiVectorOn(m.basis, terms)
}

// Contains reports whether an equal term is present.
func (m *MultiVector) Contains(t Term) bool {
	for _, x := range m.terms {
		if x.Equal(t) {
			return true
		}
	}

	return false
}

// ContainsAlpha reports whether some term's (positive) alpha equals a.
func (m *MultiVector) ContainsAlpha(a Alpha) bool {
	for _, x := range m.terms {
		if x.alpha.Equal(a) && x.alpha.basis.Same(a.basis) {
			return true
		}
	}

	return false
}

// Get returns a new MultiVector holding only the terms on alpha a.
func (m *MultiVector) Get(a Alpha) *MultiVector {
	var terms []Term
	for _, x := range m.terms {
		if x.alpha.Equal(a) {
			terms = append(terms, x)
		}
	}

	return newMultiVectorOn(m.basis, terms)
}

// Delete removes, in place, every term on alpha a.
func (m *MultiVector) Delete(a Alpha) {
	kept := m.terms[:0]
	for _, x := range m.terms {
		if !x.alpha.Equal(a) {
			kept = append(kept, x)
		}
	}
	m.terms = kept
}

// Project returns a new MultiVector with only the terms of the given grade.
// The result may be empty but is never nil.
func (m *MultiVector) Project(grade int) *MultiVector {
	var terms []Term
	for _, x := range m.terms {
		if matchesGrade(x.alpha.index, grade) {
			terms = append(terms, x)
		}
	}

	return newMultiVectorOn(m.basis, terms)
}

// CancelTerms removes, in place, every pair of terms that are exact
// negatives of each other and returns m. Applying it twice is a no-op.
//
// Implementation:
//   - Stage 1: walk the sorted terms; for each term look for a pending
//     term with the same alpha and magnitudes but opposite sign.
//   - Stage 2: if one is pending, annihilate the pair; else park the term.
//   - Stage 3: collect the survivors and re-sort.
//
// Complexity: O(n·log n).
func (m *MultiVector) CancelTerms() *MultiVector {
	type bucket struct {
		sign  Sign
		terms []Term
	}
	pending := make(map[string]*bucket, len(m.terms))
	order := make([]string, 0, len(m.terms))

	for _, t := range m.terms {
		key := t.magnitudeKey()
		b, ok := pending[key]
		if !ok {
			b = &bucket{sign: t.sign}
			pending[key] = b
			order = append(order, key)
		}
		switch {
		case len(b.terms) == 0:
			b.sign = t.sign
			b.terms = append(b.terms, t)
		case b.sign == t.sign:
			b.terms = append(b.terms, t)
		default:
			b.terms = b.terms[1:] // annihilate with the oldest opposite
		}
	}

	survivors := make([]Term, 0, len(m.terms))
	for _, key := range order {
		survivors = append(survivors, pending[key].terms...)
	}
	m.terms = survivors
	m.sort()

	return m
}

// AlphaTerms groups the terms sharing one alpha.
type AlphaTerms struct {
	Alpha Alpha
	Terms []Term
}

// IterAlphas groups terms by alpha in allowed order.
func (m *MultiVector) IterAlphas() []AlphaTerms {
	groups := make(map[string][]Term)
	for _, t := range m.terms {
		groups[t.alpha.index] = append(groups[t.alpha.index], t)
	}

	var out []AlphaTerms
	for _, label := range m.basis.labels {
		if terms, ok := groups[label]; ok {
			out = append(out, AlphaTerms{Alpha: Alpha{index: label, sign: Positive, basis: m.basis}, Terms: terms})
		}
	}

	return out
}

// Equal compares term multisets under the same allowed order.
func (m *MultiVector) Equal(o *MultiVector) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.basis.Same(o.basis) || len(m.terms) != len(o.terms) {
		return false
	}
	for i := range m.terms {
		if !m.terms[i].Equal(o.terms[i]) {
			return false
		}
	}

	return true
}

// Kind implements Value.
func (*MultiVector) Kind() Kind { return KindMultiVector }

func (*MultiVector) isValue() {}

// String renders one line per alpha, repeated terms counted:
//
//	{
//	  α₁   ( ξ₁ - ∂₀ξ₀₁ )
//	}
func (m *MultiVector) String() string {
	lines := []string{"{"}
	for _, g := range m.runs() {
		var parts []string
		for _, c := range countTerms(g) {
			parts = append(parts, c.term.reprNoAlpha(0, c.count))
		}
		xis := strings.TrimPrefix(strings.Join(parts, " "), "+ ")
		lines = append(lines, fmt.Sprintf("  %-5s( %s )", g[0].alpha.String(), xis))
	}
	lines = append(lines, "}")

	return strings.Join(lines, "\n")
}

// FactoredString groups each alpha's terms by their leading magnitude.
func (m *MultiVector) FactoredString() string {
	lines := []string{"{"}
	for _, g := range m.runs() {
		lines = append(lines, fmt.Sprintf("  %-5s", g[0].alpha.String()+":"))
		var (
			factor Xi
			line   string
			rest   []string
		)
		flush := func() {
			if line == "" {
				return
			}
			xis := strings.TrimPrefix(strings.Join(rest, " "), "+ ")
			if xis != "" {
				line += ".(" + xis + ")"
			}
			lines = append(lines, line)
		}
		for i, t := range g {
			lead := sortedXis(t.components)[0]
			if i == 0 || !lead.Equal(factor) {
				flush()
				factor, rest = lead, nil
				line = fmt.Sprintf("      %-2s", lead.String())
			}
			more := t.reprNoAlpha(1, 1)
			if strings.TrimLeft(more, "+- ") == "" {
				more = more[:1] + " 1"
			}
			rest = append(rest, more)
		}
		flush()
		lines = append(lines, "")
	}
	lines = append(lines, "}")

	return strings.Join(lines, "\n")
}

// Tex renders the sum as a LaTeX fragment.
func (m *MultiVector) Tex() string {
	parts := make([]string, len(m.terms))
	for i, t := range m.terms {
		tex := t.Tex()
		if !strings.HasPrefix(tex, "-") {
			tex = "+" + tex
		}
		parts[i] = tex
	}

	return `\{ ` + strings.TrimPrefix(strings.Join(parts, " "), "+") + ` \}`
}

// runs splits the sorted terms into consecutive same-alpha runs.
func (m *MultiVector) runs() [][]Term {
	var out [][]Term
	for i, t := range m.terms {
		if i == 0 || t.alpha.index != m.terms[i-1].alpha.index {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], t)
	}

	return out
}

type counted struct {
	term  Term
	count int
}

// countTerms merges equal terms, keeping first-seen order.
func countTerms(terms []Term) []counted {
	var out []counted
	for _, t := range terms {
		found := false
		for i := range out {
			if out[i].term.Equal(t) {
				out[i].count++
				found = true

				break
			}
		}
		if !found {
			out = append(out, counted{term: t, count: 1})
		}
	}

	return out
}
