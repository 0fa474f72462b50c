// SPDX-License-Identifier: MIT

package algebra

import (
	"sort"
	"strings"
)

// Xi is a symbolic magnitude: an opaque label (frequently the index of the
// alpha it belongs to) with a sign and the alphas it has been differentiated
// with respect to. Partials are kept sorted so that ∂₁∂₂ξ == ∂₂∂₁ξ.
type Xi struct {
	value    string
	sign     Sign
	partials []Alpha
	tex      string
	basis    *Basis
}

// NewXi builds a magnitude labelled value under cfg. A leading '-' flips the sign.
func NewXi(cfg *Config, value string) Xi {
	return newXiOn(cfg.Basis(), value)
}

func newXiOn(b *Basis, value string) Xi {
	x := Xi{value: value, sign: Positive, basis: b}
	if rest, neg := strings.CutPrefix(value, "-"); neg {
		x.value, x.sign = rest, Negative
	}

	return x
}

// Value returns the label.
func (x Xi) Value() string { return x.value }

// Sign returns the sign of x.
func (x Xi) Sign() Sign { return x.sign }

// Partials returns a copy of the (sorted) differentiation history.
func (x Xi) Partials() []Alpha { return append([]Alpha(nil), x.partials...) }

// WithPartials returns x carrying exactly the given partials (sorted).
func (x Xi) WithPartials(partials ...Alpha) Xi {
	x.partials = sortedAlphas(partials)
	return x
}

// WithTex returns x with an explicit LaTeX rendering.
func (x Xi) WithTex(tex string) Xi {
	x.tex = tex
	return x
}

// Neg returns x with the opposite sign.
func (x Xi) Neg() Xi {
	x.sign = -x.sign
	x.partials = append([]Alpha(nil), x.partials...)

	return x
}

// Equal compares value, partials and sign.
func (x Xi) Equal(o Xi) bool {
	if x.value != o.value || x.sign != o.sign || len(x.partials) != len(o.partials) {
		return false
	}
	for i := range x.partials {
		if !x.partials[i].Equal(o.partials[i]) {
			return false
		}
	}

	return true
}

// Compare orders by allowed position of the value when both values are
// allowed labels (lexically otherwise), then by partials, then by sign.
func (x Xi) Compare(o Xi) int {
	if x.value != o.value {
		if x.basis.Has(x.value) && x.basis.Has(o.value) {
			return sign3(x.basis.Position(x.value) - x.basis.Position(o.value))
		}

		return strings.Compare(x.value, o.value)
	}
	if c := compareAlphaLists(x.partials, o.partials); c != 0 {
		return c
	}

	return sign3(int(x.sign) - int(o.sign))
}

// String renders e.g. "-∂₁ξ₂₃"; non-index values are printed verbatim.
func (x Xi) String() string {
	var sb strings.Builder
	if x.sign == Negative {
		sb.WriteByte('-')
	}
	for i := len(x.partials) - 1; i >= 0; i-- {
		sub, _ := subscript(x.partials[i].index)
		sb.WriteString("∂" + sub)
	}
	if sub, ok := subscript(x.value); ok && x.value != "" {
		sb.WriteString("ξ" + sub)
	} else {
		sb.WriteString(x.value)
	}

	return sb.String()
}

// Tex renders the magnitude with an explicit sign.
func (x Xi) Tex() string {
	var sb strings.Builder
	if x.sign == Negative {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for i := len(x.partials) - 1; i >= 0; i-- {
		sb.WriteString(`\partial_{` + x.partials[i].index + "}")
	}
	switch {
	case x.tex != "":
		sb.WriteString(x.tex)
	case x.basis.Has(x.value):
		sb.WriteString(`\xi_{` + x.value + "}")
	default:
		sb.WriteString(x.value)
	}

	return sb.String()
}

// key is a canonical text form used for hashing in cancellation.
func (x Xi) key() string {
	var sb strings.Builder
	sb.WriteString(x.value)
	for _, p := range x.partials {
		sb.WriteString("|" + p.sign.String() + p.index)
	}

	return sb.String()
}

func sortedAlphas(in []Alpha) []Alpha {
	out := append([]Alpha(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return compareAlpha(out[i], out[j]) < 0 })

	return out
}

func sortedXis(in []Xi) []Xi {
	out := append([]Xi(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

func compareXiLists(a, b []Xi) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}

	return sign3(len(a) - len(b))
}
