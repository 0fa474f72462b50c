// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strings"
)

// Alpha is a signed basis blade. The zero value is invalid; build alphas
// with NewAlpha, Config.Alpha or as the result of an operator.
type Alpha struct {
	index string // allowed label, never prefixed by '-'
	sign  Sign
	basis *Basis
}

// NewAlpha builds an alpha under cfg. A leading '-' on index flips sign.
//
// Errors:
//   - ErrInvalidSign if sign is not ±1.
//   - ErrInvalidIndex if index is not an allowed label.
func NewAlpha(cfg *Config, index string, sign Sign) (Alpha, error) {
	return newAlphaOn(cfg.Basis(), index, sign)
}

// Alpha parses a signed label such as "12" or "-023" under c.
func (c *Config) Alpha(index string) (Alpha, error) {
	return newAlphaOn(c.Basis(), index, Positive)
}

// MustAlpha is Alpha for literal input; it panics on error.
func (c *Config) MustAlpha(index string) Alpha {
	a, err := c.Alpha(index)
	if err != nil {
		panic(err)
	}

	return a
}

func newAlphaOn(b *Basis, index string, sign Sign) (Alpha, error) {
	if b == nil {
		return Alpha{}, fmt.Errorf("alpha %q: nil basis: %w", index, ErrConfigMismatch)
	}
	if !sign.Valid() {
		return Alpha{}, fmt.Errorf("alpha %q: sign %d: %w", index, sign, ErrInvalidSign)
	}
	if rest, neg := strings.CutPrefix(index, "-"); neg {
		index, sign = rest, -sign
	}
	if !b.Has(index) {
		return Alpha{}, fmt.Errorf("alpha %q not in {%v}: %w", index, b, ErrInvalidIndex)
	}

	return Alpha{index: index, sign: sign, basis: b}, nil
}

// Index returns the unsigned label.
func (a Alpha) Index() string { return a.index }

// Sign returns the orientation of a.
func (a Alpha) Sign() Sign { return a.sign }

// Basis returns the allowed-order snapshot a was built under.
func (a Alpha) Basis() *Basis { return a.basis }

// Grade is the number of generators in the label; αp has grade 0.
func (a Alpha) Grade() int { return grade(a.index) }

// Neg returns a with the opposite sign.
func (a Alpha) Neg() Alpha {
	a.sign = -a.sign
	return a
}

// Abs returns a with a positive sign.
func (a Alpha) Abs() Alpha {
	a.sign = Positive
	return a
}

// Project returns a and true when a has the given grade.
func (a Alpha) Project(grade int) (Alpha, bool) {
	return a, matchesGrade(a.index, grade)
}

// Equal is structural: same label, same sign.
func (a Alpha) Equal(o Alpha) bool {
	return a.index == o.index && a.sign == o.sign
}

// Compare orders by position in the allowed set, then by sign (- before +).
//
// Errors:
//   - ErrConfigMismatch if a and o come from different allowed orderings.
func (a Alpha) Compare(o Alpha) (int, error) {
	if !a.basis.Same(o.basis) {
		return 0, mismatch("Alpha.Compare", a, o)
	}

	return compareAlpha(a, o), nil
}

// compareAlpha assumes both alphas share a basis.
func compareAlpha(a, o Alpha) int {
	pa, po := a.basis.Position(a.index), a.basis.Position(o.index)
	switch {
	case pa != po:
		return sign3(pa - po)
	default:
		return sign3(int(a.sign) - int(o.sign))
	}
}

// Kind implements Value.
func (Alpha) Kind() Kind { return KindAlpha }

func (Alpha) isValue() {}

// String renders e.g. "-α₁₂".
func (a Alpha) String() string {
	neg := ""
	if a.sign == Negative {
		neg = "-"
	}
	sub, _ := subscript(a.index)

	return neg + "α" + sub
}

// Tex renders e.g. "-\alpha_{12}".
func (a Alpha) Tex() string {
	neg := ""
	if a.sign == Negative {
		neg = "-"
	}

	return neg + `\alpha_{` + a.index + "}"
}

func grade(index string) int {
	if index == Point {
		return 0
	}

	return len(index)
}

// matchesGrade: αp is the only grade-0 element.
func matchesGrade(index string, g int) bool {
	if index == Point {
		return g == 0
	}

	return g != 0 && len(index) == g
}

func sign3(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}

	return 0
}

func compareAlphaLists(a, b []Alpha) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareAlpha(a[i], b[i]); c != 0 {
			return c
		}
	}

	return sign3(len(a) - len(b))
}
