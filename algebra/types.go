// SPDX-License-Identifier: MIT
// Package algebra: scalar policy types (Sign, Metric, Division) and the
// Value sum type shared by every operator.

package algebra

import (
	"fmt"
	"strings"
)

// Sign is the ±1 orientation carried by alphas, magnitudes and terms.
type Sign int8

const (
	// Positive is the +1 sign.
	Positive Sign = 1

	// Negative is the -1 sign.
	Negative Sign = -1
)

// Valid reports whether s is exactly +1 or -1.
func (s Sign) Valid() bool { return s == Positive || s == Negative }

// String renders "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}

	return "+"
}

// Metric assigns a sign to each generator 0..3.
type Metric [4]Sign

// ParseMetric converts a 4-character "+/-" string into a Metric.
//
// Errors:
//   - ErrInvalidMetric if the length is not 4 or a character is not '+' or '-'.
func ParseMetric(s string) (Metric, error) {
	var m Metric
	if len(s) != len(m) {
		return m, fmt.Errorf("ParseMetric(%q): need 4 signs: %w", s, ErrInvalidMetric)
	}
	for i, c := range []byte(s) {
		switch c {
		case '+':
			m[i] = Positive
		case '-':
			m[i] = Negative
		default:
			return Metric{}, fmt.Errorf("ParseMetric(%q): bad sign %q: %w", s, c, ErrInvalidMetric)
		}
	}

	return m, nil
}

// MetricFromInts converts a 4-tuple of ±1 integers into a Metric.
func MetricFromInts(vals []int) (Metric, error) {
	var m Metric
	if len(vals) != len(m) {
		return m, fmt.Errorf("MetricFromInts(%v): need 4 signs: %w", vals, ErrInvalidMetric)
	}
	for i, v := range vals {
		s := Sign(v)
		if v < -1 || v > 1 || !s.Valid() {
			return Metric{}, fmt.Errorf("MetricFromInts(%v): bad sign %d: %w", vals, v, ErrInvalidMetric)
		}
		m[i] = s
	}

	return m, nil
}

// Validate returns ErrInvalidMetric unless every entry is ±1.
func (m Metric) Validate() error {
	for i, s := range m {
		if !s.Valid() {
			return fmt.Errorf("metric[%d]=%d: %w", i, s, ErrInvalidMetric)
		}
	}

	return nil
}

// Of returns the metric sign of generator g ('0'..'3').
func (m Metric) Of(g byte) Sign { return m[g-'0'] }

// String renders the metric in "+---" form.
func (m Metric) String() string {
	var sb strings.Builder
	for _, s := range m {
		sb.WriteString(s.String())
	}

	return sb.String()
}

// Division selects the side from which a differential divides an alpha.
type Division int

const (
	// DivisionBy divides from the right: a / b = a · b⁻¹.
	DivisionBy Division = iota + 1

	// DivisionInto divides from the left: a \ b = a⁻¹ · b.
	DivisionInto
)

// ParseDivision accepts "by" or "into".
func ParseDivision(s string) (Division, error) {
	switch s {
	case "by":
		return DivisionBy, nil
	case "into":
		return DivisionInto, nil
	}

	return 0, fmt.Errorf("ParseDivision(%q): %w", s, ErrInvalidDivision)
}

// Valid reports whether d is one of the two conventions.
func (d Division) Valid() bool { return d == DivisionBy || d == DivisionInto }

// String renders "by" / "into".
func (d Division) String() string {
	switch d {
	case DivisionBy:
		return "by"
	case DivisionInto:
		return "into"
	}

	return fmt.Sprintf("Division(%d)", int(d))
}

// Kind tags the concrete variant behind a Value.
type Kind int

const (
	// KindInvalid is reported for nil or foreign values.
	KindInvalid Kind = iota
	// KindAlpha tags Alpha.
	KindAlpha
	// KindTerm tags Term.
	KindTerm
	// KindMultiVector tags *MultiVector.
	KindMultiVector
	// KindDifferential tags *Differential.
	KindDifferential
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case KindAlpha:
		return "Alpha"
	case KindTerm:
		return "Term"
	case KindMultiVector:
		return "MultiVector"
	case KindDifferential:
		return "Differential"
	}

	return "invalid"
}

// Value is the closed set of algebra values accepted by the operators.
// It is sealed: only Alpha, Term, *MultiVector and *Differential implement it.
type Value interface {
	// Kind reports the concrete variant.
	Kind() Kind
	// String renders the value in Unicode notation.
	String() string
	// Tex renders the value as a LaTeX fragment.
	Tex() string

	isValue()
}

// KindOf returns v.Kind(), or KindInvalid for a nil Value (including typed nils).
func KindOf(v Value) Kind {
	switch x := v.(type) {
	case nil:
		return KindInvalid
	case *MultiVector:
		if x == nil {
			return KindInvalid
		}
	case *Differential:
		if x == nil {
			return KindInvalid
		}
	}

	return v.Kind()
}

// Equal reports structural equality of two values of the same kind.
// Values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Alpha:
		y, ok := b.(Alpha)
		return ok && x.Equal(y)
	case Term:
		y, ok := b.(Term)
		return ok && x.Equal(y)
	case *MultiVector:
		y, ok := b.(*MultiVector)
		return ok && x.Equal(y)
	case *Differential:
		y, ok := b.(*Differential)
		return ok && x.Equal(y)
	}

	return false
}
