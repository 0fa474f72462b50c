// SPDX-License-Identifier: MIT
// Package algebra: groupings derived from the allowed set.
//
// Zets partition the algebra: each pairs one "time-like" element with three
// "space-like" elements. The partition depends only on which generators a
// label contains, never on the metric or on character order:
//
//	B = {p, 23, 31, 12}     T = {0, 023, 031, 012}
//	A = {123, 1, 2, 3}      E = {0123, 01, 02, 03}

package algebra

import (
	"fmt"
	"strings"
)

// Zet names one of the four partitions of the algebra.
type Zet int

const (
	// ZetB is {p, jk}.
	ZetB Zet = iota
	// ZetT is {0, 0jk}.
	ZetT
	// ZetA is {123, i}.
	ZetA
	// ZetE is {0123, 0i}.
	ZetE
)

// Zets lists the partitions in canonical B, T, A, E order.
var Zets = []Zet{ZetB, ZetT, ZetA, ZetE}

// String returns "B", "T", "A" or "E".
func (z Zet) String() string {
	switch z {
	case ZetB:
		return "B"
	case ZetT:
		return "T"
	case ZetA:
		return "A"
	case ZetE:
		return "E"
	}

	return fmt.Sprintf("Zet(%d)", int(z))
}

// TimeLike returns the conventional name of the zet's time-like element.
func (z Zet) TimeLike() string {
	return [...]string{"p", "t", "h", "q"}[z]
}

// ZetOf classifies an index. Order of characters is irrelevant.
func ZetOf(index string) (Zet, error) {
	if index == Point {
		return ZetB, nil
	}
	if err := validateLabel(index); err != nil {
		return 0, fmt.Errorf("ZetOf(%q): %w", index, ErrInvalidIndex)
	}
	temporal := strings.Contains(index, "0")

	switch n := len(index); {
	case n == 2 && !temporal:
		return ZetB, nil
	case n == 1 && temporal, n == 3 && temporal:
		return ZetT, nil
	case n == 3, n == 1:
		return ZetA, nil
	default: // 4, or 2 containing 0
		return ZetE, nil
	}
}

// Orientation is the primary direction of an element.
type Orientation int

const (
	// OrientationT groups p, 0, 123, 0123.
	OrientationT Orientation = iota
	// OrientationX groups 23, 023, 1, 01.
	OrientationX
	// OrientationY groups 31, 031, 2, 02.
	OrientationY
	// OrientationZ groups 12, 012, 3, 03.
	OrientationZ
)

// String names the orientation.
func (o Orientation) String() string {
	return [...]string{"time", "space-x", "space-y", "space-z"}[o]
}

// OrientationOf classifies an index by its spatial content: a single spatial
// generator (or its complementary pair) picks an axis, none or all three is T.
func OrientationOf(index string) (Orientation, error) {
	if index == Point {
		return OrientationT, nil
	}
	if err := validateLabel(index); err != nil {
		return 0, fmt.Errorf("OrientationOf(%q): %w", index, ErrInvalidIndex)
	}
	var spatial []byte
	for _, c := range []byte(setKey(index)) {
		if c != '0' {
			spatial = append(spatial, c)
		}
	}

	switch len(spatial) {
	case 0, 3:
		return OrientationT, nil
	case 1:
		return Orientation(spatial[0] - '0'), nil
	default: // the axis is the missing spatial generator
		missing := byte('1' + '2' + '3' - spatial[0] - spatial[1])
		return Orientation(missing - '0'), nil
	}
}

// H returns the non-temporal trivector label (e.g. "123").
func (c *Config) H() string { return c.Basis().h }

// Q returns the quadrivector label (e.g. "0123").
func (c *Config) Q() string { return c.Basis().q }

// B returns the three non-temporal bivectors in allowed order.
func (c *Config) B() []string { b := c.Basis().b; return b[:] }

// T returns the three temporal trivectors in allowed order.
func (c *Config) T() []string { t := c.Basis().t; return t[:] }

// A returns the three spatial vectors in allowed order.
func (c *Config) A() []string { a := c.Basis().a; return a[:] }

// E returns the three temporal bivectors in allowed order.
func (c *Config) E() []string { e := c.Basis().e; return e[:] }

// ZetElements returns the {e, x, y, z} labels of z under the current allowed set.
func (c *Config) ZetElements(z Zet) [4]string {
	b := c.Basis()
	switch z {
	case ZetB:
		return [4]string{Point, b.b[0], b.b[1], b.b[2]}
	case ZetT:
		return [4]string{"0", b.t[0], b.t[1], b.t[2]}
	case ZetA:
		return [4]string{b.h, b.a[0], b.a[1], b.a[2]}
	default:
		return [4]string{b.q, b.e[0], b.e[1], b.e[2]}
	}
}

// XiGroups maps the 3-vector group names ("i", "0i" or "i0", "jk", "0jk")
// to their labels. The E key follows the allowed spelling of the first E label.
func (c *Config) XiGroups() map[string][]string {
	b := c.Basis()

	return map[string][]string{
		"i":          append([]string(nil), b.a[:]...),
		eGroupKey(b): append([]string(nil), b.e[:]...),
		"jk":         append([]string(nil), b.b[:]...),
		"0jk":        append([]string(nil), b.t[:]...),
	}
}

// AllowedGroups lists the names results can be grouped under: the four
// scalars followed by the 3-vector group names.
func (c *Config) AllowedGroups() []string {
	b := c.Basis()

	return []string{Point, "0", b.h, b.q, "i", eGroupKey(b), "jk", "0jk"}
}

func eGroupKey(b *Basis) string {
	if b.e[0][0] == '0' {
		return "0i"
	}

	return "i0"
}

// ReorderAllowed shuffles allowed into the group order given by order, a
// permutation of the group letters "pBtThAqE", keeping 3-vectors together.
func ReorderAllowed(allowed []string, order string) ([]string, error) {
	b, err := newBasis(allowed)
	if err != nil {
		return nil, fmt.Errorf("ReorderAllowed: %w", err)
	}
	groups := map[rune][]string{
		'p': {Point}, 't': {"0"}, 'h': {b.h}, 'q': {b.q},
		'B': b.b[:], 'T': b.t[:], 'A': b.a[:], 'E': b.e[:],
	}

	out := make([]string, 0, BasisSize)
	for _, g := range order {
		labels, ok := groups[g]
		if !ok {
			return nil, fmt.Errorf("ReorderAllowed: unknown group %q: %w", g, ErrInvalidAllowed)
		}
		out = append(out, labels...)
		delete(groups, g)
	}
	if len(out) != BasisSize {
		return nil, fmt.Errorf("ReorderAllowed: order %q is not a permutation of pBtThAqE: %w", order, ErrInvalidAllowed)
	}

	return out, nil
}
