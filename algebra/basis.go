// SPDX-License-Identifier: MIT
// Package algebra: Basis, the immutable snapshot of an allowed-label ordering.
//
// A Basis is taken whenever a Config's allowed set is assigned. Values keep a
// pointer to the Basis they were created under so that operations can detect
// cross-configuration mixing without consulting the (mutable) Config.

package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// BasisSize is the number of blades in every algebra.
const BasisSize = 16

// Point is the label of the identity blade αp.
const Point = "p"

// generators lists the four generator symbols in metric order.
const generators = "0123"

// Basis is an immutable, validated ordering of the 16 allowed labels together
// with the groupings derived from it.
type Basis struct {
	labels   [BasisSize]string
	position map[string]int    // label → index in labels
	bySet    map[string]string // sorted generators → label

	// derived groupings
	h, q       string    // non-temporal trivector, quadrivector
	b, t, a, e [3]string // 3-vectors in allowed order
}

// newBasis validates allowed and builds the snapshot.
//
// Implementation:
//   - Stage 1: exactly 16 labels.
//   - Stage 2: each label is "p" or a repeat-free string over {0,1,2,3}.
//   - Stage 3: no two labels name the same generator subset (this forces all
//     16 subsets to be present).
//   - Stage 4: derive the h, q, B, T, A, E groupings.
//
// Complexity: O(16).
func newBasis(allowed []string) (*Basis, error) {
	if len(allowed) != BasisSize {
		return nil, fmt.Errorf("need %d labels, got %d: %w", BasisSize, len(allowed), ErrInvalidAllowed)
	}

	b := &Basis{
		position: make(map[string]int, BasisSize),
		bySet:    make(map[string]string, BasisSize),
	}
	for i, label := range allowed {
		if err := validateLabel(label); err != nil {
			return nil, err
		}
		key := setKey(label)
		if prev, dup := b.bySet[key]; dup {
			return nil, fmt.Errorf("labels %q and %q name the same blade: %w", prev, label, ErrInvalidAllowed)
		}
		b.labels[i] = label
		b.position[label] = i
		b.bySet[key] = label
	}

	var nb, nt, na, ne int
	for _, label := range b.labels {
		temporal := strings.Contains(label, "0")
		switch {
		case label == Point, label == "0":
			// the two fixed "time-like" elements of B and T
		case len(label) == 4:
			b.q = label
		case len(label) == 3 && !temporal:
			b.h = label
		case len(label) == 3:
			b.t[nt] = label
			nt++
		case len(label) == 2 && !temporal:
			b.b[nb] = label
			nb++
		case len(label) == 2:
			b.e[ne] = label
			ne++
		default:
			b.a[na] = label
			na++
		}
	}

	return b, nil
}

// validateLabel checks the alphabet and repeat rules for a single label.
func validateLabel(label string) error {
	if label == Point {
		return nil
	}
	if label == "" || len(label) > len(generators) {
		return fmt.Errorf("label %q: %w", label, ErrInvalidAllowed)
	}
	var seen [4]bool
	for _, c := range []byte(label) {
		if c < '0' || c > '3' {
			return fmt.Errorf("label %q: bad character %q: %w", label, c, ErrInvalidAllowed)
		}
		if seen[c-'0'] {
			return fmt.Errorf("label %q: repeated %q: %w", label, c, ErrInvalidAllowed)
		}
		seen[c-'0'] = true
	}

	return nil
}

// setKey returns the order-independent identity of a label: its generators
// sorted ascending, with αp mapped to "".
func setKey(label string) string {
	if label == Point {
		return ""
	}
	chars := []byte(label)
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	return string(chars)
}

// Labels returns a copy of the allowed labels in configured order.
func (b *Basis) Labels() []string {
	out := make([]string, BasisSize)
	copy(out, b.labels[:])

	return out
}

// Has reports whether label is one of the allowed labels.
func (b *Basis) Has(label string) bool {
	if b == nil {
		return false
	}
	_, ok := b.position[label]
	return ok
}

// Position returns the configured position of label, or -1.
func (b *Basis) Position(label string) int {
	if b == nil {
		return -1
	}
	if i, ok := b.position[label]; ok {
		return i
	}

	return -1
}

// Same reports whether two snapshots describe the same ordering.
// A nil Basis is never the same as anything.
func (b *Basis) Same(o *Basis) bool {
	if b == nil || o == nil {
		return false
	}

	return b == o || b.labels == o.labels
}

// canonical returns the allowed label for an arbitrary ordering of generators.
func (b *Basis) canonical(components string) (string, bool) {
	label, ok := b.bySet[setKey(components)]
	return label, ok
}

// String renders the labels comma separated.
func (b *Basis) String() string {
	if b == nil {
		return "<nil basis>"
	}

	return strings.Join(b.labels[:], ",")
}
