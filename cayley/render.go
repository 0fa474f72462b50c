// SPDX-License-Identifier: MIT
// Package cayley: terminal styling.

package cayley

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/arcalc/algebra"
)

// Theme styles the fragments of a rendered table.
type Theme struct {
	Positive lipgloss.Style
	Negative lipgloss.Style
	Label    lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultTheme matches the light/dark sign palette of the original tables.
func DefaultTheme() Theme {
	return Theme{
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#fbf1c7")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")),
		Frame:    lipgloss.NewStyle().Foreground(lipgloss.Color("#504945")),
	}
}

// Render styles the sign grid (signs true) or the value grid. The layout is
// identical to SignString or String; only colouring is added, and it is
// dropped entirely when the output is not a colour terminal.
func (t *Table) Render(theme Theme, signs bool) string {
	if signs {
		return t.signs(func(k cellKind, s string) string {
			switch k {
			case cellNegative:
				return theme.Negative.Render(s)
			case cellLabel:
				return theme.Label.Render(s)
			case cellFrame:
				return theme.Frame.Render(s)
			}
			return theme.Positive.Render(s)
		})
	}

	return t.values(func(a algebra.Alpha, s string) string {
		if a.Sign() == algebra.Negative {
			return theme.Negative.Render(s)
		}
		return theme.Positive.Render(s)
	})
}
