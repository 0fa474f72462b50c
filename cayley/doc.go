// SPDX-License-Identifier: MIT

// Package cayley builds and renders 16×16 operator tables over the blades
// of an algebra.Config.
//
// A Table holds op(row, col) for every pair of allowed labels, rows and
// columns in allowed order. Rows are computed concurrently; the Config's
// product cache is shared by all workers.
//
// Renderings:
//
//	String()           values, right-aligned, one row per line
//	SignString()       ■ for a negative cell, □ otherwise, with zet dividers
//	SignDistribution() the five 4×4 blocks ∂e, ∂Ξ, ∇, ∇•, ∇x side by side
//	Render(theme)      SignString or String styled for a terminal (lipgloss)
//
// Complexity: Build performs 256 operator calls; At and Sign are O(1).
package cayley
