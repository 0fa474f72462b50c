// SPDX-License-Identifier: MIT
// Package script: output formats.

package script

import (
	"strings"

	"github.com/katalvlaran/arcalc/algebra"
)

// Format selects how values are printed. Flags combine.
type Format uint8

// Plain prints values in Unicode notation.
const Plain Format = 0

const (
	// Simplified cancels MultiVector terms before printing.
	Simplified Format = 1 << iota
	// Tex prints LaTeX fragments.
	Tex
	// Factored prints MultiVectors grouped by alpha.
	Factored
)

// modifiers maps "// NAME" lines to the format of the following line.
var modifiers = map[string]Format{
	"SIMPLIFIED": Simplified,
	"TEX":        Tex,
	"FACTORED":   Factored,
}

// Render prints v according to f.
func (f Format) Render(v algebra.Value) string {
	if m, ok := v.(*algebra.MultiVector); ok {
		if f&Simplified != 0 {
			m = m.Clone().CancelTerms()
			v = m
		}
		if f&Factored != 0 && f&Tex == 0 {
			return m.FactoredString()
		}
	}
	if f&Tex != 0 {
		return v.Tex()
	}

	return v.String()
}

// String lists the set flags, e.g. "SIMPLIFIED|TEX".
func (f Format) String() string {
	if f == Plain {
		return "PLAIN"
	}
	var parts []string
	for _, name := range []string{"SIMPLIFIED", "TEX", "FACTORED"} {
		if f&modifiers[name] != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}
