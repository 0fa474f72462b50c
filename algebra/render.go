// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strings"
)

// subScripts maps index characters to their Unicode subscripts.
var subScripts = map[rune]string{
	'0': "₀", '1': "₁", '2': "₂", '3': "₃",
	'p': "ₚ", 'i': "ᵢ", 'j': "ⱼ", 'k': "ₖ",
}

// subscript renders s in subscripts; ok is false if some rune has none.
func subscript(s string) (string, bool) {
	var sb strings.Builder
	for _, r := range s {
		sub, ok := subScripts[r]
		if !ok {
			return s, false
		}
		sb.WriteString(sub)
	}

	return sb.String(), true
}

// powerNotation collapses repeats into "x^n", keeping first-seen order.
func powerNotation(items []string) []string {
	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}

	out := make([]string, len(order))
	for i, it := range order {
		if n := counts[it]; n > 1 {
			out[i] = fmt.Sprintf("%s^%d", it, n)
		} else {
			out[i] = it
		}
	}

	return out
}

// partialString renders a partial derivative list, e.g. "∂₁∂₀".
func partialString(partials []Alpha) string {
	strs := make([]string, len(partials))
	for i, p := range partials {
		sub, _ := subscript(p.index)
		strs[i] = "∂" + sub
	}

	return strings.Join(powerNotation(strs), "")
}
