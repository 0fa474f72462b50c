// SPDX-License-Identifier: MIT
// Package eval: lexer classification.

package eval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kinds(toks []token) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.kind
	}

	return out
}

func TestLexClassifiesWords(t *testing.T) {
	cases := []struct {
		in   string
		kind tokenKind
		text string
		neg  bool
	}{
		{"a12", tokAlpha, "12", false},
		{"-a12", tokAlpha, "-12", false},
		{"ap", tokAlpha, "p", false},
		{"-ap", tokAlpha, "-p", false},
		{"p0", tokTerm, "0", false},
		{"-p0123", tokTerm, "-0123", false},
		{"a01234", tokName, "a01234", false},
		{"a12x", tokName, "a12x", false},
		{"p", tokName, "p", false},
		{"pq", tokName, "pq", false},
		{"zet_B", tokName, "zet_B", false},
		{"-zet_B", tokName, "zet_B", true},
	}
	for _, tc := range cases {
		toks, err := lex(tc.in)
		require.NoError(t, err, tc.in)
		require.Len(t, toks, 1, tc.in)
		require.Equal(t, tc.kind, toks[0].kind, tc.in)
		require.Equal(t, tc.text, toks[0].text, tc.in)
		require.Equal(t, tc.neg, toks[0].neg, tc.in)
		require.Equal(t, 0, toks[0].pos, tc.in)
	}
}

func TestLexBracketsAndLiterals(t *testing.T) {
	toks, err := lex("<A>2 ^ {1, 2[x]} d")
	require.NoError(t, err)
	require.Equal(t, []tokenKind{tokLAngle, tokName, tokRAngle, tokIndex, tokFull, tokSet, tokName}, kinds(toks))
	require.Equal(t, "1, 2[x]", toks[5].text)
	require.Equal(t, 7, toks[5].pos)

	toks, err = lex("<0, 1 -2> A")
	require.NoError(t, err)
	require.Equal(t, []tokenKind{tokDiff, tokName}, kinds(toks))
	require.Equal(t, "0, 1 -2", toks[0].text)

	toks, err = lex("<p1>")
	require.NoError(t, err)
	require.Equal(t, []tokenKind{tokDiff}, kinds(toks))

	toks, err = lex("<>")
	require.NoError(t, err)
	require.Equal(t, []tokenKind{tokLAngle, tokRAngle}, kinds(toks))

	toks, err = lex(`[a1,a2] / b \ c + e ! . }`)
	require.NoError(t, err)
	require.Equal(t, []tokenKind{
		tokLSquare, tokAlpha, tokComma, tokAlpha, tokRSquare,
		tokBy, tokName, tokInto, tokName, tokPlus, tokName, tokDagger, tokDot, tokRCurly,
	}, kinds(toks))

	toks, err = lex("a1 - a2")
	require.NoError(t, err)
	require.Equal(t, []tokenKind{tokAlpha, tokMinus, tokAlpha}, kinds(toks))
}

func TestLexErrors(t *testing.T) {
	_, err := lex("{1 2")
	require.ErrorIs(t, err, ErrUnbalanced)

	_, err = lex("a1 & a2")
	require.ErrorIs(t, err, ErrSyntax)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, se.Pos)
	require.Contains(t, se.Error(), `"a1 & a2"`)

	_, err = lex("<A>9")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestValidName(t *testing.T) {
	for _, ok := range []string{"x", "A", "zet_B", "_tmp", "a", "a12x", "pp"} {
		require.True(t, validName(ok), ok)
	}
	for _, bad := range []string{"", "a12", "ap", "p3", "9x", "x y", "x!"} {
		require.False(t, validName(bad), bad)
	}
}
