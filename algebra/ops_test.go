// SPDX-License-Identifier: MIT
// Package algebra_test: operator dispatch over value kinds.

package algebra_test

import (
	"testing"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/stretchr/testify/require"
)

func requireTerm(t *testing.T, v algebra.Value, index string, sign algebra.Sign, comps ...string) {
	t.Helper()
	term, ok := v.(algebra.Term)
	require.True(t, ok, "want Term, got %s", algebra.KindOf(v))
	require.Equal(t, index, term.Index())
	require.Equal(t, sign, term.Sign())
	got := make([]string, 0, len(comps))
	for _, x := range term.Components() {
		got = append(got, x.Value())
	}
	require.ElementsMatch(t, comps, got)
}

// TestFullDispatch covers every registered pair.
func TestFullDispatch(t *testing.T) {
	cfg := algebra.DefaultConfig()
	a1, a2 := cfg.MustAlpha("1"), cfg.MustAlpha("2")
	p1, p2 := cfg.MustTerm("1"), cfg.MustTerm("2")

	v, err := cfg.Full(a1, a2)
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("12")))

	v, err = cfg.Full(a1, p2)
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Positive, "2")

	v, err = cfg.Full(p2, a1)
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Negative, "2")

	v, err = cfg.Full(p1.Neg(), a2)
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Negative, "1")

	v, err = cfg.Full(p1, p2)
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Positive, "1", "2")

	m := cfg.MustMultiVector("1 2")
	v, err = cfg.Full(m, m)
	require.NoError(t, err)
	prod := v.(*algebra.MultiVector)
	require.Equal(t, 4, prod.Len())
	require.Equal(t, []string{"-p", "-p"}, indices(prod.Project(0)))
	require.Equal(t, 2, prod.CancelTerms().Len()) // α₁₂ξ₁ξ₂ and -α₁₂ξ₂ξ₁ annihilate

	v, err = cfg.Full(a1, m)
	require.NoError(t, err)
	require.Equal(t, []string{"-p", "12"}, indices(v.(*algebra.MultiVector)))

	v, err = cfg.Full(m, a1)
	require.NoError(t, err)
	require.Equal(t, []string{"-p", "-12"}, indices(v.(*algebra.MultiVector)))

	v, err = cfg.Full(p1, m)
	require.NoError(t, err)
	require.Equal(t, 2, v.(*algebra.MultiVector).Len())

	v, err = cfg.Full(m, p1)
	require.NoError(t, err)
	require.Equal(t, 2, v.(*algebra.MultiVector).Len())
}

// TestFullUnsupported checks pairs without an implementation.
func TestFullUnsupported(t *testing.T) {
	cfg := algebra.DefaultConfig()
	d, err := algebra.NewDifferential(cfg, "0", "1")
	require.NoError(t, err)

	for _, pair := range [][2]algebra.Value{
		{d, cfg.MustAlpha("1")},
		{cfg.MustTerm("1"), d},
		{d, d},
		{nil, cfg.MustAlpha("1")},
	} {
		_, err = cfg.Full(pair[0], pair[1])
		require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
	}
}

// TestDivision covers both conventions and the undefined pairs.
func TestDivision(t *testing.T) {
	cfg := algebra.DefaultConfig()
	a1, a2 := cfg.MustAlpha("1"), cfg.MustAlpha("2")

	v, err := cfg.DivBy(a1, a2)
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("-12")))

	v, err = cfg.DivBy(a2, a1)
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("12")))

	v, err = cfg.DivBy(cfg.MustTerm("1"), a2)
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Negative, "1")

	v, err = cfg.DivInto(a2, cfg.MustTerm("1"))
	require.NoError(t, err)
	requireTerm(t, v, "12", algebra.Positive, "1")

	v, err = cfg.Div(a1, a2, 0) // configured: into
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("-12")))

	for _, pair := range [][2]algebra.Value{
		{a1, cfg.MustTerm("2")},
		{cfg.MustMultiVector("1"), a2},
	} {
		_, err = cfg.DivBy(pair[0], pair[1])
		require.ErrorIs(t, err, algebra.ErrDivisionUndefined)
		require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
	}
	_, err = cfg.DivInto(cfg.MustTerm("1"), a2)
	require.ErrorIs(t, err, algebra.ErrDivisionUndefined)

	_, err = cfg.Div(a1, a2, algebra.Division(9))
	require.ErrorIs(t, err, algebra.ErrInvalidDivision)
}

// TestProject covers the grade-0 rule and out-of-range grades.
func TestProject(t *testing.T) {
	cfg := algebra.DefaultConfig()

	v, err := cfg.Project(cfg.MustAlpha("12"), 2)
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("12")))

	v, err = cfg.Project(cfg.MustAlpha("p"), 1)
	require.NoError(t, err)
	require.Equal(t, 0, v.(*algebra.MultiVector).Len())

	v, err = cfg.Project(cfg.MustTerm("0"), 1)
	require.NoError(t, err)
	requireTerm(t, v, "0", algebra.Positive, "0")

	m := cfg.MustMultiVector("p 0 12 123 0123")
	for grade, want := range [][]string{{"p"}, {"0"}, {"12"}, {"123"}, {"0123"}} {
		v, err = cfg.Project(m, grade)
		require.NoError(t, err)
		require.Equal(t, want, indices(v.(*algebra.MultiVector)))
	}

	_, err = cfg.Project(m, 5)
	require.ErrorIs(t, err, algebra.ErrInvalidGrade)
	_, err = cfg.Project(m, -1)
	require.ErrorIs(t, err, algebra.ErrInvalidGrade)
}

// TestRevInvolution checks reversion signs and that it is an involution.
func TestRevInvolution(t *testing.T) {
	cfg := algebra.DefaultConfig()

	values := []algebra.Value{cfg.MustMultiVector(""), cfg.MustMultiVector("p 23 -012 0123")}
	for _, a := range alphas(t, cfg) {
		values = append(values, a, algebra.MustTerm(a))
	}
	for _, v := range values {
		once, err := algebra.Rev(v)
		require.NoError(t, err)
		twice, err := algebra.Rev(once)
		require.NoError(t, err)
		require.True(t, algebra.Equal(v, twice), "%v", v)
	}

	v, err := algebra.Rev(cfg.MustMultiVector("p 1 12 123 0123"))
	require.NoError(t, err)
	require.Equal(t, []string{"p", "-12", "-123", "1", "0123"}, indices(v.(*algebra.MultiVector)))

	_, err = algebra.Rev(nil)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
}

// TestHermitian flips every blade that squares to -αp.
func TestHermitian(t *testing.T) {
	cfg := algebra.DefaultConfig()

	v, err := cfg.Hermitian(cfg.MustMultiVector("p 0 1 23 123 0123"))
	require.NoError(t, err)
	require.Equal(t, []string{"p", "-23", "0", "123", "-1", "-0123"}, indices(v.(*algebra.MultiVector)))

	v, err = cfg.Dagger(cfg.MustAlpha("-1"))
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("1")))

	v, err = cfg.Hermitian(cfg.MustTerm("01"))
	require.NoError(t, err)
	requireTerm(t, v, "01", algebra.Positive, "01")

	d, _ := algebra.NewDifferential(cfg, "0")
	_, err = cfg.Hermitian(d)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
}

// TestCommutatorRejectsTerms only defines [a, b] for alphas.
func TestCommutatorRejectsTerms(t *testing.T) {
	cfg := algebra.DefaultConfig()

	v, err := cfg.Commutator(cfg.MustAlpha("1"), cfg.MustAlpha("2"))
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("-p")))

	v, err = cfg.Commutator(cfg.MustAlpha("1"), cfg.MustAlpha("123"))
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("p")))

	_, err = cfg.Commutator(cfg.MustTerm("1"), cfg.MustAlpha("2"))
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
}

// TestDualDiamondMMBar covers the MultiVector-only operators.
func TestDualDiamondMMBar(t *testing.T) {
	cfg := algebra.DefaultConfig()

	dual, err := cfg.Dual(cfg.MustMultiVector("p"))
	require.NoError(t, err)
	require.Equal(t, []string{"-0123"}, indices(dual))

	dia, err := cfg.Diamond(cfg.MustMultiVector("p 1 -23"))
	require.NoError(t, err)
	require.Equal(t, []string{"p", "23", "-1"}, indices(dia))

	mm, err := cfg.MMBar(cfg.MustMultiVector("p"), false)
	require.NoError(t, err)
	require.Equal(t, []string{"-0123"}, indices(mm))
	require.Len(t, mm.Terms()[0].Components(), 2)

	raw, err := cfg.MMBar(cfg.MustMultiVector("p 1 -1"), true)
	require.NoError(t, err)
	require.Equal(t, 9, raw.Len())
}

// TestNegateAndAdd covers the generic helpers.
func TestNegateAndAdd(t *testing.T) {
	cfg := algebra.DefaultConfig()

	v, err := algebra.Negate(cfg.MustAlpha("1"))
	require.NoError(t, err)
	require.True(t, v.(algebra.Alpha).Equal(cfg.MustAlpha("-1")))

	v, err = cfg.Add(cfg.MustAlpha("1"), cfg.MustTerm("-2"))
	require.NoError(t, err)
	require.Equal(t, []string{"1", "-2"}, indices(v.(*algebra.MultiVector)))

	v, err = cfg.Add(cfg.MustMultiVector("3"), cfg.MustMultiVector("1"))
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, indices(v.(*algebra.MultiVector)))

	d, _ := algebra.NewDifferential(cfg, "0")
	_, err = cfg.Add(d, cfg.MustAlpha("1"))
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
	_, err = algebra.Negate(d)
	require.ErrorIs(t, err, algebra.ErrUnsupportedOperands)
}
