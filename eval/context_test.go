// SPDX-License-Identifier: MIT
// Package eval_test: Context bindings, configuration changes and logging.

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/katalvlaran/arcalc/eval"
)

func TestNewContextDefaults(t *testing.T) {
	ctx, err := eval.NewContext(nil)
	require.NoError(t, err)
	require.True(t, ctx.Config().Equal(algebra.DefaultConfig()))

	names := ctx.Names()
	for _, n := range eval.StandardNames {
		require.Contains(t, names, n)
	}
	require.IsIncreasing(t, names)
}

func TestStandardBindings(t *testing.T) {
	ctx := newCtx(t)

	lens := map[string]int{
		"p": 1, "t": 1, "h": 1, "q": 1,
		"A": 3, "B": 3, "E": 3, "T": 3,
		"F": 6, "G": 16, "Fp": 7, "zet_F": 8, "Fpq": 8,
		"zet_B": 4, "zet_T": 4, "zet_A": 4, "zet_E": 4,
	}
	for name, n := range lens {
		v, ok := ctx.Lookup(name)
		require.True(t, ok, name)
		m, ok := v.(*algebra.MultiVector)
		require.True(t, ok, name)
		require.Equal(t, n, m.Len(), name)
	}

	for _, name := range []string{"Dmu", "d", "DG", "DF", "DB", "DT", "DA", "DE"} {
		v, ok := ctx.Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, algebra.KindDifferential, v.Kind(), name)
	}
	require.Len(t, ctx.MustEval("DG").(*algebra.Differential).Wrt(), 16)
}

func TestBindAndUnbind(t *testing.T) {
	ctx := newCtx(t)
	cfg := ctx.Config()

	for _, bad := range []string{"", "a12", "p0", "ap", "1x", "x-y"} {
		require.ErrorIs(t, ctx.Bind(bad, cfg.MustAlpha("1")), eval.ErrInvalidName, bad)
	}
	require.ErrorIs(t, ctx.Bind("x", nil), eval.ErrInvalidName)

	require.NoError(t, ctx.Bind("my_val", cfg.MustAlpha("1")))
	require.True(t, algebra.Equal(ctx.MustEval("my_val my_val"), cfg.MustAlpha("-p")))
	require.Contains(t, ctx.Names(), "my_val")

	// a user binding shadows the standard one
	require.NoError(t, ctx.Bind("A", cfg.MustAlpha("0")))
	require.True(t, algebra.Equal(ctx.MustEval("A"), cfg.MustAlpha("0")))

	require.True(t, ctx.Unbind("A"))
	require.False(t, ctx.Unbind("A"))
	require.Equal(t, algebra.KindMultiVector, ctx.MustEval("A").Kind())

	_, ok := ctx.Lookup("nope")
	require.False(t, ok)
}

func TestWithBindings(t *testing.T) {
	cfg := algebra.DefaultConfig()

	ctx, err := eval.NewContext(cfg, eval.WithBindings(map[string]algebra.Value{"x": cfg.MustAlpha("2")}))
	require.NoError(t, err)
	require.True(t, algebra.Equal(ctx.MustEval("x"), cfg.MustAlpha("2")))

	_, err = eval.NewContext(cfg, eval.WithBindings(map[string]algebra.Value{"a1": cfg.MustAlpha("2")}))
	require.ErrorIs(t, err, eval.ErrInvalidName)

	require.Panics(t, func() { eval.WithLogger(nil) })
}

func TestLookupReturnsCopies(t *testing.T) {
	ctx := newCtx(t)

	v, ok := ctx.Lookup("B")
	require.True(t, ok)
	v.(*algebra.MultiVector).Delete(ctx.Config().MustAlpha("23"))

	again, _ := ctx.Lookup("B")
	require.Equal(t, 3, again.(*algebra.MultiVector).Len())
}

func TestSetMetricRebuildsBindings(t *testing.T) {
	ctx := newCtx(t)
	cfg := ctx.Config()

	require.True(t, algebra.Equal(ctx.MustEval("a1 a1"), cfg.MustAlpha("-p")))

	require.NoError(t, ctx.SetMetric("++++"))
	require.True(t, algebra.Equal(ctx.MustEval("a1 a1"), cfg.MustAlpha("p")))
	require.Equal(t, "++++", cfg.Metric().String())

	before := cfg.Version()
	require.ErrorIs(t, ctx.SetMetric("+-"), algebra.ErrInvalidMetric)
	require.Equal(t, before, cfg.Version())
	require.Equal(t, "++++", cfg.Metric().String())
}

func TestSetAllowedRebuildsBindings(t *testing.T) {
	ctx := newCtx(t)
	stale := ctx.MustEval("a23")

	allowed := algebra.DefaultAllowed()
	allowed[1] = "32"
	require.NoError(t, ctx.SetAllowed(allowed))

	b := ctx.MustEval("B").(*algebra.MultiVector)
	var got []string
	for _, g := range b.IterAlphas() {
		got = append(got, g.Alpha.Index())
	}
	require.Equal(t, []string{"32", "31", "12"}, got)

	// values built before the change no longer combine with fresh ones
	_, err := ctx.Eval("x ^ a1", eval.WithScope(map[string]algebra.Value{"x": stale}))
	require.ErrorIs(t, err, algebra.ErrConfigMismatch)

	require.ErrorIs(t, ctx.SetAllowed([]string{"p"}), algebra.ErrInvalidAllowed)
}

func TestSetDivision(t *testing.T) {
	ctx := newCtx(t)
	d := ctx.MustEval("d").(*algebra.Differential)
	a := ctx.MustEval("A").(*algebra.MultiVector)

	require.NoError(t, ctx.SetDivision("by"))
	want, err := d.Apply(ctx.Config(), a, algebra.DivisionBy)
	require.NoError(t, err)
	require.True(t, algebra.Equal(want, ctx.MustEval("d A")))

	require.ErrorIs(t, ctx.SetDivision("over"), algebra.ErrInvalidDivision)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx, err := eval.NewContext(algebra.DefaultConfig(), eval.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = ctx.Eval("a1 ^")
	require.Error(t, err)
	failed := logs.FilterMessage("evaluation failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.WarnLevel, failed[0].Level)
	require.Equal(t, "a1 ^", failed[0].ContextMap()["expr"])

	_ = ctx.MustEval("a1 a2")
	require.Equal(t, 1, logs.FilterMessage("evaluated").Len())

	require.NoError(t, ctx.SetMetric("-+++"))
	require.Equal(t, 1, logs.FilterMessage("metric changed").Len())
	require.Equal(t, 2, logs.FilterMessage("standard bindings rebuilt").Len())
}

func TestDecompose(t *testing.T) {
	ctx := newCtx(t)

	want := map[string][]string{
		"B": {"zet_B = ζ", "T = a0 ^ ζ", "A = ζ† ^ a123", "E = ζ† ^ a0123"},
		"T": {"zet_T = ζ", "B = a0 ^ ζ", "A = ζ† ^ a0123", "E = ζ† ^ a123"},
		"A": {"zet_A = ζ", "B = ζ† ^ a123", "T = a0123 ^ ζ†", "E = a0 ^ ζ"},
		"E": {"zet_E = ζ", "B = ζ† ^ a0123", "T = a123 ^ ζ†", "A = a0 ^ ζ"},
	}
	for base, lines := range want {
		got, err := ctx.Decompose(base)
		require.NoError(t, err, base)
		require.Equal(t, lines, got, base)
	}

	for _, bad := range []string{"", "X", "BT", "zet_B"} {
		_, err := ctx.Decompose(bad)
		require.ErrorIs(t, err, eval.ErrUndefinedName, bad)
	}
}
