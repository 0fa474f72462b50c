// SPDX-License-Identifier: MIT
// Package cayley_test: table construction and renderings.

package cayley_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/katalvlaran/arcalc/cayley"
)

func build(t *testing.T, cfg *algebra.Config, op cayley.Operator, opts ...cayley.Option) *cayley.Table {
	t.Helper()
	tbl, err := cayley.Build(context.Background(), cfg, op, opts...)
	require.NoError(t, err)

	return tbl
}

func TestBuildMatchesProduct(t *testing.T) {
	cfg := algebra.DefaultConfig()
	tbl := build(t, cfg, cayley.Full)

	labels := tbl.Labels()
	require.Equal(t, cfg.Allowed(), labels)
	for r, a := range labels {
		for c, b := range labels {
			want := cfg.MustProduct(cfg.MustAlpha(a), cfg.MustAlpha(b))
			got, err := tbl.At(r, c)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "%s × %s", a, b)

			s, err := tbl.Sign(r, c)
			require.NoError(t, err)
			require.Equal(t, want.Sign(), s)
		}
	}

	got, err := tbl.Lookup("1", "2")
	require.NoError(t, err)
	require.True(t, got.Equal(cfg.MustAlpha("12")))
}

func TestNegativeCounts(t *testing.T) {
	cfg := algebra.DefaultConfig()

	want := map[string]int{"full": 112, "by": 112, "into": 112, "commutator": 120}
	for name, n := range want {
		op, err := cayley.OperatorNamed(name)
		require.NoError(t, err)
		require.Equal(t, n, build(t, cfg, op).NegativeCount(), name)
	}
	require.Equal(t, []string{"by", "commutator", "full", "into"}, cayley.OperatorNames())

	_, err := cayley.OperatorNamed("wedge")
	require.ErrorIs(t, err, cayley.ErrUnknownOperator)
}

func TestCommutatorTableIsScalar(t *testing.T) {
	cfg := algebra.DefaultConfig()
	tbl := build(t, cfg, cayley.Commutator, cayley.WithWorkers(1))

	for r := 0; r < cayley.Size; r++ {
		for c := 0; c < cayley.Size; c++ {
			a, err := tbl.At(r, c)
			require.NoError(t, err)
			require.Equal(t, algebra.Point, a.Index())
		}
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := algebra.DefaultConfig()

	_, err := cayley.Build(context.Background(), cfg, nil)
	require.ErrorIs(t, err, cayley.ErrNilOperator)

	boom := func(cfg *algebra.Config, a, b algebra.Alpha) (algebra.Alpha, error) {
		if a.Index() == "0" && b.Index() == "1" {
			return algebra.Alpha{}, algebra.ErrInvalidIndex
		}
		return cfg.Product(a, b)
	}
	_, err = cayley.Build(context.Background(), cfg, boom)
	require.ErrorIs(t, err, algebra.ErrInvalidIndex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cayley.Build(ctx, cfg, cayley.Full)
	require.ErrorIs(t, err, context.Canceled)

	tbl := build(t, cfg, cayley.Full)
	_, err = tbl.At(16, 0)
	require.ErrorIs(t, err, cayley.ErrIndexOutOfBounds)
	_, err = tbl.Sign(0, -1)
	require.ErrorIs(t, err, cayley.ErrIndexOutOfBounds)
	_, err = tbl.Lookup("p", "21")
	require.ErrorIs(t, err, cayley.ErrUnknownLabel)
}

func TestString(t *testing.T) {
	tbl := build(t, algebra.DefaultConfig(), cayley.Full)
	lines := strings.Split(tbl.String(), "\n")
	require.Len(t, lines, cayley.Size)

	want := []string{
		"    αₚ    α₂₃    α₃₁    α₁₂     α₀   α₀₂₃   α₀₃₁   α₀₁₂   α₁₂₃     α₁     α₂     α₃  α₀₁₂₃    α₀₁    α₀₂    α₀₃",
		"    α₁   α₁₂₃     α₃    -α₂   -α₀₁ -α₀₁₂₃   -α₀₃    α₀₂   -α₂₃    -αₚ    α₁₂   -α₃₁   α₀₂₃     α₀  -α₀₁₂   α₀₃₁",
	}
	require.Empty(t, cmp.Diff(want, []string{lines[0], lines[9]}))
}

func TestSignString(t *testing.T) {
	tbl := build(t, algebra.DefaultConfig(), cayley.Full)
	lines := strings.Split(tbl.SignString(), "\n")
	require.Len(t, lines, 2+cayley.Size+4)

	want := []string{
		"           B         T         A         E",
		"      +---------+---------+---------+---------+",
		"αₚ    | □ □ □ □ | □ □ □ □ | □ □ □ □ | □ □ □ □ |",
		"α₂₃   | □ ■ □ ■ | □ ■ □ ■ | ■ □ □ ■ | ■ □ □ ■ |",
		"α₃₁   | □ ■ ■ □ | □ ■ ■ □ | ■ ■ □ □ | ■ ■ □ □ |",
		"α₁₂   | □ □ ■ ■ | □ □ ■ ■ | ■ □ ■ □ | ■ □ ■ □ |",
		"      +---------+---------+---------+---------+",
	}
	require.Empty(t, cmp.Diff(want, lines[:len(want)]))
	require.Equal(t, want[1], lines[len(lines)-1])
}

func TestSignDistribution(t *testing.T) {
	tbl := build(t, algebra.DefaultConfig(), cayley.Full)

	want := strings.Join([]string{
		" ∂e |□ □ □ □|  ∂Ξ |□ □ □ □|   ∇ |□ □ ■ ■|  ∇• |■ ■ □ □|  ∇x |□ □ □ □|",
		"    |□ □ □ □|     |□ □ □ □|     |□ □ ■ ■|     |■ ■ □ □|     |□ □ □ □|",
		"    |□ ■ □ ■|     |■ □ ■ □|     |□ ■ ■ □|     |□ ■ ■ □|     |□ ■ □ ■|",
		"    |□ ■ □ ■|     |■ □ ■ □|     |□ ■ ■ □|     |□ ■ ■ □|     |□ ■ □ ■|",
	}, "\n")
	require.Empty(t, cmp.Diff(want, tbl.SignDistribution()))
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderKeepsLayout(t *testing.T) {
	tbl := build(t, algebra.DefaultConfig(), cayley.Full)
	theme := cayley.DefaultTheme()

	require.Equal(t, tbl.SignString(), ansi.ReplaceAllString(tbl.Render(theme, true), ""))
	require.Equal(t, tbl.String(), ansi.ReplaceAllString(tbl.Render(theme, false), ""))
}

func TestTableFollowsAllowedOrder(t *testing.T) {
	allowed := algebra.DefaultAllowed()
	allowed[1] = "32"
	cfg, err := algebra.NewConfig(allowed, algebra.DefaultMetric, algebra.DefaultDivision)
	require.NoError(t, err)

	tbl := build(t, cfg, cayley.Full)
	got, err := tbl.Lookup("2", "3")
	require.NoError(t, err)
	require.True(t, got.Equal(cfg.MustAlpha("-32")))
	require.True(t, strings.HasPrefix(strings.Split(tbl.SignString(), "\n")[3], "α₃₂"))
}
