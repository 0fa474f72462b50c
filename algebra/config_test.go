// SPDX-License-Identifier: MIT
// Package algebra_test: Config construction, validation and mutation.

package algebra_test

import (
	"testing"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMetric covers the accepted and rejected metric spellings.
func TestParseMetric(t *testing.T) {
	m, err := algebra.ParseMetric("+---")
	require.NoError(t, err)
	require.Equal(t, algebra.DefaultMetric, m)
	require.Equal(t, "+---", m.String())

	for _, bad := range []string{"", "+--", "+----", "+-x-", "1111"} {
		_, err = algebra.ParseMetric(bad)
		require.ErrorIs(t, err, algebra.ErrInvalidMetric, bad)
	}

	m, err = algebra.MetricFromInts([]int{-1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, "-+++", m.String())

	_, err = algebra.MetricFromInts([]int{0, 1, 1, 1})
	require.ErrorIs(t, err, algebra.ErrInvalidMetric)
	_, err = algebra.MetricFromInts([]int{1, 1, 1})
	require.ErrorIs(t, err, algebra.ErrInvalidMetric)
}

// TestParseDivision accepts exactly "by" and "into".
func TestParseDivision(t *testing.T) {
	d, err := algebra.ParseDivision("by")
	require.NoError(t, err)
	require.Equal(t, algebra.DivisionBy, d)

	d, err = algebra.ParseDivision("into")
	require.NoError(t, err)
	require.Equal(t, algebra.DivisionInto, d)

	_, err = algebra.ParseDivision("over")
	require.ErrorIs(t, err, algebra.ErrInvalidDivision)
}

// TestNewConfigRejectsBadAllowed checks count, alphabet and duplicate rules.
func TestNewConfigRejectsBadAllowed(t *testing.T) {
	base := algebra.DefaultAllowed()

	cases := map[string][]string{
		"too few":       base[:15],
		"too many":      append(algebra.DefaultAllowed(), "p"),
		"bad character": replace(base, 1, "24"),
		"repeated char": replace(base, 1, "22"),
		"same subset":   replace(base, 2, "32"), // "23" already present
		"duplicate":     replace(base, 1, "31"),
		"empty label":   replace(base, 1, ""),
	}
	for name, allowed := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := algebra.NewConfig(allowed, algebra.DefaultMetric, algebra.DivisionInto)
			require.ErrorIs(t, err, algebra.ErrInvalidAllowed)
		})
	}

	_, err := algebra.NewConfig(base, algebra.Metric{1, 0, 1, 1}, algebra.DivisionInto)
	require.ErrorIs(t, err, algebra.ErrInvalidMetric)

	_, err = algebra.NewConfig(base, algebra.DefaultMetric, algebra.Division(7))
	require.ErrorIs(t, err, algebra.ErrInvalidDivision)
}

func replace(in []string, i int, v string) []string {
	out := append([]string(nil), in...)
	out[i] = v

	return out
}

// TestMutationIsAllOrNothing verifies rejected assignments leave the Config untouched.
func TestMutationIsAllOrNothing(t *testing.T) {
	cfg := algebra.DefaultConfig()
	before := cfg.String()
	v := cfg.Version()

	require.ErrorIs(t, cfg.SetMetric(algebra.Metric{1, 1, 1, 0}), algebra.ErrInvalidMetric)
	require.ErrorIs(t, cfg.SetAllowed([]string{"p"}), algebra.ErrInvalidAllowed)
	require.ErrorIs(t, cfg.SetDivision(0), algebra.ErrInvalidDivision)

	require.Equal(t, before, cfg.String())
	require.Equal(t, v, cfg.Version())
}

// TestSetAndReset applies new parameters and restores the originals.
func TestSetAndReset(t *testing.T) {
	cfg := algebra.DefaultConfig()

	m, _ := algebra.ParseMetric("-+++")
	require.NoError(t, cfg.SetMetric(m))
	require.NoError(t, cfg.SetDivision(algebra.DivisionBy))
	reordered := replace(algebra.DefaultAllowed(), 2, "13")
	require.NoError(t, cfg.SetAllowed(reordered))

	require.Equal(t, m, cfg.Metric())
	require.Equal(t, algebra.DivisionBy, cfg.Division())
	require.Equal(t, reordered, cfg.Allowed())
	require.Equal(t, uint64(3), cfg.Version())

	cfg.Reset()
	require.Equal(t, algebra.DefaultMetric, cfg.Metric())
	require.Equal(t, algebra.DefaultAllowed(), cfg.Allowed())
	require.Equal(t, algebra.DivisionBy, cfg.Division()) // division is not part of Reset
}

// TestCloneAndEqual checks independence of clones.
func TestCloneAndEqual(t *testing.T) {
	cfg := algebra.DefaultConfig()
	clone := cfg.Clone()
	require.True(t, cfg.Equal(clone))

	require.NoError(t, clone.SetDivision(algebra.DivisionBy))
	require.False(t, cfg.Equal(clone))
	require.Equal(t, algebra.DivisionInto, cfg.Division())
}

// TestConfigString checks the summary renderings.
func TestConfigString(t *testing.T) {
	cfg := algebra.DefaultConfig()
	require.Equal(t, "[+--- / into] p,23,31,12,0,023,031,012,123,1,2,3,0123,01,02,03", cfg.String())
	assert.Contains(t, cfg.Details(), "Metric:         +---")
	assert.Contains(t, cfg.Details(), "Division type:  into")
}

// TestGroupings checks the derived 3-vector groupings and zets.
func TestGroupings(t *testing.T) {
	cfg := algebra.DefaultConfig()

	require.Equal(t, "123", cfg.H())
	require.Equal(t, "0123", cfg.Q())
	require.Equal(t, []string{"23", "31", "12"}, cfg.B())
	require.Equal(t, []string{"023", "031", "012"}, cfg.T())
	require.Equal(t, []string{"1", "2", "3"}, cfg.A())
	require.Equal(t, []string{"01", "02", "03"}, cfg.E())

	require.Equal(t, [4]string{"p", "23", "31", "12"}, cfg.ZetElements(algebra.ZetB))
	require.Equal(t, [4]string{"0123", "01", "02", "03"}, cfg.ZetElements(algebra.ZetE))

	groups := cfg.XiGroups()
	require.Equal(t, []string{"1", "2", "3"}, groups["i"])
	require.Equal(t, []string{"01", "02", "03"}, groups["0i"])
	require.Equal(t, []string{"p", "0", "123", "0123", "i", "0i", "jk", "0jk"}, cfg.AllowedGroups())
}

// TestZetAndOrientation classifies labels regardless of character order.
func TestZetAndOrientation(t *testing.T) {
	cases := []struct {
		index string
		zet   algebra.Zet
		orien algebra.Orientation
	}{
		{"p", algebra.ZetB, algebra.OrientationT},
		{"32", algebra.ZetB, algebra.OrientationX},
		{"0", algebra.ZetT, algebra.OrientationT},
		{"013", algebra.ZetT, algebra.OrientationY},
		{"123", algebra.ZetA, algebra.OrientationT},
		{"3", algebra.ZetA, algebra.OrientationZ},
		{"3210", algebra.ZetE, algebra.OrientationT},
		{"10", algebra.ZetE, algebra.OrientationX},
	}
	for _, tc := range cases {
		z, err := algebra.ZetOf(tc.index)
		require.NoError(t, err)
		require.Equal(t, tc.zet, z, tc.index)

		o, err := algebra.OrientationOf(tc.index)
		require.NoError(t, err)
		require.Equal(t, tc.orien, o, tc.index)
	}

	_, err := algebra.ZetOf("4")
	require.ErrorIs(t, err, algebra.ErrInvalidIndex)
}

// TestReorderAllowed regroups the default ordering.
func TestReorderAllowed(t *testing.T) {
	same, err := algebra.ReorderAllowed(algebra.DefaultAllowed(), "pBtThAqE")
	require.NoError(t, err)
	require.Equal(t, algebra.DefaultAllowed(), same)

	out, err := algebra.ReorderAllowed(algebra.DefaultAllowed(), "ptqhBTAE")
	require.NoError(t, err)
	require.Equal(t, []string{"p", "0", "0123", "123"}, out[:4])

	_, err = algebra.ReorderAllowed(algebra.DefaultAllowed(), "pBt")
	require.ErrorIs(t, err, algebra.ErrInvalidAllowed)
	_, err = algebra.ReorderAllowed(algebra.DefaultAllowed(), "pBtThAqX")
	require.ErrorIs(t, err, algebra.ErrInvalidAllowed)
}
