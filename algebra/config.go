// SPDX-License-Identifier: MIT
// Package algebra: Config, the parameter set every operation is relative to.
//
// A Config is mutable in place but never partially updated: each setter
// validates its input completely before committing, so a rejected assignment
// leaves the Config (and its product cache) exactly as it was.

package algebra

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// defaultAllowed is the pBtThAqE ordering of the 16 labels.
var defaultAllowed = []string{
	"p", "23", "31", "12", // ΞB
	"0", "023", "031", "012", // ΞT
	"123", "1", "2", "3", // ΞA
	"0123", "01", "02", "03", // ΞE
}

// DefaultMetric is the space-time metric +---.
var DefaultMetric = Metric{Positive, Negative, Negative, Negative}

// DefaultDivision is the division convention used by DefaultConfig.
const DefaultDivision = DivisionInto

// DefaultAllowed returns a fresh copy of the default allowed ordering.
func DefaultAllowed() []string {
	out := make([]string, len(defaultAllowed))
	copy(out, defaultAllowed)

	return out
}

// Config binds an allowed ordering, a metric and a division convention.
//
// mu guards basis, metric and division; version increments on every
// committed change so dependants can detect that derived data is stale.
type Config struct {
	mu       sync.RWMutex
	basis    *Basis
	metric   Metric
	division Division

	// values supplied at construction, restored by Reset
	origAllowed []string
	origMetric  Metric

	version atomic.Uint64
	cache   *productCache
}

// NewConfig validates and builds a Config.
//
// Errors:
//   - ErrInvalidAllowed, ErrInvalidMetric, ErrInvalidDivision.
func NewConfig(allowed []string, metric Metric, division Division) (*Config, error) {
	basis, err := newBasis(allowed)
	if err != nil {
		return nil, fmt.Errorf("NewConfig: %w", err)
	}
	if err = metric.Validate(); err != nil {
		return nil, fmt.Errorf("NewConfig: %w", err)
	}
	if !division.Valid() {
		return nil, fmt.Errorf("NewConfig: %v: %w", division, ErrInvalidDivision)
	}

	c := &Config{
		basis:       basis,
		metric:      metric,
		division:    division,
		origAllowed: basis.Labels(),
		origMetric:  metric,
		cache:       newProductCache(),
	}

	return c, nil
}

// DefaultConfig returns a new Config with the default allowed set, +--- and "into".
func DefaultConfig() *Config {
	c, err := NewConfig(defaultAllowed, DefaultMetric, DefaultDivision)
	if err != nil {
		panic(err) // defaults are constant
	}

	return c
}

// MustConfig is NewConfig for literal arguments; it panics on error.
func MustConfig(allowed []string, metric string, division string) *Config {
	m, err := ParseMetric(metric)
	if err != nil {
		panic(err)
	}
	d, err := ParseDivision(division)
	if err != nil {
		panic(err)
	}
	c, err := NewConfig(allowed, m, d)
	if err != nil {
		panic(err)
	}

	return c
}

// Basis returns the current allowed-order snapshot.
func (c *Config) Basis() *Basis {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.basis
}

// Allowed returns a copy of the allowed labels in configured order.
func (c *Config) Allowed() []string { return c.Basis().Labels() }

// Metric returns the current metric.
func (c *Config) Metric() Metric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.metric
}

// Division returns the current division convention.
func (c *Config) Division() Division {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.division
}

// Version increases by one on every committed mutation.
func (c *Config) Version() uint64 { return c.version.Load() }

// SetAllowed replaces the allowed ordering. Validation happens before any
// state changes; on success the cache entries of the old signature are dropped.
func (c *Config) SetAllowed(allowed []string) error {
	basis, err := newBasis(allowed)
	if err != nil {
		return fmt.Errorf("SetAllowed: %w", err)
	}

	c.mu.Lock()
	old := signature(c.basis, c.metric)
	c.basis = basis
	c.mu.Unlock()

	c.cache.invalidate(old)
	c.version.Add(1)

	return nil
}

// SetMetric replaces the metric after validating it.
func (c *Config) SetMetric(m Metric) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("SetMetric: %w", err)
	}

	c.mu.Lock()
	old := signature(c.basis, c.metric)
	c.metric = m
	c.mu.Unlock()

	c.cache.invalidate(old)
	c.version.Add(1)

	return nil
}

// SetDivision replaces the division convention. Products do not depend on
// it, so the cache is kept.
func (c *Config) SetDivision(d Division) error {
	if !d.Valid() {
		return fmt.Errorf("SetDivision: %v: %w", d, ErrInvalidDivision)
	}

	c.mu.Lock()
	c.division = d
	c.mu.Unlock()
	c.version.Add(1)

	return nil
}

// Reset restores the allowed set and metric given at construction.
func (c *Config) Reset() {
	basis, err := newBasis(c.origAllowed)
	if err != nil {
		panic(err) // validated at construction
	}

	c.mu.Lock()
	old := signature(c.basis, c.metric)
	c.basis = basis
	c.metric = c.origMetric
	c.mu.Unlock()

	c.cache.invalidate(old)
	c.version.Add(1)
}

// Clone returns an independent Config with the same parameters and an
// empty cache. The clone's Reset target is its parent's current state.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		basis:       c.basis,
		metric:      c.metric,
		division:    c.division,
		origAllowed: c.basis.Labels(),
		origMetric:  c.metric,
		cache:       newProductCache(),
	}
}

// Equal compares allowed order, metric and division.
func (c *Config) Equal(o *Config) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c == o {
		return true
	}
	cb, cm, cd := c.state()
	ob, om, od := o.state()

	return cb.Same(ob) && cm == om && cd == od
}

// state snapshots the guarded fields.
func (c *Config) state() (*Basis, Metric, Division) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.basis, c.metric, c.division
}

// CacheStats reports the product cache counters.
func (c *Config) CacheStats() CacheStats { return c.cache.stats() }

// String renders "[+--- / into] p,23,...".
func (c *Config) String() string {
	b, m, d := c.state()

	return fmt.Sprintf("[%s / %s] %s", m, d, b)
}

// Details renders a multi-line human readable summary.
func (c *Config) Details() string {
	b, m, d := c.state()
	alphas := make([]string, BasisSize)
	for i, l := range b.labels {
		alphas[i] = "α" + l
	}

	return "Config Details:\n" +
		"===============\n" +
		"Allowed Alphas: {" + strings.Join(alphas, ", ") + "}\n" +
		"Metric:         " + m.String() + "\n" +
		"Division type:  " + d.String()
}

// signature keys cache entries to one (metric, allowed-order) pair.
func signature(b *Basis, m Metric) string {
	return m.String() + "|" + b.String()
}
