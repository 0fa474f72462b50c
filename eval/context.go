// SPDX-License-Identifier: MIT
// Package eval: Context, a Config plus its named values.

package eval

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/arcalc/algebra"
)

// Context evaluates expressions against a Config.
//
// Names resolve against the user bindings (Bind), then the standard
// bindings, then the per-call scope (WithScope). The standard bindings are
// rebuilt whenever the Config's version moves. A Context is safe for
// concurrent use.
type Context struct {
	cfg *algebra.Config
	log *zap.Logger

	mu      sync.RWMutex
	std     map[string]algebra.Value
	user    map[string]algebra.Value
	version uint64

	pending map[string]algebra.Value // WithBindings, drained by NewContext
}

// Result is the outcome of evaluating one line in EvalAll.
type Result struct {
	Text  string
	Value algebra.Value
	Err   error
}

// NewContext binds cfg (DefaultConfig when nil) and builds the standard
// bindings.
//
// Errors:
//   - ErrInvalidName for a WithBindings name the lexer cannot resolve.
//   - any algebra error raised while deriving the standard bindings.
func NewContext(cfg *algebra.Config, opts ...Option) (*Context, error) {
	if cfg == nil {
		cfg = algebra.DefaultConfig()
	}
	c := &Context{
		cfg:     cfg,
		log:     zap.NewNop(),
		user:    make(map[string]algebra.Value),
		pending: make(map[string]algebra.Value),
	}
	for _, opt := range opts {
		opt(c)
	}
	for name, v := range c.pending {
		if err := c.Bind(name, v); err != nil {
			return nil, fmt.Errorf("NewContext: %w", err)
		}
	}
	c.pending = nil

	if err := c.refresh(); err != nil {
		return nil, fmt.Errorf("NewContext: %w", err)
	}

	return c, nil
}

// MustContext is NewContext for tests and examples; it panics on error.
func MustContext(cfg *algebra.Config, opts ...Option) *Context {
	c, err := NewContext(cfg, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Config returns the bound configuration.
func (c *Context) Config() *algebra.Config { return c.cfg }

// refresh rebuilds the standard bindings if the Config changed.
func (c *Context) refresh() error {
	v := c.cfg.Version()

	c.mu.RLock()
	fresh := c.std != nil && c.version == v
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	std, err := standardBindings(c.cfg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.std, c.version = std, v
	c.mu.Unlock()
	c.log.Debug("standard bindings rebuilt", zap.Uint64("version", v), zap.Stringer("config", c.cfg))

	return nil
}

// Bind adds or replaces a user binding.
//
// Errors:
//   - ErrInvalidName if name would lex as anything but a plain name (for
//     example "a12" or "p0"), or v is nil.
func (c *Context) Bind(name string, v algebra.Value) error {
	if !validName(name) {
		return fmt.Errorf("Bind(%q): %w", name, ErrInvalidName)
	}
	if algebra.KindOf(v) == algebra.KindInvalid {
		return fmt.Errorf("Bind(%q): nil value: %w", name, ErrInvalidName)
	}

	c.mu.Lock()
	c.user[name] = v
	c.mu.Unlock()

	return nil
}

// Unbind removes a user binding and reports whether it existed.
func (c *Context) Unbind(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.user[name]
	delete(c.user, name)

	return ok
}

// Lookup resolves name against the user then the standard bindings.
// MultiVectors are returned as copies.
func (c *Context) Lookup(name string) (algebra.Value, bool) {
	if err := c.refresh(); err != nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lookupLocked(name)
}

func (c *Context) lookupLocked(name string) (algebra.Value, bool) {
	v, ok := c.user[name]
	if !ok {
		v, ok = c.std[name]
	}
	if m, isMV := v.(*algebra.MultiVector); ok && isMV {
		return m.Clone(), true
	}

	return v, ok
}

// Names lists every bound name, sorted.
func (c *Context) Names() []string {
	_ = c.refresh()

	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.std)+len(c.user))
	for k := range c.std {
		seen[k] = true
	}
	for k := range c.user {
		seen[k] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// SetMetric parses and applies a "+---" style metric, then rebuilds the
// standard bindings. An invalid metric leaves everything unchanged.
func (c *Context) SetMetric(metric string) error {
	m, err := algebra.ParseMetric(metric)
	if err != nil {
		return err
	}
	if err = c.cfg.SetMetric(m); err != nil {
		return err
	}
	c.log.Info("metric changed", zap.String("metric", metric))

	return c.refresh()
}

// SetAllowed applies a new allowed ordering, then rebuilds the standard
// bindings. User bindings keep their old ordering and will report
// algebra.ErrConfigMismatch when combined with new values.
func (c *Context) SetAllowed(allowed []string) error {
	if err := c.cfg.SetAllowed(allowed); err != nil {
		return err
	}
	c.log.Info("allowed changed", zap.Strings("allowed", allowed))

	return c.refresh()
}

// SetDivision applies "by" or "into".
func (c *Context) SetDivision(division string) error {
	d, err := algebra.ParseDivision(division)
	if err != nil {
		return err
	}
	if err = c.cfg.SetDivision(d); err != nil {
		return err
	}
	c.log.Info("division changed", zap.String("division", division))

	return c.refresh()
}

// Eval evaluates text. It never mutates the Config.
//
// Errors:
//   - *SyntaxError for malformed text or undefined names.
//   - algebra errors (ErrUnsupportedOperands, ErrConfigMismatch, ...) unchanged.
func (c *Context) Eval(text string, opts ...EvalOption) (algebra.Value, error) {
	o := gatherEvalOptions(opts)

	v, err := c.eval(text, o)
	if err != nil {
		c.log.Warn("evaluation failed", zap.String("expr", text), zap.Error(err))
		return nil, err
	}
	if m, ok := v.(*algebra.MultiVector); ok && o.cancel {
		v = m.Clone().CancelTerms()
	}
	c.log.Debug("evaluated", zap.String("expr", text), zap.Stringer("kind", v.Kind()))

	return v, nil
}

// MustEval is Eval for literal input; it panics on error.
func (c *Context) MustEval(text string, opts ...EvalOption) algebra.Value {
	v, err := c.Eval(text, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

func (c *Context) eval(text string, o evalOptions) (algebra.Value, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	if err = c.refresh(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p := &parser{
		text: text,
		cfg:  c.cfg,
		names: func(name string) (algebra.Value, bool) {
			if v, ok := c.lookupLocked(name); ok {
				return v, true
			}
			v, ok := o.scope[name]
			return v, ok && algebra.KindOf(v) != algebra.KindInvalid
		},
	}

	return p.parse(toks, len(text))
}

// EvalAll evaluates each line independently; a failing line does not stop
// the batch.
func (c *Context) EvalAll(lines []string, opts ...EvalOption) []Result {
	out := make([]Result, len(lines))
	for i, line := range lines {
		v, err := c.Eval(line, opts...)
		out[i] = Result{Text: line, Value: v, Err: err}
	}

	return out
}

// validName reports whether name lexes as a single plain name.
func validName(name string) bool {
	if name == "" || !isWordStart(name[0]) {
		return false
	}
	tok, n := lexWord(name, 0)

	return n == len(name) && tok.kind == tokName
}
