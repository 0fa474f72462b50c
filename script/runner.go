// SPDX-License-Identifier: MIT
// Package script: parsing and running calculation scripts.

package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/arcalc/algebra"
	"github.com/katalvlaran/arcalc/eval"
)

// Runner executes calculation scripts. A Runner holds no per-run state and
// is safe for concurrent use; every run gets its own Config and Context.
type Runner struct {
	log      *zap.Logger
	allowed  []string
	metric   algebra.Metric
	division algebra.Division
	format   Format
}

// NewRunner applies opts over the defaults (nop logger, DefaultConfig, Plain).
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		log:      zap.NewNop(),
		allowed:  algebra.DefaultAllowed(),
		metric:   algebra.DefaultMetric,
		division: algebra.DefaultDivision,
		format:   Plain,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

type stmtKind int

const (
	stmtEcho     stmtKind = iota // blank line or # comment
	stmtAllowed                  // // ALLOWED: ...
	stmtMetric                   // // METRIC: ...
	stmtModifier                 // // TEX and friends
	stmtVector                   // name = {...}
	stmtOperator                 // name = <...>
	stmtStep                     // name = expr
	stmtShow                     // expr
)

// statement is one classified script line.
type statement struct {
	line    int
	kind    stmtKind
	text    string
	name    string
	expr    string
	allowed []string
	metric  algebra.Metric
	err     error // classification failure, reported when the line runs
}

// Run reads a script from in and runs it. See RunLines.
func (r *Runner) Run(ctx context.Context, in io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}

	return r.RunLines(ctx, lines)
}

// RunLines runs the script lines in order and returns the report.
//
// The returned error combines one *LineError per failing line (use
// multierr.Errors to list them); the report is complete regardless. A
// cancelled ctx stops the run between lines and is returned alongside.
func (r *Runner) RunLines(ctx context.Context, lines []string) ([]string, error) {
	stmts, allowed, metric := r.classify(lines)

	var out []string
	if allowed == nil {
		allowed = r.allowed
		out = append(out, "// ALLOWED: "+strings.Join(allowed, " "))
	}
	if metric == nil {
		metric = &r.metric
		out = append(out, "// METRIC: "+metric.String())
	}

	cfg, err := algebra.NewConfig(allowed, *metric, r.division)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	ectx, err := eval.NewContext(cfg, eval.WithLogger(r.log))
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	r.log.Info("script started", zap.Int("lines", len(lines)), zap.Stringer("config", cfg))

	var (
		errs error
		next = map[int]Format{} // line number -> modifier
	)
	for _, st := range stmts {
		if cerr := ctx.Err(); cerr != nil {
			return out, multierr.Append(errs, cerr)
		}
		format, ok := next[st.line]
		if !ok {
			format = r.format
		}

		rep, err := r.exec(ectx, st, format, next)
		out = append(out, rep...)
		if err != nil {
			le := &LineError{Line: st.line, Text: st.text, Err: err}
			r.log.Warn("line failed", zap.Int("line", st.line), zap.String("text", st.text), zap.Error(err))
			out = append(out, "ERROR "+le.Error())
			errs = multierr.Append(errs, le)
		}
	}

	return out, errs
}

// classify turns raw lines into statements and picks the first valid
// ALLOWED and METRIC directives as the seed configuration.
func (r *Runner) classify(lines []string) ([]statement, []string, *algebra.Metric) {
	var (
		stmts   = make([]statement, 0, len(lines))
		allowed []string
		metric  *algebra.Metric
	)
	for i, raw := range lines {
		st := classifyLine(i+1, strings.TrimSpace(raw), r.division)
		switch {
		case st.err != nil:
		case st.kind == stmtAllowed && allowed == nil:
			allowed = st.allowed
		case st.kind == stmtMetric && metric == nil:
			m := st.metric
			metric = &m
		}
		stmts = append(stmts, st)
	}

	return stmts, allowed, metric
}

func classifyLine(n int, text string, division algebra.Division) statement {
	st := statement{line: n, text: text}

	switch {
	case text == "" || strings.HasPrefix(text, "#"):
		st.kind = stmtEcho

	case strings.HasPrefix(text, "//"):
		body := strings.TrimSpace(text[2:])
		if rest, ok := strings.CutPrefix(body, "ALLOWED:"); ok {
			st.kind = stmtAllowed
			st.allowed = strings.Fields(rest)
			if _, err := algebra.NewConfig(st.allowed, algebra.DefaultMetric, division); err != nil {
				st.err = fmt.Errorf("%w: %w", ErrInvalidDirective, err)
			}
			break
		}
		if rest, ok := strings.CutPrefix(body, "METRIC:"); ok {
			st.kind = stmtMetric
			m, err := algebra.ParseMetric(strings.TrimSpace(rest))
			if err != nil {
				st.err = fmt.Errorf("%w: %w", ErrInvalidDirective, err)
			}
			st.metric = m
			break
		}
		st.kind = stmtModifier
		st.name = body
		if _, ok := modifiers[body]; !ok {
			st.err = fmt.Errorf("%q: %w", body, ErrUnknownModifier)
		}

	default:
		name, expr, ok := strings.Cut(text, "=")
		if !ok {
			st.kind, st.expr = stmtShow, text
			break
		}
		st.name, st.expr = strings.TrimSpace(name), strings.TrimSpace(expr)
		switch {
		case st.name == "" || st.expr == "":
			st.err = fmt.Errorf("assignment needs a name and a value: %w", ErrInvalidStatement)
		case strings.HasPrefix(st.expr, "{") && strings.HasSuffix(st.expr, "}"):
			st.kind = stmtVector
		case operatorLiteral(st.expr):
			st.kind = stmtOperator
		default:
			st.kind = stmtStep
		}
	}

	return st
}

// operatorLiteral matches "<...>" holding only labels, commas and spaces.
func operatorLiteral(expr string) bool {
	inner, ok := strings.CutPrefix(expr, "<")
	if !ok {
		return false
	}
	inner, ok = strings.CutSuffix(inner, ">")

	return ok && strings.Trim(inner, "p0123, -") == "" && strings.Trim(inner, ", -") != ""
}

// exec runs one statement and returns its report lines.
func (r *Runner) exec(ectx *eval.Context, st statement, format Format, next map[int]Format) ([]string, error) {
	r.log.Debug("line", zap.Int("line", st.line), zap.String("text", st.text))
	if st.err != nil {
		if st.kind == stmtAllowed || st.kind == stmtMetric {
			return []string{st.text}, st.err
		}
		return nil, st.err
	}

	switch st.kind {
	case stmtEcho:
		return []string{st.text}, nil

	case stmtAllowed:
		if err := ectx.SetAllowed(st.allowed); err != nil {
			return []string{st.text}, err
		}
		r.log.Info("directive applied", zap.Int("line", st.line), zap.Strings("allowed", st.allowed))
		return []string{st.text}, nil

	case stmtMetric:
		if err := ectx.SetMetric(st.metric.String()); err != nil {
			return []string{st.text}, err
		}
		r.log.Info("directive applied", zap.Int("line", st.line), zap.Stringer("metric", st.metric))
		return []string{st.text}, nil

	case stmtModifier:
		next[st.line+1] = modifiers[st.name]
		return nil, nil

	case stmtShow:
		v, err := ectx.Eval(st.expr)
		if err != nil {
			return nil, err
		}
		return labelled(st.expr, format.Render(v)), nil
	}

	v, err := ectx.Eval(st.expr)
	if err != nil {
		return nil, err
	}
	if err = ectx.Bind(st.name, v); err != nil {
		return nil, err
	}

	switch st.kind {
	case stmtVector:
		return labelled(st.name, format.Render(v)), nil
	case stmtOperator:
		return labelled(st.name, Plain.Render(v)), nil
	}

	return append([]string{st.name + " = " + st.expr}, strings.Split(format.Render(v), "\n")...), nil
}

// labelled prefixes the first line of a rendering with "label = ".
func labelled(label, rendered string) []string {
	lines := strings.Split(rendered, "\n")
	lines[0] = label + " = " + lines[0]

	return lines
}
