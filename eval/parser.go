// SPDX-License-Identifier: MIT
// Package eval: eager recursive-descent evaluation of a token stream.

package eval

import (
	"strings"

	"github.com/katalvlaran/arcalc/algebra"
)

// parser evaluates tokens against one snapshot of the bindings.
type parser struct {
	text  string
	cfg   *algebra.Config
	names func(string) (algebra.Value, bool)
}

// parse evaluates toks left to right. end is the byte offset reported when
// an operand is missing at the end of toks.
//
// Implementation:
//   - Values, groups, projections and commutators combine with a value
//     already to their left by the full product.
//   - A binary operator evaluates all remaining tokens as its right operand.
//   - '!' conjugates the value to its left.
func (p *parser) parse(toks []token, end int) (algebra.Value, error) {
	var prev algebra.Value

	for i := 0; i < len(toks); {
		tok := toks[i]
		switch tok.kind {
		case tokAlpha, tokTerm, tokSet, tokDiff, tokName:
			val, err := p.literal(tok)
			if err != nil {
				return nil, err
			}
			if prev, err = p.adjacent(prev, val); err != nil {
				return nil, err
			}
			i++

		case tokLParen:
			j, err := p.closing(toks, i)
			if err != nil {
				return nil, err
			}
			val, err := p.sub(toks[i+1:j], toks[j].pos, "()")
			if err != nil {
				return nil, err
			}
			if prev, err = p.adjacent(prev, val); err != nil {
				return nil, err
			}
			i = j + 1

		case tokLAngle:
			j, err := p.closing(toks, i)
			if err != nil {
				return nil, err
			}
			arg, err := p.sub(toks[i+1:j], toks[j].pos, "<>")
			if err != nil {
				return nil, err
			}
			if j+1 >= len(toks) || toks[j+1].kind != tokIndex {
				return nil, syntaxErr(p.text, toks[j].pos, ErrMissingIndex, "projection needs a grade 0..4")
			}
			val, err := p.cfg.Project(arg, int(toks[j+1].text[0]-'0'))
			if err != nil {
				return nil, err
			}
			if prev, err = p.adjacent(prev, val); err != nil {
				return nil, err
			}
			i = j + 2

		case tokLSquare:
			j, err := p.closing(toks, i)
			if err != nil {
				return nil, err
			}
			comma := topLevelComma(toks, i+1, j)
			if comma < 0 {
				return nil, syntaxErr(p.text, tok.pos, ErrSyntax, "commutator needs [lhs, rhs]")
			}
			lhs, err := p.sub(toks[i+1:comma], toks[comma].pos, "[,")
			if err != nil {
				return nil, err
			}
			rhs, err := p.sub(toks[comma+1:j], toks[j].pos, ",]")
			if err != nil {
				return nil, err
			}
			val, err := p.cfg.Commutator(lhs, rhs)
			if err != nil {
				return nil, err
			}
			if prev, err = p.adjacent(prev, val); err != nil {
				return nil, err
			}
			i = j + 1

		case tokFull, tokBy, tokInto, tokPlus:
			if prev == nil {
				return nil, syntaxErr(p.text, tok.pos, ErrMissingOperand, "%q needs a left operand", tok.text)
			}
			if i+1 >= len(toks) {
				return nil, syntaxErr(p.text, end, ErrMissingOperand, "%q needs a right operand", tok.text)
			}
			rhs, err := p.parse(toks[i+1:], end)
			if err != nil {
				return nil, err
			}

			return p.binary(tok.kind, prev, rhs)

		case tokDagger:
			if prev == nil {
				return nil, syntaxErr(p.text, tok.pos, ErrMissingOperand, `"!" needs a left operand`)
			}
			val, err := p.cfg.Hermitian(prev)
			if err != nil {
				return nil, err
			}
			prev = val
			i++

		case tokRParen, tokRAngle, tokRSquare, tokRCurly:
			return nil, syntaxErr(p.text, tok.pos, ErrUnbalanced, "unexpected %q", tok.text)

		default:
			return nil, syntaxErr(p.text, tok.pos, ErrSyntax, "unexpected %q", tok.text)
		}
	}

	if prev == nil {
		return nil, syntaxErr(p.text, end, ErrEmptyExpression, "nothing to evaluate")
	}

	return prev, nil
}

// sub evaluates a bracketed group; an empty group is an error.
func (p *parser) sub(toks []token, end int, brackets string) (algebra.Value, error) {
	if len(toks) == 0 {
		return nil, syntaxErr(p.text, end, ErrEmptyExpression, "empty %s", brackets)
	}

	return p.parse(toks, end)
}

// adjacent combines juxtaposed values by the full product.
func (p *parser) adjacent(prev, val algebra.Value) (algebra.Value, error) {
	if prev == nil {
		return val, nil
	}

	return p.cfg.Full(prev, val)
}

func (p *parser) binary(kind tokenKind, lhs, rhs algebra.Value) (algebra.Value, error) {
	switch kind {
	case tokBy:
		return p.cfg.DivBy(lhs, rhs)
	case tokInto:
		return p.cfg.DivInto(lhs, rhs)
	case tokPlus:
		return p.cfg.Add(lhs, rhs)
	default:
		return p.cfg.Full(lhs, rhs)
	}
}

// literal resolves a value token.
func (p *parser) literal(tok token) (algebra.Value, error) {
	switch tok.kind {
	case tokAlpha:
		return p.cfg.Alpha(tok.text)
	case tokTerm:
		return p.cfg.Term(tok.text)
	case tokSet:
		return p.cfg.MultiVector(tok.text)
	case tokDiff:
		labels := strings.FieldsFunc(tok.text, func(r rune) bool { return r == ' ' || r == ',' })
		return algebra.NewDifferential(p.cfg, labels...)
	}

	v, ok := p.names(tok.text)
	if !ok {
		return nil, syntaxErr(p.text, tok.pos, ErrUndefinedName, "%q is not defined", tok.text)
	}
	if tok.neg {
		return algebra.Negate(v)
	}

	return v, nil
}

var closerOf = map[tokenKind]tokenKind{
	tokLParen:  tokRParen,
	tokLAngle:  tokRAngle,
	tokLSquare: tokRSquare,
}

// closing returns the index of the bracket closing toks[open], matching
// nested brackets of every kind.
func (p *parser) closing(toks []token, open int) (int, error) {
	stack := []tokenKind{closerOf[toks[open].kind]}
	for j := open + 1; j < len(toks); j++ {
		k := toks[j].kind
		if c, ok := closerOf[k]; ok {
			stack = append(stack, c)
			continue
		}
		switch k {
		case tokRParen, tokRAngle, tokRSquare:
			if stack[len(stack)-1] != k {
				return 0, syntaxErr(p.text, toks[j].pos, ErrUnbalanced, "unexpected %q", toks[j].text)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j, nil
			}
		}
	}

	return 0, syntaxErr(p.text, toks[open].pos, ErrUnbalanced, "%q is never closed", toks[open].text)
}

// topLevelComma finds the first comma in toks[from:to] outside nested brackets.
func topLevelComma(toks []token, from, to int) int {
	depth := 0
	for j := from; j < to; j++ {
		switch toks[j].kind {
		case tokLParen, tokLAngle, tokLSquare:
			depth++
		case tokRParen, tokRAngle, tokRSquare:
			depth--
		case tokComma:
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}
