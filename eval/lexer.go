// SPDX-License-Identifier: MIT
// Package eval: lexer.
//
// The lexer only classifies text; names and literals are resolved to values
// by the parser when they are consumed.

package eval

import "strings"

type tokenKind int

const (
	tokAlpha   tokenKind = iota // a12, -ap
	tokTerm                     // p12, -p0
	tokSet                      // {1 2 3}
	tokDiff                     // <0 1 2 3>
	tokName                     // A, -zet_B
	tokIndex                    // 0..4
	tokLParen                   // (
	tokRParen                   // )
	tokLAngle                   // <
	tokRAngle                   // >
	tokLSquare                  // [
	tokRSquare                  // ]
	tokRCurly                   // } without an opening brace
	tokPlus                     // +
	tokMinus                    // - not attached to a word
	tokComma                    // ,
	tokFull                     // ^
	tokBy                       // /
	tokInto                     // \
	tokDot                      // .
	tokDagger                   // !
)

// token is one lexeme. For alpha and term literals text holds the signed
// index ("-12"); for sets and differentials it holds the inner text.
type token struct {
	kind tokenKind
	text string
	pos  int
	neg  bool // names only
}

// diffChars are the characters allowed inside a differential literal.
const diffChars = "p0123, -"

var punct = map[byte]tokenKind{
	'(': tokLParen, ')': tokRParen,
	'[': tokLSquare, ']': tokRSquare,
	'>': tokRAngle, '}': tokRCurly,
	'+': tokPlus, ',': tokComma,
	'^': tokFull, '/': tokBy, '\\': tokInto,
	'.': tokDot, '!': tokDagger,
}

// lex scans text into tokens.
//
// Errors:
//   - *SyntaxError(ErrUnbalanced) for a '{' without its '}'.
//   - *SyntaxError(ErrSyntax) for a character outside the grammar.
func lex(text string) ([]token, error) {
	var toks []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, syntaxErr(text, i, ErrUnbalanced, `"{" without "}"`)
			}
			toks = append(toks, token{kind: tokSet, text: text[i+1 : i+end], pos: i})
			i += end + 1

		case c == '<':
			if inner, ok := diffLiteral(text[i+1:]); ok {
				toks = append(toks, token{kind: tokDiff, text: inner, pos: i})
				i += len(inner) + 2
				continue
			}
			toks = append(toks, token{kind: tokLAngle, text: "<", pos: i})
			i++

		case c == '-' && i+1 < len(text) && isWordStart(text[i+1]):
			tok, n := lexWord(text[i+1:], i+1)
			tok.pos = i
			switch tok.kind {
			case tokAlpha, tokTerm:
				tok.text = "-" + tok.text
			default:
				tok.neg = true
			}
			toks = append(toks, tok)
			i += n + 1

		case isWordStart(c):
			tok, n := lexWord(text[i:], i)
			toks = append(toks, tok)
			i += n

		case c >= '0' && c <= '4':
			toks = append(toks, token{kind: tokIndex, text: text[i : i+1], pos: i})
			i++

		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++

		default:
			kind, ok := punct[c]
			if !ok {
				return nil, syntaxErr(text, i, ErrSyntax, "unexpected character %q", c)
			}
			toks = append(toks, token{kind: kind, text: text[i : i+1], pos: i})
			i++
		}
	}

	return toks, nil
}

// diffLiteral reports whether s starts with the body of a differential
// literal, i.e. only diffChars up to a closing '>' and at least one label.
func diffLiteral(s string) (string, bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", false
	}
	inner := s[:end]
	if strings.Trim(inner, diffChars) != "" || strings.Trim(inner, ", -") == "" {
		return "", false
	}

	return inner, true
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}

// lexWord consumes a maximal identifier and classifies it. An identifier is
// an alpha or term literal only if the whole word matches.
func lexWord(s string, pos int) (token, int) {
	n := 1
	for n < len(s) && isWordChar(s[n]) {
		n++
	}
	word := s[:n]

	switch {
	case word == "ap":
		return token{kind: tokAlpha, text: "p", pos: pos}, n
	case word[0] == 'a' && isGenerators(word[1:]):
		return token{kind: tokAlpha, text: word[1:], pos: pos}, n
	case word[0] == 'p' && isGenerators(word[1:]):
		return token{kind: tokTerm, text: word[1:], pos: pos}, n
	}

	return token{kind: tokName, text: word, pos: pos}, n
}

// isGenerators matches [0123]{1,4}.
func isGenerators(s string) bool {
	if len(s) == 0 || len(s) > 4 {
		return false
	}

	return strings.Trim(s, "0123") == ""
}
