package eval

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokInt
	tokFloat
	tokIdent
	tokOp // + - * / % ^ and ** (normalized to ^)
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// SyntaxError reports malformed expression text.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c|0x20 && c|0x20 <= 'z' || c == '_' }
func isAlnum(c byte) bool  { return isDigit(c) || isLetter(c) }

// lex splits src into tokens, ending with a tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			j, kind := scanNumber(src, i)
			toks = append(toks, token{kind, src[i:j], i})
			i = j
		case isLetter(c):
			j := i + 1
			for j < len(src) && isAlnum(src[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j], i})
			i = j
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{tokOp, "^", i})
			i += 2
		case strings.IndexByte("+-*/%^", c) >= 0:
			toks = append(toks, token{tokOp, src[i : i+1], i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		default:
			return nil, &SyntaxError{Expr: src, Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return append(toks, token{tokEOF, "", len(src)}), nil
}

// scanNumber returns the end of the numeric literal starting at i and
// whether it is an integer or a float. Trailing letters are kept in the
// literal so that the number parser reports them as invalid digits.
func scanNumber(src string, i int) (int, tokenKind) {
	kind := tokInt
	j := i
	if src[j] == '0' && j+1 < len(src) && strings.IndexByte("xXoObB", src[j+1]) >= 0 {
		hex := src[j+1]|0x20 == 'x'
		j += 2
		for j < len(src) {
			c := src[j]
			switch {
			case hex && c == '.':
				kind = tokFloat
			case hex && c|0x20 == 'p':
				kind = tokFloat
				if j+1 < len(src) && (src[j+1] == '+' || src[j+1] == '-') {
					j++
				}
			case !isAlnum(c):
				return j, kind
			}
			j++
		}
		return j, kind
	}

	for j < len(src) && (isDigit(src[j]) || src[j] == '_') {
		j++
	}
	if j < len(src) && src[j] == '.' {
		kind = tokFloat
		j++
		for j < len(src) && (isDigit(src[j]) || src[j] == '_') {
			j++
		}
	}
	if j < len(src) && src[j]|0x20 == 'e' {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			kind = tokFloat
			j = k
			for j < len(src) && isDigit(src[j]) {
				j++
			}
		}
	}
	for j < len(src) && isAlnum(src[j]) {
		j++
	}
	return j, kind
}
