package expr

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64 // valid for tokNumber
}

// TokenError reports an input byte that does not start any valid token,
// or a token found where the grammar does not allow one.
type TokenError struct {
	Pos int
	Got string
}

func (e *TokenError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("unexpected end of expression at %d", e.Pos)
	}
	return fmt.Sprintf("unexpected %q at %d", e.Got, e.Pos)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// tokenize splits src into tokens, always ending with tokEOF.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := src[start:i]
			n, err := strconv.ParseFloat(text, 64)
			if err != nil || strings.Count(text, ".") > 1 {
				return nil, &TokenError{Pos: start, Got: text}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: text, num: n})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})
		default:
			var k tokenKind
			switch c {
			case '+':
				k = tokPlus
			case '-':
				k = tokMinus
			case '*':
				k = tokStar
			case '/':
				k = tokSlash
			case '(':
				k = tokLParen
			case ')':
				k = tokRParen
			default:
				return nil, &TokenError{Pos: i, Got: string(c)}
			}
			toks = append(toks, token{kind: k, pos: i, text: string(c)})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}
