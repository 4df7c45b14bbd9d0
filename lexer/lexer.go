package lexer

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/opfix/opfix/token"
)

// Lexer is a pull iterator over the token.Lexeme stream of one source
// string. It satisfies the "iterator of lexemes" trait the shunt package
// requires: repeated calls to Next until it returns false.
type Lexer struct {
	input      string
	patterns   []registeredPattern
	whitespace *regexp2.Regexp

	pos    int
	line   int
	column int
}

// Next scans past any leading whitespace and returns the next lexeme.
// The second return is false once the input is exhausted. A byte or
// rune matched by no registered pattern is returned as a single-rune
// token.Error lexeme, so Next never fails outright — lexing, like
// shunting, is total.
func (l *Lexer) Next() (token.Lexeme, bool) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Lexeme{}, false
	}

	start := l.pos
	startPos := token.Position{Line: l.line, Column: l.column}

	bestLen := 0
	bestToken := token.Error
	found := false
	for _, p := range l.patterns {
		n := l.matchLen(p, l.pos)
		if n > bestLen {
			bestLen = n
			bestToken = p.token
			found = true
		}
	}

	if !found {
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if size == 0 {
			size = 1
		}
		text := l.input[l.pos : l.pos+size]
		l.advance(size)
		return token.Lexeme{Token: token.Error, Text: text, Start: start, End: start + size, Pos: startPos}, true
	}

	text := l.input[l.pos : l.pos+bestLen]
	l.advance(bestLen)
	return token.Lexeme{Token: bestToken, Text: text, Start: start, End: start + bestLen, Pos: startPos}, true
}

// matchLen returns how many bytes of l.input[pos:] pattern p matches, or
// 0 if it does not match there at all.
func (l *Lexer) matchLen(p registeredPattern, pos int) int {
	switch p.kind {
	case literalPattern:
		rest := l.input[pos:]
		if len(rest) >= len(p.literal) && rest[:len(p.literal)] == p.literal {
			return len(p.literal)
		}
		return 0
	case regexPattern:
		return regexMatchLen(p.re, l.input[pos:])
	default:
		return 0
	}
}

// regexMatchLen matches re against the start of s. Matching against a
// freshly sliced substring (rather than asking regexp2 to anchor at a
// byte offset into the full string) sidesteps the rune/byte indexing
// mismatch regexp2's Match.Index otherwise has relative to Go's
// byte-oriented strings.
func regexMatchLen(re *regexp2.Regexp, s string) int {
	if s == "" {
		return 0
	}
	m, err := re.FindStringMatchStartingAt(s, 0)
	if err != nil || m == nil || m.Index != 0 {
		return 0
	}
	return len(m.String())
}

func (l *Lexer) skipWhitespace() {
	for {
		n := regexMatchLen(l.whitespace, l.input[l.pos:])
		if n <= 0 {
			return
		}
		l.advance(n)
	}
}

func (l *Lexer) advance(n int) {
	end := l.pos + n
	for l.pos < end {
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if size == 0 {
			size = 1
		}
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos += size
	}
}
