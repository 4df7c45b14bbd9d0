package lexer

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/opfix/opfix/token"
)

// UnicodeWhitespacePattern matches any run of Unicode whitespace,
// including the separator categories regular \s misses.
const UnicodeWhitespacePattern = `[\s\p{Z}]+`

// RegexError reports a pattern rejected by the regex engine.
type RegexError struct {
	Pattern string
	Err     error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *RegexError) Unwrap() error { return e.Err }

type patternKind int

const (
	literalPattern patternKind = iota
	regexPattern
)

type registeredPattern struct {
	kind    patternKind
	token   token.Token
	literal string
	re      *regexp2.Regexp
	name    string
}

// Builder accumulates the literal and regex patterns a Lexer will
// recognize, and mints a token.Token id for each. It is not safe for
// concurrent use; build the grammar on one goroutine, then share the
// resulting Parser freely. Each Lexer built from it keeps its own scan
// position and is not safe for concurrent use.
type Builder struct {
	whitespace   *regexp2.Regexp
	patterns     []registeredPattern
	names        map[token.Token]string
	literalIndex map[string]token.Token
	next         token.Token
}

// NewBuilder creates a Builder whose whitespace (skipped between
// lexemes) is matched by whitespaceRegex, in github.com/dlclark/regexp2
// syntax.
func NewBuilder(whitespaceRegex string) (*Builder, error) {
	re, err := regexp2.Compile(whitespaceRegex, regexp2.None)
	if err != nil {
		return nil, &RegexError{Pattern: whitespaceRegex, Err: err}
	}
	return &Builder{
		whitespace:   re,
		names:        map[token.Token]string{},
		literalIndex: map[string]token.Token{},
		next:         token.FirstUserToken,
	}, nil
}

// NewBuilderWithUnicodeWhitespace is NewBuilder(UnicodeWhitespacePattern).
func NewBuilderWithUnicodeWhitespace() (*Builder, error) {
	return NewBuilder(UnicodeWhitespacePattern)
}

// RegisterString registers an exact literal. Registering the same
// literal twice returns the same Token both times.
func (b *Builder) RegisterString(literal string) (token.Token, error) {
	if t, ok := b.literalIndex[literal]; ok {
		return t, nil
	}
	t := b.next
	b.next++
	b.patterns = append(b.patterns, registeredPattern{
		kind: literalPattern, token: t, literal: literal, name: literal,
	})
	b.literalIndex[literal] = t
	b.names[t] = literal
	return t, nil
}

// RegisterRegex registers a regex pattern under a display name used in
// error messages. Each call mints a fresh Token, even if the pattern is
// textually identical to one already registered.
func (b *Builder) RegisterRegex(pattern, name string) (token.Token, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return 0, &RegexError{Pattern: pattern, Err: err}
	}
	t := b.next
	b.next++
	b.patterns = append(b.patterns, registeredPattern{
		kind: regexPattern, token: t, re: re, name: name,
	})
	b.names[t] = name
	return t, nil
}

// Name returns the display name a token was registered under, or "?" if
// it is not one of this builder's tokens (e.g. Error/Blank/Juxtapose).
func (b *Builder) Name(t token.Token) string {
	if name, ok := b.names[t]; ok {
		return name
	}
	return "?"
}

// Build creates a Lexer over input using the patterns registered so far.
// Further registration on the Builder does not affect Lexers already
// built.
func (b *Builder) Build(input string) *Lexer {
	patterns := make([]registeredPattern, len(b.patterns))
	copy(patterns, b.patterns)
	return &Lexer{
		input:      input,
		patterns:   patterns,
		whitespace: b.whitespace,
		line:       1,
		column:     1,
	}
}
