package parser

import (
	"github.com/opfix/opfix/lexer"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/optable"
	"github.com/opfix/opfix/rpn"
	"github.com/opfix/opfix/shunt"
	"github.com/opfix/opfix/token"
)

// Parser is a frozen grammar: the operator table and the lexer.Builder
// used to build it, immutable and safe for concurrent use once
// Grammar.Finish returns one.
type Parser struct {
	table        *optable.Table
	lexerBuilder *lexer.Builder
}

// New wraps an operator table and the lexer.Builder that minted its
// tokens into a Parser. Called by grammar.Grammar.Finish; grammar
// callers should not need to call this directly.
func New(table *optable.Table, lexerBuilder *lexer.Builder) *Parser {
	return &Parser{table: table, lexerBuilder: lexerBuilder}
}

func (p *Parser) NewLexer(source string) *lexer.Lexer { return p.lexerBuilder.Build(source) }

func (p *Parser) TokenName(t token.Token) string { return p.lexerBuilder.Name(t) }

func (p *Parser) LookupPrefixy(sort op.SortID, tok token.Token) (optable.Binding, bool) {
	return p.table.LookupPrefixy(sort, tok)
}

func (p *Parser) LookupSuffixy(sort op.SortID, tok token.Token) (optable.Binding, bool) {
	return p.table.LookupSuffixy(sort, tok)
}

func (p *Parser) Juxtapose() (optable.Binding, bool) {
	if p.table.Juxtapose == nil {
		return optable.Binding{}, false
	}
	return *p.table.Juxtapose, true
}

// Parse lexes source in full, shunts it into postfix order, and loads
// the result into an rpn.Stack, returning it wrapped as a Parsed ready
// for Groups to walk. shunt.Run is total: an unrecognized chunk of
// source surfaces as an error-typed Node in the tree, a stray token is
// dropped, and a malformed mixfix construct keeps only the Nodes built
// before it, so Parse always returns a usable Parsed, with the first
// error encountered (if any) returned alongside it rather than in its
// place.
func (p *Parser) Parse(source string) (*Parsed, error) {
	lex := p.NewLexer(source)
	var lexemes []token.Lexeme
	for {
		l, ok := lex.Next()
		if !ok {
			break
		}
		lexemes = append(lexemes, l)
	}

	nodes, err := shunt.Run(p, lexemes)

	stack := rpn.NewStack[*shunt.Node]()
	for _, n := range nodes {
		stack.Push(n)
	}
	return &Parsed{source: source, stack: stack}, err
}
