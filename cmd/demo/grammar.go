package main

import (
	"github.com/opfix/opfix/grammar"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/parser"
)

// buildDemoGrammar wires up the worked-example grammar shared by every
// demo subcommand: numbers and identifiers as atoms, postfix "!" and
// prefix "~" around multiplication and addition, parens, and
// "if _ then _ else _" as a mixfix construct.
func buildDemoGrammar() (*parser.Parser, error) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		return nil, err
	}
	if err := g.RegexAtom("number", `[0-9]+`); err != nil {
		return nil, err
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_][a-zA-Z0-9_]*`); err != nil {
		return nil, err
	}

	g.LGroup()
	if err := g.Op("bang", op.Pattern{Fixity: op.Suffix, FirstToken: "!"}); err != nil {
		return nil, err
	}
	g.LGroup()
	if err := g.Op("neg", op.Pattern{Fixity: op.Prefix, FirstToken: "~"}); err != nil {
		return nil, err
	}
	g.LGroup()
	if err := g.Op("times", op.Pattern{Fixity: op.Infix, FirstToken: "*"}); err != nil {
		return nil, err
	}
	g.LGroup()
	if err := g.Op("plus", op.Pattern{Fixity: op.Infix, FirstToken: "+"}); err != nil {
		return nil, err
	}
	if err := g.Op("minus", op.Pattern{Fixity: op.Infix, FirstToken: "-"}); err != nil {
		return nil, err
	}

	parens := op.Pattern{
		Fixity:     op.Nilfix,
		FirstToken: "(",
		Followers:  []op.FollowerPattern{{Token: ")"}},
	}
	if err := g.Op("parens", parens); err != nil {
		return nil, err
	}

	// Prefix, not Nilfix: unlike parens, something real follows the last
	// follower ("else")'s branch, so the construct needs a real
	// RightPrec wall there, which only a non-Nilfix fixity derives.
	g.LGroup()
	ifThenElse := op.Pattern{
		Fixity:     op.Prefix,
		FirstToken: "if",
		Followers:  []op.FollowerPattern{{Token: "then"}, {Token: "else"}},
	}
	if err := g.Op("if", ifThenElse); err != nil {
		return nil, err
	}

	return g.Finish()
}
