package shunt_test

import (
	"errors"
	"testing"

	"github.com/opfix/opfix/grammar"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/shunt"
)

// buildIfGrammar registers "if _ then _ else _" tighter than "+", so
// the construct's trailing (else-branch) wall closes before reaching a
// looser "+" — matching the "mixfix as walls" scenario, where "+"
// still ends up outside the whole if/then/else.
func buildIfGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	ifThenElse := op.Pattern{
		Fixity:     op.Prefix,
		FirstToken: "if",
		Followers:  []op.FollowerPattern{{Token: "then"}, {Token: "else"}},
	}
	if err := g.Op("if", ifThenElse); err != nil {
		t.Fatalf("Op if: %v", err)
	}
	g.LGroup()
	if err := g.Op("plus", op.Pattern{Fixity: op.Infix, FirstToken: "+"}); err != nil {
		t.Fatalf("Op plus: %v", err)
	}
	return g
}

func TestMixfixWallBindsLooserOperatorOutside(t *testing.T) {
	g := buildIfGrammar(t)
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	parsed, err := p.Parse("if a then b else c + d")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var root string
	var arity int
	for v := range parsed.Groups() {
		root, arity = v.Name(), v.Arity()
	}
	if root != "plus" || arity != 2 {
		t.Fatalf("root = %q/%d, want plus/2 ((if a then b else c) + d)", root, arity)
	}
}

func TestExtraSeparatorWithNoJuxtapose(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	parsed, err := p.Parse("a b")
	var extra *shunt.ExtraSeparatorError
	if !errors.As(err, &extra) {
		t.Fatalf("Parse(\"a b\") without Juxtapose = %v, want *shunt.ExtraSeparatorError", err)
	}

	// Total, not aborted: "a" is still returned as a complete parse tree
	// alongside the error, rather than discarded along with it. "b" has
	// no safe atom-like binding to stand in as (it would sit at the same
	// precedence as "a" with nothing between them) so it is dropped
	// rather than embedded as a sibling node.
	if parsed == nil || parsed.Len() != 1 {
		t.Fatalf("Parse(\"a b\") discarded its partial tree, want the 1 atom built before the error")
	}
	var root string
	for v := range parsed.Groups() {
		root = v.Name()
	}
	if root != "ident" {
		t.Errorf("Groups() root = %q, want ident", root)
	}
}

func TestJuxtaposeCombinesAdjacentAtoms(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	if err := g.Juxtapose(); err != nil {
		t.Fatalf("Juxtapose: %v", err)
	}
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	parsed, err := p.Parse("a b")
	if err != nil {
		t.Fatalf("Parse(\"a b\"): %v", err)
	}
	var root string
	for v := range parsed.Groups() {
		root = v.Name()
	}
	if root != op.JuxtaposeName {
		t.Errorf("root = %q, want %q", root, op.JuxtaposeName)
	}
}
