package grammar_test

import (
	"errors"
	"testing"

	"github.com/opfix/opfix/grammar"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/parser"
)

func TestOpBeforeGroupReturnsPrecNotSet(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = g.Op("plus", op.Pattern{Fixity: op.Infix, FirstToken: "+"})
	var pns *grammar.PrecNotSetError
	if !errors.As(err, &pns) {
		t.Fatalf("Op without a group = %v, want *PrecNotSetError", err)
	}
}

func TestOpReservedName(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = g.Op("$weird", op.Pattern{Fixity: op.Nilfix, FirstToken: "x"})
	var reserved *grammar.ReservedNameError
	if !errors.As(err, &reserved) {
		t.Fatalf("Op(%q, ...) = %v, want *ReservedNameError", "$weird", err)
	}
}

func TestFollowerUnknownSortReturnsSortNotSet(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pattern := op.Pattern{
		Fixity:     op.Nilfix,
		FirstToken: "if",
		Followers: []op.FollowerPattern{
			{Sort: "nonexistent", Token: "then"},
		},
	}
	err = g.Op("if", pattern)
	var sns *grammar.SortNotSetError
	if !errors.As(err, &sns) {
		t.Fatalf("Op with unknown follower sort = %v, want *SortNotSetError", err)
	}
}

func TestDuplicateAtomOnSameToken(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.StringAtom("a", "x"); err != nil {
		t.Fatalf("StringAtom a: %v", err)
	}
	err = g.StringAtom("b", "x")
	if err == nil {
		t.Fatal("registering two atoms on the same literal should fail")
	}
}

func TestInvalidWhitespaceRegex(t *testing.T) {
	_, err := grammar.New(`(`)
	if err == nil {
		t.Fatal("New with an invalid regex should fail")
	}
}

// TestJuxtaposeRightAssocNestsOnTheRight mirrors shunt_test.go's
// TestJuxtaposeCombinesAdjacentAtoms, but checks that three juxtaposed
// atoms with JuxtaposeRightAssoc nest as a . (b . c) rather than
// (a . b) . c.
func TestJuxtaposeRightAssocNestsOnTheRight(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	if err := g.JuxtaposeRightAssoc(); err != nil {
		t.Fatalf("JuxtaposeRightAssoc: %v", err)
	}
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	parsed, err := p.Parse("a b c")
	if err != nil {
		t.Fatalf("Parse(\"a b c\"): %v", err)
	}
	var root parser.Visitor
	for v := range parsed.Groups() {
		root = v
	}
	if root.Name() != op.JuxtaposeName {
		t.Fatalf("root = %q, want %q", root.Name(), op.JuxtaposeName)
	}
	left, right := root.Expect2Children()
	if left.Name() != "ident" {
		t.Errorf("root's left child = %q, want ident (a)", left.Name())
	}
	if right.Name() != op.JuxtaposeName {
		t.Fatalf("root's right child = %q, want %q ((b . c), right-associated)", right.Name(), op.JuxtaposeName)
	}
	innerLeft, innerRight := right.Expect2Children()
	if innerLeft.Name() != "ident" || innerRight.Name() != "ident" {
		t.Errorf("inner children = %q, %q, want ident, ident (b, c)", innerLeft.Name(), innerRight.Name())
	}
}

func TestCrossRoleReuse(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-z]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	if err := g.Op("neg", op.Pattern{Fixity: op.Prefix, FirstToken: "-"}); err != nil {
		t.Fatalf("Op prefix -: %v", err)
	}
	g.LGroup()
	if err := g.Op("sub", op.Pattern{Fixity: op.Infix, FirstToken: "-"}); err != nil {
		t.Fatalf("registering - as both prefix and infix should succeed: %v", err)
	}
}
