package parser_test

import (
	"errors"
	"testing"

	"github.com/opfix/opfix/grammar"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/parser"
	"github.com/opfix/opfix/shunt"
)

// arithmeticParser builds "{number}", "lgroup; *; lgroup; + -" — * binds
// tighter than + and -, as in the first end-to-end scenario.
func arithmeticParser(t *testing.T) *parser.Parser {
	t.Helper()
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	if err := g.RegexAtom("number", `[0-9]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	if err := g.Op("times", op.Pattern{Fixity: op.Infix, FirstToken: "*"}); err != nil {
		t.Fatalf("Op times: %v", err)
	}
	g.LGroup()
	if err := g.Op("plus", op.Pattern{Fixity: op.Infix, FirstToken: "+"}); err != nil {
		t.Fatalf("Op plus: %v", err)
	}
	if err := g.Op("minus", op.Pattern{Fixity: op.Infix, FirstToken: "-"}); err != nil {
		t.Fatalf("Op minus: %v", err)
	}
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return p
}

func collectPostfix(t *testing.T, p *parser.Parser, source string) []string {
	t.Helper()
	parsed, err := p.Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	var names []string
	var walk func(v parser.Visitor)
	walk = func(v parser.Visitor) {
		for c := range v.Children() {
			walk(c)
		}
		names = append(names, v.Name())
	}
	for v := range parsed.Groups() {
		walk(v)
	}
	return names
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	p := arithmeticParser(t)
	got := collectPostfix(t, p, "1-2+3*4*5")
	want := []string{"number", "number", "minus", "number", "number", "times", "number", "times", "plus"}
	if !equal(got, want) {
		t.Errorf("postfix order = %v, want %v", got, want)
	}
}

func TestMixfixAsWall(t *testing.T) {
	g, err := grammar.New(`\s+`)
	if err != nil {
		t.Fatalf("grammar.New: %v", err)
	}
	if err := g.RegexAtom("ident", `[a-zA-Z_]+`); err != nil {
		t.Fatalf("RegexAtom: %v", err)
	}
	g.LGroup()
	if err := g.Op("neg", op.Pattern{Fixity: op.Prefix, FirstToken: "~"}); err != nil {
		t.Fatalf("Op neg: %v", err)
	}
	if err := g.Op("bang", op.Pattern{Fixity: op.Suffix, FirstToken: "!"}); err != nil {
		t.Fatalf("Op bang: %v", err)
	}
	parens := op.Pattern{Fixity: op.Nilfix, FirstToken: "(", Followers: []op.FollowerPattern{{Token: ")"}}}
	if err := g.Op("parens", parens); err != nil {
		t.Fatalf("Op parens: %v", err)
	}
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	parsed, err := p.Parse("(~a)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (a, neg, parens)", parsed.Len())
	}
	var root parser.Visitor
	for v := range parsed.Groups() {
		root = v
	}
	if root.Name() != "parens" || root.Arity() != 1 {
		t.Fatalf("root = %q arity %d, want parens/1", root.Name(), root.Arity())
	}
	children := root.ExpectChildren(1)
	if children[0].Name() != "neg" {
		t.Errorf("parens' child = %q, want neg", children[0].Name())
	}
}

func TestEmptyInputIsSingleBlank(t *testing.T) {
	p := arithmeticParser(t)
	parsed, err := p.Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if parsed.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", parsed.Len())
	}
	for v := range parsed.Groups() {
		if v.Name() != op.BlankName {
			t.Errorf("root = %q, want %q", v.Name(), op.BlankName)
		}
	}
}

func TestLoneOperatorYieldsBlankOnBothSides(t *testing.T) {
	p := arithmeticParser(t)
	parsed, err := p.Parse("+")
	if err != nil {
		t.Fatalf("Parse(\"+\"): %v", err)
	}
	var root parser.Visitor
	for v := range parsed.Groups() {
		root = v
	}
	if root.Name() != "plus" {
		t.Fatalf("root = %q, want plus", root.Name())
	}
	left, right := root.Expect2Children()
	if left.Name() != op.BlankName || right.Name() != op.BlankName {
		t.Errorf("children = %q, %q, want %q, %q", left.Name(), right.Name(), op.BlankName, op.BlankName)
	}
}

func TestLexErrorOnUnrecognizedInput(t *testing.T) {
	p := arithmeticParser(t)
	parsed, err := p.Parse("1 + %")
	var lexErr *shunt.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Parse(\"1 + %%\") = %v, want *shunt.LexError", err)
	}
	if lexErr.Lexeme.Pos.Column != 5 {
		t.Errorf("LexError column = %d, want 5", lexErr.Lexeme.Pos.Column)
	}

	// The shunter is total: a LexError still surfaces as a node in the
	// tree (here, "+"'s right child) rather than discarding the parse.
	var root parser.Visitor
	for v := range parsed.Groups() {
		root = v
	}
	if root.Name() != "plus" {
		t.Fatalf("root = %q, want plus", root.Name())
	}
	left, right := root.Expect2Children()
	if left.Name() != "number" || right.Name() != op.ErrorName {
		t.Errorf("children = %q, %q, want number, %q", left.Name(), right.Name(), op.ErrorName)
	}
}

func TestMissingSeparator(t *testing.T) {
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
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	parsed, err := p.Parse("if a then b")
	var missing *shunt.MissingSeparatorError
	if !errors.As(err, &missing) {
		t.Fatalf("Parse(\"if a then b\") = %v, want *shunt.MissingSeparatorError", err)
	}
	if missing.OpName != "if" || missing.Wanted != "else" {
		t.Errorf("MissingSeparatorError = %+v, want OpName=if Wanted=else", missing)
	}
	// Every Node assembled before the malformed "if" is still returned
	// alongside the error, rather than discarded.
	if parsed == nil || parsed.Len() == 0 {
		t.Errorf("Parse(\"if a then b\") discarded its partial tree, want the 2 atoms built before the error")
	}
}

func TestParserIsReusableAcrossParses(t *testing.T) {
	p := arithmeticParser(t)
	if _, err := p.Parse("1+2"); err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	got := collectPostfix(t, p, "3*4")
	want := []string{"number", "number", "times"}
	if !equal(got, want) {
		t.Errorf("second Parse postfix = %v, want %v (state leaked between calls)", got, want)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
