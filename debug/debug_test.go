package debug

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/opfix/opfix/grammar"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/parser"
)

func testParser(t *testing.T) *parser.Parser {
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
	p, err := g.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return p
}

func TestToString(t *testing.T) {
	p := testParser(t)
	parsed, err := p.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got string
	for v := range parsed.Groups() {
		got = ToString(v)
	}
	want := "plus(1 + 2 * 3)\n  number(1)\n  times(2 * 3)\n    number(2)\n    number(3)\n"
	if got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
}

func TestPrint(t *testing.T) {
	p := testParser(t)
	parsed, err := p.Parse("1 + 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var root string
	for v := range parsed.Groups() {
		root = v.Name()
		output := captureOutput(func() { Print(v) })
		if output == "" {
			t.Error("Print() produced no output")
		}
		for _, expected := range []string{"Node", "Op", "plus"} {
			if !strings.Contains(output, expected) {
				t.Errorf("Print() output missing %q, got %q", expected, output)
			}
		}
	}
	if root != "plus" {
		t.Fatalf("root node = %q, want plus", root)
	}
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
