// Package debug renders a parsed tree for interactive inspection.
package debug

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/opfix/opfix/parser"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// ToString renders v and its descendants as an indented tree, one
// "Name(text)" line per node.
func ToString(v parser.Visitor) string {
	var b strings.Builder
	writeTree(&b, v, 0)
	return b.String()
}

func writeTree(b *strings.Builder, v parser.Visitor, depth int) {
	fmt.Fprintf(b, "%s%s(%s)\n", strings.Repeat("  ", depth), v.Name(), v.Text())
	for c := range v.Children() {
		writeTree(b, c, depth+1)
	}
}

// Print dumps v.Node()'s raw field values with go-spew, the way a
// debugger would show an AST node — useful when ToString's rendered
// text hides which operator actually produced a span.
func Print(v parser.Visitor) {
	cfg.Dump(v.Node())
}
