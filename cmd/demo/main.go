// Command demo exercises the grammar/parser/shunt/rpn stack against the
// worked-example grammar from the operator-precedence shunting spec:
// arithmetic, unary prefix/postfix operators, parens, and
// "if _ then _ else _".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/opfix/opfix/debug"
	"github.com/opfix/opfix/parser"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s parse <expr>\n       %s tokens <expr>\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	p, err := buildDemoGrammar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "building grammar: %v\n", err)
		os.Exit(1)
	}

	switch args[0] {
	case "parse":
		if err := runParse(p, args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	case "tokens":
		runTokens(p, args[1])
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// runParse parses expr and prints its postfix stream and tree.
func runParse(p *parser.Parser, expr string) error {
	parsed, err := p.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	fmt.Printf("postfix (%d nodes):\n", parsed.Len())
	for v := range parsed.Groups() {
		printPostorder(v)
	}

	fmt.Println("tree:")
	for v := range parsed.Groups() {
		fmt.Print(debug.ToString(v))
	}
	return nil
}

// printPostorder prints v's subtree in the postfix order the shunter
// produced it in: every child before its parent.
func printPostorder(v parser.Visitor) {
	for c := range v.Children() {
		printPostorder(c)
	}
	fmt.Printf("  %s(%s)\n", v.Name(), v.Text())
}

// runTokens prints the raw lexeme stream for expr.
func runTokens(p *parser.Parser, expr string) {
	lex := p.NewLexer(expr)
	for {
		l, ok := lex.Next()
		if !ok {
			break
		}
		fmt.Printf("%-4s %-12s %q\n", l.Pos, p.TokenName(l.Token), l.Text)
	}
}
