/*
Package grammar is the Grammar Builder: the public API for accumulating
operators into an optable.Table under the group discipline that assigns
precedences and associativities.

Build a grammar with New, interleave LGroup/RGroup precedence bumps with
Op/StringAtom/RegexAtom/Juxtapose, then call Finish to freeze it into an
immutable *parser.Parser that is safe to share and reuse across
goroutines and parses.

Example:

	g, err := grammar.New(`\s+`)
	err = g.RegexAtom("number", `[0-9]+`)
	g.LGroup()
	err = g.Op("times", op.Pattern{Fixity: op.Infix, FirstToken: "*"})
	g.LGroup()
	err = g.Op("plus", op.Pattern{Fixity: op.Infix, FirstToken: "+"})
	p, err := g.Finish()
	parsed, err := p.Parse("1 + 2 * 3")
*/
package grammar
