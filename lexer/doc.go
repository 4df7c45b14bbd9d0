/*
Package lexer turns a source string into a stream of token.Lexeme values.

A lexer.Builder accumulates literal and regex patterns — handing back a
token.Token id for each — and compiles a whitespace pattern to skip
between lexemes. Once built, a *Lexer is a simple pull iterator: call
Next repeatedly until it reports no more input.

Patterns are matched by longest match; ties are broken in registration
order, so a more specific literal registered before a looser regex wins
a tie (and vice versa). Regex patterns are compiled with
github.com/dlclark/regexp2. To ask "does this pattern match starting
exactly here", the lexer runs each regex against the input sliced at
the current position and counts a match only if it begins at the start
of that slice.

Example:

	lb, err := lexer.NewBuilder(`\s+`)
	num, _ := lb.RegisterRegex(`[0-9]+`, "number")
	plus, _ := lb.RegisterString("+")
	l := lb.Build("1 + 2")
	for {
		lex, ok := l.Next()
		if !ok {
			break
		}
		fmt.Println(lex)
	}
*/
package lexer
