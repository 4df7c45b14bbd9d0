/*
Package token defines the identifiers shared by the lexer, grammar, and
shunter: Token (a surface syntactic form), Position, and Lexeme.

Three Token ids are pre-reserved with fixed meaning:

  - Error, for a chunk of input no registered pattern recognizes.
  - Blank, the implicit "missing atom" filler.
  - Juxtapose, the implicit "missing operator" filler.

All other Token ids are handed out by a lexer.Builder starting at
FirstUserToken.

Example:

	lex := token.Lexeme{Token: someToken, Text: "foo", Start: 0, End: 3}
	fmt.Println(lex)
*/
package token
