package shunt

import (
	"fmt"

	"github.com/opfix/opfix/token"
)

// LexError is returned when the lexer produced a token.Error lexeme
// (input the grammar's lexer has no pattern for) where an expression
// was expected, directly or after an inserted $Juxtapose.
type LexError struct{ Lexeme token.Lexeme }

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: unrecognized input %q", e.Lexeme.Pos, e.Lexeme.Text)
}

// ExtraSeparatorError is returned when a token appears where a
// complete expression was expected to already have ended and no
// operator (nor $Juxtapose) claims it.
type ExtraSeparatorError struct{ Lexeme token.Lexeme }

func (e *ExtraSeparatorError) Error() string {
	return fmt.Sprintf("%s: unexpected %q", e.Lexeme.Pos, e.Lexeme.Text)
}

// MissingSeparatorError is returned when a mixfix operator's follower
// token never appeared in the right place: either a wrong token was
// found where a specific follower was expected, or the construct's
// head was reached before all its followers showed up.
type MissingSeparatorError struct {
	OpName string
	Wanted string // the follower's display text; "" if not known
	Found  token.Lexeme
}

func (e *MissingSeparatorError) Error() string {
	if e.Wanted == "" {
		return fmt.Sprintf("%s: %q cannot continue %s here", e.Found.Pos, e.Found.Text, e.OpName)
	}
	return fmt.Sprintf("%s: expected %q to continue %s, found %q", e.Found.Pos, e.Wanted, e.OpName, e.Found.Text)
}
