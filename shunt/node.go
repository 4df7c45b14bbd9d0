package shunt

import (
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/token"
)

// Span is a node's full byte range in the source, including every
// token that spells it out (head and followers, for a mixfix
// construct), and the position of its first byte.
type Span struct {
	Start, End int
	Pos        token.Position
}

// Node is one parsed construct: the operator that produced it and the
// literal lexeme(s) that spelled it out (a single lexeme for an atom
// or a simple prefix/suffix/infix operator; head followed by every
// follower, in source order, for a mixfix construct).
//
// Node deliberately has no Children field: a sequence of Nodes is
// meant to sit in an rpn.Stack, which recovers tree structure from
// Arity alone, without the tree ever existing as linked pointers.
type Node struct {
	Op      *op.Op
	Lexemes []token.Lexeme
	Span    Span
}

// Arity satisfies rpn.Node.
func (n *Node) Arity() int { return n.Op.Arity }

// Text returns the full source text the node's Span covers, including
// its children's text (e.g. the whole "(1+2)" for a parenthesized
// group, not just the parens).
func (n *Node) Text(source string) string {
	return source[n.Span.Start:n.Span.End]
}
