package parser

import (
	"fmt"
	"iter"

	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/rpn"
	"github.com/opfix/opfix/shunt"
)

// Parsed is the result of Parser.Parse: the source text
// (Visitor.Text needs it) and the postfix-ordered rpn.Stack it was
// shunted into.
type Parsed struct {
	source string
	stack  *rpn.Stack[*shunt.Node]
}

// Groups iterates the complete top-level values the parse produced,
// left to right. Ordinarily there is exactly one; a malformed mixfix
// construct (shunt.MissingSeparatorError) stops assembly early and can
// leave the values built before it as several separate groups.
func (parsed *Parsed) Groups() iter.Seq[Visitor] {
	return wrap(parsed.stack.Groups(), parsed.source)
}

// Len returns the number of Nodes the parse produced, counting every
// subtree, not just top-level groups.
func (parsed *Parsed) Len() int { return parsed.stack.Len() }

// Visitor is a read-only cursor onto one parsed subtree.
type Visitor struct {
	v      rpn.Visitor[*shunt.Node]
	source string
}

// Node returns the underlying shunt.Node this Visitor points at.
func (v Visitor) Node() *shunt.Node { return v.v.Node() }

// Name is the operator's declared name ("if", "add", ...), or
// op.BlankName/op.JuxtaposeName for an implicit filler.
func (v Visitor) Name() string { return v.Node().Op.Name }

// Fixity is the operator's fixity.
func (v Visitor) Fixity() op.Fixity { return v.Node().Op.Fixity }

// Arity is how many children this node has.
func (v Visitor) Arity() int { return v.Node().Arity() }

// Span is the node's byte range (and starting position) in the source.
func (v Visitor) Span() shunt.Span { return v.Node().Span }

// Text returns the source text this node's Span covers.
func (v Visitor) Text() string { return v.Node().Text(v.source) }

// Children iterates this node's direct children, left to right.
func (v Visitor) Children() iter.Seq[Visitor] {
	return wrap(v.v.Children(), v.source)
}

// ExpectChildren collects exactly n children, panicking if the node's
// own arity disagrees — a caller that already knows a construct's
// shape from its Name uses this (or Expect2/3/4Children) as a cheap
// sanity check while walking, the same assertion-style guard the
// reference implementation uses once it has dispatched on a node's
// operator.
func (v Visitor) ExpectChildren(n int) []Visitor {
	if v.Arity() != n {
		panic(fmt.Sprintf("%s: expected %d children, has %d", v.Name(), n, v.Arity()))
	}
	out := make([]Visitor, 0, n)
	for c := range v.Children() {
		out = append(out, c)
	}
	return out
}

// Expect2Children is ExpectChildren(2), destructured.
func (v Visitor) Expect2Children() (Visitor, Visitor) {
	c := v.ExpectChildren(2)
	return c[0], c[1]
}

// Expect3Children is ExpectChildren(3), destructured.
func (v Visitor) Expect3Children() (Visitor, Visitor, Visitor) {
	c := v.ExpectChildren(3)
	return c[0], c[1], c[2]
}

// Expect4Children is ExpectChildren(4), destructured.
func (v Visitor) Expect4Children() (Visitor, Visitor, Visitor, Visitor) {
	c := v.ExpectChildren(4)
	return c[0], c[1], c[2], c[3]
}

func wrap(it *rpn.VisitorIter[*shunt.Node], source string) iter.Seq[Visitor] {
	return func(yield func(Visitor) bool) {
		for inner := range it.All() {
			if !yield(Visitor{v: inner, source: source}) {
				return
			}
		}
	}
}
