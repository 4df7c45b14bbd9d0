/*
Package parser is the top-level facade: Grammar.Finish returns a
*Parser, and Parser.Parse ties the lexer, the operator table, and the
shunt/rpn packages together into one call that takes a source string
and hands back a walkable Parsed tree.

Parsed.Groups and Visitor.Children are Go 1.23 range-over-func
iterators (iter.Seq[Visitor]) over the underlying rpn.Stack, so callers
walk a tree with a plain `for v := range ...` loop despite it being
stored as a flat postfix sequence underneath.
*/
package parser
