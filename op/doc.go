/*
Package op defines an Operator's shape — its Fixity, Assoc, declared
precedence, and the left/right half-precedences the shunter actually
reads — independent of how a grammar.Grammar builds one up.

Associativity is encoded as a one-unit gap between an operator's left
and right half-precedence; see the derivation table on Derive. Groups of
operators are spaced grammar.PrecDelta apart by the grammar package so that one
group's prec-1 never aliases the next-tighter group's prec.
*/
package op
