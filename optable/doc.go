/*
Package optable is the Operator Table: it owns the prefixy and suffixy
lookup tables the shunt package's preprocessor consults to turn a raw
token.Token into a Binding — the (lprec, rprec) pair and owning *op.Op an
occurrence of that token plays, given the current "expecting an
expression" state and sort.

A Binding is this module's realization of what spec calls an "Op-token":
rather than a separately-addressed integer id into a parallel precedence
vector (the allocation scheme of the reference implementation's Rust
sources), each (sort, token, role) triple maps directly to a Binding
value keyed in a Go map — the same information, addressed the way the
rest of this codebase's ambient stack addresses per-token data (compare
to a plain `map[token.Type]int` precedence table). See DESIGN.md for the
rationale.

At most one prefixy Binding and one suffixy Binding exist per (sort,
token) pair; Table.Add enforces this and distinguishes a head-vs-head
collision (DuplicateOpError, naming both operators) from a collision
against an interior/final follower slot (Prefixy/SuffixyConflictError,
which only has a token to name — the follower side of a mixfix operator
carries no operator name of its own).
*/
package optable
