/*
Package shunt turns a lexeme stream into a flat postfix sequence of
Nodes, in three stages:

 1. preprocess resolves each lexeme, in original source order, against
    the grammar's Prefixy or Suffixy table (chosen by whether an
    expression or an operator is currently expected), synthesizing
    $Blank and $Juxtapose fillers where the grammar allows a gap.

 2. coreShunt reorders the resolved items into reverse-Polish order
    using nothing but each item's left/right half-precedence — the
    same algorithm regardless of whether an item is a plain operator or
    one token of a mixfix construct.

 3. assemble walks the reordered stream and coalesces a mixfix
    construct's scattered tokens (which a mixfix operator's own Final
    follower token precedes first, with the Head token arriving last
    of all) into one Node, using a stack of pending frames.

Run drives all three stages over one source's lexemes.
*/
package shunt
