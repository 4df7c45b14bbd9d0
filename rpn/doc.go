/*
Package rpn stores a parsed tree as a flat reverse-Polish (postfix)
sequence of nodes instead of an explicit tree of pointers, and gives it
O(arity) navigation to children anyway.

Every Node knows its own Arity: how many of the slots immediately
before it in the sequence are occupied by its direct children (which
may themselves have children, recursively). Stack.Push maintains, for
every slot already on the stack, the total width of the subtree rooted
there (1 plus the widths of its own children); with that running
total, Visitor.Children can step backward over exactly as many slots
as each child occupies without walking the whole subtree, and without
the tree ever being built out of pointers.
*/
package rpn
