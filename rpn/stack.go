package rpn

import "iter"

// Node is anything that can sit in a flat postfix sequence: it reports
// how many of the slots immediately preceding it belong to its direct
// children.
type Node interface {
	Arity() int
}

// Stack is a flat postfix sequence of nodes, pushed in the order a
// postfix evaluator would consume them.
type Stack[N Node] struct {
	nodes  []N
	widths []int
}

// NewStack creates an empty Stack.
func NewStack[N Node]() *Stack[N] {
	return &Stack[N]{}
}

// Push appends n. n's own subtree width is 1 plus the widths of the
// n.Arity() complete subtrees immediately before it, found by stepping
// backward over each one in turn, exactly as a postfix evaluator would
// consume that many operands.
func (s *Stack[N]) Push(n N) {
	w := 1
	cur := len(s.nodes) - 1
	for i := 0; i < n.Arity(); i++ {
		w += s.widths[cur]
		cur -= s.widths[cur]
	}
	s.widths = append(s.widths, w)
	s.nodes = append(s.nodes, n)
}

// Len returns the number of nodes pushed.
func (s *Stack[N]) Len() int { return len(s.nodes) }

// Groups iterates the complete top-level values left on the stack,
// left to right. Ordinarily there is exactly one; a stack holding
// several complete values side by side yields each of them in turn.
func (s *Stack[N]) Groups() *VisitorIter[N] {
	var ends []int
	cur := len(s.nodes) - 1
	for cur >= 0 {
		ends = append(ends, cur)
		cur -= s.widths[cur]
	}
	reverse(ends)
	return &VisitorIter[N]{stack: s, ends: ends}
}

// Visitor is a read-only cursor onto one complete subtree within a
// Stack.
type Visitor[N Node] struct {
	stack *Stack[N]
	index int
}

// Node returns the node this Visitor points at.
func (v Visitor[N]) Node() N { return v.stack.nodes[v.index] }

// Children iterates this node's direct children, left to right.
func (v Visitor[N]) Children() *VisitorIter[N] {
	arity := v.Node().Arity()
	ends := make([]int, arity)
	cur := v.index - 1
	for i := arity - 1; i >= 0; i-- {
		ends[i] = cur
		cur -= v.stack.widths[cur]
	}
	return &VisitorIter[N]{stack: v.stack, ends: ends}
}

// VisitorIter iterates a left-to-right sequence of sibling Visitors
// (either a node's children, or the stack's top-level groups).
type VisitorIter[N Node] struct {
	stack *Stack[N]
	ends  []int
	pos   int
}

// Next returns the next Visitor, or false once exhausted.
func (it *VisitorIter[N]) Next() (Visitor[N], bool) {
	if it.pos >= len(it.ends) {
		return Visitor[N]{}, false
	}
	v := Visitor[N]{stack: it.stack, index: it.ends[it.pos]}
	it.pos++
	return v, true
}

// Len returns the number of Visitors remaining.
func (it *VisitorIter[N]) Len() int { return len(it.ends) - it.pos }

// All adapts it into a standard range-over-func sequence, consuming it
// as the sequence is ranged over.
func (it *VisitorIter[N]) All() iter.Seq[Visitor[N]] {
	return func(yield func(Visitor[N]) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
