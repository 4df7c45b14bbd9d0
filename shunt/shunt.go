package shunt

import (
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/optable"
	"github.com/opfix/opfix/token"
)

// item pairs a lexeme with the Binding it resolved to — the unit both
// the core shunt and the assembly stage operate on.
type item struct {
	binding optable.Binding
	lexeme  token.Lexeme
}

// Lookup is everything Run needs from a frozen grammar: the two
// operator-table sides, the optional implicit Juxtapose binding, and a
// display name for a token, used only in error messages. The parser
// package's Parser satisfies this without shunt ever importing it.
type Lookup interface {
	LookupPrefixy(sort op.SortID, tok token.Token) (optable.Binding, bool)
	LookupSuffixy(sort op.SortID, tok token.Token) (optable.Binding, bool)
	Juxtapose() (optable.Binding, bool)
	TokenName(tok token.Token) string
}

// Run turns an already-lexed source into a flat postfix sequence of
// Nodes, suitable for loading straight into an rpn.Stack[*Node] via
// repeated Push calls. The shunter is total: an unrecognized lexeme
// becomes an error-typed Node in the stream, a stray token is dropped,
// and a malformed mixfix construct ends assembly at the mismatch. In
// every case Run still returns every Node it managed to build
// alongside the first error encountered, so a caller can inspect the
// (partial) tree and the error together instead of losing one for the
// other.
func Run(lookup Lookup, lexemes []token.Lexeme) ([]*Node, error) {
	items, firstErr := preprocess(lookup, lexemes)
	nodes, assembleErr := assemble(lookup, coreShunt(items))
	if firstErr != nil {
		return nodes, firstErr
	}
	return nodes, assembleErr
}

// preprocess walks lexemes in original source order, looking each one
// up in the Prefixy table (while expecting an expression) or the
// Suffixy table (once one is complete), tracking the sort the lookup
// happens in. A lookup miss is bridged once by a synthetic $Blank (when
// an expression was expected) or $Juxtapose (when an operator was
// expected); missing twice in a row for the same lexeme means the
// token simply has no meaning here. Neither an unrecognized lexeme nor a
// stray token aborts preprocessing: wherever an expression is expected
// (including right after an inserted $Juxtapose) the former is swapped
// for an error-typed atom that consumes it and lets preprocessing
// continue; the latter (which is also what an unrecognized lexeme in
// operator position becomes when no $Juxtapose is installed) is simply
// dropped, recording the error but leaving every item already built
// untouched. Either way, the first such error is returned
// alongside the complete item list rather than in place of it.
func preprocess(lookup Lookup, lexemes []token.Lexeme) ([]item, error) {
	var items []item
	var firstErr error
	sort := op.DefaultSort
	expectingExpr := true
	var lastPos token.Position
	var lastEnd int

	for _, lex := range lexemes {
		lastPos, lastEnd = lex.Pos, lex.End

		filled := false
		for {
			if expectingExpr {
				// The lexer's ERROR token has a fixed atom-like prefixy
				// binding with no right argument, so it flows through
				// coreShunt/assemble exactly like any other atom instead of
				// aborting the parse.
				if lex.Token == token.Error {
					if firstErr == nil {
						firstErr = &LexError{Lexeme: lex}
					}
					items = append(items, errorItem(lex))
					expectingExpr = false
					break
				}
				if b, ok := lookup.LookupPrefixy(sort, lex.Token); ok {
					items = append(items, item{binding: b, lexeme: lex})
					sort, expectingExpr = advance(b, sort)
					break
				}
			} else if b, ok := lookup.LookupSuffixy(sort, lex.Token); ok {
				items = append(items, item{binding: b, lexeme: lex})
				sort, expectingExpr = advance(b, sort)
				break
			}

			if filled {
				// Unlike an unrecognized lexeme, a stray token has no safe
				// atom-like binding to stand in as: it would sit at the same
				// (zero, zero) precedence as whatever plain atom precedes it
				// with nothing in between, and the shunter's stack/pop_mode
				// machine (ported as-is from the reference shunter) only
				// ever drains same-precedence siblings in reverse at EOF.
				// Recording the error and dropping the token keeps the
				// already-built items intact without risking that
				// reordering.
				if firstErr == nil {
					firstErr = &ExtraSeparatorError{Lexeme: lex}
				}
				expectingExpr = false
				break
			}
			filled = true

			if expectingExpr {
				items = append(items, blankItem(lex.Start, lex.Pos))
				expectingExpr = false
			} else if jb, ok := lookup.Juxtapose(); ok {
				// $Juxtapose carries no declared sort of its own, so unlike
				// advance() its right argument stays in whatever sort was
				// already current rather than resetting to DefaultSort.
				items = append(items, item{binding: jb, lexeme: juxtaposeLexeme(lex.Start, lex.Pos)})
				expectingExpr = true
			} else {
				if firstErr == nil {
					firstErr = &ExtraSeparatorError{Lexeme: lex}
				}
				expectingExpr = false
				break
			}
		}
	}

	if expectingExpr {
		items = append(items, blankItem(lastEnd, lastPos))
	}
	return items, firstErr
}

// advance reports the sort and expectingExpr state to resume
// preprocessing with after consuming a binding. Head and Interior
// bindings always introduce a new argument in the sort their pattern
// named for it; every other binding with a right argument (a Final
// follower's trailing argument, or a simple operator's) continues in
// the owning operator's own sort, which is always where its
// surrounding context expects a value back.
func advance(b optable.Binding, sort op.SortID) (op.SortID, bool) {
	if !b.HasRightArg {
		return sort, false
	}
	if b.Role == optable.Head || b.Role == optable.Interior {
		return b.ArgSort, true
	}
	return b.Op.Sort, true
}

func blankItem(at int, pos token.Position) item {
	return item{
		binding: optable.Binding{Op: op.NewMissingAtom(), Role: optable.Lone},
		lexeme:  token.Lexeme{Token: token.Blank, Start: at, End: at, Pos: pos},
	}
}

// errorItem wraps lex, an unrecognized lexeme, as a Lone, arity-0 node
// built from op.NewErrorAtom, so preprocessing (and everything
// downstream of it) can keep going instead of aborting. Its (0, 0)
// binding matches TOKEN_ERROR's own entry in the reference
// implementation's precedence table exactly.
func errorItem(lex token.Lexeme) item {
	return item{binding: optable.Binding{Op: op.NewErrorAtom(), Role: optable.Lone}, lexeme: lex}
}

func juxtaposeLexeme(at int, pos token.Position) token.Lexeme {
	return token.Lexeme{Token: token.Juxtapose, Start: at, End: at, Pos: pos}
}

// coreShunt reorders items into reverse-Polish order by precedence
// alone, with no regard for the Role any item plays in its owning
// operator — a direct translation of the reference shunter's
// stack/pop_mode state machine into an eager loop.
func coreShunt(items []item) []item {
	out := make([]item, 0, len(items))
	var stack []item
	popMode := false
	i := 0

	topRight := func() op.Prec {
		if len(stack) == 0 {
			return op.Infinite
		}
		return stack[len(stack)-1].binding.Right
	}

	for {
		if popMode {
			n := len(stack) - 1
			popped := stack[n]
			stack = stack[:n]
			if topRight() > popped.binding.Left {
				popMode = false
			}
			out = append(out, popped)
			continue
		}
		if i >= len(items) {
			if len(stack) == 0 {
				return out
			}
			n := len(stack) - 1
			out = append(out, stack[n])
			stack = stack[:n]
			continue
		}
		next := items[i]
		if topRight() >= next.binding.Left {
			stack = append(stack, next)
			i++
		} else {
			popMode = true
		}
	}
}

// pendingFrame tracks one mixfix construct being assembled. It is
// opened by the construct's Final follower — the first of its tokens
// coreShunt's reordering ever surfaces — and extended backwards,
// Interior follower by Interior follower, until wantIdx reaches -1 and
// the owning Head can close it.
type pendingFrame struct {
	owner           *op.Op
	followerLexemes []token.Lexeme
	wantIdx         int
}

// assemble walks a core-shunted item stream left to right, building
// one Node per Lone or Head item and leaving Interior/Final items as
// pure bookkeeping against the frames stack. Because coreShunt always
// places a construct's arguments immediately before the point its
// frame closes, the sequence of Nodes built — in the order they are
// built — is already a valid flat postfix sequence, ready to feed
// straight into an rpn.Stack. A malformed mixfix construct (the wrong
// token where a follower was expected) still returns every Node
// already built up to that point, alongside the error, rather than
// discarding them.
func assemble(lookup Lookup, items []item) ([]*Node, error) {
	var out []*Node
	var values []*Node
	var frames []*pendingFrame

	for _, it := range items {
		owner := it.binding.Op
		switch it.binding.Role {
		case optable.Lone:
			children := popN(&values, owner.Arity)
			n := buildNode(owner, []token.Lexeme{it.lexeme}, children)
			values = append(values, n)
			out = append(out, n)

		case optable.Final:
			idx := it.binding.FollowerIndex
			f := &pendingFrame{
				owner:           owner,
				followerLexemes: make([]token.Lexeme, len(owner.Followers)),
				wantIdx:         idx - 1,
			}
			f.followerLexemes[idx] = it.lexeme
			frames = append(frames, f)

		case optable.Interior:
			idx := it.binding.FollowerIndex
			if len(frames) == 0 || frames[len(frames)-1].owner != owner {
				return out, missingSeparator(lookup, owner, -1, it.lexeme)
			}
			top := frames[len(frames)-1]
			if top.wantIdx != idx {
				return out, missingSeparator(lookup, owner, top.wantIdx, it.lexeme)
			}
			top.followerLexemes[idx] = it.lexeme
			top.wantIdx--

		case optable.Head:
			if len(frames) == 0 || frames[len(frames)-1].owner != owner {
				return out, missingSeparator(lookup, owner, -1, it.lexeme)
			}
			top := frames[len(frames)-1]
			if top.wantIdx != -1 {
				return out, missingSeparator(lookup, owner, top.wantIdx, it.lexeme)
			}
			frames = frames[:len(frames)-1]
			lexemes := append([]token.Lexeme{it.lexeme}, top.followerLexemes...)
			children := popN(&values, owner.Arity)
			n := buildNode(owner, lexemes, children)
			values = append(values, n)
			out = append(out, n)
		}
	}
	return out, nil
}

// missingSeparator reports the follower of owner that assembly still
// expected but never matched, given what it found instead. wantIdx is
// the pending frame's own wantIdx at the point of mismatch, or -1 when
// no frame of owner's is on top of the frames stack (none is open, or
// another operator's is) — in which case owner's Final follower (its
// last one, the only one that can open a frame) is the one reported.
func missingSeparator(lookup Lookup, owner *op.Op, wantIdx int, found token.Lexeme) error {
	idx := wantIdx
	if idx < 0 {
		idx = len(owner.Followers) - 1
	}
	wanted := ""
	if idx >= 0 && idx < len(owner.Followers) {
		wanted = lookup.TokenName(owner.Followers[idx].Token)
	}
	return &MissingSeparatorError{OpName: owner.Name, Wanted: wanted, Found: found}
}

// popN removes and returns the last n values off *values, preserving
// their left-to-right order.
func popN(values *[]*Node, n int) []*Node {
	v := *values
	start := len(v) - n
	children := append([]*Node(nil), v[start:]...)
	*values = v[:start]
	return children
}

// buildNode computes a Node's Span as the union of its own lexemes'
// spans and its children's spans, since a mixfix construct's head token
// is not always the leftmost or rightmost thing in its source span.
func buildNode(owner *op.Op, lexemes []token.Lexeme, children []*Node) *Node {
	start, end, pos := lexemes[0].Start, lexemes[0].End, lexemes[0].Pos
	for _, lx := range lexemes[1:] {
		if lx.Start < start {
			start, pos = lx.Start, lx.Pos
		}
		if lx.End > end {
			end = lx.End
		}
	}
	for _, c := range children {
		if c.Span.Start < start {
			start, pos = c.Span.Start, c.Span.Pos
		}
		if c.Span.End > end {
			end = c.Span.End
		}
	}
	return &Node{Op: owner, Lexemes: lexemes, Span: Span{Start: start, End: end, Pos: pos}}
}
