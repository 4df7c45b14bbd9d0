package optable

import (
	"fmt"

	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/token"
)

// Role is a Binding's part in its owning operator: a standalone,
// followerless operator (Lone); the head token of a mixfix operator
// (Head); an interior follower (Interior), walled off on both sides; or
// the final follower (Final), which is where the whole construct's node
// is finally assembled.
type Role int

const (
	Lone Role = iota
	Head
	Interior
	Final
)

// Binding is what a (sort, token) pair resolves to in prefixy or
// suffixy position: the owning operator, this token's Role within it,
// and the left/right half-precedences the shunter's core loop compares
// against. HasRightArg mirrors whether Right is present, precomputed so
// the preprocessor doesn't need to special-case "no right argument".
type Binding struct {
	Op          *op.Op
	Role        Role
	Left, Right op.Prec
	HasRightArg bool
	// ArgSort is the sort the argument immediately following this token
	// should be parsed in. Meaningful only for Head and Interior
	// bindings (where HasRightArg is always true); ignored otherwise.
	ArgSort op.SortID
	// FollowerIndex is this token's position within Op.Followers.
	// Meaningful only for Interior and Final bindings; -1 otherwise.
	FollowerIndex int
}

type key struct {
	Sort op.SortID
	Tok  token.Token
}

// DuplicateOpError reports two standalone or head operators colliding on
// the same (sort, token, prefixy-or-suffixy) slot.
type DuplicateOpError struct {
	Op1, Op2 string
	Sort     op.SortID
}

func (e *DuplicateOpError) Error() string {
	return fmt.Sprintf("duplicate operators %q and %q start with the same token in sort %d", e.Op1, e.Op2, e.Sort)
}

// PrefixyConflictError reports a token already bound in prefixy position
// (no left argument) for its sort.
type PrefixyConflictError struct{ Token string }

func (e *PrefixyConflictError) Error() string {
	return fmt.Sprintf("token %q is already bound without a left argument", e.Token)
}

// SuffixyConflictError reports a token already bound in suffixy position
// (has a left argument) for its sort.
type SuffixyConflictError struct{ Token string }

func (e *SuffixyConflictError) Error() string {
	return fmt.Sprintf("token %q is already bound with a left argument", e.Token)
}

// Table is the Operator Table: the frozen (after Grammar.Finish) or
// still-accumulating (during construction) set of prefixy/suffixy
// bindings for every registered operator, plus an optional Juxtapose
// binding installed by Grammar.Juxtapose.
type Table struct {
	TokenNames map[token.Token]string
	Prefixy    map[key]Binding
	Suffixy    map[key]Binding
	Juxtapose  *Binding
}

// New creates an empty Table.
func New() *Table {
	return &Table{
		TokenNames: map[token.Token]string{},
		Prefixy:    map[key]Binding{},
		Suffixy:    map[key]Binding{},
	}
}

// Add installs a Binding for tok in sort, in prefixy position if left is
// nil (the operator/follower has no left argument) or suffixy position
// otherwise. owner is the operator this token's Role belongs to. argSort
// is the sort of the argument immediately following tok, consulted only
// when the resulting Binding.HasRightArg is true.
func (t *Table) Add(owner *op.Op, role Role, sort op.SortID, tok token.Token, left, right *op.Prec, argSort op.SortID, followerIndex int) error {
	k := key{Sort: sort, Tok: tok}
	prefixy := left == nil
	dst := t.Suffixy
	if prefixy {
		dst = t.Prefixy
	}
	if existing, ok := dst[k]; ok {
		if (role == Lone || role == Head) && (existing.Role == Lone || existing.Role == Head) {
			return &DuplicateOpError{Op1: existing.Op.Name, Op2: owner.Name, Sort: sort}
		}
		if prefixy {
			return &PrefixyConflictError{Token: t.TokenNames[tok]}
		}
		return &SuffixyConflictError{Token: t.TokenNames[tok]}
	}
	b := Binding{Op: owner, Role: role, HasRightArg: right != nil, ArgSort: argSort, FollowerIndex: followerIndex}
	if left != nil {
		b.Left = *left
	}
	if right != nil {
		b.Right = *right
	}
	dst[k] = b
	return nil
}

// LookupPrefixy returns the Binding a token has in prefixy position
// (i.e. when an expression is expected), if any.
func (t *Table) LookupPrefixy(sort op.SortID, tok token.Token) (Binding, bool) {
	b, ok := t.Prefixy[key{Sort: sort, Tok: tok}]
	return b, ok
}

// LookupSuffixy returns the Binding a token has in suffixy position
// (i.e. following a complete expression), if any.
func (t *Table) LookupSuffixy(sort op.SortID, tok token.Token) (Binding, bool) {
	b, ok := t.Suffixy[key{Sort: sort, Tok: tok}]
	return b, ok
}
