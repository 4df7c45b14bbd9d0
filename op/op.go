package op

import "github.com/opfix/opfix/token"

// Prec is a precedence level. Smaller binds tighter; 0 is reserved for
// atoms.
type Prec uint32

// Infinite is the "hard wall" precedence interior mixfix followers use
// so the shunter never interleaves another operator between a mixfix
// operator's head and its followers.
const Infinite Prec = ^Prec(0)

// Fixity is whether an operator takes an argument on the left, the
// right, both, or neither.
type Fixity int

const (
	// Nilfix takes no arguments (an atom).
	Nilfix Fixity = iota
	// Prefix takes an argument only on the right (e.g. "! _").
	Prefix
	// Suffix takes an argument only on the left (e.g. "_ ++").
	Suffix
	// Infix takes an argument on both sides (e.g. "_ + _").
	Infix
)

func (f Fixity) String() string {
	switch f {
	case Nilfix:
		return "nilfix"
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case Infix:
		return "infix"
	default:
		return "invalid"
	}
}

// Assoc is left- or right-associativity, meaningful for Infix and for
// which side of a Prefix/Suffix operator absorbs an equal-precedence
// neighbor.
type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// FollowerPattern is one interior token of a mixfix operator as written
// by a grammar author, e.g. the "then" and "else" of
// "if _ then _ else _". Sort names which nonterminal the argument
// preceding this follower belongs to; "" means "the operator's own
// sort".
type FollowerPattern struct {
	Sort  string
	Token string
}

// Pattern is the user-facing description of an operator passed to
// Grammar.Op: a fixity, the literal text of the operator's head token,
// and zero or more followers for a mixfix operator.
type Pattern struct {
	Fixity     Fixity
	FirstToken string
	Followers  []FollowerPattern
}

// SortID identifies a sort (nonterminal). DefaultSort is used when a
// grammar never calls Grammar.Sort.
type SortID int

const DefaultSort SortID = 0

// Follower is a resolved interior token of a mixfix operator: the sort
// its preceding argument belongs to, and the token that spells it out.
type Follower struct {
	Sort  SortID
	Token token.Token
}

// Op is one operator: its name, fixity, associativity, declared
// precedence, the tokens that spell it out, and the derived left/right
// half-precedences the shunter actually consults.
type Op struct {
	Name       string
	Fixity     Fixity
	Assoc      Assoc
	Prec       Prec
	Sort       SortID
	FirstToken token.Token
	Followers  []Follower
	LeftPrec   *Prec // nil means "no left argument"
	RightPrec  *Prec // nil means "no right argument"
	Arity      int
}

// reserved names with fixed semantics; user-chosen operator names may
// not use the "$" prefix.
const (
	BlankName     = "$Blank"
	JuxtaposeName = "$Juxtapose"
	MissingAtom   = "$MissingAtom"
	ErrorName     = "$LexError"
)

func prec(p Prec) *Prec { return &p }

// Derive computes (leftPrec, rightPrec) from (fixity, assoc, prec),
// exactly as in the table below: the side that is tighter by one is the
// side the operator gives ground on, which is how associativity is
// encoded.
//
//	fixity   assoc   lprec     rprec
//	Nilfix   any     —         —
//	Prefix   Left    —         prec-1
//	Prefix   Right   —         prec
//	Suffix   Left    prec      —
//	Suffix   Right   prec-1    —
//	Infix    Left    prec      prec-1
//	Infix    Right   prec-1    prec
func Derive(fixity Fixity, assoc Assoc, p Prec) (left, right *Prec) {
	switch fixity {
	case Nilfix:
		return nil, nil
	case Prefix:
		if assoc == Left {
			return nil, prec(p - 1)
		}
		return nil, prec(p)
	case Suffix:
		if assoc == Left {
			return prec(p), nil
		}
		return prec(p - 1), nil
	case Infix:
		if assoc == Left {
			return prec(p), prec(p - 1)
		}
		return prec(p - 1), prec(p)
	default:
		return nil, nil
	}
}

// New builds a non-atom Op, deriving its half-precedences and arity.
// first is the head token; only the head contributes a real left/right
// edge precedence when the operator is mixfix (followers are wired to
// (Infinite, Infinite) walls, save for the last one, by the grammar
// package — Op itself just records the operator's own declared
// endpoints).
func New(name string, fixity Fixity, assoc Assoc, p Prec, sort SortID, first token.Token, followers []Follower) *Op {
	left, right := Derive(fixity, assoc, p)
	arity := len(followers)
	switch fixity {
	case Prefix, Suffix:
		arity++
	case Infix:
		arity += 2
	}
	return &Op{
		Name: name, Fixity: fixity, Assoc: assoc, Prec: p, Sort: sort,
		FirstToken: first, Followers: followers,
		LeftPrec: left, RightPrec: right, Arity: arity,
	}
}

// NewAtom builds a Nilfix operator occupying a single token.
func NewAtom(name string, sort SortID, t token.Token) *Op {
	return &Op{Name: name, Fixity: Nilfix, Assoc: Left, Prec: 0, Sort: sort, FirstToken: t, Arity: 0}
}

// NewMissingAtom builds the implicit "$Blank" atom the shunter's
// preprocessor inserts whenever an atom is expected but not present.
func NewMissingAtom() *Op {
	return &Op{Name: BlankName, Fixity: Nilfix, Assoc: Left, Prec: 0, FirstToken: token.Blank, Arity: 0}
}

// NewErrorAtom builds the implicit "$LexError" atom the shunter's
// preprocessor inserts in place of a lexeme the lexer couldn't match
// against any pattern, instead of aborting — mirroring the reference
// implementation's fixed prefixy binding for its ERROR token, which
// likewise carries no right argument.
func NewErrorAtom() *Op {
	return &Op{Name: ErrorName, Fixity: Nilfix, Assoc: Left, Prec: 0, FirstToken: token.Error, Arity: 0}
}

// NewJuxtapose builds the implicit invisible infix operator the
// preprocessor inserts between two adjacent items that lack an operator
// between them, at the group precedence passed in by the grammar.
func NewJuxtapose(assoc Assoc, p Prec) *Op {
	left, right := Derive(Infix, assoc, p)
	return &Op{
		Name: JuxtaposeName, Fixity: Infix, Assoc: assoc, Prec: p,
		FirstToken: token.Juxtapose, LeftPrec: left, RightPrec: right, Arity: 2,
	}
}
