package grammar

import (
	"strings"

	"github.com/opfix/opfix/lexer"
	"github.com/opfix/opfix/op"
	"github.com/opfix/opfix/optable"
	"github.com/opfix/opfix/parser"
)

// PrecDelta is the gap between successive groups' precedences, large
// enough that one group's prec-1 never aliases the next-tighter group's
// prec.
const PrecDelta op.Prec = 10

// Grammar accumulates operators into an optable.Table. Call New, then
// interleave LGroup/RGroup with StringAtom/RegexAtom/Op/Juxtapose, then
// Finish to freeze it.
type Grammar struct {
	lexerBuilder *lexer.Builder
	table        *optable.Table

	sortNames map[string]op.SortID
	nextSort  op.SortID

	currentSort  op.SortID
	currentPrec  op.Prec
	currentAssoc op.Assoc
	groupSet     bool

	err error
}

// New creates an empty Grammar whose whitespace is matched by
// whitespaceRegex, in github.com/dlclark/regexp2 syntax.
func New(whitespaceRegex string) (*Grammar, error) {
	lb, err := lexer.NewBuilder(whitespaceRegex)
	if err != nil {
		return nil, err
	}
	return &Grammar{
		lexerBuilder: lb,
		table:        optable.New(),
		sortNames:    map[string]op.SortID{},
		nextSort:     op.DefaultSort + 1,
	}, nil
}

// NewWithUnicodeWhitespace is New(lexer.UnicodeWhitespacePattern).
func NewWithUnicodeWhitespace() (*Grammar, error) {
	return New(lexer.UnicodeWhitespacePattern)
}

// Sort declares (or looks up) a named sort and makes it the current
// sort context for subsequently declared operators. When a grammar
// never calls Sort, every operator shares op.DefaultSort.
func (g *Grammar) Sort(name string) op.SortID {
	if id, ok := g.sortNames[name]; ok {
		g.currentSort = id
		return id
	}
	id := g.nextSort
	g.nextSort++
	g.sortNames[name] = id
	g.currentSort = id
	return id
}

func (g *Grammar) resolveSort(name string) (op.SortID, error) {
	if name == "" {
		return g.currentSort, nil
	}
	id, ok := g.sortNames[name]
	if !ok {
		return 0, &SortNotSetError{Name: name}
	}
	return id, nil
}

// LGroup starts a new group of operators looser than every group
// declared so far, with left-associative Infix operators by default.
func (g *Grammar) LGroup() {
	g.currentPrec += PrecDelta
	g.currentAssoc = op.Left
	g.groupSet = true
}

// RGroup is LGroup, but Infix operators in this group default to
// right-associative.
func (g *Grammar) RGroup() {
	g.currentPrec += PrecDelta
	g.currentAssoc = op.Right
	g.groupSet = true
}

// StringAtom registers a Nilfix operator matching an exact literal.
func (g *Grammar) StringAtom(name, literal string) error {
	t, err := g.lexerBuilder.RegisterString(literal)
	if err != nil {
		return err
	}
	g.table.TokenNames[t] = literal
	owner := op.NewAtom(name, g.currentSort, t)
	return g.table.Add(owner, optable.Lone, g.currentSort, t, nil, nil, g.currentSort, -1)
}

// RegexAtom registers a Nilfix operator matching a regex pattern.
func (g *Grammar) RegexAtom(name, pattern string) error {
	t, err := g.lexerBuilder.RegisterRegex(pattern, name)
	if err != nil {
		return err
	}
	g.table.TokenNames[t] = name
	owner := op.NewAtom(name, g.currentSort, t)
	return g.table.Add(owner, optable.Lone, g.currentSort, t, nil, nil, g.currentSort, -1)
}

// Op registers an operator under the current group (ignored for
// Fixity: Nilfix, which is always precedence 0). name must not start
// with "$".
func (g *Grammar) Op(name string, pattern op.Pattern) error {
	if strings.HasPrefix(name, "$") {
		return &ReservedNameError{Name: name}
	}
	if pattern.Fixity == op.Nilfix {
		return g.addOp(name, op.Left, 0, pattern)
	}
	if !g.groupSet {
		return &PrecNotSetError{}
	}
	return g.addOp(name, g.currentAssoc, g.currentPrec, pattern)
}

func (g *Grammar) addOp(name string, assoc op.Assoc, prec op.Prec, pattern op.Pattern) error {
	first, err := g.lexerBuilder.RegisterString(pattern.FirstToken)
	if err != nil {
		return err
	}
	g.table.TokenNames[first] = pattern.FirstToken

	followers := make([]op.Follower, 0, len(pattern.Followers))
	for _, fp := range pattern.Followers {
		sort, err := g.resolveSort(fp.Sort)
		if err != nil {
			return err
		}
		ft, err := g.lexerBuilder.RegisterString(fp.Token)
		if err != nil {
			return err
		}
		g.table.TokenNames[ft] = fp.Token
		followers = append(followers, op.Follower{Sort: sort, Token: ft})
	}

	owner := op.New(name, pattern.Fixity, assoc, prec, g.currentSort, first, followers)

	headRight := owner.RightPrec
	role := optable.Lone
	headArgSort := g.currentSort
	if len(followers) > 0 {
		role = optable.Head
		infinite := op.Infinite
		headRight = &infinite
		headArgSort = followers[0].Sort
	}
	if err := g.table.Add(owner, role, g.currentSort, first, owner.LeftPrec, headRight, headArgSort, -1); err != nil {
		return err
	}

	// Interior followers wall off both sides and always expect another
	// argument next, parsed in the following follower's sort. The final
	// follower's right edge is the operator's own real right precedence
	// (nil for Nilfix, meaning no trailing argument at all), so it never
	// needs an ArgSort.
	for i, f := range owner.Followers {
		isLast := i == len(owner.Followers)-1
		left := op.Infinite
		role := optable.Interior
		var right *op.Prec
		var argSort op.SortID
		if isLast {
			role = optable.Final
			right = owner.RightPrec
		} else {
			infinite := op.Infinite
			right = &infinite
			argSort = owner.Followers[i+1].Sort
		}
		if err := g.table.Add(owner, role, f.Sort, f.Token, &left, right, argSort, i); err != nil {
			return err
		}
	}
	return nil
}

// Juxtapose installs the invisible, left-associative $Juxtapose
// operator at the current group's precedence. Without this call, two
// adjacent items with no explicit operator between them are a parse
// error (ExtraSeparator) rather than being silently combined.
func (g *Grammar) Juxtapose() error {
	return g.juxtapose(op.Left)
}

// JuxtaposeRightAssoc is Juxtapose, but right-associative.
func (g *Grammar) JuxtaposeRightAssoc() error {
	return g.juxtapose(op.Right)
}

func (g *Grammar) juxtapose(assoc op.Assoc) error {
	if !g.groupSet {
		return &PrecNotSetError{}
	}
	owner := op.NewJuxtapose(assoc, g.currentPrec)
	b := optable.Binding{Op: owner, Role: optable.Lone, HasRightArg: true}
	if owner.LeftPrec != nil {
		b.Left = *owner.LeftPrec
	}
	if owner.RightPrec != nil {
		b.Right = *owner.RightPrec
	}
	g.table.Juxtapose = &b
	return nil
}

// Finish freezes the grammar into an immutable Parser.
func (g *Grammar) Finish() (*parser.Parser, error) {
	return parser.New(g.table, g.lexerBuilder), nil
}
