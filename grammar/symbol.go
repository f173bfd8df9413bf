package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Kind tells terminals and non-terminals apart.
type Kind int8

// Symbols are either non-terminals or terminals.
const (
	NonTerminalKind Kind = iota
	TerminalKind
)

func (k Kind) String() string {
	if k == TerminalKind {
		return "terminal"
	}
	return "non-terminal"
}

// Symbol is a grammar symbol. Symbols are values and may be compared with ==.
// Two symbols are equal if they have the same kind and the same name.
// Names may consist of more than one character.
type Symbol struct {
	Name string
	Kind Kind
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Name: name, Kind: TerminalKind}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminalKind}
}

// IsTerminal returns true if this symbol represents a terminal.
func (A Symbol) IsTerminal() bool {
	return A.Kind == TerminalKind
}

// IsNonTerminal returns true if this symbol represents a non-terminal.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalKind
}

func (A Symbol) String() string {
	return A.Name
}

// Production is a single rule A → α. An empty RHS denotes an epsilon-production.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

// IsEpsilon returns true for A → ε.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// IsUnit returns true for A → B, with B a non-terminal.
func (p Production) IsUnit() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsNonTerminal()
}

func (p Production) String() string {
	return fmt.Sprintf("%s → %s", p.LHS, BodyString(p.RHS))
}

// BodyString renders a right hand side, using ε for an empty one.
func BodyString(body []Symbol) string {
	if len(body) == 0 {
		return "ε"
	}
	var b strings.Builder
	for i, A := range body {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(A.Name)
	}
	return b.String()
}

// bodyKey is a canonical key for a right hand side, used for de-duplication.
func bodyKey(body []Symbol) string {
	var b strings.Builder
	for _, A := range body {
		if A.IsTerminal() {
			b.WriteByte('t')
		} else {
			b.WriteByte('n')
		}
		b.WriteString(A.Name)
		b.WriteByte(0)
	}
	return b.String()
}

// symbolComparator orders symbols by name, terminals after non-terminals.
func symbolComparator(s1, s2 interface{}) int {
	A, B := s1.(Symbol), s2.(Symbol)
	if A.Kind != B.Kind {
		return utils.IntComparator(int(A.Kind), int(B.Kind))
	}
	return utils.StringComparator(A.Name, B.Name)
}
