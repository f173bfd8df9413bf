package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

type symset map[grammar.Symbol]struct{}

var exists = struct{}{}

func (set symset) add(A grammar.Symbol) symset {
	if set == nil {
		set = symset{}
	}
	set[A] = exists
	return set
}

func (set symset) contains(A grammar.Symbol) bool {
	if set == nil {
		return false
	}
	_, ok := set[A]
	return ok
}

func (set symset) delete(A grammar.Symbol) {
	if set != nil {
		delete(set, A)
	}
}

func (set symset) size() int {
	return len(set)
}

// sorted returns the members of the set, sorted by name.
func (set symset) sorted() []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(set))
	for A := range set {
		syms = append(syms, A)
	}
	return grammar.SortSymbols(syms)
}

// all returns true if every non-terminal of body is in set.
// Terminals are ignored.
func (set symset) all(body []grammar.Symbol) bool {
	for _, A := range body {
		if A.IsNonTerminal() && !set.contains(A) {
			return false
		}
	}
	return true
}
