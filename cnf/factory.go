package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/grammar"
)

// factory creates fresh non-terminals for one normalization run. It never
// hands out a name already used by the input grammar or by a previous
// fresh symbol. The counter is shared between bases.
type factory struct {
	used     map[string]bool
	counter  int
	wrappers map[grammar.Symbol]grammar.Symbol // terminal → wrapper
	pairs    map[pair]grammar.Symbol           // (B, C) → intermediate
}

type pair struct {
	left, right grammar.Symbol
}

func newFactory(g *grammar.Grammar) *factory {
	f := &factory{
		used:     make(map[string]bool),
		wrappers: make(map[grammar.Symbol]grammar.Symbol),
		pairs:    make(map[pair]grammar.Symbol),
	}
	f.used[g.Start().Name] = true
	g.EachProduction(func(p grammar.Production) {
		f.used[p.LHS.Name] = true
		for _, A := range p.RHS {
			f.used[A.Name] = true
		}
	})
	return f
}

func (f *factory) fresh(base string) grammar.Symbol {
	for {
		f.counter++
		name := fmt.Sprintf("%s%d", base, f.counter)
		if !f.used[name] {
			f.used[name] = true
			return grammar.N(name)
		}
	}
}

// wrapper returns the non-terminal standing for terminal a. The boolean result
// is true if the wrapper has been newly created.
func (f *factory) wrapper(a grammar.Symbol) (grammar.Symbol, bool) {
	if T, ok := f.wrappers[a]; ok {
		return T, false
	}
	T := f.fresh("T")
	f.wrappers[a] = T
	return T, true
}

// intermediate returns the non-terminal standing for the pair B C. The boolean
// result is true if the intermediate has been newly created.
func (f *factory) intermediate(B, C grammar.Symbol) (grammar.Symbol, bool) {
	key := pair{B, C}
	if Y, ok := f.pairs[key]; ok {
		return Y, false
	}
	Y := f.fresh("Y")
	f.pairs[key] = Y
	return Y, true
}
