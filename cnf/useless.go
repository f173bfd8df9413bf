package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

// generating computes the non-terminals deriving a terminal string, as a least
// fixpoint: A is generating if it has a body whose non-terminals are all
// generating.
func generating(g *grammar.Grammar) symset {
	gen := symset{}
	for changed := true; changed; {
		changed = false
		g.EachProduction(func(p grammar.Production) {
			if !gen.contains(p.LHS) && gen.all(p.RHS) {
				gen.add(p.LHS)
				changed = true
			}
		})
	}
	return gen
}

// reachable computes the non-terminals reachable from the start symbol,
// following only bodies whose non-terminals are all in gen.
func reachable(g *grammar.Grammar, gen symset) symset {
	reach := symset{}
	if !gen.contains(g.Start()) {
		return reach
	}
	reach.add(g.Start())
	worklist := []grammar.Symbol{g.Start()}
	for len(worklist) > 0 {
		A := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, body := range g.ProductionsOf(A) {
			if !gen.all(body) {
				continue
			}
			for _, B := range body {
				if B.IsNonTerminal() && !reach.contains(B) {
					reach.add(B)
					worklist = append(worklist, B)
				}
			}
		}
	}
	return reach
}

// eliminateUseless keeps the useful non-terminals, i.e. those both generating
// and reachable, and the bodies consisting of terminals and useful non-terminals.
// If the start symbol is not generating, the result has no productions.
func (n *normalizer) eliminateUseless(g *grammar.Grammar) *grammar.Grammar {
	gen := generating(g)
	useful := reachable(g, gen)
	r := grammar.New(g.Name, g.Start())
	if !useful.contains(g.Start()) {
		tracer().Infof("grammar %s generates the empty language", g.Name)
		return r
	}
	for _, A := range orderedHeads(g) {
		if !useful.contains(A) {
			tracer().Debugf("removing useless non-terminal %s", A)
			continue
		}
		for _, body := range g.ProductionsOf(A) {
			if useful.all(body) {
				r.AddProduction(A, body)
			}
		}
	}
	return r
}
