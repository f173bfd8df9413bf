package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

// unitClosure computes the transitive closure of the unit relation A → B by
// pairwise composition, up to a fixpoint. Trivial pairs (A, A) are omitted.
func unitClosure(g *grammar.Grammar) map[grammar.Symbol]symset {
	closure := make(map[grammar.Symbol]symset)
	g.EachProduction(func(p grammar.Production) {
		if p.IsUnit() && p.RHS[0] != p.LHS {
			closure[p.LHS] = closure[p.LHS].add(p.RHS[0])
		}
	})
	for changed := true; changed; {
		changed = false
		for A, partners := range closure {
			for B := range partners {
				for C := range closure[B] {
					if C != A && !partners.contains(C) {
						partners.add(C)
						changed = true
					}
				}
			}
		}
	}
	return closure
}

// eliminateUnits gives every head its own non-unit bodies, followed by the
// non-unit bodies of all its unit-closure partners. An empty body is passed on
// to the start symbol only.
func (n *normalizer) eliminateUnits(g *grammar.Grammar) *grammar.Grammar {
	closure := unitClosure(g)
	heads := orderedHeads(g)
	r := grammar.New(g.Name, g.Start())
	for _, A := range heads {
		addNonUnit(r, A, g.ProductionsOf(A), A == g.Start())
		partners := closure[A]
		if partners.size() == 0 {
			continue
		}
		tracer().Debugf("unit closure of %s = %v", A, partners.sorted())
		for _, B := range heads {
			if partners.contains(B) {
				addNonUnit(r, A, g.ProductionsOf(B), A == g.Start())
			}
		}
	}
	return r
}

func addNonUnit(r *grammar.Grammar, A grammar.Symbol, bodies [][]grammar.Symbol, epsilon bool) {
	for _, body := range bodies {
		if len(body) == 1 && body[0].IsNonTerminal() || len(body) == 0 && !epsilon {
			continue
		}
		r.AddProduction(A, body)
	}
}
