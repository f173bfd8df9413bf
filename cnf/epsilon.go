package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

// nullables computes the set of non-terminals which derive ε, as a least
// fixpoint: A is nullable if it has a body consisting of nullable
// non-terminals only (an empty body included).
func nullables(g *grammar.Grammar) symset {
	nullable := symset{}
	for changed := true; changed; {
		changed = false
		g.EachProduction(func(p grammar.Production) {
			if nullable.contains(p.LHS) {
				return
			}
			for _, A := range p.RHS {
				if A.IsTerminal() || !nullable.contains(A) {
					return
				}
			}
			nullable.add(p.LHS)
			changed = true
		})
	}
	return nullable
}

// IsNullable returns true if A derives the empty string in g.
func IsNullable(g *grammar.Grammar, A grammar.Symbol) bool {
	return nullables(g).contains(A)
}

// eliminateEpsilon emits, for every body with k occurrences of nullable
// non-terminals, all 2^k variants with subsets of these occurrences deleted.
// Empty variants are kept for the start symbol only.
func (n *normalizer) eliminateEpsilon(g *grammar.Grammar) *grammar.Grammar {
	nullable := nullables(g)
	tracer().Debugf("nullable non-terminals: %v", nullable.sorted())
	r := grammar.New(g.Name, g.Start())
	for _, A := range orderedHeads(g) {
		for _, body := range g.ProductionsOf(A) {
			positions := make([]int, 0, len(body))
			for i, X := range body {
				if X.IsNonTerminal() && nullable.contains(X) {
					positions = append(positions, i)
				}
			}
			for mask := 0; mask < 1<<len(positions); mask++ {
				variant := dropPositions(body, positions, mask)
				if len(variant) == 0 && A != g.Start() {
					continue
				}
				r.AddProduction(A, variant)
			}
		}
	}
	return r
}

// dropPositions returns body without the symbols at those positions whose
// bit is set in mask.
func dropPositions(body []grammar.Symbol, positions []int, mask int) []grammar.Symbol {
	variant := make([]grammar.Symbol, 0, len(body))
	p := 0
	for i, X := range body {
		if p < len(positions) && positions[p] == i {
			drop := mask&(1<<p) != 0
			p++
			if drop {
				continue
			}
		}
		variant = append(variant, X)
	}
	return variant
}
