package cnf

import (
	"github.com/npillmayer/chomsky/grammar"
)

// binarize keeps productions A → a and A → B C. In every other body of
// length ≥ 2 terminals are replaced by wrapper non-terminals, then the
// rightmost two symbols are folded into an intermediate non-terminal until
// two symbols are left.
func (n *normalizer) binarize(g *grammar.Grammar) *grammar.Grammar {
	r := grammar.New(g.Name, g.Start())
	var aux []grammar.Production // productions for fresh non-terminals
	for _, A := range orderedHeads(g) {
		for _, body := range g.ProductionsOf(A) {
			if len(body) < 2 || (len(body) == 2 && body[0].IsNonTerminal() && body[1].IsNonTerminal()) {
				r.AddProduction(A, body)
				continue
			}
			syms := make([]grammar.Symbol, len(body))
			for i, X := range body {
				syms[i] = X
				if X.IsTerminal() {
					T, isNew := n.factory.wrapper(X)
					if isNew {
						aux = append(aux, grammar.Production{LHS: T, RHS: []grammar.Symbol{X}})
					}
					syms[i] = T
				}
			}
			for len(syms) > 2 {
				l := len(syms)
				Y, isNew := n.factory.intermediate(syms[l-2], syms[l-1])
				if isNew {
					aux = append(aux, grammar.Production{LHS: Y, RHS: []grammar.Symbol{syms[l-2], syms[l-1]}})
				}
				syms = append(syms[:l-2], Y)
			}
			r.AddProduction(A, syms)
		}
	}
	for _, p := range aux {
		r.AddProduction(p.LHS, p.RHS)
	}
	return r
}
