package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/grammar"
)

// Check returns nil if g is in Chomsky normal form. Otherwise it returns an
// error wrapping ErrNotCNF, naming the first offending production.
func Check(g *grammar.Grammar) error {
	var err error
	g.EachProduction(func(p grammar.Production) {
		if err != nil {
			return
		}
		switch len(p.RHS) {
		case 0:
			if p.LHS != g.Start() {
				err = fmt.Errorf("%w: ε-production %s for non-start symbol", ErrNotCNF, p)
			}
		case 1:
			if !p.RHS[0].IsTerminal() {
				err = fmt.Errorf("%w: unit production %s", ErrNotCNF, p)
			}
		case 2:
			if !p.RHS[0].IsNonTerminal() || !p.RHS[1].IsNonTerminal() {
				err = fmt.Errorf("%w: terminal in binary production %s", ErrNotCNF, p)
			}
		default:
			err = fmt.Errorf("%w: production %s longer than 2", ErrNotCNF, p)
		}
	})
	return err
}
