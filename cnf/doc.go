/*
Package cnf transforms context-free grammars into Chomsky normal form.

A grammar is in Chomsky normal form (CNF) if every production has one of the forms

    A → a        (a single terminal)
    A → B C      (exactly two non-terminals)
    S → ε        (only for the start symbol S)

Normalize runs four passes, each of them producing a new grammar:

■ Epsilon elimination: compute the nullable non-terminals and, for every body,
emit all variants with subsets of nullable occurrences deleted. Empty bodies
survive for the start symbol only.

■ Unit elimination: compute the transitive closure of A → B and give every head
the non-unit bodies of all its closure partners.

■ Useless-symbol elimination: drop non-terminals which either derive no terminal
string or are unreachable from the start symbol.

■ Binarization: wrap terminals in longer bodies into fresh non-terminals and
fold long bodies from the right into fresh non-terminals, re-using the same
fresh non-terminal for an identical pair of symbols.

Unit elimination is run once more afterwards. The language of the input grammar
is preserved:

    g, _ := b.Grammar()                 // any context-free grammar
    cnfg, err := cnf.Normalize(g)
    if err != nil {                     // *cnf.StructuralError
        …
    }
    cnf.Check(cnfg)                     // nil

Fresh non-terminals are named T1, T2, … for terminal wrappers and Y1, Y2, … for
intermediates. Names never collide with symbols of the input grammar.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cnf")
}
