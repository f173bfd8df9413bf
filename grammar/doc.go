/*
Package grammar implements the model of context-free grammars.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
words of the input language. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("NP").N("VP").End()   // S   ->  NP VP
    b.LHS("NP").N("Det").N("N").End()  // NP  ->  Det N
    b.LHS("Det").T("the").End()        // Det ->  the
    b.LHS("Det").Epsilon()             // Det ->
    g, err := b.Grammar()

The first left hand side is the start symbol, unless the builder is told otherwise
with b.Start(…). Grammars may also be created programmatically with New and
AddProduction. Every head holds an ordered set of bodies: adding a body twice
is a no-op.

    g.Dump()

    S   → NP VP
    NP  → Det N
    Det → the | ε

Grammars can be exported to the EBNF dialect of golang.org/x/exp/ebnf. This is
used to verify that every referenced non-terminal is defined and reachable from
the start symbol.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.grammar")
}
