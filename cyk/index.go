/*
Package cyk implements the Cocke-Younger-Kasami recognizer for grammars in
Chomsky normal form, together with the reconstruction of a parse tree.

Recognizing

A grammar in CNF is compiled into an index once. The index is read-only and
may be shared between goroutines, each of them recognizing its own sentences.

    ix, err := cyk.BuildIndex(g)        // g has to be in CNF, see package cnf
    accepted, table := cyk.Recognize(ix, []string{"the", "cat", "chases", "a", "dog"})

The recognition table is triangular: cell (i, ℓ) holds the non-terminals deriving
the ℓ words starting at position i. For every non-terminal in a cell the first
derivation discovered is recorded as a backpointer: either the word it matched
(ℓ = 1) or the split (B, C, k) it was built from. Later derivations of the same
non-terminal in the same cell are ignored, thus ambiguous sentences get a single,
deterministic parse.

Tree Building

For an accepted sentence, the parse tree is rebuilt from the backpointers:

    tree, err := cyk.ExtractTree(table)
    fmt.Println(tree.Bracketed())       // (S (NP (Det the) (N cat)) (VP …))

The empty sentence is accepted iff the start symbol has an ε-production. Its tree
is a single ε-leaf.

Complexity is O(n³·|G|) time and O(n²·|N|) space for n words.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"errors"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cyk")
}

// Errors of package cyk.
var (
	// ErrNotCNF is returned by BuildIndex for grammars not in Chomsky normal form.
	ErrNotCNF = cnf.ErrNotCNF
	// ErrNotAccepted is returned when extracting a tree from a rejecting table.
	ErrNotAccepted = errors.New("sentence not accepted")
	// ErrLookupMiss signals a (cell, symbol) missing from a recognition table.
	// It is an internal invariant failure, not a user error.
	ErrLookupMiss = errors.New("recognition table lookup miss")
)

type pair struct {
	b, c int
}

// Index is the compiled form of a CNF grammar. Non-terminals are interned to
// small integers.
type Index struct {
	g         *grammar.Grammar
	start     int
	symbols   []grammar.Symbol       // id → non-terminal
	ids       map[grammar.Symbol]int // non-terminal → id
	terminals map[string][]int       // word → heads A with A → word
	pairs     map[pair][]int         // (B, C) → heads A with A → B C
	epsilon   bool                   // start symbol has an ε-production
}

// BuildIndex compiles g into an index. It returns an error wrapping ErrNotCNF if
// g is not in Chomsky normal form.
func BuildIndex(g *grammar.Grammar) (*Index, error) {
	if err := cnf.Check(g); err != nil {
		return nil, err
	}
	ix := &Index{
		g:         g,
		ids:       make(map[grammar.Symbol]int),
		terminals: make(map[string][]int),
		pairs:     make(map[pair][]int),
	}
	for _, A := range g.NonTerminals() {
		ix.ids[A] = len(ix.symbols)
		ix.symbols = append(ix.symbols, A)
	}
	ix.start = ix.ids[g.Start()]
	g.EachProduction(func(p grammar.Production) {
		A := ix.ids[p.LHS]
		switch len(p.RHS) {
		case 0:
			ix.epsilon = true
		case 1:
			ix.terminals[p.RHS[0].Name] = append(ix.terminals[p.RHS[0].Name], A)
		case 2:
			key := pair{ix.ids[p.RHS[0]], ix.ids[p.RHS[1]]}
			ix.pairs[key] = append(ix.pairs[key], A)
		}
	})
	tracer().Debugf("index for %s: %d non-terminals, %d words, %d pairs",
		g.Name, len(ix.symbols), len(ix.terminals), len(ix.pairs))
	return ix, nil
}

// Grammar returns the grammar the index has been built for.
func (ix *Index) Grammar() *grammar.Grammar {
	return ix.g
}

// Start returns the start symbol.
func (ix *Index) Start() grammar.Symbol {
	return ix.symbols[ix.start]
}

// Knows returns true if word is a terminal of the grammar.
func (ix *Index) Knows(word string) bool {
	_, ok := ix.terminals[word]
	return ok
}

// Recognize runs the CYK algorithm for a sentence. It is a shortcut for
// ix.Recognize(words).
func Recognize(ix *Index, words []string) (bool, *Table) {
	t := ix.Recognize(words)
	return t.Accepted(), t
}
