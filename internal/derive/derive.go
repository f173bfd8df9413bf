/*
Package derive decides membership of sentences for arbitrary context-free
grammars by brute force. It serves as a reference for testing grammar
transformations and recognizers on small grammars and short sentences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derive

import (
	"github.com/npillmayer/chomsky/grammar"
)

// Derives returns true if the start symbol of g derives words.
//
// For every span (i, j) of words, including empty spans, the set of
// non-terminals deriving words[i:j] is computed as a least fixpoint over all
// productions. ε-productions and unit cycles are handled.
func Derives(g *grammar.Grammar, words []string) bool {
	n := len(words)
	table := make([][]map[grammar.Symbol]bool, n+1)
	for i := range table {
		table[i] = make([]map[grammar.Symbol]bool, n+1)
		for j := range table[i] {
			table[i][j] = make(map[grammar.Symbol]bool)
		}
	}
	prods := g.Productions()
	for changed := true; changed; {
		changed = false
		for i := 0; i <= n; i++ {
			for j := i; j <= n; j++ {
				for _, p := range prods {
					if table[i][j][p.LHS] {
						continue
					}
					if matches(table, words, p.RHS, i, j) {
						table[i][j][p.LHS] = true
						changed = true
					}
				}
			}
		}
	}
	return table[0][n][g.Start()]
}

// matches checks whether body derives words[i:j], given the current table.
func matches(table [][]map[grammar.Symbol]bool, words []string, body []grammar.Symbol, i, j int) bool {
	if len(body) == 0 {
		return i == j
	}
	X := body[0]
	if X.IsTerminal() {
		return i < j && words[i] == X.Name && matches(table, words, body[1:], i+1, j)
	}
	for k := i; k <= j; k++ {
		if table[i][k][X] && matches(table, words, body[1:], k, j) {
			return true
		}
	}
	return false
}

// Sentences enumerates all sentences over the terminals of g with length up to
// maxlen, the empty sentence included.
func Sentences(g *grammar.Grammar, maxlen int) [][]string {
	var alphabet []string
	for _, a := range g.Terminals() {
		alphabet = append(alphabet, a.Name)
	}
	sentences := [][]string{{}}
	last := [][]string{{}}
	for l := 1; l <= maxlen; l++ {
		var next [][]string
		for _, s := range last {
			for _, a := range alphabet {
				w := make([]string, len(s)+1)
				copy(w, s)
				w[len(s)] = a
				next = append(next, w)
			}
		}
		sentences = append(sentences, next...)
		last = next
	}
	return sentences
}
