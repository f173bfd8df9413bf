package cyk

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chomsky/grammar"
)

// BackpointerKind tells how a non-terminal entered a cell.
type BackpointerKind int8

// A non-terminal is either derived from a single word (A → a) or from a
// split into two adjacent cells (A → B C).
const (
	FromTerminal BackpointerKind = iota
	FromSplit
)

// Backpointer records the derivation of a non-terminal in a cell.
// For FromSplit, B derives the first Split words of the cell and C the rest.
type Backpointer struct {
	Kind  BackpointerKind
	Word  string
	B, C  grammar.Symbol
	Split int
}

func (bp Backpointer) String() string {
	if bp.Kind == FromTerminal {
		return fmt.Sprintf("'%s'", bp.Word)
	}
	return fmt.Sprintf("%s %s k=%d", bp.B, bp.C, bp.Split)
}

type backptr struct {
	split int // 0 for terminals
	b, c  int
}

// cell holds the non-terminals of a table cell in order of discovery.
type cell struct {
	order []int
	back  map[int]backptr
}

func (c *cell) has(A int) bool {
	_, ok := c.back[A]
	return ok
}

func (c *cell) add(A int, bp backptr) bool {
	if c.back == nil {
		c.back = make(map[int]backptr)
	} else if _, ok := c.back[A]; ok {
		return false
	}
	c.back[A] = bp
	c.order = append(c.order, A)
	return true
}

// Table is a CYK recognition table for one sentence. Cell (i, ℓ) holds the
// non-terminals deriving words[i:i+ℓ].
type Table struct {
	ix       *Index
	words    []string
	n        int
	cells    []cell // row-major, index (ℓ-1)*n + i
	accepted bool
}

func (t *Table) cell(i, l int) *cell {
	if l < 1 || i < 0 || i+l > t.n {
		return nil
	}
	return &t.cells[(l-1)*t.n+i]
}

// Recognize runs the CYK algorithm for a sentence and returns the filled table.
func (ix *Index) Recognize(words []string) *Table {
	n := len(words)
	t := &Table{
		ix:    ix,
		words: words,
		n:     n,
		cells: make([]cell, n*n),
	}
	if n == 0 {
		t.accepted = ix.epsilon
		tracer().Debugf("empty input, accepted = %v", t.accepted)
		return t
	}
	for i, w := range words {
		c := t.cell(i, 1)
		for _, A := range ix.terminals[w] {
			c.add(A, backptr{})
		}
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			c := t.cell(i, l)
			for k := 1; k < l; k++ {
				left, right := t.cell(i, k), t.cell(i+k, l-k)
				for _, B := range left.order {
					for _, C := range right.order {
						for _, A := range ix.pairs[pair{B, C}] {
							c.add(A, backptr{split: k, b: B, c: C})
						}
					}
				}
			}
		}
	}
	t.accepted = t.cell(0, n).has(ix.start)
	tracer().Debugf("'%s' accepted = %v", strings.Join(words, " "), t.accepted)
	return t
}

// Accepted returns true if the sentence has been recognized.
func (t *Table) Accepted() bool {
	return t.accepted
}

// Words returns the sentence.
func (t *Table) Words() []string {
	return t.words
}

// Len returns the number of words.
func (t *Table) Len() int {
	return t.n
}

// Index returns the index the table has been filled with.
func (t *Table) Index() *Index {
	return t.ix
}

// Symbols returns the non-terminals of cell (i, ℓ) in order of discovery.
// It returns nil for cells outside of the table.
func (t *Table) Symbols(i, l int) []grammar.Symbol {
	c := t.cell(i, l)
	if c == nil {
		return nil
	}
	syms := make([]grammar.Symbol, len(c.order))
	for j, A := range c.order {
		syms[j] = t.ix.symbols[A]
	}
	return syms
}

// Backpointer returns the recorded derivation of A in cell (i, ℓ).
func (t *Table) Backpointer(i, l int, A grammar.Symbol) (Backpointer, bool) {
	id, ok := t.ix.ids[A]
	if !ok {
		return Backpointer{}, false
	}
	c := t.cell(i, l)
	if c == nil {
		return Backpointer{}, false
	}
	bp, ok := c.back[id]
	if !ok {
		return Backpointer{}, false
	}
	if bp.split == 0 {
		return Backpointer{Kind: FromTerminal, Word: t.words[i]}, true
	}
	return Backpointer{
		Kind:  FromSplit,
		B:     t.ix.symbols[bp.b],
		C:     t.ix.symbols[bp.c],
		Split: bp.split,
	}, true
}

// Dump is a debugging helper, tracing all non-empty cells of the table.
func (t *Table) Dump() {
	tracer().Debugf("--- CYK table for '%s' ---------------------", strings.Join(t.words, " "))
	for l := 1; l <= t.n; l++ {
		for i := 0; i+l <= t.n; i++ {
			if syms := t.Symbols(i, l); len(syms) > 0 {
				tracer().Debugf("[%d,%d] %v", i, i+l, syms)
			}
		}
	}
	tracer().Debugf("accepted = %v", t.accepted)
}
