package grammar

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Grammar is a context-free grammar. It holds a start symbol and, for every head,
// an ordered set of bodies. Heads are kept in the order of their first
// production, bodies in insertion order.
type Grammar struct {
	Name   string
	start  Symbol
	heads  []Symbol
	bodies map[Symbol][][]Symbol
	keys   map[Symbol]map[string]struct{}
	size   int
}

// New creates an empty grammar with a given start symbol.
// start has to be a non-terminal.
func New(name string, start Symbol) *Grammar {
	if !start.IsNonTerminal() {
		panic(fmt.Sprintf("start symbol %q of grammar %q is not a non-terminal", start, name))
	}
	return &Grammar{
		Name:   name,
		start:  start,
		bodies: make(map[Symbol][][]Symbol),
		keys:   make(map[Symbol]map[string]struct{}),
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// AddProduction adds head → body to the grammar. An empty body is an
// epsilon-production. Adding a body already present for head does nothing.
// AddProduction returns true if a new production has been added.
//
// It panics if head is not a non-terminal.
func (g *Grammar) AddProduction(head Symbol, body []Symbol) bool {
	if !head.IsNonTerminal() {
		panic(fmt.Sprintf("cannot add production for terminal %q", head))
	}
	key := bodyKey(body)
	known, ok := g.keys[head]
	if !ok {
		known = make(map[string]struct{})
		g.keys[head] = known
		g.heads = append(g.heads, head)
	}
	if _, dup := known[key]; dup {
		return false
	}
	known[key] = struct{}{}
	rhs := make([]Symbol, len(body))
	copy(rhs, body)
	g.bodies[head] = append(g.bodies[head], rhs)
	g.size++
	return true
}

// HasProductions returns true if there is at least one production for A.
func (g *Grammar) HasProductions(A Symbol) bool {
	return len(g.bodies[A]) > 0
}

// HasProduction checks for a concrete production A → body.
func (g *Grammar) HasProduction(A Symbol, body []Symbol) bool {
	if known, ok := g.keys[A]; ok {
		_, found := known[bodyKey(body)]
		return found
	}
	return false
}

// ProductionsOf returns the bodies of all productions for A, in insertion order.
// Clients must not modify the bodies.
func (g *Grammar) ProductionsOf(A Symbol) [][]Symbol {
	b := g.bodies[A]
	r := make([][]Symbol, len(b))
	copy(r, b)
	return r
}

// Heads returns all symbols which have at least one production, in order of
// their first production.
func (g *Grammar) Heads() []Symbol {
	h := make([]Symbol, len(g.heads))
	copy(h, g.heads)
	return h
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return g.size
}

// EachProduction calls f for every production, grouped by head.
func (g *Grammar) EachProduction(f func(Production)) {
	for _, A := range g.heads {
		for _, body := range g.bodies[A] {
			f(Production{LHS: A, RHS: body})
		}
	}
}

// Productions returns all productions, grouped by head.
func (g *Grammar) Productions() []Production {
	prods := make([]Production, 0, g.size)
	g.EachProduction(func(p Production) {
		prods = append(prods, p)
	})
	return prods
}

// NonTerminals returns all non-terminals in use, including the start
// symbol, sorted by name.
func (g *Grammar) NonTerminals() []Symbol {
	set := g.symbols(NonTerminalKind)
	set.Add(g.start)
	return toSymbols(set)
}

// Terminals returns all terminals in use, sorted by name.
func (g *Grammar) Terminals() []Symbol {
	return toSymbols(g.symbols(TerminalKind))
}

func (g *Grammar) symbols(kind Kind) *treeset.Set {
	set := treeset.NewWith(symbolComparator)
	g.EachProduction(func(p Production) {
		if kind == NonTerminalKind {
			set.Add(p.LHS)
		}
		for _, A := range p.RHS {
			if A.Kind == kind {
				set.Add(A)
			}
		}
	})
	return set
}

func toSymbols(set *treeset.Set) []Symbol {
	syms := make([]Symbol, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// SortSymbols returns the symbols sorted by kind and name, without duplicates.
func SortSymbols(syms []Symbol) []Symbol {
	set := treeset.NewWith(symbolComparator)
	for _, A := range syms {
		set.Add(A)
	}
	return toSymbols(set)
}

// Copy returns a deep copy of g.
func (g *Grammar) Copy() *Grammar {
	c := New(g.Name, g.start)
	g.EachProduction(func(p Production) {
		c.AddProduction(p.LHS, p.RHS)
	})
	return c
}

// WithStart returns a copy of g with a different start symbol.
func (g *Grammar) WithStart(start Symbol) *Grammar {
	c := New(g.Name, start)
	g.EachProduction(func(p Production) {
		c.AddProduction(p.LHS, p.RHS)
	})
	return c
}

// String renders one line per head, like
//
//     S → NP VP | VP
//
func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, A := range g.orderedHeads() {
		b.WriteString(g.ruleString(A))
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grammar) ruleString(A Symbol) string {
	var b bytes.Buffer
	b.WriteString(A.Name)
	b.WriteString(" →")
	for i, body := range g.bodies[A] {
		if i > 0 {
			b.WriteString(" |")
		}
		b.WriteByte(' ')
		b.WriteString(BodyString(body))
	}
	return b.String()
}

// orderedHeads returns the heads with the start symbol first.
func (g *Grammar) orderedHeads() []Symbol {
	heads := make([]Symbol, 0, len(g.heads))
	if g.HasProductions(g.start) {
		heads = append(heads, g.start)
	}
	for _, A := range g.heads {
		if A != g.start {
			heads = append(heads, A)
		}
	}
	return heads
}

// Dump is a debugging helper, tracing all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s: start %s, %d productions ----------------", g.Name, g.start, g.size)
	for _, A := range g.orderedHeads() {
		tracer().Debugf("  %s", g.ruleString(A))
	}
	tracer().Debugf("-------------------------------------------------")
}
