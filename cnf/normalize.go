package cnf

import (
	"fmt"

	"github.com/npillmayer/chomsky/grammar"
)

// Option configures a normalization run.
type Option func(*normalizer)

// WithStart overrides the start symbol of the input grammar.
func WithStart(start grammar.Symbol) Option {
	return func(n *normalizer) {
		n.start = start
	}
}

// normalizer holds the state of one normalization run.
type normalizer struct {
	start   grammar.Symbol
	factory *factory
	passes  []PassSummary
}

// PassSummary describes the outcome of a single normalization pass.
type PassSummary struct {
	Name         string
	Productions  int
	NonTerminals int
}

func (p PassSummary) String() string {
	return fmt.Sprintf("%s: %d productions, %d non-terminals", p.Name, p.Productions, p.NonTerminals)
}

// Report is the result of a normalization run, together with a summary per pass.
type Report struct {
	Grammar *grammar.Grammar
	Passes  []PassSummary
}

// Normalize transforms g into an equivalent grammar in Chomsky normal form.
// g is not modified.
//
// A grammar without productions results in an empty grammar (the empty
// language). If the start symbol has no productions, but other non-terminals
// have, Normalize returns a *StructuralError. An empty language is not an error:
// the result then has no productions.
func Normalize(g *grammar.Grammar, opts ...Option) (*grammar.Grammar, error) {
	r, err := NormalizeWithReport(g, opts...)
	if err != nil {
		return nil, err
	}
	return r.Grammar, nil
}

// NormalizeWithReport is like Normalize, but additionally reports the size of the
// grammar after every pass.
func NormalizeWithReport(g *grammar.Grammar, opts ...Option) (*Report, error) {
	n := &normalizer{start: g.Start()}
	for _, opt := range opts {
		opt(n)
	}
	if !n.start.IsNonTerminal() {
		return nil, fmt.Errorf("start symbol %q is not a non-terminal", n.start)
	}
	if g.Size() == 0 {
		tracer().Infof("grammar %s has no productions", g.Name)
		return &Report{Grammar: grammar.New(g.Name, n.start)}, nil
	}
	if !g.HasProductions(n.start) {
		return nil, &StructuralError{Grammar: g.Name, Start: n.start}
	}
	n.factory = newFactory(g)
	g = g.WithStart(n.start)
	tracer().Infof("normalizing grammar %s with %d productions", g.Name, g.Size())
	g = n.pass("epsilon elimination", g, n.eliminateEpsilon)
	g = n.pass("unit elimination", g, n.eliminateUnits)
	g = n.pass("useless symbol elimination", g, n.eliminateUseless)
	g = n.pass("binarization", g, n.binarize)
	g = n.pass("unit elimination", g, n.eliminateUnits)
	return &Report{Grammar: g, Passes: n.passes}, nil
}

func (n *normalizer) pass(name string, g *grammar.Grammar, f func(*grammar.Grammar) *grammar.Grammar) *grammar.Grammar {
	r := f(g)
	summary := PassSummary{Name: name, Productions: r.Size(), NonTerminals: len(r.Heads())}
	tracer().Infof("%s", summary)
	r.Dump()
	n.passes = append(n.passes, summary)
	return r
}

// orderedHeads returns the heads of g, the start symbol first.
func orderedHeads(g *grammar.Grammar) []grammar.Symbol {
	heads := make([]grammar.Symbol, 0, len(g.Heads())+1)
	if g.HasProductions(g.Start()) {
		heads = append(heads, g.Start())
	}
	for _, A := range g.Heads() {
		if A != g.Start() {
			heads = append(heads, A)
		}
	}
	return heads
}
