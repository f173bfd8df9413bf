package grammar

import (
	"fmt"
)

// Builder is a builder type for grammars.
type Builder struct {
	name   string
	start  string
	symtab *SymbolTable
	rules  []Production
	errs   []error
}

// NewBuilder gets a new grammar builder, given the name of the grammar to build.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		symtab: NewSymbolTable(),
	}
}

// Start sets the start symbol. If not called, the head of the first rule is
// the start symbol.
func (b *Builder) Start(name string) *Builder {
	b.start = name
	b.symbol(name, NonTerminalKind)
	return b
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (b *Builder) LHS(name string) *RuleBuilder {
	if b.start == "" {
		b.start = name
	}
	return &RuleBuilder{
		b:   b,
		lhs: b.symbol(name, NonTerminalKind),
	}
}

func (b *Builder) symbol(name string, k Kind) Symbol {
	A, found := b.symtab.ResolveOrDefine(name, k)
	if found && A.Kind != k {
		b.errs = append(b.errs, fmt.Errorf("symbol %q used as %s and as %s", name, A.Kind, k))
	}
	return A
}

// Grammar returns the grammar built so far. It returns an error if no start
// symbol has been named or if a name has been used as a terminal and as a
// non-terminal.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("grammar %q: %v", b.name, b.errs[0])
	}
	if b.start == "" {
		return nil, fmt.Errorf("grammar %q has no start symbol", b.name)
	}
	g := New(b.name, N(b.start))
	for _, r := range b.rules {
		g.AddProduction(r.LHS, r.RHS)
	}
	return g, nil
}

// SymbolTable returns the symbols the builder has seen so far.
func (b *Builder) SymbolTable() *SymbolTable {
	return b.symtab
}

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	b   *Builder
	lhs Symbol
	rhs []Symbol
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.b.symbol(name, NonTerminalKind))
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.b.symbol(name, TerminalKind))
	return rb
}

// End a rule.
func (rb *RuleBuilder) End() Production {
	p := Production{LHS: rb.lhs, RHS: rb.rhs}
	rb.b.rules = append(rb.b.rules, p)
	return p
}

// Epsilon sets epsilon as the RHS of a production and ends the rule.
func (rb *RuleBuilder) Epsilon() Production {
	rb.rhs = nil
	return rb.End()
}
