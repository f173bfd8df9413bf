package grammar

// Symbol table for grammar symbols. Readers and builders resolve names through
// a symbol table to keep a single classification (terminal or non-terminal)
// per name.

// SymbolTable is a symbol table to store symbols (map-like semantics).
type SymbolTable struct {
	Table map[string]Symbol
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Table: make(map[string]Symbol),
	}
}

// Resolve checks for a symbol in the symbol table.
// Returns the symbol and true, or false if not found.
//
func (t *SymbolTable) Resolve(name string) (Symbol, bool) {
	A, ok := t.Table[name]
	return A, ok
}

// ResolveOrDefine finds a symbol in the table, inserts a new one of kind k if
// not found. Returns the symbol and a flag, signalling whether the symbol
// has already been present. A symbol already present keeps its kind.
//
func (t *SymbolTable) ResolveOrDefine(name string, k Kind) (Symbol, bool) {
	if A, ok := t.Resolve(name); ok {
		return A, true
	}
	A, _ := t.Define(name, k)
	return A, false
}

// Define creates a new symbol to store into the symbol table.
// Overwrites an existing symbol with this name, if any.
// Returns the new symbol and the previously stored symbol (or nil).
//
func (t *SymbolTable) Define(name string, k Kind) (Symbol, *Symbol) {
	A := Symbol{Name: name, Kind: k}
	var old *Symbol
	if prev, ok := t.Table[name]; ok {
		old = &prev
	}
	t.Table[name] = A
	return A, old
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each symbol in the table, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, Symbol)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}
