package cnf

import (
	"errors"
	"fmt"

	"github.com/npillmayer/chomsky/grammar"
)

// StructuralError is returned by Normalize if a grammar cannot be normalized,
// i.e. if the start symbol has no productions although the grammar has some.
type StructuralError struct {
	Grammar string
	Start   grammar.Symbol
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("grammar %q: start symbol %s has no productions", e.Grammar, e.Start)
}

// ErrNotCNF is returned (wrapped) by Check for grammars not in Chomsky normal form.
var ErrNotCNF = errors.New("grammar is not in Chomsky normal form")
