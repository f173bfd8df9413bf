package cyk

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/parsetree"
)

// ExtractTree rebuilds the parse tree of an accepted sentence, rooted at the
// start symbol and spanning all of the input. It returns ErrNotAccepted for a
// rejected sentence.
//
// For the empty sentence the tree consists of a single ε-leaf for the start
// symbol, spanning (0,0).
func ExtractTree(t *Table) (*parsetree.Tree, error) {
	if t == nil || !t.accepted {
		return nil, ErrNotAccepted
	}
	tree := &parsetree.Tree{Words: t.words}
	if t.n == 0 {
		tree.Root = &parsetree.Node{
			Symbol: t.ix.Start(),
			Span:   chomsky.MakeSpan(0, 0),
		}
		return tree, nil
	}
	root, err := t.Subtree(0, t.n, t.ix.Start())
	if err != nil {
		return nil, err
	}
	tree.Root = root
	return tree, nil
}

// Subtree rebuilds the derivation of A for the ℓ words starting at position i.
// If A is not present in cell (i, ℓ), or any backpointer refers to a missing
// (cell, symbol), an error wrapping ErrLookupMiss is returned.
func (t *Table) Subtree(i, l int, A grammar.Symbol) (*parsetree.Node, error) {
	if _, ok := t.Backpointer(i, l, A); !ok {
		return nil, fmt.Errorf("%s not in cell [%d,%d]: %w", A, i, i+l, ErrLookupMiss)
	}
	root := &parsetree.Node{Symbol: A, Span: chomsky.MakeSpan(i, i+l)}
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		v, _ := stack.Pop()
		node := v.(*parsetree.Node)
		from, l := int(node.Span.From()), int(node.Span.Len())
		bp, ok := t.Backpointer(from, l, node.Symbol)
		if !ok {
			tracer().Errorf("no backpointer for %s at [%d,%d]", node.Symbol, from, from+l)
			return nil, fmt.Errorf("%s not in cell [%d,%d]: %w", node.Symbol, from, from+l, ErrLookupMiss)
		}
		if bp.Kind == FromTerminal {
			node.Word = bp.Word
			continue
		}
		node.Left = &parsetree.Node{Symbol: bp.B, Span: chomsky.MakeSpan(from, from+bp.Split)}
		node.Right = &parsetree.Node{Symbol: bp.C, Span: chomsky.MakeSpan(from+bp.Split, from+l)}
		stack.Push(node.Right)
		stack.Push(node.Left)
	}
	return root, nil
}
