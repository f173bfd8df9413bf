/*
Package parsetree holds binary parse trees, as produced by the CYK tree builder.

Every node covers a span of input words. Leaves hold a pre-terminal symbol and the
word it matched, inner nodes hold a non-terminal and exactly two children, reflecting
productions A → B C of a grammar in Chomsky normal form.

Trees may be validated against the input sentence, traversed with a Listener,
printed as indented text or in bracket notation, and exported to
Graphviz's Dot format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.parsetree'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.parsetree")
}

// Node is a node of a parse tree. A node without children is a leaf and
// carries the word it matched.
type Node struct {
	Symbol grammar.Symbol
	Word   string
	Span   chomsky.Span
	Left   *Node
	Right  *Node
}

// IsLeaf returns true for nodes without children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Children returns the children of n, left to right.
func (n *Node) Children() []*Node {
	if n.IsLeaf() {
		return nil
	}
	return []*Node{n.Left, n.Right}
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s → '%s' %s", n.Symbol, n.Word, n.Span)
	}
	return fmt.Sprintf("%s %s", n.Symbol, n.Span)
}

// Tree is a parse tree for a sentence.
type Tree struct {
	Root  *Node
	Words []string
}

// Validate checks the tree against the sentence it has been built for.
func (t *Tree) Validate() error {
	return Validate(t.Root, t.Words)
}

// Validate checks that root spans all of words, that the children of every inner
// node partition its span contiguously, and that every leaf covers exactly one
// word, equal to the word it holds. For an empty sentence the root has to be a
// leaf with an empty span and no word.
func Validate(root *Node, words []string) error {
	if root == nil {
		return fmt.Errorf("parse tree is empty")
	}
	if root.Span != chomsky.MakeSpan(0, len(words)) {
		return fmt.Errorf("root span is %s, should be %s", root.Span, chomsky.MakeSpan(0, len(words)))
	}
	if len(words) == 0 {
		if !root.IsLeaf() || root.Word != "" {
			return fmt.Errorf("tree for empty input has to be a single ε-leaf")
		}
		return nil
	}
	return validate(root, words)
}

func validate(n *Node, words []string) error {
	if n.IsLeaf() {
		if n.Span.Len() != 1 {
			return fmt.Errorf("leaf %s has to span exactly one word", n)
		}
		if w := words[n.Span.From()]; w != n.Word {
			return fmt.Errorf("leaf %s does not match input word '%s'", n, w)
		}
		return nil
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("inner node %s has to have two children", n)
	}
	if n.Left.Span.From() != n.Span.From() || n.Left.Span.To() != n.Right.Span.From() ||
		n.Right.Span.To() != n.Span.To() || n.Left.Span.Len() == 0 || n.Right.Span.Len() == 0 {
		return fmt.Errorf("children %s and %s do not partition span of %s", n.Left.Span, n.Right.Span, n)
	}
	if err := validate(n.Left, words); err != nil {
		return err
	}
	return validate(n.Right, words)
}

// Leaves returns the leaves of the tree, left to right.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	if t.Root == nil {
		return leaves
	}
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			leaves = append(leaves, n)
			continue
		}
		stack = append(stack, n.Right, n.Left)
	}
	return leaves
}

// String renders the tree indented, one node per line:
//
//     S
//       NP
//         Det → 'the'
//
func (t *Tree) String() string {
	var b strings.Builder
	t.Each(func(n *Node, level int) {
		b.WriteString(strings.Repeat("  ", level))
		if n.IsLeaf() {
			fmt.Fprintf(&b, "%s → '%s'\n", n.Symbol, n.Word)
		} else {
			fmt.Fprintf(&b, "%s\n", n.Symbol)
		}
	})
	return b.String()
}

// Each visits the nodes of a tree in pre-order, together with their depth.
func (t *Tree) Each(f func(*Node, int)) {
	if t.Root == nil {
		return
	}
	type entry struct {
		n     *Node
		level int
	}
	stack := []entry{{t.Root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(e.n, e.level)
		if !e.n.IsLeaf() {
			stack = append(stack, entry{e.n.Right, e.level + 1}, entry{e.n.Left, e.level + 1})
		}
	}
}

// Bracketed renders the tree in bracket notation, e.g.
// (S (NP (Det the) (N cat)) (VP …)).
func (t *Tree) Bracketed() string {
	if t.Root == nil {
		return "()"
	}
	var b strings.Builder
	bracketed(&b, t.Root)
	return b.String()
}

func bracketed(b *strings.Builder, n *Node) {
	b.WriteByte('(')
	b.WriteString(n.Symbol.Name)
	if n.IsLeaf() {
		if n.Word != "" {
			b.WriteByte(' ')
			b.WriteString(n.Word)
		}
	} else {
		b.WriteByte(' ')
		bracketed(b, n.Left)
		b.WriteByte(' ')
		bracketed(b, n.Right)
	}
	b.WriteByte(')')
}
