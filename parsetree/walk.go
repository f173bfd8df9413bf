package parsetree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
)

// RuleNode represents a node occuring during a parse tree walk.
type RuleNode struct {
	node  *Node
	Value interface{} // user-defined value of a node
}

// Symbol returns the grammar symbol a RuleNode refers to.
func (rnode *RuleNode) Symbol() grammar.Symbol {
	return rnode.node.Symbol
}

// Span returns the span of input words this node covers.
func (rnode *RuleNode) Span() chomsky.Span {
	return rnode.node.Span
}

// Node returns the tree node.
func (rnode *RuleNode) Node() *Node {
	return rnode.node
}

// Walk traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (t *Tree) Walk(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if t.Root == nil {
		return nil
	}
	tracer().Debugf("Walk starting at node %v", t.Root)
	return traverse(t.Root, listener, dir, breakmode, 0)
}

func traverse(n *Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	if n.IsLeaf() {
		ctxt := makeCtxt(n.Span, level, nil)
		return listener.Terminal(n.Symbol, n.Word, ctxt)
	}
	tracer().Debugf(">>> %s", n)
	rhsNodes := []*RuleNode{{node: n.Left}, {node: n.Right}}
	localAttributes := listener.MakeAttrs(n.Symbol)
	ctxt := makeCtxt(n.Span, level, localAttributes)
	doContinue := listener.EnterRule(n.Symbol, rhsNodes, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(rhsNodes) - 1
		}
		for ; i >= 0 && i < len(rhsNodes); i += int(dir) {
			chvalue := traverse(rhsNodes[i].node, listener, dir, breakmode, level+1)
			tracer().Debugf("child value[%d] = %v", i, chvalue)
			rhsNodes[i].Value = chvalue
		}
	}
	value := listener.ExitRule(n.Symbol, rhsNodes, ctxt)
	tracer().Debugf("<<< %s", n)
	return value
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// Arguments are:
//
//     - grammar.Symbol:  the grammar symbol at the current node
//     - []*RuleNode:     the children of the node (B and C for A → B C)
//     - RuleCtxt:        contextual information for the node
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree.
type Listener interface {
	EnterRule(grammar.Symbol, []*RuleNode, RuleCtxt) bool
	ExitRule(grammar.Symbol, []*RuleNode, RuleCtxt) interface{}
	Terminal(grammar.Symbol, string, RuleCtxt) interface{}
	MakeAttrs(grammar.Symbol) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span  chomsky.Span // span of input words covered by this node
	Level int          // nesting level
	Attrs interface{}  // client-defined attributes local to node
}

func makeCtxt(span chomsky.Span, level int, attrs interface{}) RuleCtxt {
	return RuleCtxt{
		Span:  span,
		Level: level,
		Attrs: attrs,
	}
}

// ---------------------------------------------------------------------------
