package parsetree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ToGraphViz exports a tree to the Graphviz Dot format. Inner nodes are drawn
// as ellipses, leaves as boxes holding the symbol and the word.
func (t *Tree) ToGraphViz(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %q {\n", name)
	bw.WriteString(`graph [splines=true, fontname=Helvetica, fontsize=10];
node [fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	ids := make(map[*Node]int)
	t.Each(func(n *Node, level int) {
		id := len(ids)
		ids[n] = id
		if n.IsLeaf() {
			fmt.Fprintf(bw, "n%03d [shape=box, style=filled, fillcolor=lightgray, label=\"%s\\n'%s'\"]\n",
				id, forGraphviz(n.Symbol.Name), forGraphviz(n.Word))
		} else {
			fmt.Fprintf(bw, "n%03d [shape=ellipse, label=\"%s\"]\n", id, forGraphviz(n.Symbol.Name))
		}
	})
	t.Each(func(n *Node, level int) {
		for _, ch := range n.Children() {
			fmt.Fprintf(bw, "n%03d -> n%03d\n", ids[n], ids[ch])
		}
	})
	bw.WriteString("}\n")
	return bw.Flush()
}

func forGraphviz(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
