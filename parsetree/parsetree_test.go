package parsetree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func leaf(sym string, word string, pos int) *Node {
	return &Node{Symbol: grammar.N(sym), Word: word, Span: chomsky.MakeSpan(pos, pos+1)}
}

func inner(sym string, left, right *Node) *Node {
	return &Node{
		Symbol: grammar.N(sym),
		Span:   chomsky.MakeSpan(int(left.Span.From()), int(right.Span.To())),
		Left:   left,
		Right:  right,
	}
}

// (S (NP (Det the) (N cat)) (VP (V chases) (NP (Det a) (N dog))))
func catTree() *Tree {
	words := []string{"the", "cat", "chases", "a", "dog"}
	np1 := inner("NP", leaf("Det", "the", 0), leaf("N", "cat", 1))
	np2 := inner("NP", leaf("Det", "a", 3), leaf("N", "dog", 4))
	vp := inner("VP", leaf("V", "chases", 2), np2)
	return &Tree{Root: inner("S", np1, vp), Words: words}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	tree := catTree()
	if err := tree.Validate(); err != nil {
		t.Errorf("Expected tree to be valid, is %v", err)
	}
	tree.Root.Left.Left.Word = "a"
	if err := tree.Validate(); err == nil {
		t.Errorf("Expected mismatching leaf word to be detected")
	}
	tree = catTree()
	tree.Root.Right.Span = chomsky.MakeSpan(3, 5)
	if err := tree.Validate(); err == nil {
		t.Errorf("Expected gap between children to be detected")
	}
	tree = catTree()
	tree.Words = tree.Words[:4]
	if err := tree.Validate(); err == nil {
		t.Errorf("Expected root span mismatch to be detected")
	}
}

func TestValidateEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	tree := &Tree{Root: &Node{Symbol: grammar.N("S")}}
	if err := tree.Validate(); err != nil {
		t.Errorf("Expected ε-leaf to be valid for empty input, is %v", err)
	}
	if err := Validate(nil, nil); err == nil {
		t.Errorf("Expected missing root to be invalid")
	}
}

func TestRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	tree := catTree()
	expected := "(S (NP (Det the) (N cat)) (VP (V chases) (NP (Det a) (N dog))))"
	if tree.Bracketed() != expected {
		t.Errorf("Expected bracketed tree to be %s, is %s", expected, tree.Bracketed())
	}
	lines := strings.Split(strings.TrimSpace(tree.String()), "\n")
	if len(lines) != 9 || lines[0] != "S" || lines[2] != "    Det → 'the'" {
		t.Errorf("Expected indented rendering, is\n%s", tree.String())
	}
	var words []string
	for _, l := range tree.Leaves() {
		words = append(words, l.Word)
	}
	if strings.Join(words, " ") != "the cat chases a dog" {
		t.Errorf("Expected leaves to spell the sentence, are %v", words)
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	var b bytes.Buffer
	if err := catTree().ToGraphViz(&b, "cat"); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, `digraph "cat" {`) {
		t.Errorf("Expected a digraph, is\n%s", dot)
	}
	if strings.Count(dot, "shape=box") != 5 || strings.Count(dot, "shape=ellipse") != 4 {
		t.Errorf("Expected 5 leaves and 4 inner nodes, is\n%s", dot)
	}
	if strings.Count(dot, " -> ") != 8 {
		t.Errorf("Expected 8 edges, is\n%s", dot)
	}
}

// collector re-assembles the sentence and counts rules entered.
type collector struct {
	entered int
	stopAt  string
}

func (c *collector) EnterRule(A grammar.Symbol, rhs []*RuleNode, ctxt RuleCtxt) bool {
	c.entered++
	return A.Name != c.stopAt
}

func (c *collector) ExitRule(A grammar.Symbol, rhs []*RuleNode, ctxt RuleCtxt) interface{} {
	var parts []string
	for _, r := range rhs {
		if r.Value != nil && r.Value != "" {
			parts = append(parts, r.Value.(string))
		}
	}
	return strings.Join(parts, " ")
}

func (c *collector) Terminal(A grammar.Symbol, word string, ctxt RuleCtxt) interface{} {
	return word
}

func (c *collector) MakeAttrs(grammar.Symbol) interface{} {
	return nil
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	tree := catTree()
	c := &collector{}
	if v := tree.Walk(c, LtoR, Continue); v != "the cat chases a dog" {
		t.Errorf("Expected walk to yield the sentence, is %v", v)
	}
	if c.entered != 4 {
		t.Errorf("Expected 4 rules entered, are %d", c.entered)
	}
	c = &collector{stopAt: "VP"}
	if v := catTree().Walk(c, LtoR, Break); v != "the cat" {
		t.Errorf("Expected walk to skip VP sub-tree, is %v", v)
	}
}

func TestWalkRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.parsetree")
	defer teardown()
	//
	var order []string
	l := &orderListener{order: &order}
	catTree().Walk(l, RtoL, Continue)
	if strings.Join(order, " ") != "dog a chases cat the" {
		t.Errorf("Expected right-to-left visit of leaves, is %v", order)
	}
}

type orderListener struct {
	collector
	order *[]string
}

func (l *orderListener) Terminal(A grammar.Symbol, word string, ctxt RuleCtxt) interface{} {
	*l.order = append(*l.order, word)
	return word
}
