package bnf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const npvp = `
# simple English sentences
S   -> NP VP
NP  -> Det N | N
VP  → V NP | V
Det -> the | a
N   -> cat | dog
V   -> chases | sees
`

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	g, err := Read("npvp", strings.NewReader(npvp))
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start() != grammar.N("S") {
		t.Errorf("Expected start symbol to be S, is %v", g.Start())
	}
	if g.Size() != 11 {
		t.Errorf("Expected 11 productions, have %d", g.Size())
	}
	if !g.HasProduction(grammar.N("VP"), []grammar.Symbol{grammar.N("V"), grammar.N("NP")}) {
		t.Errorf("Expected VP → V NP to be read with '→'")
	}
	if len(g.Terminals()) != 6 {
		t.Errorf("Expected 6 terminals, have %v", g.Terminals())
	}
}

func TestReadEpsilonAndClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	input := `
S -> a S b | e
A -> ε | x A | S
E -> E + term | ( E ) | 42
term -> id
`
	g, err := Read("mixed", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasProduction(grammar.N("S"), nil) {
		t.Errorf("Expected lone 'e' to be read as epsilon")
	}
	if !g.HasProduction(grammar.N("A"), []grammar.Symbol{}) {
		t.Errorf("Expected 'ε' to be read as epsilon")
	}
	body := []grammar.Symbol{grammar.N("E"), grammar.T("+"), grammar.N("term")}
	if !g.HasProduction(grammar.N("E"), body) {
		t.Errorf("Expected head 'term' to be a non-terminal in E → E + term")
	}
	body = []grammar.Symbol{grammar.T("("), grammar.N("E"), grammar.T(")")}
	if !g.HasProduction(grammar.N("E"), body) {
		t.Errorf("Expected parens to be terminals")
	}
	if !g.HasProduction(grammar.N("E"), []grammar.Symbol{grammar.T("42")}) {
		t.Errorf("Expected number to be a terminal")
	}
}

func TestReadDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	g, err := Read("dup", strings.NewReader("S -> a | a | b\nS -> b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Errorf("Expected duplicate alternatives to collapse to 2 productions, have %d", g.Size())
	}
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	inputs := []string{
		"",
		"# only a comment\n",
		"S a b\n",
		"S -> a\nA -> b -> c\n",
		"S -> a { b\n",
	}
	for i, input := range inputs {
		if _, err := Read("broken", strings.NewReader(input)); err == nil {
			t.Errorf("Expected input #%d to fail", i)
		} else {
			t.Logf("input #%d: %v", i, err)
		}
	}
	_, err := Read("broken", strings.NewReader("S -> a\n\nA b\n"))
	if err == nil || !strings.Contains(err.Error(), "broken:3") {
		t.Errorf("Expected error to carry line number 3, is %v", err)
	}
}

func TestWriteStartFirstSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	g := grammar.New("G", grammar.N("S"))
	g.AddProduction(grammar.N("Z"), []grammar.Symbol{grammar.T("z")})
	g.AddProduction(grammar.N("S"), []grammar.Symbol{grammar.N("A"), grammar.N("Z")})
	g.AddProduction(grammar.N("S"), nil)
	g.AddProduction(grammar.N("A"), []grammar.Symbol{grammar.T("a")})
	var b bytes.Buffer
	if err := Write(&b, g); err != nil {
		t.Fatal(err)
	}
	expected := "S -> A Z | ε\nA -> a\nZ -> z\n"
	if b.String() != expected {
		t.Errorf("Expected output to be\n%s, is\n%s", expected, b.String())
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.bnf")
	defer teardown()
	//
	g, err := Read("npvp", strings.NewReader(npvp))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "output", "npvp_cnf.txt")
	if err = WriteFile(path, g); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(path); err != nil {
		t.Fatalf("Expected file to be written, is %v", err)
	}
	h, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "npvp_cnf" {
		t.Errorf("Expected grammar to be named after the file, is %q", h.Name)
	}
	fp1, _ := g.Fingerprint()
	fp2, _ := h.Fingerprint()
	if fp1 != fp2 {
		t.Errorf("Expected grammar to survive a round trip, is\n%s", h.String())
	}
}
