package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/parsetree"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printGrammar(title string, g *grammar.Grammar) {
	pterm.Info.Println(fmt.Sprintf("%s (%d productions)", title, g.Size()))
	for _, line := range strings.Split(strings.TrimRight(g.String(), "\n"), "\n") {
		pterm.Println("    " + line)
	}
}

func printPasses(r *cnf.Report) {
	data := pterm.TableData{{"Pass", "Productions", "Non-terminals"}}
	for _, p := range r.Passes {
		data = append(data, []string{p.Name, fmt.Sprint(p.Productions), fmt.Sprint(p.NonTerminals)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printResult(sentence []string, accepted bool) {
	s := strings.Join(sentence, " ")
	if accepted {
		pterm.Success.Println(fmt.Sprintf("'%s' accepted", s))
	} else {
		pterm.Error.Println(fmt.Sprintf("'%s' rejected", s))
	}
}

// printTree displays a parse tree on a terminal.
func printTree(tree *parsetree.Tree) {
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(tree *parsetree.Tree) pterm.LeveledList {
	ll := pterm.LeveledList{}
	tree.Each(func(n *parsetree.Node, level int) {
		text := n.Symbol.Name
		if n.IsLeaf() {
			word := n.Word
			if word == "" {
				word = "ε"
			}
			text = fmt.Sprintf("%s → '%s'", n.Symbol, word)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
