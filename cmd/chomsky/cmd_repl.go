package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/chomsky/cyk"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl GRAMMAR",
		Short: "Interactively recognize sentences",
		Long: `Start an interactive session for a grammar. Every line entered is
recognized as a sentence. Commands:

    :tree on|off   toggle display of parse trees
    :dot FILE      write the last parse tree in Graphviz format
    :html FILE     write the last recognition table in HTML format
    :grammar       print the grammar in Chomsky normal form
    :quit          leave (or <ctrl>D)`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := loadGrammar(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			repl, err := readline.New("chomsky> ")
			if err != nil {
				return fmt.Errorf("readline: %w", err)
			}
			defer repl.Close()
			intp := &Intp{
				g:        r.Grammar,
				cache:    cyk.NewCache(),
				repl:     repl,
				showTree: true,
			}
			pterm.Info.Println("Welcome to the CYK REPL for " + r.Grammar.Name)
			tracer().Infof("Quit with <ctrl>D")
			intp.REPL()
			return nil
		},
	}
	return cmd
}

// Intp is our interpreter object.
type Intp struct {
	g         *grammar.Grammar
	cache     *cyk.Cache
	repl      *readline.Instance
	showTree  bool
	lastTable *cyk.Table
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or recognizes a sentence, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	ix, err := intp.cache.Index(intp.g)
	if err != nil {
		return false, err
	}
	words := tokenize(line, false)
	accepted, table := cyk.Recognize(ix, words)
	intp.lastTable = table
	printResult(words, accepted)
	return false, report(table, parseOptions{showTree: intp.showTree})
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command")
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "grammar":
		printGrammar("Chomsky normal form", intp.g)
	case "tree":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :tree on|off")
		}
		intp.showTree = args[1] == "on"
	case "dot", "html":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :%s FILE", args[0])
		}
		if intp.lastTable == nil {
			return false, fmt.Errorf("nothing parsed yet")
		}
		opts := parseOptions{}
		if args[0] == "dot" {
			opts.dotFile = args[1]
		} else {
			opts.htmlFile = args[1]
		}
		return false, report(intp.lastTable, opts)
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}
