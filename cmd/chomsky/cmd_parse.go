package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/chomsky/cyk"
	"github.com/npillmayer/chomsky/scanner"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	showCNF  bool
	showTree bool
	dotFile  string
	htmlFile string
	goTokens bool
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse GRAMMAR SENTENCE...",
		Short: "Recognize a sentence with the CYK algorithm",
		Long: `Convert a grammar to Chomsky normal form and recognize a sentence.

Words are separated by whitespace and lower-cased. With --go-tokens the
sentence is split into Go tokens instead, e.g. "id+id" into id, +, id.`,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := loadGrammar(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			if opts.showCNF {
				printGrammar("Chomsky normal form", r.Grammar)
			}
			ix, err := cyk.BuildIndex(r.Grammar)
			if err != nil {
				return fmt.Errorf("index grammar: %w", err)
			}
			sentence := strings.Join(args[1:], " ")
			words := tokenize(sentence, opts.goTokens)
			accepted, table := cyk.Recognize(ix, words)
			printResult(words, accepted)
			return report(table, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.showCNF, "cnf", false, "print the grammar in Chomsky normal form")
	cmd.Flags().BoolVar(&opts.showTree, "tree", true, "print the parse tree")
	cmd.Flags().StringVar(&opts.dotFile, "dot", "", "write the parse tree in Graphviz format")
	cmd.Flags().StringVar(&opts.htmlFile, "html", "", "write the recognition table in HTML format")
	cmd.Flags().BoolVar(&opts.goTokens, "go-tokens", false, "split the sentence into Go tokens")

	return cmd
}

func tokenize(sentence string, goTokens bool) []string {
	if goTokens {
		return scanner.Words(scanner.GoTokenizer("sentence", strings.NewReader(sentence)))
	}
	return scanner.Words(scanner.WordTokenizer(sentence, scanner.Lowercase(true)))
}

// report outputs tree and table of a recognition run, as requested by opts.
func report(table *cyk.Table, opts parseOptions) error {
	table.Dump()
	if opts.htmlFile != "" {
		if err := writeFile(opts.htmlFile, func(f *os.File) error {
			cyk.TableAsHTML(table, f)
			return nil
		}); err != nil {
			return err
		}
	}
	if !table.Accepted() || (!opts.showTree && opts.dotFile == "") {
		return nil
	}
	tree, err := cyk.ExtractTree(table)
	if err != nil {
		return fmt.Errorf("extract tree: %w", err)
	}
	if opts.showTree {
		printTree(tree)
	}
	if opts.dotFile != "" {
		name := table.Index().Grammar().Name
		return writeFile(opts.dotFile, func(f *os.File) error {
			return tree.ToGraphViz(f, name)
		})
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
