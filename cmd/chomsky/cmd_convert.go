package main

import (
	"fmt"
	"path/filepath"

	"github.com/npillmayer/chomsky/grammar/bnf"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert GRAMMAR",
		Short: "Convert a grammar to Chomsky normal form",
		Long: `Read a grammar file, convert it to Chomsky normal form and write the result.

Without -o, the result is written to output/<name>_cnf.txt.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, r, err := loadGrammar(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			printGrammar("Original grammar "+g.Name, g)
			printPasses(r)
			printGrammar("Chomsky normal form", r.Grammar)
			if err = r.Grammar.VerifyEBNF(); err != nil {
				pterm.Warning.Println(err.Error())
			}
			if output == "" {
				output = filepath.Join("output", grammarName(args[0])+"_cnf.txt")
			}
			if err = bnf.WriteFile(output, r.Grammar); err != nil {
				return fmt.Errorf("write grammar: %w", err)
			}
			pterm.Info.Println("written to " + output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for the converted grammar")

	return cmd
}
