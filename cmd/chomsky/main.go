package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/grammar/bnf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'chomsky.cli'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cli")
}

var traceKeys = []string{
	"chomsky.cli",
	"chomsky.grammar",
	"chomsky.cnf",
	"chomsky.cyk",
	"chomsky.parsetree",
	"chomsky.scanner",
	"chomsky.suite",
}

// main() starts the chomsky command line tool. It converts grammars to
// Chomsky normal form, recognizes sentences with the CYK algorithm, runs
// test suites and offers an interactive mode.
//
func main() {
	var tlevel string
	rootCmd := &cobra.Command{
		Use:   "chomsky",
		Short: "Chomsky normal form conversion and CYK parsing",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initDisplay()
			gtrace.SyntaxTracer = gologadapter.New()
			setTraceLevel(tracing.TraceLevelFromString(tlevel))
		},
	}
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	gtrace.SyntaxTracer.SetTraceLevel(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// loadGrammar reads a grammar file and normalizes it. It returns the grammar
// as read and in Chomsky normal form.
func loadGrammar(path string) (*grammar.Grammar, *cnf.Report, error) {
	g, err := bnf.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := cnf.NormalizeWithReport(g)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "normalizing %s", g.Name)
	}
	return g, r, nil
}

// grammarName strips directory and extension from a grammar file path.
func grammarName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
