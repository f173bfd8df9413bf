package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/cyk"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/suite"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const testFileSuffix = "_tests.txt"

func newTestCmd() *cobra.Command {
	var export string
	var workers int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "test GRAMMAR CASES",
		Short: "Run test suites of sentences against a grammar",
		Long: `Run test cases of the form 'sentence | accept|reject' against a grammar.

CASES may be a test file, a directory of *_tests.txt files, or a txtar archive
holding grammar.txt and cases.txt. For archives, GRAMMAR may be given as '-'
to use the grammar contained in the archive.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := cyk.NewCache()
			var g *grammar.Grammar
			if args[0] != "-" {
				_, r, err := loadGrammar(args[0])
				if err != nil {
					return fmt.Errorf("load grammar: %w", err)
				}
				g = r.Grammar
			}
			files, err := testFiles(args[1])
			if err != nil {
				return err
			}
			failed := 0
			for _, file := range files {
				fg, cases, err := loadCases(file)
				if err != nil {
					return err
				}
				if g != nil {
					fg = g
				} else if fg == nil {
					return fmt.Errorf("%s: no grammar given", file)
				} else if fg, err = cnf.Normalize(fg); err != nil {
					return fmt.Errorf("normalize: %w", err)
				}
				ix, err := cache.Index(fg)
				if err != nil {
					return fmt.Errorf("index grammar: %w", err)
				}
				pterm.Info.Println(fmt.Sprintf("running %d test cases from %s", len(cases), file))
				stats := suite.Run(ix, cases, suite.Workers(workers))
				printStats(stats, verbose)
				failed += stats.Failed
				if export != "" {
					if err = exportStats(export, file, len(files) > 1, stats); err != nil {
						return err
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d test cases failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "write a test report to this file")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default: number of CPUs)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every test case")

	return cmd
}

func testFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("test cases: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := suite.ListFiles(path, testFileSuffix)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files in %s", testFileSuffix, path)
	}
	return files, nil
}

// loadCases reads a test file. For txtar archives, the archive's grammar is
// returned as well.
func loadCases(path string) (*grammar.Grammar, []suite.Case, error) {
	if filepath.Ext(path) == ".txtar" {
		return suite.LoadArchiveFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	cases, err := suite.Load(f)
	return nil, cases, err
}

func printStats(stats *suite.Stats, verbose bool) {
	results := stats.Failures()
	if verbose {
		results = stats.Results
	}
	if len(results) > 0 {
		data := pterm.TableData{{"Line", "Sentence", "Expected", "Actual", "Time"}}
		for _, r := range results {
			data = append(data, []string{fmt.Sprint(r.Line), r.Sentence,
				verdict(r.Expected), verdict(r.Accepted), r.Elapsed.String()})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	msg := fmt.Sprintf("%d/%d passed (%.1f%%), average time %s",
		stats.Passed, stats.Total, stats.SuccessRate(), stats.AverageTime())
	if stats.Failed == 0 {
		pterm.Success.Println(msg)
	} else {
		pterm.Error.Println(msg)
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "ACCEPT"
	}
	return "REJECT"
}

// exportStats writes a report. For multiple test files, the name of the test
// file is inserted into the report file name.
func exportStats(path, testfile string, multiple bool, stats *suite.Stats) error {
	if multiple {
		ext := filepath.Ext(path)
		path = strings.TrimSuffix(path, ext) + "_" + grammarName(testfile) + ext
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := writeFile(path, func(f *os.File) error {
		return suite.Export(f, stats)
	}); err != nil {
		return err
	}
	pterm.Info.Println("report written to " + path)
	return nil
}
