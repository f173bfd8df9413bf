/*
Package suite runs test suites of sentences against a grammar.

A test file lists one sentence per line, followed by the expected outcome:

    # comment
    the cat chases a dog | accept
    cat the chases       | reject

Test suites may as well be bundled with their grammar in a txtar archive,
holding files 'grammar.txt' (see package bnf) and 'cases.txt'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package suite

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/grammar/bnf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/tools/txtar"
)

// tracer traces with key 'chomsky.suite'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.suite")
}

// Case is a single test case. Line is the line number within the test file.
type Case struct {
	Sentence string
	Expected bool
	Line     int
}

func (c Case) String() string {
	return c.Sentence + " | " + outcome(c.Expected)
}

func outcome(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}

// Load reads test cases from r. Blank lines and lines starting with '#' are
// ignored. Malformed lines are reported as warnings and skipped.
func Load(r io.Reader) ([]Case, error) {
	var cases []Case
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			tracer().Infof("line %d: expected 'sentence | accept|reject', skipping", lineno)
			continue
		}
		c := Case{Sentence: strings.TrimSpace(parts[0]), Line: lineno}
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "accept":
			c.Expected = true
		case "reject":
			c.Expected = false
		default:
			tracer().Infof("line %d: invalid expectation '%s', skipping", lineno, strings.TrimSpace(parts[1]))
			continue
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading test cases")
	}
	return cases, nil
}

// Archive file names.
const (
	GrammarFile = "grammar.txt"
	CasesFile   = "cases.txt"
)

// LoadArchive reads a grammar together with its test cases from a txtar archive.
// The grammar is named after the first line of the archive's comment, if present.
func LoadArchive(data []byte) (*grammar.Grammar, []Case, error) {
	ar := txtar.Parse(data)
	name := "archive"
	if c := strings.TrimSpace(string(ar.Comment)); c != "" {
		name = strings.TrimSpace(strings.SplitN(c, "\n", 2)[0])
	}
	var gsrc, csrc []byte
	var gok, cok bool
	for _, f := range ar.Files {
		switch f.Name {
		case GrammarFile:
			gsrc, gok = f.Data, true
		case CasesFile:
			csrc, cok = f.Data, true
		default:
			tracer().Debugf("ignoring archive file %s", f.Name)
		}
	}
	if !gok || !cok {
		return nil, nil, errors.Errorf("archive %s has to contain %s and %s", name, GrammarFile, CasesFile)
	}
	g, err := bnf.Read(name, bytes.NewReader(gsrc))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "archive %s", name)
	}
	cases, err := Load(bytes.NewReader(csrc))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "archive %s", name)
	}
	return g, cases, nil
}

// LoadArchiveFile reads a txtar archive from a file, see LoadArchive.
func LoadArchiveFile(path string) (*grammar.Grammar, []Case, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading archive")
	}
	return LoadArchive(data)
}

// ListFiles lists the names of the files in dir ending with suffix, sorted.
func ListFiles(dir, suffix string) ([]string, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	var files []string
	for _, info := range infos {
		if !info.IsDir() && strings.HasSuffix(info.Name(), suffix) {
			files = append(files, filepath.Join(dir, info.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
