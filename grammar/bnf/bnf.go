/*
Package bnf reads and writes grammars in a plain text format.

Every line holds the productions for one head, alternatives separated by a bar:

    # a comment line
    S   -> NP VP
    NP  -> Det N | N
    Det -> the | a | ε

Either '->' or '→' may separate the head from its alternatives. An alternative
consisting of 'ε', a lone 'e', or nothing at all is an epsilon-production.
Names with an upper case initial are non-terminals; lower case words, numbers
and single special characters (+, *, (, …) are terminals. A name which occurs as
the head of a rule is a non-terminal wherever it occurs. The head of the first
rule is the start symbol.

The lexer is built with lexmachine, see package scanner/lexmach.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/scanner"
	"github.com/npillmayer/chomsky/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'chomsky.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.bnf")
}

// Token types of the grammar lexer.
const (
	tokNonTerm = iota + 1
	tokWord
	tokNum
	tokSpecial
	tokArrow
	tokBar
	tokEps
)

var specials = []string{
	"+", "-", "*", "/", "(", ")", "<", ">", "=", "!", "?",
	",", ";", ":", ".", "%", "&", "^", "~", "$", "@",
}

var lexer struct {
	once    sync.Once
	adapter *lexmach.LMAdapter
	err     error
}

func grammarLexer() (*lexmach.LMAdapter, error) {
	lexer.once.Do(func() {
		literals := append([]string{"->", "|"}, specials...)
		tokenIds := map[string]int{"->": tokArrow, "|": tokBar}
		for _, s := range specials {
			tokenIds[s] = tokSpecial
		}
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`#[^\n]*`), lexmach.Skip)
			lx.Add([]byte(`( |\t|\r|\n)+`), lexmach.Skip)
			lx.Add([]byte(`→`), lexmach.MakeToken("ARROW", tokArrow))
			lx.Add([]byte(`ε`), lexmach.MakeToken("EPS", tokEps))
			lx.Add([]byte(`[A-Z]([a-z]|[A-Z]|[0-9]|_|')*`), lexmach.MakeToken("NONTERM", tokNonTerm))
			lx.Add([]byte(`[a-z]([a-z]|[0-9]|_)*`), lexmach.MakeToken("WORD", tokWord))
			lx.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", tokNum))
		}
		lexer.adapter, lexer.err = lexmach.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return lexer.adapter, lexer.err
}

// rule is a line of a grammar file, before classification of its symbols.
type rule struct {
	line int
	head string
	alts [][]chomsky.Token
}

// Read reads a grammar in text format from r. name is used as the grammar's
// name and in error messages.
func Read(name string, r io.Reader) (*grammar.Grammar, error) {
	lm, err := grammarLexer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create grammar lexer")
	}
	var rules []rule
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rl, err := parseLine(lm, name, lineno, line)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rl)
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read error", name)
	}
	if len(rules) == 0 {
		return nil, errors.Errorf("%s: grammar has no rules", name)
	}
	return build(name, rules), nil
}

func parseLine(lm *lexmach.LMAdapter, name string, lineno int, line string) (rule, error) {
	rl := rule{line: lineno}
	sc, err := lm.Scanner(line)
	if err != nil {
		return rl, errors.Wrapf(err, "%s:%d", name, lineno)
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	toks := make([]chomsky.Token, 0, 16)
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		toks = append(toks, tok)
	}
	if scanErr != nil {
		return rl, errors.Errorf("%s:%d: unexpected input: %v", name, lineno, scanErr)
	}
	if len(toks) < 2 || !isName(toks[0]) || toks[1].TokType() != tokArrow {
		return rl, errors.Errorf("%s:%d: expected 'Head -> alternatives', have %q", name, lineno, line)
	}
	rl.head = toks[0].Lexeme()
	alt := []chomsky.Token{}
	for _, tok := range toks[2:] {
		switch tok.TokType() {
		case tokBar:
			rl.alts = append(rl.alts, alt)
			alt = []chomsky.Token{}
		case tokArrow:
			return rl, errors.Errorf("%s:%d: unexpected '->' at column %d", name, lineno, tok.Span().From())
		default:
			alt = append(alt, tok)
		}
	}
	rl.alts = append(rl.alts, alt)
	tracer().Debugf("%s:%d: %s with %d alternatives", name, lineno, rl.head, len(rl.alts))
	return rl, nil
}

func isName(tok chomsky.Token) bool {
	return tok.TokType() == tokNonTerm || tok.TokType() == tokWord
}

// build classifies the symbols of all rules and creates the grammar.
// Heads are non-terminals wherever they occur.
func build(name string, rules []rule) *grammar.Grammar {
	symtab := grammar.NewSymbolTable()
	for _, rl := range rules {
		symtab.Define(rl.head, grammar.NonTerminalKind)
	}
	g := grammar.New(name, grammar.N(rules[0].head))
	for _, rl := range rules {
		for _, alt := range rl.alts {
			g.AddProduction(grammar.N(rl.head), body(symtab, alt))
		}
	}
	tracer().Infof("grammar %s: %d productions, start symbol %s", name, g.Size(), g.Start())
	return g
}

func body(symtab *grammar.SymbolTable, alt []chomsky.Token) []grammar.Symbol {
	if len(alt) == 1 && (alt[0].TokType() == tokEps || alt[0].Lexeme() == "e") {
		return nil
	}
	syms := make([]grammar.Symbol, 0, len(alt))
	for _, tok := range alt {
		if tok.TokType() == tokEps {
			continue
		}
		kind := grammar.TerminalKind
		if tok.TokType() == tokNonTerm {
			kind = grammar.NonTerminalKind
		}
		A, _ := symtab.ResolveOrDefine(tok.Lexeme(), kind)
		syms = append(syms, A)
	}
	return syms
}

// ReadFile reads a grammar from a file. The grammar is named after the file,
// without directory and extension.
func ReadFile(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open grammar file")
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(name, f)
}

// Write writes g in text format, the start symbol first and all other heads
// sorted by name.
func Write(w io.Writer, g *grammar.Grammar) error {
	var b bytes.Buffer
	heads := g.Heads()
	sort.Slice(heads, func(i, j int) bool { return heads[i].Name < heads[j].Name })
	if g.HasProductions(g.Start()) {
		writeRule(&b, g, g.Start())
	}
	for _, A := range heads {
		if A != g.Start() {
			writeRule(&b, g, A)
		}
	}
	_, err := w.Write(b.Bytes())
	return errors.Wrap(err, "cannot write grammar")
}

func writeRule(b *bytes.Buffer, g *grammar.Grammar, A grammar.Symbol) {
	alts := make([]string, 0, 4)
	for _, body := range g.ProductionsOf(A) {
		alts = append(alts, grammar.BodyString(body))
	}
	b.WriteString(A.Name)
	b.WriteString(" -> ")
	b.WriteString(strings.Join(alts, " | "))
	b.WriteByte('\n')
}

// WriteFile writes g to a file, creating parent directories as needed.
func WriteFile(path string, g *grammar.Grammar) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "cannot create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create grammar file")
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "cannot close grammar file")
}
