package grammar

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/cnf/structhash"
	"golang.org/x/exp/ebnf"
)

// --- Fingerprints ----------------------------------------------------------

type fingerprint struct {
	Start string
	Rules []string
}

// Fingerprint returns a hash of the start symbol and the set of productions.
// Two grammars with the same productions have the same fingerprint,
// regardless of their names and of the order productions have been added.
func (g *Grammar) Fingerprint() (string, error) {
	fp := fingerprint{Start: g.start.Name}
	g.EachProduction(func(p Production) {
		fp.Rules = append(fp.Rules, bodyKey([]Symbol{p.LHS})+"\x01"+bodyKey(p.RHS))
	})
	sort.Strings(fp.Rules)
	return structhash.Hash(fp, 1)
}

// --- EBNF -------------------------------------------------------------------

// WriteEBNF writes the grammar in the EBNF dialect of golang.org/x/exp/ebnf.
// Non-terminals are written as production names, with characters not allowed
// in identifiers replaced. Terminals are written as quoted tokens. Epsilon
// alternatives are expressed as an option group.
//
//     S = "a" S "b" | "a" "b" .      // S → a S b | a b
//     A = [ "x" | "y" ] .            // A → x | y | ε
//
func (g *Grammar) WriteEBNF(w io.Writer) error {
	names := ebnfNames(g)
	var b bytes.Buffer
	for _, A := range g.orderedHeads() {
		var alts []string
		hasEpsilon := false
		for _, body := range g.bodies[A] {
			if len(body) == 0 {
				hasEpsilon = true
				continue
			}
			syms := make([]string, len(body))
			for i, X := range body {
				if X.IsTerminal() {
					syms[i] = strconv.Quote(X.Name)
				} else {
					syms[i] = names[X]
				}
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		expr := strings.Join(alts, " | ")
		if hasEpsilon && len(alts) > 0 {
			expr = "[ " + expr + " ]"
		}
		if expr == "" {
			fmt.Fprintf(&b, "%s = .\n", names[A])
		} else {
			fmt.Fprintf(&b, "%s = %s .\n", names[A], expr)
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

// VerifyEBNF exports the grammar to EBNF and has it checked by
// golang.org/x/exp/ebnf: every non-terminal referenced must have a production,
// and every production must be reachable from the start symbol.
func (g *Grammar) VerifyEBNF() error {
	var b bytes.Buffer
	if err := g.WriteEBNF(&b); err != nil {
		return err
	}
	tracer().Debugf("EBNF of %s:\n%s", g.Name, b.String())
	eg, err := ebnf.Parse(g.Name, &b)
	if err != nil {
		return err
	}
	return ebnf.Verify(eg, ebnfNames(g)[g.start])
}

// ebnfNames maps every non-terminal to a unique, non-lexical EBNF
// production name.
func ebnfNames(g *Grammar) map[Symbol]string {
	names := make(map[Symbol]string)
	used := make(map[string]bool)
	for _, A := range g.NonTerminals() {
		id := ebnfIdent(A.Name)
		for n := 1; used[id]; n++ {
			id = fmt.Sprintf("%s_%d", ebnfIdent(A.Name), n)
		}
		used[id] = true
		names[A] = id
	}
	return names
}

func ebnfIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 && !unicode.IsUpper(r) {
			b.WriteString("X_")
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
