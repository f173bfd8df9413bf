package cnf

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/chomsky/grammar"
	"github.com/npillmayer/chomsky/internal/derive"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func build(t *testing.T, name string, rules func(b *grammar.Builder)) *grammar.Grammar {
	b := grammar.NewBuilder(name)
	rules(b)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func npvpGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "NPVP", func(b *grammar.Builder) {
		b.LHS("S").N("NP").N("VP").End()
		b.LHS("NP").N("Det").N("N").End()
		b.LHS("VP").N("V").N("NP").End()
		b.LHS("Det").T("the").End()
		b.LHS("Det").T("a").End()
		b.LHS("N").T("cat").End()
		b.LHS("N").T("dog").End()
		b.LHS("V").T("chases").End()
	})
}

// S → a S b | ε
func anbnGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "AnBn", func(b *grammar.Builder) {
		b.LHS("S").T("a").N("S").T("b").End()
		b.LHS("S").Epsilon()
	})
}

//  Expr   ➞ Expr + Term  |  Term
//  Term   ➞ Term * Factor  |  Factor
//  Factor ➞ id  |  ( Expr )
func exprGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "Expr", func(b *grammar.Builder) {
		b.LHS("Expr").N("Expr").T("+").N("Term").End()
		b.LHS("Expr").N("Term").End()
		b.LHS("Term").N("Term").T("*").N("Factor").End()
		b.LHS("Term").N("Factor").End()
		b.LHS("Factor").T("id").End()
		b.LHS("Factor").T("(").N("Expr").T(")").End()
	})
}

// S → A B C | A S ; A → a | ε ; B → b | ε ; C → c | C C | ε
func nullableGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "Nullable", func(b *grammar.Builder) {
		b.LHS("S").N("A").N("B").N("C").End()
		b.LHS("S").N("A").N("S").End()
		b.LHS("A").T("a").End()
		b.LHS("A").Epsilon()
		b.LHS("B").T("b").End()
		b.LHS("B").Epsilon()
		b.LHS("C").T("c").End()
		b.LHS("C").N("C").N("C").End()
		b.LHS("C").Epsilon()
	})
}

// S → A | B ; A → B | a ; B → A | S b   (unit cycle)
func unitCycleGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "UnitCycle", func(b *grammar.Builder) {
		b.LHS("S").N("A").End()
		b.LHS("S").N("B").End()
		b.LHS("A").N("B").End()
		b.LHS("A").T("a").End()
		b.LHS("B").N("A").End()
		b.LHS("B").N("S").T("b").End()
	})
}

// S → A B | a ; A → a A ; C → c   (A not generating, C not reachable)
func uselessGrammar(t *testing.T) *grammar.Grammar {
	return build(t, "Useless", func(b *grammar.Builder) {
		b.LHS("S").N("A").N("B").End()
		b.LHS("S").T("a").End()
		b.LHS("A").T("a").N("A").End()
		b.LHS("B").T("b").End()
		b.LHS("C").T("c").End()
	})
}

type fixture struct {
	name   string
	g      func(*testing.T) *grammar.Grammar
	maxlen int
}

var fixtures = []fixture{
	{"NPVP", npvpGrammar, 5},
	{"AnBn", anbnGrammar, 6},
	{"Expr", exprGrammar, 4},
	{"Nullable", nullableGrammar, 5},
	{"UnitCycle", unitCycleGrammar, 5},
	{"Useless", uselessGrammar, 4},
}

func TestNormalizeYieldsCNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	for _, fx := range fixtures {
		g, err := Normalize(fx.g(t))
		if err != nil {
			t.Fatalf("%s: %v", fx.name, err)
		}
		if err = Check(g); err != nil {
			t.Errorf("Expected %s to be in CNF, is not: %v\n%s", fx.name, err, g)
		}
		if err = g.VerifyEBNF(); err != nil {
			t.Errorf("Expected %s to have no dangling or unreachable symbols: %v\n%s", fx.name, err, g)
		}
	}
}

func TestNormalizePreservesLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	for _, fx := range fixtures {
		g := fx.g(t)
		cnfg, err := Normalize(g)
		if err != nil {
			t.Fatalf("%s: %v", fx.name, err)
		}
		for _, w := range derive.Sentences(g, fx.maxlen) {
			if orig, norm := derive.Derives(g, w), derive.Derives(cnfg, w); orig != norm {
				t.Errorf("%s: Expected %q to be accepted=%v, is %v", fx.name, strings.Join(w, " "), orig, norm)
			}
		}
	}
}

func TestEpsilonCorrectness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	for _, fx := range fixtures {
		g := fx.g(t)
		cnfg, _ := Normalize(g)
		nullable := IsNullable(g, g.Start())
		if cnfg.HasProduction(cnfg.Start(), nil) != nullable {
			t.Errorf("%s: Expected S → ε to be present iff S nullable (%v)", fx.name, nullable)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	for _, fx := range fixtures {
		once, _ := Normalize(fx.g(t))
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("%s: %v", fx.name, err)
		}
		if err = Check(twice); err != nil {
			t.Errorf("%s: Expected second normalization to stay in CNF: %v", fx.name, err)
		}
		for _, w := range derive.Sentences(once, fx.maxlen) {
			if derive.Derives(once, w) != derive.Derives(twice, w) {
				t.Errorf("%s: Expected %q to be treated alike after second normalization", fx.name, w)
			}
		}
	}
	g := npvpGrammar(t)
	once, _ := Normalize(g)
	twice, _ := Normalize(once)
	fp1, _ := once.Fingerprint()
	fp2, _ := twice.Fingerprint()
	if fp1 != fp2 || fp1 == "" {
		t.Errorf("Expected CNF grammar to be a fixpoint of normalization")
	}
}

func TestAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g, err := Normalize(anbnGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", g)
	if !derive.Derives(g, []string{"a", "b"}) {
		t.Errorf("Expected 'a b' to be accepted")
	}
	if derive.Derives(g, []string{"a", "a", "b"}) {
		t.Errorf("Expected 'a a b' to be rejected")
	}
	if !g.HasProduction(grammar.N("S"), nil) {
		t.Errorf("Expected S → ε to survive for the start symbol")
	}
}

func TestWrappersAreShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g := build(t, "Shared", func(b *grammar.Builder) {
		b.LHS("S").T("x").N("A").T("x").End()
		b.LHS("S").N("A").T("x").End()
		b.LHS("A").T("a").End()
	})
	cnfg, _ := Normalize(g)
	t.Logf("\n%s", cnfg)
	wrappers := 0
	cnfg.EachProduction(func(p grammar.Production) {
		if len(p.RHS) == 1 && p.RHS[0] == grammar.T("x") && p.LHS != grammar.N("S") {
			wrappers++
		}
	})
	if wrappers != 1 {
		t.Errorf("Expected a single wrapper for terminal x, have %d", wrappers)
	}
}

func TestIntermediatesAreShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g := build(t, "Pairs", func(b *grammar.Builder) {
		b.LHS("S").N("A").N("B").N("C").End()
		b.LHS("S").N("B").N("B").N("C").End()
		b.LHS("A").T("a").End()
		b.LHS("B").T("b").End()
		b.LHS("C").T("c").End()
	})
	cnfg, _ := Normalize(g)
	t.Logf("\n%s", cnfg)
	intermediates := 0
	for _, A := range cnfg.Heads() {
		if strings.HasPrefix(A.Name, "Y") {
			intermediates++
		}
	}
	if intermediates != 1 {
		t.Errorf("Expected one intermediate for pair B C, have %d", intermediates)
	}
	if cnfg.Size() != 6 {
		t.Errorf("Expected 6 productions, have %d", cnfg.Size())
	}
}

func TestFreshNamesAvoidCollisions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g := build(t, "Collide", func(b *grammar.Builder) {
		b.LHS("S").T("a").N("T1").N("Y2").End()
		b.LHS("T1").T("t").End()
		b.LHS("Y2").T("y").End()
	})
	cnfg, err := Normalize(g)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", cnfg)
	if len(cnfg.ProductionsOf(grammar.N("T1"))) != 1 || len(cnfg.ProductionsOf(grammar.N("Y2"))) != 1 {
		t.Errorf("Expected input symbols T1 and Y2 to keep their single production")
	}
	for _, w := range derive.Sentences(g, 3) {
		if derive.Derives(g, w) != derive.Derives(cnfg, w) {
			t.Errorf("Expected %q to be treated alike", w)
		}
	}
}

func TestUselessSymbolsRemoved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	cnfg, _ := Normalize(uselessGrammar(t))
	for _, A := range []string{"A", "B", "C"} {
		if cnfg.HasProductions(grammar.N(A)) {
			t.Errorf("Expected useless non-terminal %s to be removed", A)
		}
	}
	if cnfg.Size() != 1 {
		t.Errorf("Expected only S → a to survive, have\n%s", cnfg)
	}
}

func TestEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g := build(t, "Empty", func(b *grammar.Builder) {
		b.LHS("S").N("A").End()
		b.LHS("A").N("A").T("a").End()
	})
	cnfg, err := Normalize(g)
	if err != nil {
		t.Fatalf("Expected empty language not to be an error, is %v", err)
	}
	if cnfg.Size() != 0 {
		t.Errorf("Expected no productions for empty language, have\n%s", cnfg)
	}
}

func TestEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	cnfg, err := Normalize(grammar.New("G", grammar.N("S")))
	if err != nil || cnfg.Size() != 0 {
		t.Errorf("Expected empty grammar to normalize to empty grammar, is %v / %v", cnfg, err)
	}
}

func TestStructuralError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	g := npvpGrammar(t)
	_, err := Normalize(g, WithStart(grammar.N("Sentence")))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected a structural error, is %v", err)
	}
	if serr.Start != grammar.N("Sentence") {
		t.Errorf("Expected error to name start symbol Sentence, is %v", serr.Start)
	}
}

func TestWithStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	cnfg, err := Normalize(npvpGrammar(t), WithStart(grammar.N("NP")))
	if err != nil {
		t.Fatal(err)
	}
	if !derive.Derives(cnfg, []string{"the", "dog"}) {
		t.Errorf("Expected 'the dog' to be an NP")
	}
	if cnfg.HasProductions(grammar.N("VP")) {
		t.Errorf("Expected VP to be unreachable from NP")
	}
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	if err := Check(npvpGrammar(t)); err != nil {
		t.Errorf("Expected NP/VP grammar to be in CNF, is %v", err)
	}
	for _, fx := range fixtures[1:] {
		if err := Check(fx.g(t)); !errors.Is(err, ErrNotCNF) {
			t.Errorf("Expected %s not to be in CNF", fx.name)
		}
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.cnf")
	defer teardown()
	//
	r, err := NormalizeWithReport(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Passes) != 5 {
		t.Errorf("Expected 5 pass summaries, have %d", len(r.Passes))
	}
	if last := r.Passes[len(r.Passes)-1]; last.Productions != r.Grammar.Size() {
		t.Errorf("Expected last pass to report %d productions, reports %d", r.Grammar.Size(), last.Productions)
	}
}
