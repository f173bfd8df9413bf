package lexmach

import (
	"testing"

	"github.com/npillmayer/chomsky/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"S -> NP VP",
	"Det -> the | a",
	"NP -> Det N | N",
	"E -> E + T",
	"A -> ",
}

var tokenCounts = []int{4, 5, 6, 5, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("A -> a ~ b")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if len(errs) != 1 {
		t.Errorf("Expected 1 scanner error, have %d", len(errs))
	}
	if count != 4 {
		t.Errorf("Expected 4 tokens after skipping '~', have %d", count)
	}
}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`#[^\n]*`), Skip)
		lexer.Add([]byte(`[A-Z]([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("NONTERM", tokenIds["NONTERM"]))
		lexer.Add([]byte(`[a-z]([a-z]|[0-9]|_)*`), MakeToken("WORD", tokenIds["WORD"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"->",
		"|",
		"+",
	}
	keywords = []string{}
	tokens = []string{
		"NONTERM",
		"WORD",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["NONTERM"] = scanner.Ident
	tokenIds["WORD"] = scanner.String
	for i, tok := range tokens[2:] {
		tokenIds[tok] = i + 10
	}
}
