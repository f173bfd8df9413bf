/*
Package scanner defines an interface for scanners splitting sentences into words.

Two default scanner implementations are provided: (1) a word scanner splitting input
at white space, and (2) a thin wrapper over the Go std lib 'text/scanner'.
An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Word is the token type of the word scanner.
const Word = Ident

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() chomsky.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Words reads tokens from a tokenizer until EOF and returns their lexemes.
func Words(t Tokenizer) []string {
	var words []string
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		words = append(words, token.Lexeme())
	}
	tracer().Debugf("words = %v", words)
	return words
}

// --- Go tokenizer ----------------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	options
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// Operators are tokens of their own, thus "id+id" results in three tokens.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.skipComments = true
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(&t.options)
	}
	if !t.skipComments {
		t.Mode &^= scanner.SkipComments
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() chomsky.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   chomsky.TokType(t.lastToken),
		lexeme: t.lexeme(t.TokenText()),
		span:   chomsky.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Word tokenizer --------------------------------------------------------

// WordScanner splits its input at white space. Create one with WordTokenizer.
type WordScanner struct {
	options
	input string
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*WordScanner)(nil)

// WordTokenizer creates a tokenizer returning every run of non-white-space
// characters as a token of type Word.
func WordTokenizer(input string, opts ...Option) *WordScanner {
	t := &WordScanner{input: input, Error: logError}
	for _, opt := range opts {
		opt(&t.options)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
// The word scanner never reports errors.
func (t *WordScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *WordScanner) NextToken() chomsky.Token {
	start := t.pos
	for start < len(t.input) && isSpace(t.input[start]) {
		start++
	}
	if start == len(t.input) {
		t.pos = start
		return MakeDefaultToken(EOF, "", chomsky.Span{uint64(start), uint64(start)})
	}
	end := start
	for end < len(t.input) && !isSpace(t.input[end]) {
		end++
	}
	t.pos = end
	return MakeDefaultToken(Word, t.lexeme(t.input[start:end]), chomsky.Span{uint64(start), uint64(end)})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// tokenizers of this package as well as the LexMachine scanner.
type DefaultToken struct {
	kind   chomsky.TokType
	lexeme string
	Val    interface{}
	span   chomsky.Span
}

func MakeDefaultToken(typ chomsky.TokType, lexeme string, span chomsky.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() chomsky.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() chomsky.Span {
	return t.span
}

// --- Scanner options -------------------------------------------------------

type options struct {
	skipComments bool // do not pass comments
	unifyStrings bool // treat raw strings and single chars as strings
	lowercase    bool // convert lexemes to lower case
}

func (o options) lexeme(s string) string {
	if o.lowercase {
		return strings.ToLower(s)
	}
	return s
}

// Option configures a tokenizer.
type Option func(p *options)

// SkipComments sets or clears mode-flag SkipComments of the Go tokenizer
// (default is true).
func SkipComments(b bool) Option {
	return func(o *options) {
		o.skipComments = b
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(o *options) {
		o.unifyStrings = b
	}
}

// Lowercase sets or clears option Lowercase: convert every lexeme to lower case.
func Lowercase(b bool) Option {
	return func(o *options) {
		o.lowercase = b
	}
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case chomsky.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
