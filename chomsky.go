package chomsky

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of a grammar. For sentences of natural language a token
// usually is a single word:
//
//    TokType = Ident        // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "cat"        // lexeme how it appeared in the input stream
//    Span    = 4…7          // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from int positions.
func MakeSpan(from, to int) Span {
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
