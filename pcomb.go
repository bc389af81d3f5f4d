package pcomb

import "fmt"

// --- Positions -------------------------------------------------------------

// Pos is a position within an input, given as line and column. Streams report
// positions for diagnostics only; combinators never interpret them.
//
// Both line and column are 1-based. A zero Pos means "position unknown".
type Pos struct {
	Line   int
	Column int
}

// IsUnknown is a predicate: has this position been set?
func (p Pos) IsUnknown() bool {
	return p == Pos{}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a floating point numer:
//
//    TokType = Float       // identifier for this kind of tokens (application specific)
//    Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//    Value   = 3.1416      // is a float64 value
//    Span    = 67…73       // occured from position 67 in the input stream
//
// Scanners may additionally provide line/column information by implementing
// Positioned.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Positioned is implemented by tokens which know their line and column.
type Positioned interface {
	Pos() Pos
}

// TokenRetriever is a type for getting tokens at an input position.
// Token streams keep track of input tokens for backtracking; factoring
// access out into a type lets clients get at the full tokens after a parse.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

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
