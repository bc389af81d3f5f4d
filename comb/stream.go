package comb

import "github.com/npillmayer/pcomb"

// Stream is the capability set a token stream has to provide to be usable with
// the combinators of this package. T is the token type; tokens are compared
// with == and rendered with fmt's %v verb.
type Stream[T comparable] interface {
	// Preview returns the next token without consuming it. Repeated calls
	// without consuming return the same token. At end of input, Preview
	// returns false.
	Preview() (T, bool)
	// Consume returns the next token and advances past it, or returns false
	// at end of input.
	Consume() (T, bool)
	// CurrentPos returns the line and column of the cursor.
	CurrentPos() pcomb.Pos
	// Error creates an error value from a message.
	Error(msg string) error
	// Save records the current cursor position.
	Save()
	// Load restores the cursor to the last recorded position.
	Load()
}

// Committer is an optional interface for streams. A stream which keeps its
// checkpoints on a stack has to implement it for nested attempts to work:
// Commit discards the most recent checkpoint without moving the cursor.
// Try calls Commit after a successful attempt, so every Save is paired with
// exactly one Load or Commit.
type Committer interface {
	Commit()
}

// Parser is a parsing step operating on a stream. Parsers are stateless
// functions; they must not hold on to the stream beyond a call.
type Parser[T comparable, X any] func(Stream[T]) (X, error)

// Collector builds a result container from matched items. Items are handed
// over in match order, duplicates preserved.
type Collector[X, O any] func([]X) O

// AsSlice is the default collector, returning the matched items as they are.
func AsSlice[X any]() Collector[X, []X] {
	return func(items []X) []X {
		return items
	}
}
