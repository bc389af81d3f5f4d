package stream

import (
	"strconv"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/pcomb/scanner"
)

// Sym is the token type of Tokens streams: a token's category together with
// its lexeme. Syms compare equal if both parts are equal, thus a Sym may be
// used as the expected value for comb.Atom.
type Sym struct {
	Type pcomb.TokType
	Text string
}

// SymOf extracts a Sym from a scanner token.
func SymOf(token pcomb.Token) Sym {
	return Sym{Type: token.TokType(), Text: token.Lexeme()}
}

func (sym Sym) String() string {
	return strconv.Quote(sym.Text)
}

// OfType is a predicate for comb.Predicate, accepting Syms of category t.
func OfType(t pcomb.TokType) func(Sym) bool {
	return func(sym Sym) bool {
		return sym.Type == t
	}
}

// Tokens is a stream over the tokens of a scanner.Tokenizer. Tokens are pulled
// from the tokenizer on demand and buffered, so that a stream may be rewound
// to any checkpoint. The stream ends at the tokenizer's EOF token.
type Tokens struct {
	tokenizer scanner.Tokenizer
	buffer    []pcomb.Token
	cursor    int
	eof       pcomb.Token // EOF token, if reached
	marks     checkpoints[int]
	conf      config
}

var _ comb.Stream[Sym] = (*Tokens)(nil)
var _ comb.Committer = (*Tokens)(nil)

// FromTokenizer creates a stream of tokens from a tokenizer. If no source name
// is configured and the tokenizer is a scanner.DefaultTokenizer, its file
// name is used.
func FromTokenizer(tokenizer scanner.Tokenizer, opts ...Option) *Tokens {
	ts := &Tokens{
		tokenizer: tokenizer,
		marks:     newCheckpoints[int](),
		conf:      configure(opts),
	}
	if dt, ok := tokenizer.(*scanner.DefaultTokenizer); ok && ts.conf.source == "" {
		ts.conf.source = dt.Filename
	}
	return ts
}

// fill makes sure the token at the cursor is buffered. It returns false at
// end of input.
func (ts *Tokens) fill() bool {
	for ts.cursor >= len(ts.buffer) {
		if ts.eof != nil {
			return false
		}
		token := ts.tokenizer.NextToken()
		if token.TokType() == scanner.EOF {
			tracer().Debugf("token stream reached EOF after %d tokens", len(ts.buffer))
			ts.eof = token
			return false
		}
		ts.buffer = append(ts.buffer, token)
	}
	return true
}

// Preview is part of interface comb.Stream.
func (ts *Tokens) Preview() (Sym, bool) {
	if !ts.fill() {
		return Sym{}, false
	}
	return SymOf(ts.buffer[ts.cursor]), true
}

// Consume is part of interface comb.Stream.
func (ts *Tokens) Consume() (Sym, bool) {
	sym, ok := ts.Preview()
	if ok {
		ts.cursor++
	}
	return sym, ok
}

// CurrentPos is part of interface comb.Stream. It is the position of the
// next token, or, at end of input, the position of the EOF token if known.
// Otherwise the position just behind the last token is reported.
func (ts *Tokens) CurrentPos() pcomb.Pos {
	if ts.fill() {
		return posOf(ts.buffer[ts.cursor])
	}
	if pos := posOf(ts.eof); !pos.IsUnknown() {
		return pos
	}
	if len(ts.buffer) == 0 {
		return pcomb.Pos{}
	}
	last := ts.buffer[len(ts.buffer)-1]
	pos := posOf(last)
	if !pos.IsUnknown() {
		pos.Column += len([]rune(last.Lexeme()))
	}
	return pos
}

func posOf(token pcomb.Token) pcomb.Pos {
	if p, ok := token.(pcomb.Positioned); ok {
		return p.Pos()
	}
	return pcomb.Pos{}
}

// Error is part of interface comb.Stream.
func (ts *Tokens) Error(msg string) error {
	return &Error{Source: ts.conf.source, Pos: ts.CurrentPos(), Msg: msg}
}

// Save is part of interface comb.Stream.
func (ts *Tokens) Save() {
	ts.marks.push(ts.cursor)
}

// Load is part of interface comb.Stream.
func (ts *Tokens) Load() {
	if c, ok := ts.marks.pop(); ok {
		ts.cursor = c
	}
}

// Commit is part of interface comb.Committer.
func (ts *Tokens) Commit() {
	ts.marks.pop()
}

// TokenAt returns the scanner token at position pos of the stream, if it has
// already been read, or nil otherwise.
func (ts *Tokens) TokenAt(pos uint64) pcomb.Token {
	if pos >= uint64(len(ts.buffer)) {
		return nil
	}
	return ts.buffer[pos]
}

// Retriever returns a token retriever for the tokens read so far.
func (ts *Tokens) Retriever() pcomb.TokenRetriever {
	return ts.TokenAt
}

// Last returns the scanner token consumed most recently, or nil if none has
// been consumed.
func (ts *Tokens) Last() pcomb.Token {
	if ts.cursor == 0 {
		return nil
	}
	return ts.buffer[ts.cursor-1]
}

// Offset returns the number of tokens consumed so far.
func (ts *Tokens) Offset() int {
	return ts.cursor
}

// Depth returns the number of pending checkpoints.
func (ts *Tokens) Depth() int {
	return ts.marks.depth()
}
