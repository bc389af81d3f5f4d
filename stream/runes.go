package stream

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/comb"
)

// Char is the token type of Runes streams. Chars render quoted in error
// messages, e.g. "unexpected token 'x'".
type Char rune

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

// Chars converts a string into a sequence of Chars, to be used with comb.String.
func Chars(s string) []Char {
	chars := make([]Char, 0, len(s))
	for _, r := range s {
		chars = append(chars, Char(r))
	}
	return chars
}

// AsText is a collector for Chars, resulting in a string.
func AsText() comb.Collector[Char, string] {
	return func(chars []Char) string {
		runes := make([]rune, len(chars))
		for i, c := range chars {
			runes[i] = rune(c)
		}
		return string(runes)
	}
}

// Keyword returns a parser matching the characters of kw, returning kw.
func Keyword(kw string) comb.Parser[Char, string] {
	chars := Chars(kw)
	return func(s comb.Stream[Char]) (string, error) {
		return comb.StringAs(s, chars, AsText())
	}
}

// Runes is a stream of characters, tracking lines and columns. A newline
// character starts a new line.
type Runes struct {
	text  []rune
	at    runeMark
	marks checkpoints[runeMark]
	conf  config
}

type runeMark struct {
	offset       int
	line, column int
}

var _ comb.Stream[Char] = (*Runes)(nil)
var _ comb.Committer = (*Runes)(nil)

// FromString creates a character stream for a text.
func FromString(input string, opts ...Option) *Runes {
	return &Runes{
		text:  []rune(input),
		at:    runeMark{line: 1, column: 1},
		marks: newCheckpoints[runeMark](),
		conf:  configure(opts),
	}
}

// FromReader creates a character stream from the complete input of r.
func FromReader(r io.Reader, opts ...Option) (*Runes, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stream: cannot read input: %w", err)
	}
	return FromString(string(input), opts...), nil
}

// Preview is part of interface comb.Stream.
func (rs *Runes) Preview() (Char, bool) {
	if rs.at.offset >= len(rs.text) {
		return 0, false
	}
	return Char(rs.text[rs.at.offset]), true
}

// Consume is part of interface comb.Stream.
func (rs *Runes) Consume() (Char, bool) {
	c, ok := rs.Preview()
	if !ok {
		return c, false
	}
	rs.at.offset++
	if c == '\n' {
		rs.at.line++
		rs.at.column = 1
	} else {
		rs.at.column++
	}
	return c, true
}

// CurrentPos is part of interface comb.Stream.
func (rs *Runes) CurrentPos() pcomb.Pos {
	return pcomb.Pos{Line: rs.at.line, Column: rs.at.column}
}

// Error is part of interface comb.Stream.
func (rs *Runes) Error(msg string) error {
	return &Error{Source: rs.conf.source, Pos: rs.CurrentPos(), Msg: msg}
}

// Save is part of interface comb.Stream.
func (rs *Runes) Save() {
	rs.marks.push(rs.at)
}

// Load is part of interface comb.Stream.
func (rs *Runes) Load() {
	if m, ok := rs.marks.pop(); ok {
		rs.at = m
	}
}

// Commit is part of interface comb.Committer.
func (rs *Runes) Commit() {
	rs.marks.pop()
}

// Offset returns the number of characters consumed so far.
func (rs *Runes) Offset() int {
	return rs.at.offset
}

// Rest returns the text not yet consumed.
func (rs *Runes) Rest() string {
	return string(rs.text[rs.at.offset:])
}

// Depth returns the number of pending checkpoints.
func (rs *Runes) Depth() int {
	return rs.marks.depth()
}
