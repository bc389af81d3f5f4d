package stream

import (
	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/comb"
)

// Slice is a stream over an in-memory slice of tokens. Unless configured
// otherwise, a Slice reports position 1:n+1 for offset n.
type Slice[T comparable] struct {
	items  []T
	cursor int
	marks  checkpoints[int]
	conf   config
}

var _ comb.Stream[int] = (*Slice[int])(nil)
var _ comb.Committer = (*Slice[int])(nil)

// FromSlice creates a stream over items. The slice is not copied and must not
// be modified while the stream is in use.
func FromSlice[T comparable](items []T, opts ...Option) *Slice[T] {
	return &Slice[T]{
		items: items,
		marks: newCheckpoints[int](),
		conf:  configure(opts),
	}
}

// Preview is part of interface comb.Stream.
func (s *Slice[T]) Preview() (T, bool) {
	if s.cursor >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[s.cursor], true
}

// Consume is part of interface comb.Stream.
func (s *Slice[T]) Consume() (T, bool) {
	x, ok := s.Preview()
	if ok {
		s.cursor++
	}
	return x, ok
}

// CurrentPos is part of interface comb.Stream.
func (s *Slice[T]) CurrentPos() pcomb.Pos {
	if s.conf.positions != nil {
		return s.conf.positions(s.cursor)
	}
	return pcomb.Pos{Line: 1, Column: s.cursor + 1}
}

// Error is part of interface comb.Stream.
func (s *Slice[T]) Error(msg string) error {
	return &Error{Source: s.conf.source, Pos: s.CurrentPos(), Msg: msg}
}

// Save is part of interface comb.Stream.
func (s *Slice[T]) Save() {
	s.marks.push(s.cursor)
}

// Load is part of interface comb.Stream.
func (s *Slice[T]) Load() {
	if c, ok := s.marks.pop(); ok {
		s.cursor = c
	}
}

// Commit is part of interface comb.Committer.
func (s *Slice[T]) Commit() {
	s.marks.pop()
}

// Offset returns the number of tokens consumed so far.
func (s *Slice[T]) Offset() int {
	return s.cursor
}

// Remaining returns the number of tokens not yet consumed.
func (s *Slice[T]) Remaining() int {
	return len(s.items) - s.cursor
}

// Depth returns the number of pending checkpoints.
func (s *Slice[T]) Depth() int {
	return s.marks.depth()
}
