/*
Package comb implements parser combinators over token streams.

Combinators are not bound to a concrete grammar or stream type. Any type
implementing the Stream interface may be used:

    Preview()     peek at the next token without consuming it
    Consume()     consume and return the next token
    CurrentPos()  report line and column, for diagnostics
    Error(msg)    construct an error value
    Save()        record the current cursor position as a checkpoint
    Load()        restore the cursor to the most recent checkpoint

Having that, clients gain the derived operations Next, Predicate, Atom, String,
Try, Choose, Many, Many1 and Optional. Go methods cannot carry type parameters,
therefore combinators are functions receiving the stream as their first argument:

    digits, err := comb.Many1(s, func(s comb.Stream[rune]) (rune, error) {
        return comb.Predicate(s, unicode.IsDigit)
    })

Backtracking

Only Try (and the combinators built upon it: Choose, Many, Many1, Optional)
ever reset the stream's cursor. Predicate, Atom and String leave consumed
tokens consumed when failing. Clients wrap them with Try if they need a
failing step to be cursor-neutral.

Repetition and choice are greedy and ordered (PEG-style): an accepted
alternative or repetition is never reconsidered if a later step fails.
There is no memoization, nested repetitions over pathological grammars may
therefore take exponential time.

Checkpoints

Try brackets every attempt with exactly one Save and at most one Load, in
strict LIFO order. A stream with a single checkpoint slot is sufficient for
attempts which are not nested. Nested attempts (e.g., a Many inside a Choose
alternative) need checkpoints kept on a stack, and the stream has to implement
Committer as well: after a successful attempt Try calls Commit, which drops the
attempt's checkpoint. Otherwise a later Load of an enclosing attempt would
restore a stale position. See package stream for conforming implementations.

Errors

Every error is constructed by the stream's Error method; combinators supply
the message only and never look inside an error value. The messages used are
"unexpected end of input", "unexpected token X" and
"unexpected token X, expected Y". Tokens are rendered with fmt's %v verb.

Streams are not safe for concurrent use; a stream is used by a single
combinator call chain at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.comb'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.comb")
}
