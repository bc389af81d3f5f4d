/*
Package stream provides token streams usable with the combinators of package comb.

Three kinds of streams are available:

■ Slice: a stream over an in-memory slice of comparable tokens.

■ Runes: a stream of characters over a text, tracking lines and columns.

■ Tokens: a stream over the tokens of a scanner.Tokenizer, e.g., a Go tokenizer
or a lexmachine scanner.

All streams keep their checkpoints on a stack and implement comb.Committer,
so attempts of package comb may be nested to any depth. Errors created by a
stream are of type *Error, carrying the position of the stream's cursor.

Streams are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.stream'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.stream")
}
