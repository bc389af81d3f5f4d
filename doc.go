/*
Package pcomb is a parser combinator toolbox.

Combinators are written once against a small capability interface for token
streams and apply to every stream type implementing it. Package structure is
as follows:

■ comb: Package comb defines the stream contract (preview, consume, position,
error construction, checkpoints) and the derived combinators: Next, Predicate,
Atom, String, Try, Choose, Many, Many1 and Optional.

■ stream: Package stream provides ready-made streams conforming to the contract:
streams over slices, over text (runes) and over the tokens of a scanner.

■ scanner: Package scanner defines an interface for tokenizers feeding token
streams, with a default implementation over the Go std lib 'text/scanner' and
an adapter for lexmachine in sub-package `lexmach`.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcomb
