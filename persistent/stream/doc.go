/*
Package stream implements lazy, persistent lists.

A stream is a list whose cells are computed on demand. Each cell is held by a
memoizing thunk (package lazy); forcing it yields either the end of the stream
or a value together with the (still unevaluated) rest. Streams may be infinite,
as long as clients observe finite prefixes only:

	nat := stream.Iterate(0, func(n int) int { return n + 1 })
	nat.Drop(10).Take(3).ToSlice()  // [10 11 12]

Concat, Take, Map and Drop are incremental: they perform one step of work each
time a cell of their result is forced. Reverse is monolithic. It cannot produce
its first cell before it has seen the last cell of its input, so forcing a
reversed stream forces the input completely (and never terminates for infinite
input).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.stream'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.stream")
}
