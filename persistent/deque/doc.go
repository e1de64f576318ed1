/*
Package deque implements a persistent double-ended queue with amortized O(1)
operations.

A deque holds two lists, f and r, representing the sequence f ++ reverse(r).
Values are added to and removed from both ends. Whenever the deque holds two or
more values, both lists are kept non-empty: if an operation empties one side,
the other side is split and its far half, reversed, is moved over. Splitting in
half (instead of moving everything but one value) guarantees that a costly split
is always followed by a linear number of cheap operations, no matter which end
they work on.

Clients may switch to the simpler policy of moving all values but one with

	d := deque.Empty[int](deque.MoveAllButOne())

which keeps the amortized bound only for workloads that don't alternate ends.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.deque'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.deque")
}
