/*
Package queue implements a persistent FIFO queue with amortized O(1) operations.

A queue is represented by two lists, front and back, holding the logical sequence
front ++ reverse(back). New values are consed onto back, values are taken from
front. Whenever front runs empty while back still holds values, back is reversed
into front. Every value is reversed at most once during its life in the queue,
which makes each operation O(1) amortized (the potential is the length of back).

Note that the amortized bound holds for single-threaded (ephemeral) use of a
queue. Repeatedly dequeuing from the same old handle redoes the same reversal.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.queue'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.queue")
}
