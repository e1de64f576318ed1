/*
Package lazy implements memoizing thunks, i.e. delayed computations which are
evaluated at most once in effect.

A thunk starts out pending, holding a function. Forcing it calls the function
and replaces the pending state with the memoized result; every later force
returns the memo. Functions wrapped into thunks must be pure: the result must
not depend on when, or how often, the function is called.

# Concurrency

Thunks may be forced from multiple goroutines. The state switch from pending to
memoized is an atomic compare-and-swap. Goroutines racing to force the same
pending thunk may each evaluate the function, but exactly one result wins and
all of them return the winning value. The redundant evaluation is a performance
cost only, given the purity requirement above.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lazy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.lazy'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.lazy")
}
