/*
Package leftist implements a persistent leftist heap.

A leftist heap is a heap-ordered binary tree where, for every node, the rank of
the left child is at least the rank of the right child. The rank of a node is the
length of its right spine, i.e. the path following right children down to an empty
node. The right spine of a heap holding n values is at most ⌊log(n+1)⌋ long, and
merging two heaps walks their right spines only. Thus Merge, Insert and DeleteMin
run in O(log n), FindMin in O(1).

All nodes off the merged spines are shared between a heap and its successor.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package leftist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.leftist'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.leftist")
}
