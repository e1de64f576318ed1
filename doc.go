/*
Package pfds is a collection of purely functional, persistent data structures.

Every operation which looks like a modification returns a new handle to an updated
incarnation of a structure, leaving the original unchanged. New incarnations share
all unchanged parts with their predecessors (structural sharing), so creating a
modified copy costs a bounded number of new nodes only.

Sub-packages:

	persistent/list       singly linked cons-list
	persistent/queue      amortized O(1) FIFO queue (two lists)
	persistent/deque      amortized O(1) double ended queue
	persistent/lazy       memoizing thunks
	persistent/stream     lazy, possibly infinite lists
	persistent/leftist    leftist heap
	persistent/binomial   binomial heap, plus a variant with O(1) find-min
	persistent/rbtree     red-black tree
	persistent/bintree    unbalanced binary search tree

Handles are immutable and may be shared between goroutines freely. The single
mutable cell in this module is the memo of a lazy thunk, which is guarded by an
atomic compare-and-swap.

# Errors

Operations on empty structures or with out-of-range indices return errors
wrapping one of the sentinel errors of this package. Use errors.Is to test for them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pfds
