/*
Package binomial implements persistent binomial heaps.

A binomial tree of rank r holds exactly 2^r values: its root has children of
ranks r-1, r-2, …, 0. Two trees of equal rank r are linked into a tree of rank
r+1 by attaching the tree with the larger root as the new first child of the other.
A binomial heap is a list of heap-ordered binomial trees of strictly increasing
rank, much like the binary digits of the number of values it holds.

Inserting a value is like incrementing a binary number: a single insert may cascade
through O(log n) links, but is O(1) amortized. Merging two heaps is like adding
two binary numbers and takes O(log n) worst case. FindMin and DeleteMin are
O(log n).

Ranks are not stored in tree nodes. The heap pairs each of its trees with the
tree's rank, and DeleteMin recomputes the ranks of the children it promotes.

ExplicitMin wraps a Heap and keeps the minimum value outside of the trees,
making FindMin O(1).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package binomial

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.binomial'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.binomial")
}
