/*
Package rbtree implements a persistent red-black tree, holding a set of ordered values.

Every node is colored red or black, empty subtrees count as black. Two invariants
keep the tree balanced:

	(i)  no red node has a red child,
	(ii) every path from the root to an empty subtree contains the same number of
	     black nodes.

Thus the longest path is at most twice as long as the shortest one, and
Member and Insert are O(log n).

Insert copies the nodes on the path from the root down to the new value and shares
all other subtrees with the original tree (path copying). On the way back up, each
copied node is re-balanced by eliminating red-red violations with a rotation.
Inserting a value which is already present returns the original tree unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.rbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
