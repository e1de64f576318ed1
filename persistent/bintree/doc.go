/*
Package bintree implements an unbalanced persistent binary search tree, holding a
set of ordered values.

The tree is the baseline for package rbtree: without re-balancing, inserting
values in sorted order degrades it into a list, and Member and Insert become O(n).
For random insertion orders the expected depth is O(log n).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.bintree")
}
