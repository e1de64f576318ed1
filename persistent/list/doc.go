/*
Package list implements a persistent singly linked list.

A list is a chain of immutable cells. Cons creates a new cell in front of an
existing list, which becomes the tail of the new list without being copied.
Any number of lists may share a common tail; the garbage collector reclaims a
cell as soon as no list refers to it any more.

Operations which have to change cells in the middle of a list (Concat, UpdateAt,
Take) rebuild the spine up to the point of change and share everything after it.

	l := list.Of(1, 2, 3)
	m := l.Cons(0)           // [0 1 2 3], shares all cells of l
	n, _ := l.UpdateAt(1, 7) // [1 7 3], shares the cell holding 3

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pfds.list'.
func tracer() tracing.Trace {
	return tracing.Select("pfds.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
