package rbtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path from the root down to a leaf: a node together with
// the direction taken from it.
type slot[T constraints.Ordered] struct {
	node  *knot[T]
	right bool
}

func (s slot[T]) String() string {
	dir := "L"
	if s.right {
		dir = "R"
	}
	return fmt.Sprintf("%v%s", s.node.value, dir)
}

// withChild returns a re-balanced copy of the slot's node, with child replacing the
// subtree in the direction of the slot.
func (s slot[T]) withChild(child *knot[T]) *knot[T] {
	if s.right {
		return balance(s.node.color, s.node.left, child, s.node.value)
	}
	return balance(s.node.color, child, s.node.right, s.node.value)
}

// --- Path ------------------------------------------------------------------

type slotPath[T constraints.Ordered] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

// foldR folds the path from the bottom up, starting with zero at the bottom.
func (path slotPath[T]) foldR(f func(slot[T], *knot[T]) *knot[T], zero *knot[T]) *knot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func rebuildSeam[T constraints.Ordered](parent slot[T], child *knot[T]) *knot[T] {
	return parent.withChild(child)
}
