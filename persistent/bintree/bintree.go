package bintree

import (
	"golang.org/x/exp/constraints"
)

type node[T constraints.Ordered] struct {
	left, right *node[T]
	value       T
}

// Tree is an unbalanced persistent binary search tree. The zero value is an empty
// tree.
type Tree[T constraints.Ordered] struct {
	root *node[T]
}

// Empty returns an empty tree.
func Empty[T constraints.Ordered]() Tree[T] {
	return Tree[T]{}
}

// FromSlice creates a tree from values, inserting them last to first.
func FromSlice[T constraints.Ordered](values []T) Tree[T] {
	tree := Tree[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		tree = tree.Insert(values[i])
	}
	return tree
}

// IsEmpty is true for an empty tree.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Member reports whether v is in tree, with d+1 comparisons for a descent of
// depth d. The last value not greater than v is carried down and checked for
// equality at the bottom.
func (tree Tree[T]) Member(v T) bool {
	var candidate *T
	for n := tree.root; n != nil; {
		if v < n.value {
			n = n.left
		} else {
			candidate = &n.value
			n = n.right
		}
	}
	return candidate != nil && !(*candidate < v)
}

// Insert returns a tree with v added. The nodes on the path to v are copied, all
// other nodes are shared. If v is already present, tree itself is returned.
func (tree Tree[T]) Insert(v T) Tree[T] {
	var path []*node[T]
	var candidate *T
	for n := tree.root; n != nil; {
		path = append(path, n)
		if v < n.value {
			n = n.left
		} else {
			candidate = &n.value
			n = n.right
		}
	}
	if candidate != nil && !(*candidate < v) {
		tracer().Debugf("insert: %v already present", v)
		return tree
	}
	child := &node[T]{value: v}
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if v < n.value {
			child = &node[T]{left: child, right: n.right, value: n.value}
		} else {
			child = &node[T]{left: n.left, right: child, value: n.value}
		}
	}
	return Tree[T]{root: child}
}

// ToSlice returns the values of tree in increasing order.
func (tree Tree[T]) ToSlice() []T {
	var values []T
	var stack []*node[T]
	n := tree.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, n.value)
		n = n.right
	}
	return values
}
