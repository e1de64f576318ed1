package rbtree

import (
	"golang.org/x/exp/constraints"
)

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "R"
	}
	return "B"
}

// knot is a node of the tree. A nil *knot is an empty (black) leaf.
type knot[T constraints.Ordered] struct {
	color       color
	left, right *knot[T]
	value       T
}

func (k *knot[T]) isRed() bool {
	return k != nil && k.color == red
}

// Tree is a persistent red-black tree. The zero value is an empty tree, i.e.
// this is legal:
//
//	tree := rbtree.Tree[int]{}.Insert(42)
type Tree[T constraints.Ordered] struct {
	root  *knot[T]
	count int
}

// Empty returns an empty tree.
func Empty[T constraints.Ordered]() Tree[T] {
	return Tree[T]{}
}

// IsEmpty is true for an empty tree.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Len returns the number of values in tree.
func (tree Tree[T]) Len() int {
	return tree.count
}

// Member reports whether v is in tree.
//
// The descent makes a single comparison per level: it goes left if v < x and right
// otherwise, remembering the last value x with x ≤ v. At the bottom, v is present
// iff that candidate is not less than v. This makes d+1 comparisons for depth d,
// instead of up to 2d.
func (tree Tree[T]) Member(v T) bool {
	var candidate *T
	for k := tree.root; k != nil; {
		if v < k.value {
			k = k.left
		} else {
			candidate = &k.value
			k = k.right
		}
	}
	return candidate != nil && !(*candidate < v)
}

// Insert returns a tree with v added. If v is already present, tree itself is
// returned, without any copying.
func (tree Tree[T]) Insert(v T) Tree[T] {
	path, found := tree.locate(v)
	if found {
		tracer().Debugf("insert: %v already present, sharing original tree", v)
		return tree
	}
	tracer().Debugf("insert: %v at path %s", v, path)
	leaf := &knot[T]{color: red, value: v}
	root := path.foldR(rebuildSeam[T], leaf)
	if root.isRed() { // root is always black
		root = &knot[T]{color: black, left: root.left, right: root.right, value: root.value}
	}
	return Tree[T]{root: root, count: tree.count + 1}
}

// FromSortedSlice creates a tree from a strictly increasing slice of values in O(n),
// without any rotation. The tree is perfectly balanced and nodes are colored by
// depth: all nodes are black, except those on the lowest level if that level is
// incomplete, which are red.
// If values is not strictly increasing, the tree is built by repeated inserts.
func FromSortedSlice[T constraints.Ordered](values []T) Tree[T] {
	for i := 1; i < len(values); i++ {
		if !(values[i-1] < values[i]) {
			tracer().Infof("FromSortedSlice: values not strictly increasing at %d, inserting one by one", i)
			tree := Tree[T]{}
			for _, v := range values {
				tree = tree.Insert(v)
			}
			return tree
		}
	}
	n := len(values)
	redDepth := -1
	if (n+1)&n != 0 { // lowest level incomplete
		redDepth = log2(n + 1)
	}
	return Tree[T]{root: build(values, 0, redDepth), count: n}
}

// ToSlice returns the values of tree in increasing order.
func (tree Tree[T]) ToSlice() []T {
	values := make([]T, 0, tree.count)
	var stack []*knot[T]
	k := tree.root
	for k != nil || len(stack) > 0 {
		for ; k != nil; k = k.left {
			stack = append(stack, k)
		}
		k = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		values = append(values, k.value)
		k = k.right
	}
	return values
}

// --- Internals -------------------------------------------------------------

// locate descends from the root towards the position of v, recording the path.
// It uses the same single-comparison scheme as Member.
func (tree Tree[T]) locate(v T) (slotPath[T], bool) {
	var path slotPath[T]
	var candidate *T
	for k := tree.root; k != nil; {
		if v < k.value {
			path = append(path, slot[T]{node: k})
			k = k.left
		} else {
			candidate = &k.value
			path = append(path, slot[T]{node: k, right: true})
			k = k.right
		}
	}
	return path, candidate != nil && !(*candidate < v)
}

// balance creates a node, eliminating a red-red violation below a black node.
// The four shapes of a black grandparent with a red child having a red child
// are all rotated into a red node with two black children:
//
//	      z           z          x            x
//	     / \         / \        / \          / \
//	    y   d       x   d      a   z        a   y
//	   / \         / \            / \          / \
//	  x   c       a   y          y   d        b   z
//	 / \             / \        / \              / \
//	a   b           b   c      b   c            c   d
//
//	               ⇒        y
//	                      /   \
//	                     x     z
//	                    / \   / \
//	                   a   b c   d
func balance[T constraints.Ordered](c color, left, right *knot[T], v T) *knot[T] {
	if c == black {
		switch {
		case left.isRed() && left.left.isRed():
			tracer().Debugf("balance: rotate right at %v", v)
			x, y := left.left, left
			return rotated(x.left, x.right, y.right, right, x.value, y.value, v)
		case left.isRed() && left.right.isRed():
			tracer().Debugf("balance: rotate left-right at %v", v)
			x, y := left, left.right
			return rotated(x.left, y.left, y.right, right, x.value, y.value, v)
		case right.isRed() && right.left.isRed():
			tracer().Debugf("balance: rotate right-left at %v", v)
			y, z := right.left, right
			return rotated(left, y.left, y.right, z.right, v, y.value, z.value)
		case right.isRed() && right.right.isRed():
			tracer().Debugf("balance: rotate left at %v", v)
			y, z := right, right.right
			return rotated(left, y.left, z.left, z.right, v, y.value, z.value)
		}
	}
	return &knot[T]{color: c, left: left, right: right, value: v}
}

// rotated creates the red subtree y(x(a,b), z(c,d)) with black children.
func rotated[T constraints.Ordered](a, b, c, d *knot[T], x, y, z T) *knot[T] {
	return &knot[T]{
		color: red,
		left:  &knot[T]{color: black, left: a, right: b, value: x},
		right: &knot[T]{color: black, left: c, right: d, value: z},
		value: y,
	}
}

// build creates a balanced subtree for sorted values, for a root at depth.
func build[T constraints.Ordered](values []T, depth, redDepth int) *knot[T] {
	if len(values) == 0 {
		return nil
	}
	assertThat(redDepth < 0 || depth <= redDepth, "balanced subtree deeper than expected")
	mid := len(values) / 2
	c := black
	if depth == redDepth {
		c = red
	}
	return &knot[T]{
		color: c,
		left:  build(values[:mid], depth+1, redDepth),
		right: build(values[mid+1:], depth+1, redDepth),
		value: values[mid],
	}
}

// log2 returns ⌊log₂ n⌋ for n > 0.
func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}
