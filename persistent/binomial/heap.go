package binomial

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/persistent/list"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Heap is a persistent binomial min-heap. The zero value is an empty heap.
type Heap[T constraints.Ordered] struct {
	trees list.List[ranked[T]] // strictly increasing ranks
}

// tree is a binomial tree without rank information.
// children are ordered by decreasing rank.
type tree[T constraints.Ordered] struct {
	value    T
	children list.List[*tree[T]]
}

// ranked pairs a tree with its rank.
type ranked[T constraints.Ordered] struct {
	rank int
	tree *tree[T]
}

// link combines two trees of equal rank r into a tree of rank r+1.
func link[T constraints.Ordered](t1, t2 ranked[T]) ranked[T] {
	if t1.rank != t2.rank {
		panic(errors.Wrapf(pfds.ErrRankMismatch, "binomial: cannot link trees of rank %d and %d",
			t1.rank, t2.rank))
	}
	if t1.tree.value <= t2.tree.value {
		return ranked[T]{rank: t1.rank + 1, tree: &tree[T]{
			value:    t1.tree.value,
			children: t1.tree.children.Cons(t2.tree),
		}}
	}
	return ranked[T]{rank: t1.rank + 1, tree: &tree[T]{
		value:    t2.tree.value,
		children: t2.tree.children.Cons(t1.tree),
	}}
}

// insertTree puts t into the forest ts, where rank(t) ≤ rank of every tree in ts.
// Equal ranks cascade into links, like carries of a binary increment.
func insertTree[T constraints.Ordered](t ranked[T], ts list.List[ranked[T]]) list.List[ranked[T]] {
	links := 0
	for {
		head, rest, err := ts.Uncons()
		if err != nil || t.rank < head.rank {
			if links > 1 {
				tracer().Debugf("binomial: insert cascaded through %d links", links)
			}
			return ts.Cons(t)
		}
		t = link(t, head)
		ts = rest
		links++
	}
}

// mergeTrees merges two forests in order of rank, linking trees of equal rank.
// Recursion depth is bounded by the number of trees, i.e. O(log n).
func mergeTrees[T constraints.Ordered](ts1, ts2 list.List[ranked[T]]) list.List[ranked[T]] {
	t1, rest1, err := ts1.Uncons()
	if err != nil {
		return ts2
	}
	t2, rest2, err := ts2.Uncons()
	if err != nil {
		return ts1
	}
	switch {
	case t1.rank < t2.rank:
		return mergeTrees(rest1, ts2).Cons(t1)
	case t2.rank < t1.rank:
		return mergeTrees(ts1, rest2).Cons(t2)
	}
	return insertTree(link(t1, t2), mergeTrees(rest1, rest2))
}

// removeMinTree finds the tree with the smallest root and returns it together
// with the forest without it. Trees following the minimum tree are shared.
func removeMinTree[T constraints.Ordered](ts list.List[ranked[T]]) (ranked[T], list.List[ranked[T]], error) {
	t, rest, err := ts.Uncons()
	if err != nil {
		return t, ts, errors.Wrap(pfds.ErrEmptyCollection, "binomial heap")
	}
	if rest.IsEmpty() {
		return t, rest, nil
	}
	t2, rest2, _ := removeMinTree(rest)
	if t.tree.value <= t2.tree.value {
		return t, rest, nil
	}
	return t2, rest2.Cons(t), nil
}

// --- API -------------------------------------------------------------------

// Empty returns an empty heap.
func Empty[T constraints.Ordered]() Heap[T] {
	return Heap[T]{}
}

// IsEmpty is true for an empty heap.
func (h Heap[T]) IsEmpty() bool {
	return h.trees.IsEmpty()
}

// Len returns the number of values in h, in O(log n).
func (h Heap[T]) Len() int {
	n := 0
	h.trees.ForEach(func(t ranked[T]) {
		n += 1 << t.rank
	})
	return n
}

// Insert returns a heap with values added, one at a time.
func (h Heap[T]) Insert(values ...T) Heap[T] {
	ts := h.trees
	for _, v := range values {
		ts = insertTree(ranked[T]{tree: &tree[T]{value: v}}, ts)
	}
	return Heap[T]{trees: ts}
}

// Merge returns a heap holding the values of both h and other, in O(log n).
// This is a single simultaneous pass over both forests, not a series of inserts.
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	return Heap[T]{trees: mergeTrees(h.trees, other.trees)}
}

// FindMin returns the smallest value of h.
func (h Heap[T]) FindMin() (T, error) {
	var m T
	if h.trees.IsEmpty() {
		return m, errors.Wrap(pfds.ErrEmptyCollection, "binomial heap find-min")
	}
	first := true
	h.trees.ForEach(func(t ranked[T]) {
		if first || t.tree.value < m {
			m, first = t.tree.value, false
		}
	})
	return m, nil
}

// DeleteMin returns h without its smallest value. The children of the removed
// root are promoted to trees of their own and merged with the remaining forest.
func (h Heap[T]) DeleteMin() (Heap[T], error) {
	t, rest, err := removeMinTree(h.trees)
	if err != nil {
		return h, errors.Wrap(err, "delete-min")
	}
	// children have ranks r-1 … 0; consing them reverses them into increasing order
	kids := list.Empty[ranked[T]]()
	rank := t.rank - 1
	t.tree.children.ForEach(func(c *tree[T]) {
		kids = kids.Cons(ranked[T]{rank: rank, tree: c})
		rank--
	})
	return Heap[T]{trees: mergeTrees(kids, rest)}, nil
}
