package leftist

import (
	"github.com/npillmayer/pfds"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Heap is a persistent min-heap. The zero value is an empty heap.
type Heap[T constraints.Ordered] struct {
	root *knot[T]
}

// knot is an inner node of a heap. A nil *knot is a leaf with rank 0.
type knot[T constraints.Ordered] struct {
	rank        int
	value       T
	left, right *knot[T]
}

func (k *knot[T]) getRank() int {
	if k == nil {
		return 0
	}
	return k.rank
}

// makeKnot creates a node for x with children a and b, putting the child with
// the higher rank to the left.
func makeKnot[T constraints.Ordered](x T, a, b *knot[T]) *knot[T] {
	if a.getRank() >= b.getRank() {
		return &knot[T]{rank: b.getRank() + 1, value: x, left: a, right: b}
	}
	return &knot[T]{rank: a.getRank() + 1, value: x, left: b, right: a}
}

func singleton[T constraints.Ordered](x T) *knot[T] {
	return &knot[T]{rank: 1, value: x}
}

// Empty returns an empty heap.
func Empty[T constraints.Ordered]() Heap[T] {
	return Heap[T]{}
}

// FromSlice builds a heap from values in O(n), merging pairs of heaps in rounds
// (starting with singletons) until a single heap is left.
func FromSlice[T constraints.Ordered](values []T) Heap[T] {
	if len(values) == 0 {
		return Heap[T]{}
	}
	heaps := make([]*knot[T], len(values))
	for i, v := range values {
		heaps[i] = singleton(v)
	}
	rounds := 0
	for len(heaps) > 1 {
		next := heaps[:0]
		for i := 0; i < len(heaps); i += 2 {
			if i+1 == len(heaps) {
				next = append(next, heaps[i])
			} else {
				next = append(next, merge(heaps[i], heaps[i+1]))
			}
		}
		heaps = next
		rounds++
	}
	tracer().Debugf("leftist: built heap of %d values in %d merge rounds", len(values), rounds)
	return Heap[T]{root: heaps[0]}
}

// IsEmpty is true for an empty heap.
func (h Heap[T]) IsEmpty() bool {
	return h.root == nil
}

// Insert returns a heap with v added. Instead of merging with a singleton heap, v
// is inserted directly along the right spine, saving an allocation per level.
func (h Heap[T]) Insert(v T) Heap[T] {
	return Heap[T]{root: insert(h.root, v)}
}

// Merge returns a heap holding the values of both h and other.
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	return Heap[T]{root: merge(h.root, other.root)}
}

// FindMin returns the smallest value of h.
func (h Heap[T]) FindMin() (T, error) {
	if h.root == nil {
		var zero T
		return zero, errors.Wrap(pfds.ErrEmptyCollection, "leftist heap find-min")
	}
	return h.root.value, nil
}

// DeleteMin returns h without its smallest value.
func (h Heap[T]) DeleteMin() (Heap[T], error) {
	if h.root == nil {
		return h, errors.Wrap(pfds.ErrEmptyCollection, "leftist heap delete-min")
	}
	return Heap[T]{root: merge(h.root.left, h.root.right)}, nil
}

// --- Internals -------------------------------------------------------------

// merge recurses along the right spines of a and b, which are O(log n) long.
func merge[T constraints.Ordered](a, b *knot[T]) *knot[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.value <= b.value {
		return makeKnot(a.value, a.left, merge(a.right, b))
	}
	return makeKnot(b.value, b.left, merge(a, b.right))
}

func insert[T constraints.Ordered](k *knot[T], v T) *knot[T] {
	if k == nil {
		return singleton(v)
	}
	if k.value <= v {
		return makeKnot(k.value, k.left, insert(k.right, v))
	}
	// v becomes the new root, with k as its only child; rank(k) ≥ 1 > rank(nil)
	return &knot[T]{rank: 1, value: v, left: k}
}
