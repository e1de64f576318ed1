package binomial

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/maybe"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ExplicitMin is a binomial heap which caches its minimum value outside of the
// trees, making FindMin O(1). The zero value is an empty heap.
//
// Invariant: min is Nothing if and only if the heap is empty; otherwise min is less
// than or equal to every value in rest, and is not itself stored in rest.
type ExplicitMin[T constraints.Ordered] struct {
	min  maybe.Maybe[T]
	rest Heap[T]
}

// EmptyExplicitMin returns an empty heap.
func EmptyExplicitMin[T constraints.Ordered]() ExplicitMin[T] {
	return ExplicitMin[T]{}
}

// IsEmpty is true for an empty heap.
func (h ExplicitMin[T]) IsEmpty() bool {
	return h.min.IsNothing()
}

// Len returns the number of values in h.
func (h ExplicitMin[T]) Len() int {
	if h.min.IsNothing() {
		return 0
	}
	return h.rest.Len() + 1
}

// Insert returns a heap with values added. A value smaller than the cached minimum
// replaces it, pushing the old minimum into the trees.
func (h ExplicitMin[T]) Insert(values ...T) ExplicitMin[T] {
	for _, v := range values {
		m, ok := h.min.Get()
		switch {
		case !ok:
			h = ExplicitMin[T]{min: maybe.Just(v), rest: h.rest}
		case v < m:
			h = ExplicitMin[T]{min: maybe.Just(v), rest: h.rest.Insert(m)}
		default:
			h = ExplicitMin[T]{min: h.min, rest: h.rest.Insert(v)}
		}
	}
	return h
}

// Merge returns a heap holding the values of both h and other. The smaller of
// the two cached minimums stays cached, the other one goes into the merged trees.
func (h ExplicitMin[T]) Merge(other ExplicitMin[T]) ExplicitMin[T] {
	m1, ok1 := h.min.Get()
	m2, ok2 := other.min.Get()
	switch {
	case !ok1:
		return other
	case !ok2:
		return h
	}
	trees := h.rest.Merge(other.rest)
	if m1 <= m2 {
		return ExplicitMin[T]{min: h.min, rest: trees.Insert(m2)}
	}
	return ExplicitMin[T]{min: other.min, rest: trees.Insert(m1)}
}

// FindMin returns the smallest value of h in O(1).
func (h ExplicitMin[T]) FindMin() (T, error) {
	m, ok := h.min.Get()
	if !ok {
		return m, errors.Wrap(pfds.ErrEmptyCollection, "binomial heap find-min")
	}
	return m, nil
}

// DeleteMin returns h without its smallest value. The new minimum is taken from
// the trees.
func (h ExplicitMin[T]) DeleteMin() (ExplicitMin[T], error) {
	if h.min.IsNothing() {
		return h, errors.Wrap(pfds.ErrEmptyCollection, "binomial heap delete-min")
	}
	m, err := h.rest.FindMin()
	if err != nil { // trees are empty as well
		return ExplicitMin[T]{}, nil
	}
	rest, err := h.rest.DeleteMin()
	if err != nil {
		return h, err
	}
	return ExplicitMin[T]{min: maybe.Just(m), rest: rest}, nil
}
