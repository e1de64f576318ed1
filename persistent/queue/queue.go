package queue

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/persistent/list"
	"github.com/pkg/errors"
)

// Queue is a persistent FIFO queue. The zero value is an empty queue.
//
// Invariant: front is empty only if back is empty as well.
type Queue[T any] struct {
	front list.List[T]
	back  list.List[T]
}

// Empty returns an empty queue.
func Empty[T any]() Queue[T] {
	return Queue[T]{}
}

// IsEmpty is true for an empty queue.
func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty()
}

// Len returns the number of values in q.
func (q Queue[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

// Enqueue returns a queue with v appended at the end.
func (q Queue[T]) Enqueue(v T) Queue[T] {
	return check(q.front, q.back.Cons(v))
}

// Top returns the value at the start of q.
func (q Queue[T]) Top() (T, error) {
	v, err := q.front.Head()
	if err != nil {
		return v, errors.Wrap(pfds.ErrEmptyCollection, "queue top")
	}
	return v, nil
}

// Dequeue returns q without its first value.
func (q Queue[T]) Dequeue() (Queue[T], error) {
	tail, err := q.front.Tail()
	if err != nil {
		return q, errors.Wrap(pfds.ErrEmptyCollection, "queue dequeue")
	}
	return check(tail, q.back), nil
}

// Pop returns the first value of q together with the remaining queue.
func (q Queue[T]) Pop() (T, Queue[T], error) {
	v, tail, err := q.front.Uncons()
	if err != nil {
		return v, q, errors.Wrap(pfds.ErrEmptyCollection, "queue pop")
	}
	return v, check(tail, q.back), nil
}

// ToSlice returns the values of q in FIFO order.
func (q Queue[T]) ToSlice() []T {
	return q.front.Concat(q.back.Reverse()).ToSlice()
}

// check establishes the queue invariant.
func check[T any](front, back list.List[T]) Queue[T] {
	if !front.IsEmpty() || back.IsEmpty() {
		return Queue[T]{front: front, back: back}
	}
	tracer().Debugf("queue: front exhausted, reversing back of length %d", back.Len())
	return Queue[T]{front: back.Reverse()}
}
