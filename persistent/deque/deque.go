package deque

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/persistent/list"
	"github.com/pkg/errors"
)

// Deque is a persistent double-ended queue. The zero value is an empty deque using
// the default split policy.
//
// Invariant: if the deque holds two or more values, both f and r are non-empty.
type Deque[T any] struct {
	f, r   list.List[T]
	policy splitPolicy
}

// Empty creates an empty deque, configured with options, if you need any.
func Empty[T any](opts ...Option) Deque[T] {
	d := Deque[T]{}
	for _, option := range opts {
		d.policy = option.config(d.policy)
	}
	return d
}

// Option is a type to help configuring deques at creation time.
type Option struct {
	config func(splitPolicy) splitPolicy
}

type splitPolicy uint8

const (
	splitHalf splitPolicy = iota
	moveAllButOne
)

// SplitHalf is the default rebalancing policy: when one side of the deque runs
// empty, half of the values of the other side are moved over.
func SplitHalf() Option {
	return Option{config: func(splitPolicy) splitPolicy { return splitHalf }}
}

// MoveAllButOne is a rebalancing policy which moves every value but one from the
// non-empty side to the empty one.
func MoveAllButOne() Option {
	return Option{config: func(splitPolicy) splitPolicy { return moveAllButOne }}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for an empty deque.
func (d Deque[T]) IsEmpty() bool {
	return d.f.IsEmpty() && d.r.IsEmpty()
}

// Len returns the number of values in d.
func (d Deque[T]) Len() int {
	return d.f.Len() + d.r.Len()
}

// EnqueueFront returns a deque with v prepended.
func (d Deque[T]) EnqueueFront(v T) Deque[T] {
	return d.make(d.f.Cons(v), d.r)
}

// EnqueueBack returns a deque with v appended.
func (d Deque[T]) EnqueueBack(v T) Deque[T] {
	return d.make(d.f, d.r.Cons(v))
}

// Front returns the first value of d.
func (d Deque[T]) Front() (T, error) {
	v, err := peek(d.f, d.r)
	return v, errors.Wrap(err, "deque front")
}

// Back returns the last value of d.
func (d Deque[T]) Back() (T, error) {
	v, err := peek(d.r, d.f)
	return v, errors.Wrap(err, "deque back")
}

// DequeueFront returns d without its first value.
func (d Deque[T]) DequeueFront() (Deque[T], error) {
	if d.f.IsEmpty() {
		if d.r.IsEmpty() {
			return d, errors.Wrap(pfds.ErrEmptyCollection, "deque dequeue front")
		}
		// invariant: a single value is left, which lives in r
		return d.emptied(), nil
	}
	tail, _ := d.f.Tail()
	return d.make(tail, d.r), nil
}

// DequeueBack returns d without its last value.
func (d Deque[T]) DequeueBack() (Deque[T], error) {
	if d.r.IsEmpty() {
		if d.f.IsEmpty() {
			return d, errors.Wrap(pfds.ErrEmptyCollection, "deque dequeue back")
		}
		return d.emptied(), nil
	}
	tail, _ := d.r.Tail()
	return d.make(d.f, tail), nil
}

// ToSlice returns the values of d, front to back.
func (d Deque[T]) ToSlice() []T {
	return d.f.Concat(d.r.Reverse()).ToSlice()
}

// --- Internals -------------------------------------------------------------

// peek returns the head of x. If x is empty, the invariant guarantees that y holds at
// most one value, which then is both first and last.
func peek[T any](x, y list.List[T]) (T, error) {
	if v, err := x.Head(); err == nil {
		return v, nil
	}
	v, err := y.Head()
	if err != nil {
		return v, pfds.ErrEmptyCollection
	}
	return v, nil
}

func (d Deque[T]) emptied() Deque[T] {
	return Deque[T]{policy: d.policy}
}

// make establishes the deque invariant for a new pair of lists.
func (d Deque[T]) make(f, r list.List[T]) Deque[T] {
	switch {
	case f.IsEmpty() && r.Len() >= 2:
		keep, moved := split(d.policy, r)
		tracer().Debugf("deque: front empty, moving %d of %d values from back", moved.Len(), r.Len())
		return Deque[T]{f: moved, r: keep, policy: d.policy}
	case r.IsEmpty() && f.Len() >= 2:
		keep, moved := split(d.policy, f)
		tracer().Debugf("deque: back empty, moving %d of %d values from front", moved.Len(), f.Len())
		return Deque[T]{f: keep, r: moved, policy: d.policy}
	}
	return Deque[T]{f: f, r: r, policy: d.policy}
}

// split divides a donor list of n ≥ 2 values. It returns the part to keep on the
// donor side (a rebuilt prefix) and the reversed remainder for the empty side.
// The halving policy moves ⌈(n-1)/2⌉ values, the other policy n-1 values.
// The donor side always keeps at least one value.
func split[T any](p splitPolicy, l list.List[T]) (keep, moved list.List[T]) {
	n := l.Len()
	m := n / 2 // = ⌈(n-1)/2⌉
	if p == moveAllButOne {
		m = n - 1
	}
	return l.Take(n - m), l.Drop(n - m).Reverse()
}
