/*
Package maybe implements an optional value.

A Maybe is either Just(x) or Nothing. Persistent structures use it to hold
values which may legitimately be absent, e.g. the cached minimum of a heap.
The zero value of Maybe[T] is Nothing.
*/
package maybe

// Maybe holds either a single value or nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the wrapped value, together with a flag telling if there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}
