package stream

import (
	"github.com/npillmayer/pfds"
	"github.com/npillmayer/pfds/persistent/lazy"
	"github.com/pkg/errors"
)

// Stream is a lazy list. The zero value is an empty stream.
type Stream[T any] struct {
	cell *lazy.Thunk[*cell[T]]
}

// cell is a forced stream cell. A nil *cell marks the end of a stream.
type cell[T any] struct {
	head T
	tail Stream[T]
}

func delay[T any](f func() *cell[T]) Stream[T] {
	return Stream[T]{cell: lazy.New(f)}
}

// force evaluates the first cell of s.
func (s Stream[T]) force() *cell[T] {
	if s.cell == nil {
		return nil
	}
	return s.cell.Force()
}

// Empty returns an empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// FromSlice creates a finite stream of the values of a slice. The slice is
// captured, not copied; clients must not modify it afterwards.
func FromSlice[T any](values []T) Stream[T] {
	if len(values) == 0 {
		return Stream[T]{}
	}
	return delay(func() *cell[T] {
		return &cell[T]{head: values[0], tail: FromSlice(values[1:])}
	})
}

// Iterate returns the infinite stream seed, f(seed), f(f(seed)), …
func Iterate[T any](seed T, f func(T) T) Stream[T] {
	return delay(func() *cell[T] {
		return &cell[T]{head: seed, tail: Iterate(f(seed), f)}
	})
}

// Cons returns a stream with v in front of s. s is neither forced nor copied.
func (s Stream[T]) Cons(v T) Stream[T] {
	return Stream[T]{cell: lazy.Constant(&cell[T]{head: v, tail: s})}
}

// ConsLazy returns a stream with a delayed value in front of s. Neither d nor s
// are forced until the first cell of the result is.
func (s Stream[T]) ConsLazy(d *lazy.Thunk[T]) Stream[T] {
	return delay(func() *cell[T] {
		return &cell[T]{head: d.Force(), tail: s}
	})
}

// IsEmpty forces the first cell of s and reports if s is at its end.
func (s Stream[T]) IsEmpty() bool {
	return s.force() == nil
}

// Head forces the first cell of s and returns its value.
func (s Stream[T]) Head() (T, error) {
	v, _, err := s.Uncons()
	return v, err
}

// Tail forces the first cell of s and returns the rest of s, unevaluated.
func (s Stream[T]) Tail() (Stream[T], error) {
	_, tail, err := s.Uncons()
	return tail, err
}

// Uncons forces the first cell of s and returns head and tail.
func (s Stream[T]) Uncons() (T, Stream[T], error) {
	c := s.force()
	if c == nil {
		var zero T
		return zero, s, errors.Wrap(pfds.ErrEmptyCollection, "stream uncons")
	}
	return c.head, c.tail, nil
}

// Concat returns s followed by other. Forcing a cell of the result forces exactly
// one cell of s (or, once s is exhausted, of other).
func (s Stream[T]) Concat(other Stream[T]) Stream[T] {
	return delay(func() *cell[T] {
		c := s.force()
		if c == nil {
			return other.force()
		}
		return &cell[T]{head: c.head, tail: c.tail.Concat(other)}
	})
}

// Take returns a stream of the first n values of s. Take(0) never forces s.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 {
		return Stream[T]{}
	}
	return delay(func() *cell[T] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[T]{head: c.head, tail: c.tail.Take(n - 1)}
	})
}

// Drop returns s without its first n values. Nothing is forced until the first
// cell of the result is; then n+1 cells of s are.
func (s Stream[T]) Drop(n int) Stream[T] {
	if n <= 0 {
		return s
	}
	return delay(func() *cell[T] {
		rest := s
		for i := 0; i < n; i++ {
			c := rest.force()
			if c == nil {
				return nil
			}
			rest = c.tail
		}
		return rest.force()
	})
}

// Map returns a stream of f applied to every value of s, evaluated cell by cell.
func (s Stream[T]) Map(f func(T) T) Stream[T] {
	return delay(func() *cell[T] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[T]{head: f(c.head), tail: c.tail.Map(f)}
	})
}

// Reverse returns s in reverse order. The reversal is monolithic: forcing the first
// cell of the result forces every cell of s. Never force the reverse of an
// infinite stream.
func (s Stream[T]) Reverse() Stream[T] {
	return delay(func() *cell[T] {
		acc := Stream[T]{}
		n := 0
		for rest := s; ; n++ {
			c := rest.force()
			if c == nil {
				break
			}
			acc = acc.Cons(c.head)
			rest = c.tail
		}
		tracer().Debugf("stream: reversed %d cells", n)
		return acc.force()
	})
}

// ToSlice forces every cell of s and collects the values. s must be finite.
func (s Stream[T]) ToSlice() []T {
	var values []T
	for c := s.force(); c != nil; c = c.tail.force() {
		values = append(values, c.head)
	}
	return values
}
