package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pfds"
	"github.com/pkg/errors"
)

// List is a persistent list. The zero value is an empty list, ready to use.
type List[T any] struct {
	head *cell[T]
}

// cell is a cons-cell. Cells are never modified after construction.
// length is the length of the list headed by this cell.
type cell[T any] struct {
	value  T
	next   *cell[T]
	length int
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of creates a list holding values in the given order.
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice creates a list holding the values of a slice, first element first.
func FromSlice[T any](values []T) List[T] {
	return List[T]{}.prepend(values)
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of values in l, in O(1).
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.length
}

// Cons returns a new list with v in front of l. l is shared as the tail.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{head: &cell[T]{value: v, next: l.head, length: l.Len() + 1}}
}

// Head returns the first value of l.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrap(pfds.ErrEmptyCollection, "list head")
	}
	return l.head.value, nil
}

// Tail returns l without its first value. The tail is shared, not copied.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return l, errors.Wrap(pfds.ErrEmptyCollection, "list tail")
	}
	return List[T]{head: l.head.next}, nil
}

// Uncons splits l into head and tail.
func (l List[T]) Uncons() (T, List[T], error) {
	if l.head == nil {
		var zero T
		return zero, l, errors.Wrap(pfds.ErrEmptyCollection, "list uncons")
	}
	return l.head.value, List[T]{head: l.head.next}, nil
}

// Concat returns a list with the values of l followed by the values of other.
// other is shared completely, the spine of l is rebuilt. Runs in O(len(l)).
func (l List[T]) Concat(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	if other.head == nil {
		return l
	}
	tracer().Debugf("concat: rebuilding spine of %d cells", l.Len())
	return other.prepend(l.collect(l.Len()))
}

// UpdateAt returns a copy of l with the value at index replaced by v.
// Cells before index are rebuilt, cells after index are shared.
// If index is not within [0…Len()-1], ErrIndexOutOfRange is returned.
func (l List[T]) UpdateAt(index int, v T) (List[T], error) {
	if index < 0 || index >= l.Len() {
		return l, errors.Wrapf(pfds.ErrIndexOutOfRange, "list update at %d (length %d)", index, l.Len())
	}
	prefix := l.collect(index)
	rest := l.drop(index) // rest.head is the cell at index
	return List[T]{head: rest.head.next}.Cons(v).prepend(prefix), nil
}

// Suffixes returns the list of all suffixes of l, longest first, ending with the
// empty list. Every suffix is shared with l; the result takes O(len(l)) time and space.
//
//	Suffixes(Of(1, 2, 3))  =>  [[1 2 3] [2 3] [3] []]
func Suffixes[T any](l List[T]) List[List[T]] {
	sfx := make([]List[T], 0, l.Len()+1)
	for c := l.head; c != nil; c = c.next {
		sfx = append(sfx, List[T]{head: c})
	}
	sfx = append(sfx, List[T]{})
	return FromSlice(sfx)
}

// Reverse returns a list with the values of l in reverse order.
// No cells can be shared, as every value changes its position.
func (l List[T]) Reverse() List[T] {
	r := List[T]{}
	for c := l.head; c != nil; c = c.next {
		r = r.Cons(c.value)
	}
	return r
}

// Take returns a list of the first n values of l. If n ≥ Len(), l itself is returned.
func (l List[T]) Take(n int) List[T] {
	if n >= l.Len() {
		return l
	}
	if n <= 0 {
		return List[T]{}
	}
	return List[T]{}.prepend(l.collect(n))
}

// Drop returns l without its first n values. The result is shared with l.
func (l List[T]) Drop(n int) List[T] {
	if n >= l.Len() {
		return List[T]{}
	}
	if n <= 0 {
		return l
	}
	return l.drop(n)
}

// ForEach calls f for every value of l, front to back.
func (l List[T]) ForEach(f func(T)) {
	for c := l.head; c != nil; c = c.next {
		f(c.value)
	}
}

// ToSlice returns the values of l as a newly allocated slice.
func (l List[T]) ToSlice() []T {
	return l.collect(l.Len())
}

// String returns a space-separated representation of l, e.g. "[1 2 3]".
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	for c := l.head; c != nil; c = c.next {
		b.WriteString(fmt.Sprintf("%v", c.value))
		if c.next != nil {
			b.WriteRune(' ')
		}
	}
	b.WriteRune(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// collect copies the first n values of l into a slice.
func (l List[T]) collect(n int) []T {
	assertThat(n <= l.Len(), "cannot collect %d values from list of length %d", n, l.Len())
	values := make([]T, 0, n)
	for c := l.head; len(values) < n; c = c.next {
		values = append(values, c.value)
	}
	return values
}

func (l List[T]) drop(n int) List[T] {
	c := l.head
	for ; n > 0; n-- {
		c = c.next
	}
	return List[T]{head: c}
}

// prepend conses values onto l, last value first, so that values[0] becomes the head.
func (l List[T]) prepend(values []T) List[T] {
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Cons(values[i])
	}
	return l
}
