package lazy

import "sync/atomic"

// Thunk is a memoizing delayed computation. Thunks have to be shared by pointer;
// use New or Constant to create them. The zero value is a thunk memoized to the
// zero value of T.
type Thunk[T any] struct {
	state atomic.Pointer[state[T]]
}

// state is either pending (fn != nil) or memoized. States are never modified;
// a thunk switches state by swapping pointers.
type state[T any] struct {
	fn    func() T
	value T
}

// New creates a pending thunk for fn.
func New[T any](fn func() T) *Thunk[T] {
	t := &Thunk[T]{}
	t.state.Store(&state[T]{fn: fn})
	return t
}

// Constant creates a thunk which is memoized from the start.
func Constant[T any](v T) *Thunk[T] {
	t := &Thunk[T]{}
	t.state.Store(&state[T]{value: v})
	return t
}

// Force evaluates t, if it is still pending, and returns its value.
// Forcing a memoized thunk does not call the function again.
func (t *Thunk[T]) Force() T {
	s := t.state.Load()
	if s == nil {
		var zero T
		return zero
	}
	if s.fn == nil {
		return s.value
	}
	memo := &state[T]{value: s.fn()}
	if !t.state.CompareAndSwap(s, memo) {
		tracer().Debugf("thunk: lost memoization race, discarding redundant result")
		return t.state.Load().value
	}
	return memo.value
}

// IsForced is true if t has been memoized.
func (t *Thunk[T]) IsForced() bool {
	s := t.state.Load()
	return s == nil || s.fn == nil
}
