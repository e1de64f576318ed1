package pfds

import "github.com/pkg/errors"

// ErrEmptyCollection is returned by accessors called on an empty structure, e.g.
// the head of an empty list or the minimum of an empty heap.
var ErrEmptyCollection = errors.New("empty collection")

// ErrIndexOutOfRange is returned for index-based operations past the end of a list.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrRankMismatch flags an attempt to link binomial trees of different rank.
// It is an internal programming error and is raised as a panic value, never returned.
var ErrRankMismatch = errors.New("rank mismatch")
