// Package slice implements a cursor that traverses uni-directionally
// over a generic slice of elements.
//
// The cursor is fast: its Count is exact and O(1).
package slice

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
}

// New returns an Iterator positioned at the start of s.  The slice is not
// copied, so it must not be modified while the iterator or its clones are
// in use.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{
		s: s,
	}
}

// Next returns the element at the current position and advances the
// iterator.  It returns false when the end of the slice has been reached.
func (r *Iterator[T]) Next() (T, bool) {
	if r.pos >= len(r.s) {
		var zero T
		return zero, false
	}

	r.pos++
	return r.s[r.pos-1], true
}

// Count returns the number of elements not yet returned by Next.
func (r *Iterator[T]) Count() int {
	return len(r.s) - r.pos
}

// Clone returns a new iterator over the same slice, at the same position.
func (r *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{
		s:   r.s,
		pos: r.pos,
	}
}

// Fast always returns true.
func (r *Iterator[T]) Fast() bool {
	return true
}

// Size returns the length of the underlying slice.
func (r *Iterator[T]) Size() uint {
	return uint(len(r.s))
}
