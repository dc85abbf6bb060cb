// Package channel implements a cursor that reads a data stream from
// the supplied channel.
//
// Elements are recorded as they are received so that clones of an Iterator
// can replay them.
package channel

import "github.com/jake-scott/go-enumeration/internal/tape"

// Iterator traverses the elements of type T from a channel, until
// the channel is closed.
//
// Iterator is not fast: Count has to receive until the channel is closed.
type Iterator[T any] struct {
	r *tape.Reader[T]
}

// New returns an Iterator that receives from ch until ch is closed.
func New[T any](ch <-chan T) *Iterator[T] {
	recv := func() (T, bool) {
		item, ok := <-ch
		return item, ok
	}

	return &Iterator[T]{
		r: tape.New(recv).NewReader(),
	}
}

// Next returns the next element, receiving it from the channel if neither
// this iterator nor one of its clones has done so yet.  It returns false
// once the channel is closed and drained.  Next blocks while the channel is
// open and empty.
func (i *Iterator[T]) Next() (T, bool) {
	return i.r.Next()
}

// Count returns the number of elements still to be returned by Next.  It
// blocks until the channel has been closed.
func (i *Iterator[T]) Count() int {
	return i.r.Count()
}

// Clone returns an iterator at the same position that replays the same
// elements.
func (i *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{
		r: i.r.Clone(),
	}
}
