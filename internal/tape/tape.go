// Package tape records the elements read from a one-shot stream so that
// several readers, each with its own position, can replay them.
//
// The scanner and channel cursors are built on a Tape: a stream can only be
// read once, but clones of a cursor need to see the same elements.
package tape

// PullFunc reads the next element from the underlying stream, returning
// false once the stream has ended.
type PullFunc[T any] func() (T, bool)

// Tape is an append-only record of a stream.  It is shared by all the
// Readers created from it and, like them, is not safe for concurrent use.
type Tape[T any] struct {
	items []T
	pull  PullFunc[T]
	ended bool
}

// New returns a tape that reads from pull on demand.
func New[T any](pull PullFunc[T]) *Tape[T] {
	return &Tape[T]{pull: pull}
}

// Len returns the number of elements recorded so far.
func (t *Tape[T]) Len() int {
	return len(t.items)
}

// Ended reports whether the underlying stream has been read to its end.
func (t *Tape[T]) Ended() bool {
	return t.ended
}

// fill makes sure the element at idx has been recorded, reading from the
// stream as required.  It returns false if the stream ends first.
func (t *Tape[T]) fill(idx int) bool {
	for idx >= len(t.items) {
		if t.ended {
			return false
		}

		v, ok := t.pull()
		if !ok {
			t.ended = true
			// release whatever the pull function holds on to
			t.pull = nil
			return false
		}

		t.items = append(t.items, v)
	}

	return true
}

// drain reads the rest of the stream onto the tape.
func (t *Tape[T]) drain() {
	for t.fill(len(t.items)) {
	}
}

// Reader is a position on a Tape.
type Reader[T any] struct {
	tape *Tape[T]
	pos  int
}

// NewReader returns a reader at the start of the tape.
func (t *Tape[T]) NewReader() *Reader[T] {
	return &Reader[T]{tape: t}
}

// Next returns the element at the reader's position and advances it,
// reading from the stream if no reader has got this far yet.
func (r *Reader[T]) Next() (T, bool) {
	if !r.tape.fill(r.pos) {
		var zero T
		return zero, false
	}

	r.pos++
	return r.tape.items[r.pos-1], true
}

// Count returns the number of elements the reader has still to return.
// If the stream has not ended this reads it to the end, which blocks for as
// long as reading the stream blocks.
func (r *Reader[T]) Count() int {
	r.tape.drain()
	return len(r.tape.items) - r.pos
}

// Clone returns a reader on the same tape at the same position.
func (r *Reader[T]) Clone() *Reader[T] {
	return &Reader[T]{tape: r.tape, pos: r.pos}
}

// Tape returns the tape the reader is reading from.
func (r *Reader[T]) Tape() *Tape[T] {
	return r.tape
}
