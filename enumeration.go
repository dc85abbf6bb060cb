// Package enumeration provides a lazy, pull based sequence abstraction with
// cloneable traversal state and one-element push-back.
//
// An Enumeration wraps a Source, which supplies just Next, Count and Clone.
// Everything else (Iter, Find, Peek, Map, Filter ...) is built on those three
// methods and works the same way whatever the source of the elements.
package enumeration

import (
	"fmt"
	"sync/atomic"
)

var enumCounter atomic.Uint32

// Enumeration yields the elements of its Source one at a time.  Values
// pushed back with Push are yielded again before the source is advanced.
//
// An Enumeration is not safe for concurrent use.
type Enumeration[T any] struct {
	src       Source[T]
	pushed    *pushback[T]
	id        uint32
	opts      enumOptions
	tr        Tracer
	exhausted bool
}

// pushback is one pushed value, stacked on top of any earlier pushes that
// are still pending.  Nodes are never modified, so clones share them.
type pushback[T any] struct {
	value T
	below *pushback[T]
	depth int
}

func (p *pushback[T]) push(v T) *pushback[T] {
	return &pushback[T]{value: v, below: p, depth: p.len() + 1}
}

func (p *pushback[T]) len() int {
	if p == nil {
		return 0
	}

	return p.depth
}

// New returns an enumeration over src.
func New[T any](src Source[T], opts ...EnumOption) *Enumeration[T] {
	return newEnumeration(src, newOptions(opts...), "")
}

func newEnumeration[T any](src Source[T], opts enumOptions, what string) *Enumeration[T] {
	e := &Enumeration[T]{
		src:  src,
		id:   enumCounter.Add(1),
		opts: opts,
	}
	e.tr = e.tracer(what)

	return e
}

func (e *Enumeration[T]) tracer(what string) Tracer {
	if !e.opts.tracing {
		return NullTracer{}
	}

	var t T
	description := fmt.Sprintf("(%T)", t)
	if what != "" {
		description += " " + what
	}
	if e.opts.description != "" {
		description += " " + e.opts.description
	}

	return newTracer(e.id, "%s", e.opts.tracer, description)
}

// ID returns the process-unique number of the enumeration used in trace
// output.
func (e *Enumeration[T]) ID() uint32 {
	return e.id
}

// Next returns the next element and advances the enumeration, or None if it
// is exhausted.  A value pushed back with Push is returned before the
// source is consulted.
func (e *Enumeration[T]) Next() Option[T] {
	if e.pushed != nil {
		v := e.pushed.value
		e.pushed = e.pushed.below
		return Some(v)
	}

	o := e.src.Next()
	if o.IsEmpty() {
		e.traceExhausted()
	}

	return o
}

func (e *Enumeration[T]) traceExhausted() {
	if !e.exhausted {
		e.exhausted = true
		e.tr.Msg("exhausted")
		e.tr.End()
	}
}

// Count returns the number of elements Next will still produce, including
// any pending pushed-back values.  It does not advance the enumeration.
func (e *Enumeration[T]) Count() int {
	return e.src.Count() + e.pushed.len()
}

// Clone returns an independent enumeration at the same position.  Values
// pushed back and not yet consumed are pending on the clone too.
func (e *Enumeration[T]) Clone() *Enumeration[T] {
	c := &Enumeration[T]{
		src:    e.src.Clone(),
		pushed: e.pushed,
		id:     enumCounter.Add(1),
		opts:   e.opts,
	}

	e.tr.Msg("clone -> enum #%d (%d pending)", c.id, e.pushed.len())
	c.tr = e.tr.SubTracer("clone #%d", c.id)

	return c
}

// Fast reports whether Count is cheap and exact for this enumeration.
func (e *Enumeration[T]) Fast() bool {
	return isFast(e.src)
}

// Err returns the error that ended the enumeration early, if the source can
// fail (for example a scanner reading from a file).  Exhaustion itself is
// not an error.
func (e *Enumeration[T]) Err() error {
	if s, ok := e.src.(errSource); ok {
		return s.Error()
	}

	return nil
}

// Push arranges for the next call to Next to return x.  Once x has been
// consumed the enumeration behaves exactly as it did before the push.
// Pushing several values before consuming them yields the most recent
// first.
//
// Pushing onto an exhausted enumeration is allowed: x becomes its only
// element.
func (e *Enumeration[T]) Push(x T) {
	e.pushed = e.pushed.push(x)
	e.tr.Msg("push (%d pending)", e.pushed.len())
}

// Get is the same as Next.
func (e *Enumeration[T]) Get() Option[T] {
	return e.Next()
}

// Junk discards one element.
func (e *Enumeration[T]) Junk() {
	e.Next()
}

// drained reports whether a fast enumeration has nothing left, so that
// loops can stop without pulling past a declared bound.
func (e *Enumeration[T]) drained() bool {
	return e.Fast() && e.Count() == 0
}

// pull is Next for the derived operations that run until exhaustion.
func (e *Enumeration[T]) pull() Option[T] {
	if e.drained() {
		e.traceExhausted()
		return None[T]()
	}

	return e.Next()
}

// Peek returns the next element without consuming it, or None if the
// enumeration is exhausted.
func (e *Enumeration[T]) Peek() Option[T] {
	o := e.pull()
	if v, ok := o.Get(); ok {
		e.Push(v)
	}

	return o
}

// IsEmpty reports whether the enumeration is exhausted.  It never consumes
// an element.
func (e *Enumeration[T]) IsEmpty() bool {
	if e.Fast() {
		return e.Count() == 0
	}

	return e.Peek().IsEmpty()
}
