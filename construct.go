package enumeration

import (
	"github.com/jake-scott/go-enumeration/iter/channel"
	"github.com/jake-scott/go-enumeration/iter/runes"
	"github.com/jake-scott/go-enumeration/iter/scanner"
	"github.com/jake-scott/go-enumeration/iter/slice"
)

// FromSlice returns a fast enumeration over the elements of s, in order.
// The slice is not copied.
func FromSlice[T any](s []T, opts ...EnumOption) *Enumeration[T] {
	return New(Adapt[T](slice.New(s)), opts...)
}

// FromString returns a fast enumeration over the runes of s.
func FromString(s string, opts ...EnumOption) *Enumeration[rune] {
	return New(Adapt[rune](runes.New(s)), opts...)
}

// FromScanner returns an enumeration over the tokens produced by s, which is
// usually a *bufio.Scanner.  Tokens are scanned on demand and kept so that
// clones see the same tokens.  If scanning fails the enumeration ends and
// Err returns the reason.
func FromScanner(s scanner.Scanner, opts ...EnumOption) *Enumeration[string] {
	return New(Adapt[string](scanner.New(s)), opts...)
}

// FromChannel returns an enumeration over the values received from ch until
// it is closed.  Values are kept so that clones see the same values.  Count
// blocks until ch is closed.
func FromChannel[T any](ch <-chan T, opts ...EnumOption) *Enumeration[T] {
	return New(Adapt[T](channel.New(ch)), opts...)
}

// Empty returns an enumeration with no elements.
func Empty[T any](opts ...EnumOption) *Enumeration[T] {
	return New[T](emptySource[T]{}, opts...)
}

type emptySource[T any] struct{}

func (emptySource[T]) Next() Option[T]  { return None[T]() }
func (emptySource[T]) Count() int       { return 0 }
func (emptySource[T]) Clone() Source[T] { return emptySource[T]{} }
func (emptySource[T]) Fast() bool       { return true }

// Init returns a fast enumeration of exactly n elements, the i'th being
// f(i).  Elements are generated when they are pulled.
//
// Calling Next on the enumeration after all n elements have been returned
// is a programming error and panics with a *NoMoreElementsError.  The
// derived operations (Iter, Find, Peek ...) stop at the end without
// pulling.
func Init[T any](n int, f func(int) T, opts ...EnumOption) *Enumeration[T] {
	o := newOptions(opts...)
	src := &initSource[T]{
		n:           n,
		remaining:   n,
		f:           f,
		description: o.description,
	}

	return newEnumeration[T](src, o, "Init")
}

type initSource[T any] struct {
	n           int
	remaining   int
	f           func(int) T
	description string
}

func (s *initSource[T]) Next() Option[T] {
	if s.remaining <= 0 {
		panic(&NoMoreElementsError{Length: s.n, Description: s.description})
	}

	s.remaining--
	return Some(s.f(s.n - 1 - s.remaining))
}

func (s *initSource[T]) Count() int {
	return max(s.remaining, 0)
}

func (s *initSource[T]) Clone() Source[T] {
	c := *s
	return &c
}

func (s *initSource[T]) Fast() bool {
	return true
}

// Funcs is a Source built from three functions.  Any nil function behaves as
// for an empty source.
type Funcs[T any] struct {
	NextFunc  func() Option[T]
	CountFunc func() int
	CloneFunc func() Source[T]
	// IsFast marks CountFunc as cheap and exact
	IsFast bool
}

func (f Funcs[T]) Next() Option[T] {
	if f.NextFunc == nil {
		return None[T]()
	}

	return f.NextFunc()
}

func (f Funcs[T]) Count() int {
	if f.CountFunc == nil {
		return 0
	}

	return f.CountFunc()
}

func (f Funcs[T]) Clone() Source[T] {
	if f.CloneFunc == nil {
		return emptySource[T]{}
	}

	return f.CloneFunc()
}

func (f Funcs[T]) Fast() bool {
	return f.IsFast
}

// Make returns an enumeration over a custom next/count/clone triple.  The
// functions must honour the Source contract; in particular clone must
// return a source that does not share position with the original.
func Make[T any](next func() Option[T], count func() int, clone func() Source[T], opts ...EnumOption) *Enumeration[T] {
	return New[T](Funcs[T]{NextFunc: next, CountFunc: count, CloneFunc: clone}, opts...)
}
