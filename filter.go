package enumeration

import "fmt"

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Filter is the non-OO version of Enumeration.Filter().
func Filter[T any](e *Enumeration[T], f FilterFunc[T], opts ...EnumOption) *Enumeration[T] {
	return e.Filter(f, opts...)
}

// Filter returns a new enumeration over the elements of e for which f is
// true.  Non-matching elements are skipped lazily, on each call to Next of
// the filtered enumeration.  Like Map, the filtered view reads from e
// itself.
//
// A filtered enumeration is never fast: its Count clones e and runs the
// filter over the rest of it.
func (e *Enumeration[T]) Filter(f FilterFunc[T], opts ...EnumOption) *Enumeration[T] {
	src := &filterSource[T]{src: e, f: f}
	return newEnumeration[T](src, derivedOptions(e.opts, opts...), fmt.Sprintf("Filter of #%d", e.id))
}

type filterSource[T any] struct {
	src *Enumeration[T]
	f   FilterFunc[T]
}

func (s *filterSource[T]) Next() Option[T] {
	return s.src.Find(s.f)
}

func (s *filterSource[T]) Count() int {
	c := s.src.Clone()

	n := 0
	for c.Find(s.f).HasValue() {
		n++
	}

	return n
}

func (s *filterSource[T]) Clone() Source[T] {
	return &filterSource[T]{src: s.src.Clone(), f: s.f}
}

func (s *filterSource[T]) Error() error {
	return s.src.Err()
}
