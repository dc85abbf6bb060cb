package enumeration

import "fmt"

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func wordLength(s string) int {
//	    return utf8.RuneCountInString(s)
//	}
type MapFunc[T any, M any] func(T) M

// Map returns a new enumeration whose elements are the elements of e
// transformed by m.  Nothing is evaluated until the new enumeration is
// pulled.
//
// If the map function returns values of a different type to the input values,
// the non-OO version of Map() must be used instead.
func (e *Enumeration[T]) Map(m MapFunc[T, T], opts ...EnumOption) *Enumeration[T] {
	return Map(e, m, opts...)
}

// Map is the non-OO version of Enumeration.Map().  It must be used in the
// case where the map function returns items of a different type than the
// input elements, due to limitations of Golang's generic syntax.
//
// The mapped enumeration reads from e itself rather than from a copy:
// pulling e directly also moves the mapped view on.  Its Count is the Count
// of e, and cloning it clones e, so clones keep both position and m.
func Map[T, M any](e *Enumeration[T], m MapFunc[T, M], opts ...EnumOption) *Enumeration[M] {
	src := &mapSource[T, M]{src: e, m: m}
	return newEnumeration[M](src, derivedOptions(e.opts, opts...), fmt.Sprintf("Map of #%d", e.id))
}

type mapSource[T, M any] struct {
	src *Enumeration[T]
	m   MapFunc[T, M]
}

func (s *mapSource[T, M]) Next() Option[M] {
	v, ok := s.src.Next().Get()
	if !ok {
		return None[M]()
	}

	return Some(s.m(v))
}

func (s *mapSource[T, M]) Count() int {
	return s.src.Count()
}

func (s *mapSource[T, M]) Clone() Source[M] {
	return &mapSource[T, M]{src: s.src.Clone(), m: s.m}
}

func (s *mapSource[T, M]) Fast() bool {
	return s.src.Fast()
}

func (s *mapSource[T, M]) Error() error {
	return s.src.Err()
}
