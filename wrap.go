package enumeration

import "fmt"

// Indexed pairs an element with its zero based position in the
// enumeration it came from.
type Indexed[T any] struct {
	Index int
	Item  T
}

// WithIndex returns an enumeration over the elements of e paired with their
// positions, counted from where e was when WithIndex was called.  Clones of
// the returned enumeration carry on numbering from the same position.
func WithIndex[T any](e *Enumeration[T], opts ...EnumOption) *Enumeration[Indexed[T]] {
	src := &indexSource[T]{src: e}
	return newEnumeration[Indexed[T]](src, derivedOptions(e.opts, opts...), fmt.Sprintf("WithIndex of #%d", e.id))
}

type indexSource[T any] struct {
	src *Enumeration[T]
	idx int
}

func (s *indexSource[T]) Next() Option[Indexed[T]] {
	v, ok := s.src.Next().Get()
	if !ok {
		return None[Indexed[T]]()
	}

	s.idx++
	return Some(Indexed[T]{Index: s.idx - 1, Item: v})
}

func (s *indexSource[T]) Count() int {
	return s.src.Count()
}

func (s *indexSource[T]) Clone() Source[Indexed[T]] {
	return &indexSource[T]{src: s.src.Clone(), idx: s.idx}
}

func (s *indexSource[T]) Fast() bool {
	return s.src.Fast()
}

func (s *indexSource[T]) Error() error {
	return s.src.Err()
}
