package enumeration

// Source is the capability an element producer must offer to back an
// Enumeration.  Every derived operation is built on these three methods.
type Source[T any] interface {
	// Next returns the next element and advances the source, or None
	// if there are no more elements
	Next() Option[T]

	// Count returns the number of elements still obtainable via Next.
	// It must not change the position of the source.
	Count() int

	// Clone returns an independent source positioned identically to this
	// one.  Advancing either must not advance the other.
	Clone() Source[T]
}

// FastSource can be implemented by a source whose Count is cheap and exact.
// Enumerations over fast sources answer IsEmpty from Count rather than by
// peeking.
type FastSource interface {
	Fast() bool
}

// Cursor is the shape of the adapters in the iter/... packages.  They don't
// depend on this package, so their Clone returns their own type; Adapt
// turns any such cursor into a Source.
type Cursor[T any, C any] interface {
	Next() (T, bool)
	Count() int
	Clone() C
}

// Adapt wraps a cursor as a Source.  If the cursor implements FastSource
// the returned source reports the same.
func Adapt[T any, C Cursor[T, C]](c C) Source[T] {
	return cursorSource[T, C]{c}
}

type cursorSource[T any, C Cursor[T, C]] struct {
	c C
}

func (s cursorSource[T, C]) Next() Option[T] {
	v, ok := s.c.Next()
	if !ok {
		return None[T]()
	}

	return Some(v)
}

func (s cursorSource[T, C]) Count() int {
	return s.c.Count()
}

func (s cursorSource[T, C]) Clone() Source[T] {
	return cursorSource[T, C]{s.c.Clone()}
}

func (s cursorSource[T, C]) Fast() bool {
	return isFast(s.c)
}

// errSource is implemented by cursors that can fail, such as the scanner
// cursor.
type errSource interface {
	Error() error
}

func (s cursorSource[T, C]) Error() error {
	if e, ok := any(s.c).(errSource); ok {
		return e.Error()
	}

	return nil
}

func isFast(v any) bool {
	f, ok := v.(FastSource)
	return ok && f.Fast()
}
