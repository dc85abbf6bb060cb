package enumeration

// Iter calls f with each element of e in turn.  This consumes the
// enumeration.
func (e *Enumeration[T]) Iter(f func(T)) {
	for {
		v, ok := e.pull().Get()
		if !ok {
			return
		}

		f(v)
	}
}

// Find returns the first element x of e such that f(x) is true, consuming
// the enumeration up to and including x.  If there is no such element it
// returns None, having consumed the whole enumeration.
//
// Since Find consumes only a prefix, calling it again on the same
// enumeration carries on searching from just after the previous match.
func (e *Enumeration[T]) Find(f FilterFunc[T]) Option[T] {
	for {
		o := e.pull()
		v, ok := o.Get()
		if !ok || f(v) {
			return o
		}
	}
}

// Nth skips n elements and returns the one after them, or None if the
// enumeration ends first.  Nth(0) returns the next element.
func (e *Enumeration[T]) Nth(n int) Option[T] {
	for ; n > 0; n-- {
		if e.pull().IsEmpty() {
			return None[T]()
		}
	}

	return e.pull()
}
