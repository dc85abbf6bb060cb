package enumeration

// ReduceFunc is a generic function that folds one element into an
// accumulated value.
type ReduceFunc[A any, T any] func(A, T) A

// Reduce is the non-OO version of Enumeration.Reduce().  It must be used
// when the accumulated value has a different type to the elements.
func Reduce[T, A any](e *Enumeration[T], initial A, f ReduceFunc[A, T]) A {
	acc := initial
	e.Iter(func(v T) {
		acc = f(acc, v)
	})

	return acc
}

// Reduce folds every remaining element of e into initial using f, working
// from the front.  This consumes the enumeration.
func (e *Enumeration[T]) Reduce(initial T, f ReduceFunc[T, T]) T {
	return Reduce(e, initial, f)
}

// SliceFromEnumeration is a ReduceFunc that appends each element to a slice.
//
// Example:
//
//	words := Reduce(FromSlice(in), []string{}, SliceFromEnumeration)
func SliceFromEnumeration[T any](a []T, t T) []T {
	return append(a, t)
}

// Collect returns the remaining elements of e as a slice.  This consumes the
// enumeration.
func (e *Enumeration[T]) Collect() []T {
	sizeHint := int(DefaultSizeHint)
	if e.Fast() {
		sizeHint = e.Count()
	}

	return Reduce(e, make([]T, 0, sizeHint), SliceFromEnumeration[T])
}
