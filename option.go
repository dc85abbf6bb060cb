package enumeration

import "fmt"

// Option holds either a single value or nothing.  Enumerations use it to
// signal exhaustion, so that the zero value (or nil) of T remains a
// legitimate element.
type Option[T any] struct {
	some  bool
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue indicates whether or not this option contains an actual value.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty indicates whether or not this option is empty.
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Get returns the value and true, or the zero value of T and false if the
// option is empty.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the value held by the option, or def if it is empty.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}

	return def
}

// Unwrap returns the value contained, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}

	panic("cannot unwrap an empty option")
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
