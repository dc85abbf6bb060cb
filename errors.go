package enumeration

import (
	"errors"
	"fmt"
)

// ErrNoMoreElements is the sentinel matched by errors.Is against the value
// an enumeration panics with when it is pulled beyond a bound it declared
// up front (see Init).  Ordinary exhaustion is never an error.
var ErrNoMoreElements = errors.New("there are no elements left in the enumeration")

// NoMoreElementsError describes which enumeration was over-read.
type NoMoreElementsError struct {
	// Length is the number of elements the enumeration declared
	Length int
	// Description of the enumeration, if one was configured
	Description string
}

func (e *NoMoreElementsError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (length %d)", ErrNoMoreElements, e.Length)
	}

	return fmt.Sprintf("%s: %s (length %d)", e.Description, ErrNoMoreElements, e.Length)
}

func (e *NoMoreElementsError) Unwrap() error {
	return ErrNoMoreElements
}
