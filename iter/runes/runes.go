// Package runes implements a cursor over the characters of a string.
//
// Characters are Unicode code points; invalid UTF-8 bytes are returned one
// at a time as utf8.RuneError, as a range loop over the string would.
// The cursor is fast: its Count is exact and O(1).
package runes

import "unicode/utf8"

// Iterator traverses the runes of a string.
type Iterator struct {
	s     string
	pos   int // byte offset of the next rune
	count int // runes not yet returned
}

// New returns an Iterator positioned at the first rune of s.
func New(s string) *Iterator {
	return &Iterator{
		s:     s,
		count: utf8.RuneCountInString(s),
	}
}

// Next returns the rune at the current position and advances the iterator.
// It returns false at the end of the string.
func (i *Iterator) Next() (rune, bool) {
	if i.pos >= len(i.s) {
		return 0, false
	}

	r, size := utf8.DecodeRuneInString(i.s[i.pos:])
	i.pos += size
	i.count--

	return r, true
}

// Count returns the number of runes not yet returned by Next.
func (i *Iterator) Count() int {
	return i.count
}

// Clone returns a new iterator over the same string, at the same position.
func (i *Iterator) Clone() *Iterator {
	c := *i
	return &c
}

// Fast always returns true.
func (i *Iterator) Fast() bool {
	return true
}

// Rest returns the part of the string not yet returned by Next.
func (i *Iterator) Rest() string {
	return i.s[i.pos:]
}
