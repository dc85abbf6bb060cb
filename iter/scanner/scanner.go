// Package scanner implements a stream tokenizer cursor.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
//
// Tokens are recorded as they are scanned so that clones of an Iterator can
// replay them; the input itself is only read once.
package scanner

import (
	"fmt"

	"github.com/jake-scott/go-enumeration/internal/tape"
)

// Iterator traverses over a stream of tokens such as words or lines read
// from an io.Reader by a bufio.Scanner.
//
// Iterator is not fast: Count has to scan the rest of the input.
type Iterator struct {
	r     *tape.Reader[string]
	state *scanState
}

// Scanner is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	} else {
		return fmt.Sprintf("too many tokens: %s", e.err)
	}
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// scanState is shared between an Iterator and its clones
type scanState struct {
	scanner Scanner
	err     error
}

// scan reads one token.  If the scanner panics, scanning stops and the
// panic is kept as an ErrTooManyTokens.
func (s *scanState) scan() (tok string, ok bool) {
	defer func() {
		switch err := recover().(type) {
		default:
			s.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ok = false
		case error:
			s.err = ErrTooManyTokens{err: err}
			ok = false
		case nil:
		}
	}()

	if !s.scanner.Scan() {
		return "", false
	}

	return s.scanner.Text(), true
}

// New returns an Iterator that uses scanner to traverse through tokens such
// as words or lines from an io.Reader such as a file.
func New(scanner Scanner) *Iterator {
	st := &scanState{scanner: scanner}
	return &Iterator{
		r:     tape.New(st.scan).NewReader(),
		state: st,
	}
}

// Next returns the next token, scanning for it if neither this iterator
// nor one of its clones has done so yet.  It returns false at the end of
// the input or if the scanner failed; see Error.
func (i *Iterator) Next() (string, bool) {
	return i.r.Next()
}

// Count returns the number of tokens still to be returned by Next.  It
// scans the rest of the input to find out.
func (i *Iterator) Count() int {
	return i.r.Count()
}

// Clone returns an iterator at the same position that replays the same
// tokens.
func (i *Iterator) Clone() *Iterator {
	return &Iterator{
		r:     i.r.Clone(),
		state: i.state,
	}
}

// Error returns the panic message from the scanner if one occurred during
// a Next() call.  Otherwise, Error calls the Scanner's Err() method, which
// returns nil if there are no errors or if the end of input is reached,
// otherwise the first error encountered by the scanner.
func (i *Iterator) Error() error {
	if i.state.err != nil {
		return i.state.err
	}

	return i.state.scanner.Err()
}
