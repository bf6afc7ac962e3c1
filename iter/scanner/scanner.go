// Package scanner implements a stream tokenizer source.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
package scanner

import (
	"fmt"

	"github.com/jake-scott/go-flow/hint"
)

// Iterator wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// The number of tokens is not known in advance, so the size hint is
// Unknown.
type Iterator struct {
	scanner Scanner
	token   string
	ready   bool
	done    bool
	err     error
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

// New returns a source that uses bufio.Scanner to traverse through tokens
// such as words or lines from an io.Reader such as a file.
func New(scanner Scanner) *Iterator {
	return &Iterator{
		scanner: scanner,
	}
}

// HasNext scans the next token if one is not already buffered.  It returns
// false if the end of the input is reached or an error is encountered.
// If the scanner panics, HasNext returns false and Err() will return the
// message from the scanner.
func (i *Iterator) HasNext() bool {
	if i.ready {
		return true
	}
	if i.done {
		return false
	}

	if i.scan() {
		i.token = i.scanner.Text()
		i.ready = true
	} else {
		i.done = true
	}

	return i.ready
}

func (i *Iterator) scan() (ret bool) {
	defer func() {
		switch err := recover().(type) {
		default:
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ret = false
		case error:
			i.err = ErrTooManyTokens{err: err}
			ret = false
		case nil:
		}
	}()

	return i.scanner.Scan()
}

// Next returns the buffered token, or the empty string at the end of the
// input.
func (i *Iterator) Next() string {
	if !i.HasNext() {
		return ""
	}

	i.ready = false
	return i.token
}

// Skip discards the next token.
func (i *Iterator) Skip() {
	i.Next()
}

// SizeHint returns Unknown.
func (i *Iterator) SizeHint() hint.SizeHint {
	return hint.Unknown()
}

// Err returns the panic message from the scanner if one occurred during
// a HasNext() call.  Otherwise, Err calls the Scanner's Err() method, which
// returns nil if there are no errors or if the end of input is reached,
// otherwise the first error encountered by the scanner.
func (i *Iterator) Err() error {
	if i.err != nil {
		return i.err
	}

	return i.scanner.Err()
}
