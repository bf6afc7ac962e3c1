package scanner

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _scanInputTest1 string = `This is some test input with
multipe lines
in it and multiple words
per line.`

func TestScannerIter(t *testing.T) {
	assert := assert.New(t)

	s := bufio.NewScanner(strings.NewReader(_scanInputTest1))
	s.Split(bufio.ScanLines)

	iter := New(s)
	assert.True(iter.SizeHint().IsUnknown())

	gotLines := []string{}
	for iter.HasNext() {
		gotLines = append(gotLines, iter.Next())
	}

	wantLines := strings.Split(_scanInputTest1, "\n")

	assert.Equal(wantLines, gotLines)
	assert.Nil(iter.Err())

	// Next should return the zero value at the end of the input
	assert.Equalf("", iter.Next(), "Expected string zero value")
}

func TestScannerSkip(t *testing.T) {
	assert := assert.New(t)

	s := bufio.NewScanner(strings.NewReader(_scanInputTest1))
	s.Split(bufio.ScanWords)

	iter := New(s)
	iter.Skip()
	iter.Skip()
	assert.True(iter.HasNext())
	assert.True(iter.HasNext())
	assert.Equal("some", iter.Next())
}

// Scanner wrapper that always panncs in Scan()
type panicScanner struct {
	bufio.Scanner
}

func (thing *panicScanner) Scan() bool {
	panic("FOO FOO FOO")
}

// Scanner wrapper that panics with an error value
type errPanicScanner struct {
	bufio.Scanner
	err error
}

func (thing *errPanicScanner) Scan() bool {
	panic(thing.err)
}

func TestScannerIterPanic(t *testing.T) {
	assert := assert.New(t)

	thing := bufio.NewScanner(strings.NewReader(_scanInputTest1))
	foo := panicScanner{Scanner: *thing}

	iter := New(&foo)

	nGood := 0
	// should panic and return false
	for iter.HasNext() {
		iter.Next()
		nGood++
	}

	assert.Equalf(0, nGood, "zero good calls to HasNext() expected")

	// should be an error
	assert.NotNil(iter.Err())

	// that should be our error from catching the panic
	assert.IsType(iter.Err(), ErrTooManyTokens{})

	assert.Contains(iter.Err().Error(), "too many tokens")
	assert.Contains(iter.Err().Error(), "FOO FOO FOO")
}

func TestScannerIterErrorPanic(t *testing.T) {
	assert := assert.New(t)
	myError := errors.New("scan exploded")

	thing := bufio.NewScanner(strings.NewReader(_scanInputTest1))
	iter := New(&errPanicScanner{Scanner: *thing, err: myError})

	assert.False(iter.HasNext())
	assert.ErrorIs(iter.Err(), myError)
}

func TestTooManyTokensError(t *testing.T) {
	assert := assert.New(t)
	var myError = errors.New("my test error")

	e1 := ErrTooManyTokens{panicMessage: "this is e1"}
	e2 := ErrTooManyTokens{err: myError}

	assert.Contains(e1.Error(), "too many tokens")

	assert.Contains(e2.Error(), "too many tokens")
	assert.Contains(e2.Error(), "my test error")
	assert.ErrorIs(e2, myError)
}
