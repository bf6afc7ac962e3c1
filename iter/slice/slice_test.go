package slice_test

import (
	"testing"

	"github.com/jake-scott/go-flow"
	"github.com/jake-scott/go-flow/hint"
	"github.com/jake-scott/go-flow/iter/slice"
	"github.com/stretchr/testify/assert"
)

var _sliceInputTest1 []string = []string{
	"This is some test input with",
	"multipe lines",
	"in it and multiple words",
	"per line.",
}

func TestSliceIter(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New(_sliceInputTest1)
	assert.Equal(hint.Exact(4), iter.SizeHint())

	gotLines := []string{}
	for iter.HasNext() {
		gotLines = append(gotLines, iter.Next())
	}

	assert.Equal(_sliceInputTest1, gotLines)
	assert.Nil(iter.Err())
	assert.Equal(hint.Exact(0), iter.SizeHint())

	// test that the slice iterator satisfies the flow source contract
	var src flow.Source[string] = iter
	assert.False(src.HasNext())
}

// Test with an empty slice
func TestSliceIter2(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int(nil))

	count := 0
	for iter.HasNext() {
		count++
	}

	assert.Equal(count, 0)
	assert.Nil(iter.Err())

	// Zero value past the end
	assert.Equal(0, iter.Next())
}

func TestSliceSkip(t *testing.T) {
	assert := assert.New(t)

	iter := slice.New([]int{1, 2, 3})
	iter.Skip()
	assert.Equal(hint.Exact(2), iter.SizeHint())
	assert.Equal(2, iter.Next())
	iter.Skip()
	iter.Skip()
	assert.False(iter.HasNext())
}
