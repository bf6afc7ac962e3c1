package flow

import (
	"testing"

	"github.com/jake-scott/go-flow/hint"
	"github.com/stretchr/testify/assert"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		name     string
		first    []int
		second   []int
		want     []int
		wantHint hint.SizeHint
	}{
		{"both non-empty", []int{0, 1, 2, 3, 4}, []int{10, 11}, []int{0, 1, 2, 3, 4, 10, 11}, hint.Exact(7)},
		{"empty other", []int{0, 1, 2, 3, 4}, nil, []int{0, 1, 2, 3, 4}, hint.Exact(5)},
		{"empty first", nil, []int{10, 11}, []int{10, 11}, hint.Exact(2)},
		{"both empty", nil, nil, []int{}, hint.Exact(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			first := FromSlice(tt.first)
			second := FromSlice(tt.second)
			f := first.Append(second)

			assert.False(first.Owned())
			assert.False(second.Owned())
			assert.Equal(tt.wantHint, f.SizeHint())

			out, err := f.ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, out)
		})
	}
}

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	out, err := Of(0, 1, 2).Insert(Of(10, 11)).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{10, 11, 0, 1, 2}, out)
}

func TestAppendInsertValues(t *testing.T) {
	assert := assert.New(t)

	out, err := Of(1, 2).AppendValues(3, 4).InsertValues(-1, 0).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{-1, 0, 1, 2, 3, 4}, out)

	out, err = Empty[int]().AppendValues().ToSlice()
	assert.NoError(err)
	assert.Empty(out)
}

func TestAppendSkip(t *testing.T) {
	assert := assert.New(t)

	n, err := Until(3).Append(Until(4)).Count()
	assert.NoError(err)
	assert.Equal(7, n)

	out, err := Until(3).Append(Between(10, 14)).SkipN(4).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{11, 12, 13}, out)
}

func TestAppendHintMixed(t *testing.T) {
	assert := assert.New(t)

	f := Of(1, 2).Filter(isEven).Append(Of(3, 4))
	assert.Equal(hint.LowerBound(2), f.SizeHint())
}

func TestAppendFirstFails(t *testing.T) {
	assert := assert.New(t)

	f := New[int](&failingSource[int]{items: []int{1, 2}}).Append(Of(3, 4))
	_, err := f.ToSlice()
	assert.ErrorIs(err, errSourceFailed)
}

func TestAppendSelf(t *testing.T) {
	assert := assert.New(t)

	f := Of(1, 2)
	g := f.Append(f)

	_, err := g.ToSlice()
	assert.ErrorIs(err, ErrOwnership)
}
