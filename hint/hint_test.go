package hint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert := assert.New(t)

	assert.True(Unknown().IsUnknown())
	assert.Equal(KindUnknown, SizeHint{}.Kind())

	n, ok := Exact(5).Exact()
	assert.True(ok)
	assert.Equal(5, n)

	_, ok = LowerBound(5).Exact()
	assert.False(ok)
	assert.Equal(5, LowerBound(5).Lower())
	assert.Equal(0, Unknown().Lower())

	// negative lengths are clamped
	assert.Equal(Exact(0), Exact(-3))
	assert.Equal(LowerBound(0), LowerBound(-1))
}

func TestMin(t *testing.T) {
	tests := []struct {
		a, b SizeHint
		want SizeHint
	}{
		{Exact(5), Exact(2), Exact(2)},
		{Exact(2), Exact(5), Exact(2)},
		{Exact(2), LowerBound(5), Exact(2)},
		{Exact(7), LowerBound(5), LowerBound(5)},
		{LowerBound(5), Exact(2), Exact(2)},
		{LowerBound(3), LowerBound(5), LowerBound(3)},
		{Unknown(), Exact(2), Unknown()},
		{LowerBound(1), Unknown(), Unknown()},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("min(%s,%s)", tt.a, tt.b)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Min(tt.a, tt.b))
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		a, b SizeHint
		want SizeHint
	}{
		{Exact(5), Exact(2), Exact(7)},
		{Exact(5), LowerBound(2), LowerBound(7)},
		{LowerBound(1), LowerBound(2), LowerBound(3)},
		{Unknown(), Exact(2), LowerBound(2)},
		{Unknown(), Unknown(), Unknown()},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("sum(%s,%s)", tt.a, tt.b)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.a, tt.b))
		})
	}
}

func TestDegradePlusMinus(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(LowerBound(0), Exact(9).Degrade())
	assert.Equal(LowerBound(0), LowerBound(9).Degrade())
	assert.Equal(Unknown(), Unknown().Degrade())

	assert.Equal(Exact(6), Exact(5).Plus(1))
	assert.Equal(LowerBound(6), LowerBound(5).Plus(1))
	assert.Equal(LowerBound(1), Unknown().Plus(1))

	assert.Equal(Exact(2), Exact(5).Minus(3))
	assert.Equal(Exact(0), Exact(5).Minus(30))
	assert.Equal(LowerBound(0), LowerBound(2).Minus(3))
	assert.Equal(Unknown(), Unknown().Minus(3))
}

func TestCapacity(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4, Exact(4).Capacity(100))
	assert.Equal(0, Exact(0).Capacity(100))
	assert.Equal(4, LowerBound(4).Capacity(100))
	assert.Equal(100, LowerBound(0).Capacity(100))
	assert.Equal(100, Unknown().Capacity(100))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Exact(3)", Exact(3).String())
	assert.Equal("LowerBound(1)", LowerBound(1).String())
	assert.Equal("Unknown", Unknown().String())
	assert.Equal("lower-bound", KindLowerBound.String())
}
