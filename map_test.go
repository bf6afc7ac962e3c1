package flow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/jake-scott/go-flow/hint"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func stringify(i int) string {
	return fmt.Sprintf("%04d", i)
}

func double(i int) int {
	return i * 2
}

func TestMapProcedural(t *testing.T) {
	assert := assert.New(t)

	f := FromSlice([]int{1, 3030, 55, 787, 97})
	result := Map(f, stringify)

	assert.IsType(&Flow[string]{}, result)
	assert.False(f.Owned())

	out, err := result.ToSlice()
	assert.NoError(err)
	assert.Equal([]string{"0001", "3030", "0055", "0787", "0097"}, out)
}

func TestMapInts(t *testing.T) {
	tr := func(f string, v ...any) {
		t.Logf(f, v...)
	}

	tests := []struct {
		name  string
		input []int
		m     MapFunc[int, string]
		want  []string
	}{
		{
			name:  "stringify some ints",
			input: []int{1, 3030, 55, 787, 97},
			m:     stringify,
			want:  []string{"0001", "3030", "0055", "0787", "0097"},
		},
		{
			name:  "empty list",
			input: []int{},
			m:     stringify,
			want:  []string{},
		},
		{
			name:  "null list",
			input: nil,
			m:     stringify,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			f := FromSlice(tt.input, WithTracing(true), WithTraceFunc(tr))
			result := Map(f, tt.m)

			h, ok := result.SizeHint().Exact()
			assert.True(ok)
			assert.Equal(len(tt.input), h)

			out, err := result.ToSlice()
			assert.NoError(err)
			assert.Equal(tt.want, out)
		})
	}
}

func TestMapMethod(t *testing.T) {
	assert := assert.New(t)

	out, err := FromSlice(hundredInts).Map(double).ToSlice()
	assert.NoError(err)

	want := make([]int, len(hundredInts))
	for i, v := range hundredInts {
		want[i] = v * 2
	}
	assert.Equal(want, out)
}

func TestMapNotCalledOnSkip(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	m := func(i int) int {
		calls++
		return i
	}

	n, err := Until(10).Map(m).Count()
	assert.NoError(err)
	assert.Equal(10, n)
	assert.Zero(calls)

	out, err := Until(10).Map(m).SkipN(7).ToSlice()
	assert.NoError(err)
	assert.Equal([]int{7, 8, 9}, out)
	assert.Equal(3, calls)
}

func TestTryMap(t *testing.T) {
	errBadNumber := errors.New("bad number")

	parse := func(s string) (int, error) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errBadNumber, s)
		}
		return i, nil
	}

	tests := []struct {
		name    string
		input   []string
		want    []int
		wantErr error
	}{
		{
			name:  "all valid",
			input: []string{"1", "22", "333"},
			want:  []int{1, 22, 333},
		},
		{
			name:    "fails midway",
			input:   []string{"1", "two", "3"},
			wantErr: errBadNumber,
		},
		{
			name:  "empty",
			input: nil,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			out, err := TryMap(FromSlice(tt.input), parse).ToSlice()
			if tt.wantErr != nil {
				assert.ErrorIs(err, tt.wantErr)
				assert.Nil(out)
				return
			}

			assert.NoError(err)
			assert.Equal(tt.want, out)
		})
	}
}

func TestTryMapPrimitives(t *testing.T) {
	assert := assert.New(t)

	errOdd := errors.New("odd")
	f := TryMap(Of(2, 4, 5, 6), func(i int) (int, error) {
		if i%2 != 0 {
			return 0, errOdd
		}
		return i / 2, nil
	})

	v, err := f.Next()
	assert.NoError(err)
	assert.Equal(1, v)

	v, err = f.Next()
	assert.NoError(err)
	assert.Equal(2, v)

	_, err = f.Next()
	assert.ErrorIs(err, errOdd)

	ok, err := f.HasNext()
	assert.False(ok)
	assert.ErrorIs(err, errOdd)
	assert.Equal(hint.Exact(0), f.SizeHint())
}

func TestTryMapFailsWhenSkipped(t *testing.T) {
	errOne := errors.New("one")
	failsOnOne := func(i int) (int, error) {
		if i == 1 {
			return 0, errOne
		}
		return i, nil
	}

	tests := []struct {
		name string
		run  func(*Flow[int]) error
	}{
		{"Count", func(f *Flow[int]) error { _, err := f.Count(); return err }},
		{"SkipN", func(f *Flow[int]) error { _, err := f.SkipN(2).ToSlice(); return err }},
		{"ToSlice", func(f *Flow[int]) error { _, err := f.ToSlice(); return err }},
		{"Skip", func(f *Flow[int]) error {
			if err := f.Skip(); err != nil {
				return err
			}
			return f.Skip()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			calls := 0
			f := TryMap(Of(0, 1, 2), func(i int) (int, error) {
				calls++
				return failsOnOne(i)
			})

			assert.ErrorIs(tt.run(f), errOne)
			assert.Equal(2, calls)
		})
	}
}

func TestEnumerate(t *testing.T) {
	assert := assert.New(t)

	f := Enumerate(Of("a", "b", "c").SkipN(1))
	out, err := f.ToSlice()

	assert.NoError(err)
	assert.Equal([]Indexed[string]{{0, "b"}, {1, "c"}}, out)
	assert.Equal("(b, 0)", out[0].String())
}

func TestMapCancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan int)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(ch)

		for _, i := range hundredInts {
			select {
			case ch <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	mapCancel := func(i int) int {
		if i == 66 {
			cancel()
		}
		return i * 2
	}

	out, err := Map(FromChannel(ctx, ch), mapCancel).ToSlice()
	assert.ErrorIs(err, context.Canceled)
	assert.Nil(out)

	<-done
	assert.NoError(goleak.Find())
}
