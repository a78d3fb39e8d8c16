package pure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/curry_ive_go/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableize_CachesByArguments(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...any) (int, error) {
		count++
		return args[0].(int) + args[1].(int), nil
	}, 8)

	v, err := fn(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = fn(2, 3) // cached
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, count)

	v, err = fn(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 2, count)
}

func TestTableize_ZeroArguments(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...any) (string, error) {
		count++
		return "constant", nil
	}, 2)

	for range 3 {
		v, err := fn()
		require.NoError(t, err)
		assert.Equal(t, "constant", v)
	}
	assert.Equal(t, 1, count)
}

func TestTableize_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	count := 0
	fn := pure.Tableize(func(args ...any) (int, error) {
		count++
		if count == 1 {
			return 0, boom
		}
		return 42, nil
	}, 2)

	_, err := fn("x")
	assert.ErrorIs(t, err, boom)

	v, err := fn("x")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableize_WithStringerFallback(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...any) (int, error) {
		count++
		return len(args[0].(NonComparable).Field), nil
	}, 2)

	val, _ := fn(NonComparable{Field: []int{1, 2, 3}})
	val2, _ := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableize_UnkeyableArgumentBypassesTable(t *testing.T) {
	count := 0
	fn := pure.Tableize(func(args ...any) (int, error) {
		count++
		return len(args[0].(TotallyInvalid).Field), nil
	}, 2)

	for range 2 {
		v, err := fn(TotallyInvalid{Field: []int{1}})
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	}
	assert.Equal(t, 2, count)
}

type celsius int

func (c celsius) String() string { return fmt.Sprintf("%d", int(c)) }

type reading []int

func (r reading) String() string { return fmt.Sprint(len(r)) }

type tags map[string]bool

func (t tags) String() string {
	if t == nil {
		panic("nil tags")
	}
	return fmt.Sprint(len(t))
}

func TestKey(t *testing.T) {
	k1, ok := pure.Key(NonComparable{Field: []int{1}})
	require.True(t, ok)
	k2, _ := pure.Key(NonComparable{Field: []int{1}})
	assert.Equal(t, k1, k2)

	k3, ok := pure.Key(uint64(7))
	require.True(t, ok)
	assert.Equal(t, uint64(7), k3)

	_, ok = pure.Key([]int{1})
	assert.False(t, ok)

	_, ok = pure.Key(any(struct{ V any }{V: []int{1}}))
	assert.False(t, ok)
}

func TestKey_ComparableStringerKeysByItself(t *testing.T) {
	k, ok := pure.Key(celsius(20))
	require.True(t, ok)
	assert.Equal(t, celsius(20), k)

	other, _ := pure.Key(20)
	assert.NotEqual(t, k, other)
}

func TestKey_StringerKeyCarriesType(t *testing.T) {
	r, ok := pure.Key(reading{1, 2})
	require.True(t, ok)
	n, ok := pure.Key(NonComparable{Field: nil})
	require.True(t, ok)
	two, ok := pure.Key(reading{7, 8})
	require.True(t, ok)

	assert.Equal(t, r, two)
	assert.NotEqual(t, r, n)
}

func TestKey_NilReceivers(t *testing.T) {
	var p *NonComparable
	k, ok := pure.Key(p)
	require.True(t, ok)
	assert.Equal(t, p, k)

	_, ok = pure.Key(tags(nil))
	assert.False(t, ok)
}

func TestTableize_SameStringDifferentTypes(t *testing.T) {
	fn := pure.Tableize(func(args ...any) (string, error) {
		return fmt.Sprintf("%T", args[0]), nil
	}, 8)

	v, err := fn(reading{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "pure_test.reading", v)

	v, err = fn(tags{"a": true, "b": true})
	require.NoError(t, err)
	assert.Equal(t, "pure_test.tags", v)
}
