package curry_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/curry_ive_go/curry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIxO1_Arities(t *testing.T) {
	assert.Equal(t, 1, curry.FromI1O1(strconv.Itoa).Arity())
	assert.Equal(t, 2, curry.FromI2O1(func(a, b int) int { return a - b }).Arity())
	assert.Equal(t, 3, curry.FromI3O1(add3).Arity())
	assert.Equal(t, 4, curry.FromI4O1(func(a, b, c, d int) int { return a * b * c * d }).Arity())

	assert.Equal(t, "7", mustResolve(t, curry.FromI1O1(strconv.Itoa), []any{7}))
	assert.Equal(t, -1, mustResolve(t, curry.FromI2O1(func(a, b int) int { return a - b }), []any{1}, []any{2}))
	assert.Equal(t, 24, mustResolve(t, curry.FromI4O1(func(a, b, c, d int) int { return a * b * c * d }), []any{1, 2}, []any{3, 4}))
}

func TestFromIxE_PropagatesTargetError(t *testing.T) {
	f := curry.FromI1E(strconv.Atoi)

	assert.Equal(t, 12, mustResolve(t, f, []any{"12"}))

	_, err := f.Apply("twelve")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.NotErrorIs(t, err, curry.ErrInvalidArgument)
}

func TestFromIxE_AllArities(t *testing.T) {
	boom := errors.New("boom")
	f2 := curry.FromI2E(func(a, b int) (int, error) { return a + b, nil })
	f3 := curry.FromI3E(func(a, b, c int) (int, error) { return 0, boom })
	f4 := curry.FromI4E(func(a, b, c, d string) (string, error) { return a + b + c + d, nil })

	assert.Equal(t, 3, mustResolve(t, f2, []any{1, 2}))
	_, err := f3.Apply(1, 2, 3)
	assert.Same(t, boom, err)
	assert.Equal(t, "wxyz", mustResolve(t, f4, []any{"w"}, []any{"x"}, []any{"y", "z"}))
}

func TestFromIx_BoundaryTypeCheck(t *testing.T) {
	f := curry.FromI3O1(func(a, b, c float64) float64 { return a + b + c })

	_, err := f.Apply(1.0, 2.0, 3)
	require.ErrorIs(t, err, curry.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "arg3 must be float64, got int")

	_, err = f.Apply(1.0, nil, 3.0)
	require.ErrorIs(t, err, curry.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "arg2 must be float64, got nil")

	g := curry.FromI2O1(func(p *int, s []string) bool { return p == nil && s == nil })
	assert.Equal(t, true, mustResolve(t, g, []any{nil, nil}))
}
