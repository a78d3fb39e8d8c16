package curry_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/curry_ive_go/curry"

	"github.com/stretchr/testify/assert"
)

func TestChainI2O1(t *testing.T) {
	add := curry.ChainI2O1(func(a, b int) int { return a + b })

	incr := add(1)
	decr := add(-1)
	assert.Equal(t, 2, incr(1))
	assert.Equal(t, 11, incr(10))
	assert.Equal(t, 0, decr(1))
	assert.Equal(t, 9, decr(10))
}

func TestChainI3O1(t *testing.T) {
	assert.Equal(t, 6, curry.ChainI3O1(add3)(1)(2)(3))

	step := curry.ChainI3O1(add3)(1)
	assert.Equal(t, 6, step(2)(3))
	assert.Equal(t, 12, step(5)(6))
}

func TestChainI4O1(t *testing.T) {
	format := curry.ChainI4O1(func(a string, b int, c bool, d float64) string {
		return fmt.Sprintf("%s-%d-%t-%.1f", a, b, c, d)
	})
	assert.Equal(t, "x-1-true-2.5", format("x")(1)(true)(2.5))
}
