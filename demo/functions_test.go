package demo_test

import (
	"testing"

	"github.com/on-the-ground/curry_ive_go/curry"
	"github.com/on-the-ground/curry_ive_go/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd3AndMultiply3(t *testing.T) {
	assert.Equal(t, 6, demo.Add3(1, 2, 3))
	assert.Equal(t, 6.5, demo.Add3(1.5, 2, 3))
	assert.Equal(t, 24, demo.Multiply3(2, 3, 4))
	assert.Equal(t, uint8(0), demo.Multiply3[uint8](0, 9, 9))
}

func TestLog(t *testing.T) {
	assert.Equal(t, "ℹ️ APP: ready", demo.Log("APP", "info", "ready"))
	assert.Equal(t, "⚠️ APP: Low battery", demo.Log("APP", "warn", "Low battery"))
	assert.Equal(t, "❌ DB: down", demo.Log("DB", "error", "down"))
	assert.Equal(t, " APP: hi", demo.Log("APP", "trace", "hi"))
}

func TestCurriedLog(t *testing.T) {
	logCurried := curry.MustFromFunc(demo.Log)

	step, err := logCurried.ApplyGroups([]any{"APP"}, []any{"info"}, []any{"ready"})
	require.NoError(t, err)
	assert.Equal(t, "ℹ️ APP: ready", step.Value())

	step, err = logCurried.ApplyGroups([]any{"APP"}, []any{"warn"}, []any{"Low battery"})
	require.NoError(t, err)
	assert.Equal(t, "⚠️ APP: Low battery", step.Value())
}

func TestCurriedAdd3(t *testing.T) {
	add3 := curry.MustFromFunc(demo.Add3[int])

	for _, groups := range [][][]any{
		{{1}, {2}, {3}},
		{{1, 2}, {3}},
		{{1}, {2, 3}},
		{{1, 2, 3}},
		{{1, 2, 3, 4}},
	} {
		step, err := add3.ApplyGroups(groups...)
		require.NoError(t, err)
		assert.Equal(t, 6, step.Value())
	}
}

func TestCurriedAdd3_NonNumericFailsAtResolution(t *testing.T) {
	add3 := curry.MustFromFunc(demo.Add3[float64])

	step, err := add3.Apply(1.0)
	require.NoError(t, err)
	step, err = step.Apply(2.0)
	require.NoError(t, err)

	_, err = step.Apply("x")
	assert.ErrorIs(t, err, curry.ErrInvalidArgument)
}
