// Package demo provides the sample functions the playground curries, and the
// catalog that presents them.
package demo

import "fmt"

// Number is any built-in numeric type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func Add3[N Number](a, b, c N) N {
	return a + b + c
}

func Multiply3[N Number](a, b, c N) N {
	return a * b * c
}

// Level is a log severity understood by Log.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelIcons = map[Level]string{
	LevelInfo:  "ℹ️",
	LevelWarn:  "⚠️",
	LevelError: "❌",
}

// Icon returns the glyph of l, or "" for an unknown level.
func (l Level) Icon() string {
	return levelIcons[l]
}

// Log formats a log line as "<icon> <prefix>: <message>".
// An unknown level leaves the icon empty, so the line starts with a space.
func Log(prefix, level, message string) string {
	return fmt.Sprintf("%s %s: %s", Level(level).Icon(), prefix, message)
}
