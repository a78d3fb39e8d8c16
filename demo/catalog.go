package demo

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/curry_ive_go/curry"
)

var ErrUnknownFunction = errors.New("unknown function")

// Kind tells how raw input for an entry's arguments is read.
type Kind int

const (
	KindNumeric Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a function offered by the playground.
type Entry struct {
	Key          string
	Label        string
	Kind         Kind
	Arity        int
	Placeholders []string
	// Defaults replace empty text input, per argument.
	Defaults []string
	Fn       curry.Fn
}

// Placeholder is the input hint of argument i, or "" past the arity.
func (e Entry) Placeholder(i int) string {
	if i < 0 || i >= len(e.Placeholders) {
		return ""
	}
	return e.Placeholders[i]
}

func newEntry(key, label string, kind Kind, fn any, placeholders ...string) Entry {
	arity := curry.Arity(fn)
	if len(placeholders) == 1 {
		for len(placeholders) < arity {
			placeholders = append(placeholders, placeholders[0])
		}
	}
	return Entry{
		Key:          key,
		Label:        label,
		Kind:         kind,
		Arity:        arity,
		Placeholders: placeholders,
		Fn:           curry.MustFromFunc(fn),
	}
}

// Default is the value used for argument i when its input is empty.
func (e Entry) Default(i int) string {
	if i < 0 || i >= len(e.Defaults) {
		return ""
	}
	return e.Defaults[i]
}

// Catalog lists the playground functions in display order.
func Catalog() []Entry {
	return []Entry{
		newEntry("add3", "add3 (a+b+c)", KindNumeric, Add3[float64], "number"),
		newEntry("multiply3", "multiply3 (a*b*c)", KindNumeric, Multiply3[float64], "number"),
		logEntry(),
	}
}

func logEntry() Entry {
	e := newEntry("log", "log(prefix, level, message)", KindText, Log,
		"e.g. APP", "info | warn | error", "message")
	e.Defaults = []string{"", string(LevelInfo), ""}
	return e
}

// Keys lists the catalog keys in display order.
func Keys() []string {
	entries := Catalog()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

func Lookup(key string) (Entry, error) {
	for _, e := range Catalog() {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunction, key)
}
