package pure

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// stringerKey is the table key of a non-comparable fmt.Stringer argument.
// The dynamic type is part of the key so values of different types that
// print alike never share an entry.
type stringerKey struct {
	typ  reflect.Type
	hash uint64
}

// noArgs keys the single entry of a zero-argument call.
type noArgs struct{}

// Key returns the table key of arg. Comparable values, nil pointers
// included, key by themselves. Other Stringers key by their type and the
// xxhash of their string form. Anything else is not keyable and reports
// false.
func Key(arg any) (any, bool) {
	if arg == nil {
		return nil, true
	}
	if reflect.ValueOf(arg).Comparable() {
		return arg, true
	}
	stringer, ok := arg.(fmt.Stringer)
	if !ok {
		return nil, false
	}
	s, ok := stringOf(stringer)
	if !ok {
		return nil, false
	}
	return stringerKey{typ: reflect.TypeOf(arg), hash: xxhash.Sum64String(s)}, true
}

// stringOf reports false when String panics, e.g. on a nil map receiver.
func stringOf(stringer fmt.Stringer) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return stringer.String(), true
}

func keysOf(args []any) ([]any, bool) {
	if len(args) == 0 {
		return []any{noArgs{}}, true
	}
	keys := make([]any, len(args))
	for i, arg := range args {
		k, ok := Key(arg)
		if !ok {
			return nil, false
		}
		keys[i] = k
	}
	return keys, true
}

// Tableize memoizes pureFn by its argument values.
// Failed calls are not stored, and calls with an unkeyable argument go
// straight to pureFn.
func Tableize[O any](
	pureFn func(...any) (O, error),
	maxTableSize uint32,
) func(...any) (O, error) {
	memo := NewTrie[O](maxTableSize)
	return func(args ...any) (O, error) {
		keys, ok := keysOf(args)
		if !ok {
			return pureFn(args...)
		}
		if v, ok := memo.Load(keys); ok {
			return v, nil
		}
		v, err := pureFn(args...)
		if err != nil {
			return v, err
		}
		memo.Store(keys, v)
		return v, nil
	}
}
