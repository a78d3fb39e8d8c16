package curry

import "github.com/on-the-ground/curry_ive_go/pure"

// Memoize returns f with a target that remembers its results, keyed by
// argument values, in a table of at most maxTableSize live entries.
// Only use it on pure targets. Failed calls are not remembered.
func Memoize(f Fn, maxTableSize uint32) Fn {
	if f.target == nil {
		return f
	}
	return Fn{
		target: pure.Tableize[any](f.target, maxTableSize),
		arity:  f.arity,
		args:   f.args,
	}
}
