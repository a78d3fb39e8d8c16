package curry

import "fmt"

// Target is the uniform shape of a function the engine can curry.
// It receives exactly as many arguments as the curried value's arity.
type Target func(args ...any) (any, error)

// Fn is a curried function: a target, its arity and the arguments
// accumulated so far. The zero value is not usable, build one with New or
// one of the From constructors.
type Fn struct {
	target Target
	arity  int
	args   []any
}

// New curries target with an explicit arity.
func New(target Target, arity int) (Fn, error) {
	if target == nil {
		return Fn{}, ErrNilTarget
	}
	if arity < 0 {
		return Fn{}, fmt.Errorf("%w: %d", ErrInvalidArity, arity)
	}
	return Fn{target: target, arity: arity}, nil
}

// MustNew is the panic-on-failure variant of New.
func MustNew(target Target, arity int) Fn {
	f, err := New(target, arity)
	if err != nil {
		panic(err)
	}
	return f
}

// Arity is the number of arguments the target is invoked with.
func (f Fn) Arity() int {
	return f.arity
}

// Accumulated returns a copy of the arguments captured so far.
func (f Fn) Accumulated() []any {
	return append([]any(nil), f.args...)
}

// Remaining is the number of arguments still needed to resolve.
func (f Fn) Remaining() int {
	return f.arity - len(f.args)
}

// Apply supplies the next group of arguments.
//
// When the accumulated count reaches the arity, the target is invoked with
// the first arity arguments and its result is returned as a resolved Step;
// anything past the arity is dropped. Otherwise the Step holds a new Fn over
// all arguments so far. Errors come only from the target, unchanged.
func (f Fn) Apply(args ...any) (Step, error) {
	if f.target == nil {
		return Step{}, ErrNilTarget
	}

	all := make([]any, 0, len(f.args)+len(args))
	all = append(all, f.args...)
	all = append(all, args...)

	if len(all) < f.arity {
		return Step{next: Fn{target: f.target, arity: f.arity, args: all}}, nil
	}

	v, err := f.target(all[:f.arity]...)
	if err != nil {
		return Step{}, err
	}
	return Step{value: v, resolved: true}, nil
}

// ApplyGroups applies each group in order, as in f(g1)(g2)...(gn).
// A group that arrives after the chain resolved fails with ErrResolved.
func (f Fn) ApplyGroups(groups ...[]any) (Step, error) {
	step := Step{next: f}
	for _, g := range groups {
		var err error
		if step, err = step.Apply(g...); err != nil {
			return Step{}, err
		}
	}
	return step, nil
}

// Step is the result of applying a curried function: either the next curried
// function in the chain or the resolved value.
type Step struct {
	next     Fn
	value    any
	resolved bool
}

// Resolved reports whether the target has been invoked.
func (s Step) Resolved() bool {
	return s.resolved
}

// Value is the target's result. It is nil while the step is accumulating.
func (s Step) Value() any {
	return s.value
}

// Next returns the curried function awaiting more arguments.
// It reports false once the step is resolved.
func (s Step) Next() (Fn, bool) {
	if s.resolved {
		return Fn{}, false
	}
	return s.next, true
}

// Apply continues the chain. A resolved step is terminal.
func (s Step) Apply(args ...any) (Step, error) {
	if s.resolved {
		return Step{}, ErrResolved
	}
	return s.next.Apply(args...)
}
