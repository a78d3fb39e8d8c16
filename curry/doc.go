// Package curry turns fixed-arity functions into curried values.
//
// A curried value accumulates arguments across calls until the declared
// arity is met, then invokes the wrapped function exactly once:
//
//	add3 := curry.FromI3O1(func(a, b, c int) int { return a + b + c })
//
//	step, _ := add3.Apply(1)        // accumulating
//	step, _ = step.Apply(2, 3)      // resolved
//	step.Value()                    // 6
//
// Arguments may be supplied one at a time or in groups, f(a)(b)(c),
// f(a, b)(c) and f(a)(b, c) all resolve to the same value, and surplus
// arguments on the resolving call are dropped.
//
// A curried value is never mutated. Applying the same intermediate value
// twice gives two independent chains, so values can be shared freely.
//
// The engine only counts arguments. Type checks happen at the boundary of
// the wrapped function, on the resolving call, and any error the wrapped
// function returns is handed back unchanged.
package curry
