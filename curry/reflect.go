package curry

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Arity reports the declared parameter count of fn, counting only the fixed
// parameters of a variadic function. It is 0 for nil and non-functions.
// It describes fn itself, never the progress of a curry chain.
func Arity(fn any) int {
	if fn == nil {
		return 0
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return 0
	}
	if t.IsVariadic() {
		return t.NumIn() - 1
	}
	return t.NumIn()
}

// FromFunc curries an arbitrary Go function through reflection.
//
// Without an explicit arity the declared parameter count is used; a variadic
// fn then fails with ErrUnknownArity, since its real count cannot be known.
// With an explicit arity, missing parameters are passed as zero values and
// arguments past the declared parameters are dropped, except for variadic
// functions where they fill the variadic slice.
//
// fn may return nothing, a value, an error, or a value and an error.
func FromFunc(fn any, arity ...int) (Fn, error) {
	if fn == nil {
		return Fn{}, ErrNilTarget
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return Fn{}, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}
	if v.IsNil() {
		return Fn{}, ErrNilTarget
	}
	if err := checkResults(t); err != nil {
		return Fn{}, err
	}

	var n int
	switch len(arity) {
	case 0:
		if t.IsVariadic() {
			return Fn{}, fmt.Errorf("%w: %s is variadic, supply an arity", ErrUnknownArity, t)
		}
		n = t.NumIn()
	case 1:
		n = arity[0]
	default:
		return Fn{}, fmt.Errorf("%w: got %d arities", ErrInvalidArity, len(arity))
	}

	return New(func(args ...any) (any, error) {
		in, err := callArgs(t, args)
		if err != nil {
			return nil, err
		}
		return results(t, v.Call(in))
	}, n)
}

// MustFromFunc is the panic-on-failure variant of FromFunc.
func MustFromFunc(fn any, arity ...int) Fn {
	f, err := FromFunc(fn, arity...)
	if err != nil {
		panic(err)
	}
	return f
}

func checkResults(t reflect.Type) error {
	switch t.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if t.Out(1) == errorType {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedSignature, t)
}

func callArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		if i >= len(args) {
			in = append(in, reflect.Zero(t.In(i)))
			continue
		}
		v, err := argValue(t.In(i), args[i], i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if t.IsVariadic() {
		elem := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argValue(elem, args[i], i)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return in, nil
}

func argValue(param reflect.Type, arg any, i int) (reflect.Value, error) {
	if arg == nil {
		if nillable(param) {
			return reflect.Zero(param), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: arg%d must be %s, got nil", ErrInvalidArgument, i+1, param)
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(param) {
		return reflect.Value{}, fmt.Errorf("%w: arg%d must be %s, got %T", ErrInvalidArgument, i+1, param, arg)
	}
	return v, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

func results(t reflect.Type, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0) == errorType {
			err, _ := out[0].Interface().(error)
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		err, _ := out[1].Interface().(error)
		if err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
}
