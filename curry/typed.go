package curry

import (
	"fmt"
	"reflect"
)

// argAs asserts the i-th argument to T at the target's boundary.
func argAs[T any](args []any, i int) (T, error) {
	var zero T
	if args[i] == nil {
		if nillable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: arg%d must be %s, got nil", ErrInvalidArgument, i+1, reflect.TypeFor[T]())
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: arg%d must be %s, got %T", ErrInvalidArgument, i+1, reflect.TypeFor[T](), args[i])
	}
	return v, nil
}

func FromI1O1[I1, O1 any](fn func(I1) O1) Fn {
	return FromI1E(func(i1 I1) (O1, error) {
		return fn(i1), nil
	})
}

func FromI2O1[I1, I2, O1 any](fn func(I1, I2) O1) Fn {
	return FromI2E(func(i1 I1, i2 I2) (O1, error) {
		return fn(i1, i2), nil
	})
}

func FromI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) Fn {
	return FromI3E(func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return fn(i1, i2, i3), nil
	})
}

func FromI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) Fn {
	return FromI4E(func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return fn(i1, i2, i3, i4), nil
	})
}

// FromI1E curries a one-argument function that can fail.
// The error it returns reaches the caller of the resolving Apply as is.
func FromI1E[I1, O1 any](fn func(I1) (O1, error)) Fn {
	return MustNew(func(args ...any) (any, error) {
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(i1)
	}, 1)
}

func FromI2E[I1, I2, O1 any](fn func(I1, I2) (O1, error)) Fn {
	return MustNew(func(args ...any) (any, error) {
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAs[I2](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2)
	}, 2)
}

func FromI3E[I1, I2, I3, O1 any](fn func(I1, I2, I3) (O1, error)) Fn {
	return MustNew(func(args ...any) (any, error) {
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAs[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAs[I3](args, 2)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3)
	}, 3)
}

func FromI4E[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) (O1, error)) Fn {
	return MustNew(func(args ...any) (any, error) {
		i1, err := argAs[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAs[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAs[I3](args, 2)
		if err != nil {
			return nil, err
		}
		i4, err := argAs[I4](args, 3)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3, i4)
	}, 4)
}
