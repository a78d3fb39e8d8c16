package curry

import "errors"

var (
	// ErrInvalidArity is returned when an arity is negative or given more than once.
	ErrInvalidArity = errors.New("invalid arity")

	// ErrUnknownArity is returned when the arity of a variadic function is
	// neither declared nor supplied.
	ErrUnknownArity = errors.New("unknown arity")

	ErrNilTarget            = errors.New("nil target function")
	ErrNotAFunction         = errors.New("not a function")
	ErrUnsupportedSignature = errors.New("unsupported function signature")

	// ErrInvalidArgument is returned by typed targets when an argument does
	// not fit the parameter it lands on.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResolved is returned when a resolved step is applied again.
	ErrResolved = errors.New("curried function already resolved")
)
