package somok

import "fmt"

// Option is either a present value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it was present.
// For None it returns the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the held value. Calling it on None is a programming error
// and panics with an error wrapping ErrNone.
func (o Option[T]) Unwrap() T {
	if !o.present {
		fail(ErrNone, "Option[%T]", o.value)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OkOr turns a present value into a success and absence into a failure
// holding err.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Okay[E](v)
	}
	return Error[T](err)
}
