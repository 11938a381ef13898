package chain

import (
	"github.com/JohnDowson/somok/pkg/somok"
	"github.com/JohnDowson/somok/pkg/somok/solo"
)

// Chain carries one somok.Result through a sequence of steps. Once a step
// fails, later steps are skipped and the failure keeps the id it was
// created with.
type Chain[T, E any] struct {
	result somok.Result[T, E]
}

func Start[T, E any](result somok.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue starts from a success; name the failure type: FromValue[error](v).
func FromValue[E, T any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: somok.Okay[E](value),
	}
}

func (c *Chain[T, E]) Result() somok.Result[T, E] {
	return c.result
}

// Then hands the success to a step that may itself fail.
func Then[T, U, E any](c *Chain[T, E], onOk func(T) somok.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.Switch(c.result, onOk),
	}
}

// ThenTry runs a (U, error) step, e.g. strconv.Atoi; a non-nil error becomes
// the chain's failure.
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		result: solo.Try(c.result, tryOnOk),
	}
}

// Map converts the success with a step that cannot fail.
func Map[T, U, E any](c *Chain[T, E], onOk func(T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.Map(c.result, onOk),
	}
}

// Ensure observes the success value; a failed chain does not call onOk.
func (c *Chain[T, E]) Ensure(onOk func(T)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.Tee(c.result, onOk),
	}
}

// Finally leaves the chain, turning either outcome into a U.
func Finally[T, E, U any](c *Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return solo.Finally(c.result, onOk, onErr)
}
