package solo

import (
	"errors"

	"github.com/JohnDowson/somok/pkg/somok"
)

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) somok.Result[T, error] {
	if isValid, errMsg := validate(input); !isValid {
		return somok.Error[T](errors.New(errMsg))
	}
	return somok.Okay[error](input)
}

// Switch feeds a success into onOk; a failure passes through unchanged.
func Switch[In, Out, E any](input somok.Result[In, E],
	onOk func(r In) somok.Result[Out, E]) somok.Result[Out, E] {

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return somok.ErrorFrom[Out](input)
}

func Map[In, Out, E any](input somok.Result[In, E], onOk func(r In) Out) somok.Result[Out, E] {
	if v, ok := input.Get(); ok {
		return somok.Okay[E](onOk(v))
	}
	return somok.ErrorFrom[Out](input)
}

func MapErr[T, E, F any](input somok.Result[T, E], onErr func(err E) F) somok.Result[T, F] {
	if input.IsOk() {
		return somok.OkayFrom[F](input)
	}
	return somok.ErrorWith(input, onErr(input.UnwrapErr()))
}

func Tee[T, E any](input somok.Result[T, E], onOk func(r T)) somok.Result[T, E] {
	if v, ok := input.Get(); ok {
		onOk(v)
	}
	return input
}

func DoubleTee[T, E any](input somok.Result[T, E], onOk func(r T), onErr func(err E)) somok.Result[T, E] {
	if v, ok := input.Get(); ok {
		onOk(v)
	} else {
		onErr(input.UnwrapErr())
	}
	return input
}

// Try runs a (value, error) function on a success and turns its error into
// a failure.
func Try[In, Out any](input somok.Result[In, error],
	onTryExecute func(r In) (Out, error)) somok.Result[Out, error] {

	if v, ok := input.Get(); ok {
		return somok.FromPair(onTryExecute(v))
	}
	return somok.ErrorFrom[Out](input)
}

func Finally[T, E, Out any](input somok.Result[T, E],
	onOk func(r T) Out,
	onErr func(err E) Out) Out {

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return onErr(input.UnwrapErr())
}

// Combine gathers every success in order. If any input failed, the result is
// a failure joining all of their errors; a failure carrying a nil error still
// makes the whole result a failure.
func Combine[T any](inputs ...somok.Result[T, error]) somok.Result[[]T, error] {
	values := make([]T, 0, len(inputs))
	var errs failures

	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			values = append(values, v)
			continue
		}
		errs.add(in.UnwrapErr())
	}

	if errs.failed {
		return somok.Error[[]T](errs.join())
	}
	return somok.Okay[error](values)
}

// failures accumulates the errors of failed results. A nil error still
// counts as a failure.
type failures struct {
	failed bool
	errs   []error
}

func (f *failures) add(err error) {
	f.failed = true
	if err != nil {
		f.errs = append(f.errs, err)
	}
}

func (f *failures) join() error {
	return errors.Join(f.errs...)
}
