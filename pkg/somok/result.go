package somok

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

// Okay wraps v as a success. The failure type is named first so it can be
// given explicitly while T is inferred: Okay[error](42).
func Okay[E, T any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Error wraps e as a failure: Error[int](err).
func Error[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrorFrom retypes a failure to another success type, keeping its id and
// creation time. from must be a failure.
func ErrorFrom[Out, T, E any](from Result[T, E]) Result[Out, E] {
	if from.isOk {
		fail(ErrWrongVariant, "ErrorFrom on an Ok result %s", from.id)
	}
	return Result[Out, E]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// OkayFrom retypes the failure side of a success, keeping its id and
// creation time. from must be a success.
func OkayFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	if !from.isOk {
		fail(ErrWrongVariant, "OkayFrom on a failed result %s", from.id)
	}
	return Result[T, F]{
		value:     from.value,
		isOk:      true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// ErrorWith replaces the failure payload of from with err, keeping its id
// and creation time. from must be a failure.
func ErrorWith[T, E, F any](from Result[T, E], err F) Result[T, F] {
	if from.isOk {
		fail(ErrWrongVariant, "ErrorWith on an Ok result %s", from.id)
	}
	return Result[T, F]{
		err:       err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// nilError treats a typed nil pointer stored in an error as no error.
func nilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// FromPair converts the (value, error) return convention into a Result.
// A typed nil pointer error counts as success.
func FromPair[T any](v T, err error) Result[T, error] {
	if nilError(err) {
		return Okay[error](v)
	}
	return Error[T](err)
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Ok returns the success value, if any.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.value)
	}
	return None[T]()
}

// Err returns the failure value, if any.
func (r Result[T, E]) Err() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

// Pair returns both payloads; only the one matching IsOk is meaningful.
func (r Result[T, E]) Pair() (T, E) {
	return r.value, r.err
}

func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		fail(ErrWrongVariant, "Unwrap on a failed result %s: %v", r.id, r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		fail(ErrWrongVariant, "UnwrapErr on an Ok result %s", r.id)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
