package somok

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Sentinel errors carried by the panics raised on programming errors.
// Absent values are never reported through these; they are plain None results.
var (
	// ErrNone is raised by Unwrap on an absent Option.
	ErrNone = stderrors.New("somok: unwrap of an absent value")

	// ErrWrongVariant is raised when the payload of the inactive side of an
	// Either or Result is requested.
	ErrWrongVariant = stderrors.New("somok: access to the inactive variant")

	// ErrEmptyBox is raised when a zero Box is leaked.
	ErrEmptyBox = stderrors.New("somok: leak of an empty box")
)

func fail(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}
