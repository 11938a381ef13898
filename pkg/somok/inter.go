package somok

// Getter is implemented by containers that may or may not hold a T.
type Getter[T any] interface {
	// Get returns the held value and true, or the zero T and false
	Get() (T, bool)
}

var (
	_ Getter[int] = Option[int]{}
	_ Getter[int] = Result[int, error]{}
)
