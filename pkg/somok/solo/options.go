package solo

import "github.com/JohnDowson/somok/pkg/somok"

func MapOption[In, Out any](input somok.Option[In], onSome func(v In) Out) somok.Option[Out] {
	if v, ok := input.Get(); ok {
		return somok.Some(onSome(v))
	}
	return somok.None[Out]()
}

// Filter keeps a present value only if keep accepts it.
func Filter[T any](input somok.Option[T], keep func(v T) bool) somok.Option[T] {
	if v, ok := input.Get(); ok && keep(v) {
		return input
	}
	return somok.None[T]()
}

// OrDefault unpacks any Getter, falling back to defaultV when it holds nothing.
func OrDefault[T any](g somok.Getter[T], defaultV T) T {
	if v, ok := g.Get(); ok {
		return v
	}
	return defaultV
}
