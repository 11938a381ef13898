package solo

import "github.com/JohnDowson/somok/pkg/somok"

func MapLeft[L, R, Out any](input somok.Either[L, R], onLeft func(l L) Out) somok.Either[Out, R] {
	return somok.Match(input,
		func(l L) somok.Either[Out, R] { return somok.Left[R](onLeft(l)) },
		func(r R) somok.Either[Out, R] { return somok.Right[Out](r) })
}

func MapRight[L, R, Out any](input somok.Either[L, R], onRight func(r R) Out) somok.Either[L, Out] {
	return somok.Match(input,
		func(l L) somok.Either[L, Out] { return somok.Left[Out](l) },
		func(r R) somok.Either[L, Out] { return somok.Right[L](onRight(r)) })
}

// Partition splits the inputs by side, keeping their relative order.
func Partition[L, R any](inputs []somok.Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0, len(inputs))
	rights := make([]R, 0, len(inputs))

	for _, in := range inputs {
		if l, ok := in.GetLeft(); ok {
			lefts = append(lefts, l)
		} else {
			rights = append(rights, in.MustRight())
		}
	}
	return lefts, rights
}
