package somok

import "fmt"

// Side names the active variant of an Either.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}
	return "Left"
}

// Either holds exactly one of a Left value of type L or a Right value of
// type R. It is immutable once built; the zero value is Left holding the
// zero L.
type Either[L, R any] struct {
	left  L
	right R
	side  Side
}

// Left wraps v as the left variant: Left[string](1) is an Either[int, string].
func Left[R, L any](v L) Either[L, R] {
	return Either[L, R]{left: v, side: SideLeft}
}

// Right wraps v as the right variant: Right[int]("x") is an Either[int, string].
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, side: SideRight}
}

func (e Either[L, R]) Side() Side {
	return e.side
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == SideLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.side == SideRight
}

func (e Either[L, R]) GetLeft() (L, bool) {
	if e.side != SideLeft {
		var zero L
		return zero, false
	}
	return e.left, true
}

func (e Either[L, R]) GetRight() (R, bool) {
	if e.side != SideRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// MustLeft returns the left payload and panics with ErrWrongVariant on a Right.
func (e Either[L, R]) MustLeft() L {
	if e.side != SideLeft {
		fail(ErrWrongVariant, "MustLeft on %s(%v)", e.side, e.right)
	}
	return e.left
}

// MustRight returns the right payload and panics with ErrWrongVariant on a Left.
func (e Either[L, R]) MustRight() R {
	if e.side != SideRight {
		fail(ErrWrongVariant, "MustRight on %s(%v)", e.side, e.left)
	}
	return e.right
}

// Swap mirrors the union: Left becomes Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.side == SideRight {
		return Left[L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) String() string {
	if e.side == SideRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match calls exactly one of the handlers, chosen by the active side.
func Match[L, R, Out any](e Either[L, R], onLeft func(L) Out, onRight func(R) Out) Out {
	if e.side == SideRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
