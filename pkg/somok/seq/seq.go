package seq

import (
	"slices"

	"github.com/JohnDowson/somok/pkg/somok"
)

// TryRemove removes the element at index i and returns it, shifting the
// elements after it one position to the front. When i is outside
// [0, len(*s)) it returns None and leaves *s untouched.
func TryRemove[S ~[]E, E any](s *S, i int) somok.Option[E] {
	if s == nil || i < 0 || i >= len(*s) {
		return somok.None[E]()
	}

	removed := (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return somok.Some(removed)
}

// CondPop calls cond once with the last element and pops that element only
// if cond returns true. cond is never called on an empty sequence.
// cond must not modify the sequence.
func CondPop[S ~[]E, E any](s *S, cond func(E) bool) somok.Option[E] {
	if s == nil || len(*s) == 0 || cond == nil {
		return somok.None[E]()
	}

	last := len(*s) - 1
	if !cond((*s)[last]) {
		return somok.None[E]()
	}
	return pop(s, last)
}

// Pop removes and returns the last element, or None when empty.
func Pop[S ~[]E, E any](s *S) somok.Option[E] {
	if s == nil || len(*s) == 0 {
		return somok.None[E]()
	}
	return pop(s, len(*s)-1)
}

func pop[S ~[]E, E any](s *S, last int) somok.Option[E] {
	item := (*s)[last]

	var zero E
	(*s)[last] = zero
	*s = (*s)[:last]

	return somok.Some(item)
}

// Last returns the last element without removing it.
func Last[S ~[]E, E any](s S) somok.Option[E] {
	if len(s) == 0 {
		return somok.None[E]()
	}
	return somok.Some(s[len(s)-1])
}

// TryGet returns the element at index i, or None when i is out of range.
func TryGet[S ~[]E, E any](s S, i int) somok.Option[E] {
	if i < 0 || i >= len(s) {
		return somok.None[E]()
	}
	return somok.Some(s[i])
}
