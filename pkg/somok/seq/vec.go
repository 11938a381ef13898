package seq

import "github.com/JohnDowson/somok/pkg/somok"

// Vec is a growable slice carrying the sequence operations as methods.
// Any []T converts to it without copying: v := seq.Vec[int](items).
type Vec[T any] []T

func (v *Vec[T]) TryRemove(i int) somok.Option[T] {
	return TryRemove(v, i)
}

func (v *Vec[T]) CondPop(cond func(T) bool) somok.Option[T] {
	return CondPop(v, cond)
}

func (v *Vec[T]) Pop() somok.Option[T] {
	return Pop(v)
}

func (v *Vec[T]) Push(items ...T) {
	*v = append(*v, items...)
}

func (v Vec[T]) Last() somok.Option[T] {
	return Last(v)
}

func (v Vec[T]) TryGet(i int) somok.Option[T] {
	return TryGet(v, i)
}

func (v Vec[T]) Len() int {
	return len(v)
}
