package somok

import "sync"

// Box owns a single heap allocation holding a T.
type Box[T any] struct {
	ptr *T
}

// Boxed moves v into a fresh heap allocation.
func Boxed[T any](v T) Box[T] {
	return Box[T]{ptr: &v}
}

func (b Box[T]) IsEmpty() bool {
	return b.ptr == nil
}

// Get returns a copy of the boxed value, or the zero T for an empty box.
func (b Box[T]) Get() T {
	if b.ptr == nil {
		var zero T
		return zero
	}
	return *b.ptr
}

func (b Box[T]) Ptr() *T {
	return b.ptr
}

var leaked = struct {
	sync.Mutex
	roots map[any]struct{}
}{roots: make(map[any]struct{})}

// Leak gives up ownership of the allocation and returns a pointer that stays
// valid for the rest of the process. The allocation is pinned in a
// process-wide set and is never freed. Leaking the same Box again returns the
// same pointer and pins nothing new. Safe for concurrent use.
func (b Box[T]) Leak() *T {
	if b.ptr == nil {
		fail(ErrEmptyBox, "Box[%T]", *new(T))
	}

	leaked.Lock()
	leaked.roots[b.ptr] = struct{}{}
	leaked.Unlock()

	return b.ptr
}

// LeakedCount reports how many distinct allocations Leak has pinned so far.
func LeakedCount() int {
	leaked.Lock()
	defer leaked.Unlock()
	return len(leaked.roots)
}
