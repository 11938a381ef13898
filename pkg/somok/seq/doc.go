// Package seq adds checked mutation helpers to plain Go slices. Out-of-range
// indexes and failed conditions come back as somok.None instead of panics,
// and the slice is left exactly as it was.
//
// Key operations:
// - TryRemove: remove by index, shifting later elements to the front
// - CondPop: pop the last element only if a predicate accepts it
// - Pop/Last/TryGet: optional-returning access to the tail and by index
// - Vec: a named slice type exposing the same operations as methods
//
// The functions take *S for any S ~[]E, so they work on []T and on named
// slice types alike. Callers must hold exclusive access to the slice for the
// duration of a call.
package seq
