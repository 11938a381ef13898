// Package somok wraps values into small containers with value-first
// constructors, so a value reads before the container it goes into.
//
// Go methods cannot introduce type parameters, so every constructor takes the
// type it cannot infer first and infers the rest from the value:
//
//	somok.Okay[error](42)        // Result[int, error]
//	somok.Error[int](err)        // Result[int, error]
//	somok.Some("x")              // Option[string]
//	somok.Left[string](1)        // Either[int, string]
//	somok.Right[int]("x")        // Either[int, string]
//	somok.Boxed(cfg).Leak()      // *Config, never freed
//
// Highlights:
// - Option: Some/None, Get, Unwrap, UnwrapOr, OkOr
// - Result: Okay/Error/FromPair, Ok/Err views, ErrorFrom keeps the id of a failure
// - Either: Left/Right, IsLeft/IsRight, GetLeft/GetRight, MustLeft/MustRight, Match
// - Box: Boxed, Leak (permanent), LeakedCount
//
// Calling Unwrap, MustLeft, MustRight or UnwrapErr on the wrong variant is a
// programming error and panics with an error matching ErrNone or
// ErrWrongVariant under errors.Is.
package somok
