// Package chain provides a fluent wrapper around somok.Result for building
// synchronous chains out of solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
