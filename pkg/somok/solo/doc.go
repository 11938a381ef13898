// Package solo contains single-value, synchronous combinators over the
// somok containers. They are the building blocks the chain package wraps.
//
// Highlights:
// - Validate: turn a predicate verdict into a Result
// - Switch/Map/MapErr: move a success (or a failure) to a new type
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce a Result to a concrete value
// - Combine: gather many Results, joining every failure
// - MapOption/Filter/OrDefault: Option helpers
// - MapLeft/MapRight/Partition: Either helpers
//
// A failure passed through Switch, Map or Try keeps the id of the result
// that first failed. MapErr keeps the id on both sides.
package solo
