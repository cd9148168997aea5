// Package stat is a generic statistic engine over wells, well sets and plates.
//
// What:
//
//   - A Statistic binds a calculation plug-in (Calculator or QuantileCalculator)
//     to an optional weight vector, then applies it to containers.
//   - Standard mode computes one result per well and returns an ordered
//     Results map keyed by a copy of each well.
//   - Aggregated mode pools the values of every well of a container in
//     row-major order and calls the plug-in once per container.
//   - Every operation has a window variant restricting each well to
//     values[begin : begin+length].
//
// Determinism:
//
//   - Traversal follows the container order (row-major), so pooled inputs and
//     result enumeration are reproducible.
//
// Ownership:
//
//   - The engine never retains its inputs: result keys are clones and values
//     are copied before they reach the plug-in.
//   - A Statistic is immutable after construction and safe for concurrent use.
//     Callers must not mutate the containers being traversed concurrently.
//
// Errors:
//
//   - ErrNilInput: nil container or nil element of a container slice.
//   - ErrOutOfRange: a window that does not fit one of the wells.
//   - ErrWeightsOutOfBounds: fewer weights than values in a window.
//   - ErrBadQuantile: a quantile outside [0, 1].
//   - Plug-in errors are returned wrapped with the operation name.
package stat
