// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional configuration of a Statistic.
//
// Policy:
//   - Options are applied once, at New / NewQuantile; a Statistic is
//     immutable afterwards.
//   - Constructors panic only on programmer error (nil multiplier).
//   - Slices passed in are copied, so callers may reuse them.
package stat

// Option configures a Statistic at construction.
type Option[T any] func(*config[T])

// config holds construction parameters.
type config[T any] struct {
	weights []T
	mul     Multiplier[T]
}

// WithWeights turns the statistic into its weighted variant: before the
// plug-in runs, the i-th value of every window is replaced by
// mul(value, weights[i]), i counted from the window start.
// The slice is copied. Panics if mul is nil.
//
// Errors (at computation time):
//   - ErrWeightsOutOfBounds when a window holds more values than weights.
//
// Complexity: O(len(weights)) here; O(1) extra per value when computing.
func WithWeights[T any](weights []T, mul Multiplier[T]) Option[T] {
	if mul == nil {
		panic("stat: WithWeights: multiplier must be non-nil")
	}
	w := make([]T, len(weights))
	copy(w, weights)

	return func(c *config[T]) {
		c.weights = w
		c.mul = mul
	}
}
