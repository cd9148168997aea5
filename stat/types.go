// SPDX-License-Identifier: MIT
// File: types.go
// Role: plug-in contracts and key constraints of the engine.
//
// Contracts:
//   - Calculator / QuantileCalculator receive a fresh copy of the values and
//     may reorder it; they must not keep it after returning.
//   - A plug-in error aborts the operation and is returned wrapped.
//   - Keyed values must order consistently with their own Clone: a clone
//     compares equal to its source.
package stat

// Calculator is a calculation plug-in: a pure function from a value sequence
// to a result. Implementations must not retain values.
type Calculator[T, R any] interface {
	Calculate(values []T) (R, error)
}

// CalculatorFunc adapts an ordinary function to Calculator.
type CalculatorFunc[T, R any] func(values []T) (R, error)

// Calculate calls f(values).
func (f CalculatorFunc[T, R]) Calculate(values []T) (R, error) { return f(values) }

// QuantileCalculator is a plug-in parameterized by a quantile p in [0, 1].
type QuantileCalculator[T, R any] interface {
	Calculate(values []T, p float64) (R, error)
}

// QuantileCalculatorFunc adapts an ordinary function to QuantileCalculator.
type QuantileCalculatorFunc[T, R any] func(values []T, p float64) (R, error)

// Calculate calls f(values, p).
func (f QuantileCalculatorFunc[T, R]) Calculate(values []T, p float64) (R, error) {
	return f(values, p)
}

// Multiplier combines a value with its weight in weighted statistics.
type Multiplier[T any] func(value, weight T) T

// Keyed is the constraint on Results keys: an ordering plus a deep copy.
// *well.Well, *wellset.WellSet and *plate.Plate satisfy it.
type Keyed[K any] interface {
	Compare(K) int
	Clone() K
}

// container is a Keyed value that can report a nil receiver.
type container[C any] interface {
	Keyed[C]
	IsNil() bool
}
