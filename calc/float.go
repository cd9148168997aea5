// SPDX-License-Identifier: MIT
// File: float.go
// Role: float64 plug-ins over gonum's floats and stat packages.
package calc

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the sum of values; zero for no values.
func Sum(values []float64) (float64, error) {
	return floats.Sum(values), nil
}

// Count returns the number of values as a float64.
func Count(values []float64) (float64, error) {
	return float64(len(values)), nil
}

// Mean returns the arithmetic mean.
//
// Errors:
//   - ErrEmptyInput for no values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrEmptyInput)
	}

	return stat.Mean(values, nil), nil
}

// Min returns the smallest value.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Min: %w", ErrEmptyInput)
	}

	return floats.Min(values), nil
}

// Max returns the largest value.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Max: %w", ErrEmptyInput)
	}

	return floats.Max(values), nil
}

// Variance returns the unbiased sample variance (n-1 denominator).
//
// Errors:
//   - ErrEmptyInput for no values.
//   - ErrTooFewValues for a single value.
func Variance(values []float64) (float64, error) {
	if err := checkSample("Variance", values); err != nil {
		return 0, err
	}

	return stat.Variance(values, nil), nil
}

// StdDev returns the sample standard deviation, the square root of Variance.
func StdDev(values []float64) (float64, error) {
	if err := checkSample("StdDev", values); err != nil {
		return 0, err
	}

	return stat.StdDev(values, nil), nil
}

// Quantile returns the empirical p-quantile: the smallest value whose
// cumulative share reaches p. The input is sorted on a copy.
//
// Errors:
//   - ErrEmptyInput for no values.
//   - ErrBadQuantile if p is outside [0, 1].
//
// Complexity: O(n log n).
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("Quantile: %w", ErrEmptyInput)
	}
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("Quantile p=%g: %w", p, ErrBadQuantile)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil), nil
}

// Median returns Quantile(values, 0.5).
func Median(values []float64) (float64, error) {
	return Quantile(values, 0.5)
}

// Mul is the float64 weight multiplier.
func Mul(value, weight float64) float64 { return value * weight }

func checkSample(op string, values []float64) error {
	switch len(values) {
	case 0:
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	case 1:
		return fmt.Errorf("%s: %w", op, ErrTooFewValues)
	}

	return nil
}
