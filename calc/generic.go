// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"slices"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is any built-in integer or floating-point type.
type Number interface {
	Integer | ~float32 | ~float64
}

// SumOf returns the sum of values; zero for no values. Integer sums wrap on
// overflow.
func SumOf[N Number](values []N) (N, error) {
	var total N
	for _, v := range values {
		total += v
	}

	return total, nil
}

// MinOf returns the smallest value.
func MinOf[N Number](values []N) (N, error) {
	if len(values) == 0 {
		var zero N
		return zero, fmt.Errorf("MinOf: %w", ErrEmptyInput)
	}

	return slices.Min(values), nil
}

// MaxOf returns the largest value.
func MaxOf[N Number](values []N) (N, error) {
	if len(values) == 0 {
		var zero N
		return zero, fmt.Errorf("MaxOf: %w", ErrEmptyInput)
	}

	return slices.Max(values), nil
}

// MulOf is the generic weight multiplier.
func MulOf[N Number](value, weight N) N { return value * weight }
