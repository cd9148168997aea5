// SPDX-License-Identifier: MIT
// File: decimal.go
// Role: exact-arithmetic plug-ins over shopspring/decimal.
//
// Division (DecimalMean) rounds to decimal.DivisionPrecision digits.
package calc

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// DecimalSum returns the exact sum; decimal.Zero for no values.
func DecimalSum(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, nil
	}

	return decimal.Sum(values[0], values[1:]...), nil
}

// DecimalMean returns the mean.
func DecimalMean(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("DecimalMean: %w", ErrEmptyInput)
	}

	return decimal.Avg(values[0], values[1:]...), nil
}

// DecimalMin returns the smallest value.
func DecimalMin(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("DecimalMin: %w", ErrEmptyInput)
	}

	return decimal.Min(values[0], values[1:]...), nil
}

// DecimalMax returns the largest value.
func DecimalMax(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("DecimalMax: %w", ErrEmptyInput)
	}

	return decimal.Max(values[0], values[1:]...), nil
}

// DecimalQuantile returns the nearest-rank p-quantile: the value of rank
// ceil(p·n) in ascending order, rank 1 for p = 0. It agrees with Quantile on
// the same numbers.
//
// Errors:
//   - ErrEmptyInput for no values.
//   - ErrBadQuantile if p is outside [0, 1].
func DecimalQuantile(values []decimal.Decimal, p float64) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("DecimalQuantile: %w", ErrEmptyInput)
	}
	if !(p >= 0 && p <= 1) {
		return decimal.Zero, fmt.Errorf("DecimalQuantile p=%g: %w", p, ErrBadQuantile)
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, decimal.Decimal.Cmp)
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1], nil
}

// DecimalMul is the decimal weight multiplier.
func DecimalMul(value, weight decimal.Decimal) decimal.Decimal { return value.Mul(weight) }
