// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrEmptyInput indicates a statistic undefined for zero values.
	ErrEmptyInput = errors.New("calc: empty input")

	// ErrTooFewValues indicates a sample statistic given a single value.
	ErrTooFewValues = errors.New("calc: at least two values required")

	// ErrBadQuantile indicates p outside [0, 1].
	ErrBadQuantile = errors.New("calc: quantile must be in [0, 1]")
)
