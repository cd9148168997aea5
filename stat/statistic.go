// SPDX-License-Identifier: MIT
// File: statistic.go
// Role: Statistic construction and the per-well value pipeline shared by the
// standard and aggregated families.
//
// Pipeline for one well:
//  1. Resolve the span (whole well, or a checked window).
//  2. Copy the values so the plug-in never aliases well storage.
//  3. Apply weights (weighted variant only).
package stat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/platestat/well"
)

// Statistic applies one calculation plug-in to wells and their containers.
// It is immutable after construction.
type Statistic[T, R any] struct {
	calc    func(values []T) (R, error)
	weights []T
	mul     Multiplier[T]
}

// New binds calc to a Statistic.
//
// Errors:
//   - ErrNilCalculator if calc is nil, including a nil CalculatorFunc.
func New[T, R any](calc Calculator[T, R], opts ...Option[T]) (*Statistic[T, R], error) {
	if isNilCalculator(calc) {
		return nil, statErrorf("New", ErrNilCalculator)
	}

	return build(calc.Calculate, opts), nil
}

// NewQuantile binds a quantile plug-in; p is passed unchanged to every
// invocation.
//
// Errors:
//   - ErrNilCalculator if calc is nil, including a nil QuantileCalculatorFunc.
//   - ErrBadQuantile if p is outside [0, 1] (NaN included).
func NewQuantile[T, R any](calc QuantileCalculator[T, R], p float64, opts ...Option[T]) (*Statistic[T, R], error) {
	if isNilQuantile(calc) {
		return nil, statErrorf("NewQuantile", ErrNilCalculator)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("NewQuantile p=%g: %w", p, ErrBadQuantile)
	}

	return build(func(values []T) (R, error) { return calc.Calculate(values, p) }, opts), nil
}

// isNilCalculator reports a nil interface or a nil function adapter.
func isNilCalculator[T, R any](calc Calculator[T, R]) bool {
	switch f := calc.(type) {
	case nil:
		return true
	case CalculatorFunc[T, R]:
		return f == nil
	}

	return false
}

func isNilQuantile[T, R any](calc QuantileCalculator[T, R]) bool {
	switch f := calc.(type) {
	case nil:
		return true
	case QuantileCalculatorFunc[T, R]:
		return f == nil
	}

	return false
}

func build[T, R any](calc func([]T) (R, error), opts []Option[T]) *Statistic[T, R] {
	var c config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return &Statistic[T, R]{calc: calc, weights: c.weights, mul: c.mul}
}

// Weighted reports whether the statistic multiplies values by weights.
func (s *Statistic[T, R]) Weighted() bool { return s.mul != nil }

// Weights returns a copy of the weight vector (nil when unweighted).
func (s *Statistic[T, R]) Weights() []T {
	if s.weights == nil {
		return nil
	}
	out := make([]T, len(s.weights))
	copy(out, s.weights)

	return out
}

// span selects the values of a well fed to the plug-in.
type span struct {
	begin, length int
	windowed      bool
}

// whole selects every value of a well.
var whole = span{}

// window selects values[begin : begin+length].
func window(begin, length int) span {
	return span{begin: begin, length: length, windowed: true}
}

// collect appends the processed span of w to dst.
//
// Errors:
//   - ErrOutOfRange if the window does not fit w.
//   - ErrWeightsOutOfBounds if the span is longer than the weights.
func (s *Statistic[T, R]) collect(dst []T, w *well.Well[T], sp span) ([]T, error) {
	values := w.Values()
	if sp.windowed {
		var err error
		if values, err = w.Window(sp.begin, sp.length); err != nil {
			if errors.Is(err, well.ErrOutOfRange) {
				return dst, fmt.Errorf("well %s window [%d,+%d) of %d: %w",
					w.ID(), sp.begin, sp.length, w.Len(), ErrOutOfRange)
			}

			return dst, err
		}
	}
	if s.mul == nil {
		return append(dst, values...), nil
	}
	if len(values) > len(s.weights) {
		return dst, fmt.Errorf("well %s: %d values, %d weights: %w",
			w.ID(), len(values), len(s.weights), ErrWeightsOutOfBounds)
	}
	for i, v := range values {
		dst = append(dst, s.mul(v, s.weights[i]))
	}

	return dst, nil
}

// apply runs the plug-in, tagging failures with op.
func (s *Statistic[T, R]) apply(op string, values []T) (R, error) {
	r, err := s.calc(values)
	if err != nil {
		var zero R
		return zero, statErrorf(op, err)
	}

	return r, nil
}

// single computes the statistic of one well.
func (s *Statistic[T, R]) single(op string, w *well.Well[T], sp span) (R, error) {
	var zero R
	values, err := s.collect(nil, w, sp)
	if err != nil {
		return zero, statErrorf(op, err)
	}

	return s.apply(fmt.Sprintf("%s %s", op, w.ID()), values)
}
