// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/platestat/calc"
	"github.com/katalvlaran/platestat/stat"
)

// domain binds the plug-ins and conversions of one value type.
type domain[T any] struct {
	plain    map[string]func([]T) (T, error)
	quantile map[string]func([]T, float64) (T, error)
	mul      stat.Multiplier[T]
	parse    func(string) (T, error)
	format   func(T) string
}

var floatDomain = domain[float64]{
	plain: map[string]func([]float64) (float64, error){
		"sum":      calc.Sum,
		"count":    calc.Count,
		"mean":     calc.Mean,
		"min":      calc.Min,
		"max":      calc.Max,
		"variance": calc.Variance,
		"stddev":   calc.StdDev,
		"median":   calc.Median,
	},
	quantile: map[string]func([]float64, float64) (float64, error){
		"quantile": calc.Quantile,
	},
	mul:    calc.Mul,
	parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
}

var decimalDomain = domain[decimal.Decimal]{
	plain: map[string]func([]decimal.Decimal) (decimal.Decimal, error){
		"sum":  calc.DecimalSum,
		"mean": calc.DecimalMean,
		"min":  calc.DecimalMin,
		"max":  calc.DecimalMax,
		"median": func(values []decimal.Decimal) (decimal.Decimal, error) {
			return calc.DecimalQuantile(values, 0.5)
		},
	},
	quantile: map[string]func([]decimal.Decimal, float64) (decimal.Decimal, error){
		"quantile": calc.DecimalQuantile,
	},
	mul:    calc.DecimalMul,
	parse:  decimal.NewFromString,
	format: decimal.Decimal.String,
}

// statistic resolves name to an engine, weighted when weights are given.
func (d domain[T]) statistic(name string, p float64, weights []string) (*stat.Statistic[T, T], error) {
	var opts []stat.Option[T]
	if len(weights) > 0 {
		ws := make([]T, len(weights))
		for i, raw := range weights {
			w, err := d.parse(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("weight %d %q: %w", i, raw, err)
			}
			ws[i] = w
		}
		opts = append(opts, stat.WithWeights(ws, d.mul))
	}

	if fn, ok := d.quantile[name]; ok {
		return stat.NewQuantile[T, T](stat.QuantileCalculatorFunc[T, T](fn), p, opts...)
	}
	if fn, ok := d.plain[name]; ok {
		return stat.New[T, T](stat.CalculatorFunc[T, T](fn), opts...)
	}

	return nil, fmt.Errorf("unknown statistic %q (available: %s)", name, strings.Join(d.names(), ", "))
}

func (d domain[T]) names() []string {
	names := make([]string, 0, len(d.plain)+len(d.quantile))
	for n := range d.plain {
		names = append(names, n)
	}
	for n := range d.quantile {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}
