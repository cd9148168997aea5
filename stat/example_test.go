// SPDX-License-Identifier: MIT

package stat_test

import (
	"fmt"

	"github.com/katalvlaran/platestat/calc"
	"github.com/katalvlaran/platestat/stat"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

// ExampleStatistic_SetAggregated contrasts standard and aggregated mode on
// the same set.
func ExampleStatistic_SetAggregated() {
	set := wellset.New[float64](wellset.WithLogger(quiet))
	a1, _ := well.Parse("A1", 1.0, 2, 3)
	b1, _ := well.Parse("B1", 4.0, 5, 6)
	set.Add(a1, b1)

	total, _ := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](calc.Sum))

	perWell, _ := total.Set(set)
	for w, v := range perWell.All() {
		fmt.Println(w.ID(), v)
	}

	pooled, _ := total.SetAggregated(set)
	windowed, _ := total.SetAggregatedWindow(set, 0, 2)
	fmt.Println(pooled, windowed)

	// Output:
	// A1 6
	// B1 15
	// 21 12
}

// ExampleNewQuantile computes a per-well median.
func ExampleNewQuantile() {
	w, _ := well.Parse("C7", 9.0, 1, 4, 7, 3)
	median, _ := stat.NewQuantile[float64, float64](stat.QuantileCalculatorFunc[float64, float64](calc.Quantile), 0.5)

	res, _ := median.Well(w)
	v, _ := res.Get(w)
	fmt.Println(v)

	// Output:
	// 4
}
