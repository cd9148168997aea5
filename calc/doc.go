// Package calc provides ready-made calculation plug-ins for the stat engine.
//
// Every function is pure and deterministic: it neither retains nor modifies
// its input. Three families are offered:
//
//   - float64, backed by gonum (Sum, Mean, Min, Max, Variance, StdDev,
//     Quantile, Median, Count) plus the Mul multiplier.
//   - decimal.Decimal, for exact arithmetic (DecimalSum, DecimalMean,
//     DecimalMin, DecimalMax, DecimalQuantile) plus DecimalMul.
//   - any Number type (SumOf, MinOf, MaxOf) plus MulOf.
//
// Empty input: sums and Count return zero; every other function returns
// ErrEmptyInput.
//
// Adapting to the engine:
//
//	mean, _ := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](calc.Mean))
//	p90, _ := stat.NewQuantile[float64, float64](stat.QuantileCalculatorFunc[float64, float64](calc.Quantile), 0.9)
package calc
