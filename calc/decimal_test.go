// SPDX-License-Identifier: MIT

package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/calc"
)

func decimals(t *testing.T, in ...string) []decimal.Decimal {
	t.Helper()
	out := make([]decimal.Decimal, len(in))
	for i, s := range in {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		out[i] = d
	}

	return out
}

func TestDecimalSummaries(t *testing.T) {
	t.Parallel()
	values := decimals(t, "0.1", "0.2", "0.3", "1.4")

	sum, err := calc.DecimalSum(values)
	require.NoError(t, err)
	assert.Equal(t, "2", sum.String())

	mean, err := calc.DecimalMean(values)
	require.NoError(t, err)
	assert.Equal(t, "0.5", mean.String())

	lo, err := calc.DecimalMin(values)
	require.NoError(t, err)
	assert.Equal(t, "0.1", lo.String())

	hi, err := calc.DecimalMax(values)
	require.NoError(t, err)
	assert.Equal(t, "1.4", hi.String())

	assert.Equal(t, "0.06", calc.DecimalMul(values[1], values[2]).String())
}

func TestDecimalEmptyInput(t *testing.T) {
	t.Parallel()
	sum, err := calc.DecimalSum(nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	_, err = calc.DecimalMean(nil)
	assert.ErrorIs(t, err, calc.ErrEmptyInput)
	_, err = calc.DecimalMin(nil)
	assert.ErrorIs(t, err, calc.ErrEmptyInput)
	_, err = calc.DecimalMax(nil)
	assert.ErrorIs(t, err, calc.ErrEmptyInput)
	_, err = calc.DecimalQuantile(nil, 0.5)
	assert.ErrorIs(t, err, calc.ErrEmptyInput)
}

func TestDecimalQuantile_MatchesFloat(t *testing.T) {
	t.Parallel()
	raw := []float64{9, 1, 7, 3, 5, 2}
	values := make([]decimal.Decimal, len(raw))
	for i, v := range raw {
		values[i] = decimal.NewFromFloat(v)
	}
	for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		want, err := calc.Quantile(raw, p)
		require.NoError(t, err)
		got, err := calc.DecimalQuantile(values, p)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromFloat(want)), "p=%g: got %s want %g", p, got, want)
	}

	_, err := calc.DecimalQuantile(values, -0.1)
	assert.ErrorIs(t, err, calc.ErrBadQuantile)
}
