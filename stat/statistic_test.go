// SPDX-License-Identifier: MIT

package stat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/stat"
)

func TestNew_NilCalculator(t *testing.T) {
	t.Parallel()
	_, err := stat.New[float64, float64](nil)
	require.ErrorIs(t, err, stat.ErrNilCalculator)

	_, err = stat.NewQuantile[float64, float64](nil, 0.5)
	require.ErrorIs(t, err, stat.ErrNilCalculator)

	var fn stat.CalculatorFunc[float64, float64]
	s, err := stat.New[float64, float64](fn)
	require.ErrorIs(t, err, stat.ErrNilCalculator)
	assert.Nil(t, s)

	var qfn stat.QuantileCalculatorFunc[float64, float64]
	s, err = stat.NewQuantile[float64, float64](qfn, 0.5)
	require.ErrorIs(t, err, stat.ErrNilCalculator)
	assert.Nil(t, s)
}

func TestNewQuantile_Bounds(t *testing.T) {
	t.Parallel()
	q := stat.QuantileCalculatorFunc[float64, float64](func(_ []float64, p float64) (float64, error) { return p, nil })
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := stat.NewQuantile[float64, float64](q, p)
		assert.ErrorIs(t, err, stat.ErrBadQuantile, "p=%g", p)
	}
	for _, p := range []float64{0, 0.5, 1} {
		_, err := stat.NewQuantile[float64, float64](q, p)
		assert.NoError(t, err, "p=%g", p)
	}
}

func TestNewQuantile_PassesPUnchanged(t *testing.T) {
	t.Parallel()
	var seen []float64
	q := stat.QuantileCalculatorFunc[float64, float64](func(_ []float64, p float64) (float64, error) {
		seen = append(seen, p)
		return p, nil
	})
	s, err := stat.NewQuantile[float64, float64](q, 0.25)
	require.NoError(t, err)

	res, err := s.Set(scenarioSet(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25}, res.Values())

	_, err = s.SetAggregated(scenarioSet(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, seen)
}

func TestWithWeights(t *testing.T) {
	t.Parallel()
	mul := func(v, w float64) float64 { return v * w }
	s := mustStat(t, stat.WithWeights([]float64{10, 100, 1000}, mul))
	assert.True(t, s.Weighted())
	assert.Equal(t, []float64{10, 100, 1000}, s.Weights())

	w := mustWell(t, "A1", 1, 2, 3)
	res, err := s.Well(w)
	require.NoError(t, err)
	got, ok := res.Get(w)
	require.True(t, ok)
	assert.Equal(t, 3210.0, got)

	// weights restart at index 0 inside the window
	res, err = s.WellWindow(w, 1, 2)
	require.NoError(t, err)
	got, _ = res.Get(w)
	assert.Equal(t, 20.0+300.0, got)

	// pooled: each well is weighted independently
	agg, err := s.SetAggregated(scenarioSet(t))
	require.NoError(t, err)
	assert.Equal(t, 3210.0+6540.0, agg)

	assert.Panics(t, func() { stat.WithWeights[float64]([]float64{1}, nil) })
	assert.False(t, mustStat(t).Weighted())
	assert.Nil(t, mustStat(t).Weights())
}

func TestWithWeights_TooShort(t *testing.T) {
	t.Parallel()
	c := &counting{}
	s, err := stat.New[float64, float64](c, stat.WithWeights([]float64{1, 1}, func(v, w float64) float64 { return v * w }))
	require.NoError(t, err)

	_, err = s.Well(mustWell(t, "A1", 1, 2, 3))
	require.ErrorIs(t, err, stat.ErrWeightsOutOfBounds)

	_, err = s.SetAggregated(scenarioSet(t))
	require.ErrorIs(t, err, stat.ErrWeightsOutOfBounds)

	_, err = s.SetAggregatedWindow(scenarioSet(t), 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.calls.Load())
}

func TestWithWeights_CopiesSlice(t *testing.T) {
	t.Parallel()
	weights := []float64{2, 2}
	s := mustStat(t, stat.WithWeights(weights, func(v, w float64) float64 { return v * w }))
	weights[0] = 100

	w := mustWell(t, "A1", 1, 1)
	res, err := s.Well(w)
	require.NoError(t, err)
	got, _ := res.Get(w)
	assert.Equal(t, 4.0, got)
}

func TestCalculatorError_Wrapped(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	s, err := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](func([]float64) (float64, error) {
		return 0, boom
	}))
	require.NoError(t, err)

	_, err = s.Set(scenarioSet(t))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Set A1")

	_, err = s.PlateAggregated(mustPlate(t, "p", map[string][]float64{"A1": {1}}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "PlateAggregated")
}

func TestCalculator_CannotMutateWells(t *testing.T) {
	t.Parallel()
	s, err := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](func(values []float64) (float64, error) {
		for i := range values {
			values[i] = -1
		}
		return 0, nil
	}))
	require.NoError(t, err)

	set := scenarioSet(t)
	_, err = s.Set(set)
	require.NoError(t, err)
	_, err = s.SetAggregatedWindow(set, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, set.Wells()[0].Data())
	assert.Equal(t, []float64{4, 5, 6}, set.Wells()[1].Data())
}
