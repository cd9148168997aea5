// SPDX-License-Identifier: MIT

package stat_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/stat"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// sum is the reference plug-in of these tests.
func sum(values []float64) (float64, error) {
	var total float64
	for _, v := range values {
		total += v
	}

	return total, nil
}

// counting wraps sum and records every call and its input.
type counting struct {
	calls  atomic.Int32
	inputs [][]float64
}

func (c *counting) Calculate(values []float64) (float64, error) {
	c.calls.Add(1)
	c.inputs = append(c.inputs, append([]float64(nil), values...))

	return sum(values)
}

func mustStat(t testing.TB, opts ...stat.Option[float64]) *stat.Statistic[float64, float64] {
	t.Helper()
	s, err := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](sum), opts...)
	require.NoError(t, err)

	return s
}

func mustWell(t testing.TB, id string, values ...float64) *well.Well[float64] {
	t.Helper()
	w, err := well.Parse(id, values...)
	require.NoError(t, err)

	return w
}

// scenarioSet is A1=[1,2,3], B1=[4,5,6].
func scenarioSet(t testing.TB) *wellset.WellSet[float64] {
	t.Helper()
	s := wellset.New[float64](wellset.WithLabel("scenario"), wellset.WithLogger(quiet))
	require.True(t, s.Add(mustWell(t, "B1", 4, 5, 6), mustWell(t, "A1", 1, 2, 3)))

	return s
}

// mustPlate builds a quiet 2×3 plate from id → values.
func mustPlate(t testing.TB, label string, data map[string][]float64) *plate.Plate[float64] {
	t.Helper()
	p, err := plate.New[float64](2, 3, plate.WithLabel(label), plate.WithLogger(quiet))
	require.NoError(t, err)
	for id, values := range data {
		require.NoError(t, p.AddWell(mustWell(t, id, values...)))
	}

	return p
}
