// SPDX-License-Identifier: MIT

package stat_test

import (
	"testing"

	"github.com/katalvlaran/platestat/calc"
	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/stat"
	"github.com/katalvlaran/platestat/well"
)

func benchPlate(b *testing.B, format plate.Format, reads int) *plate.Plate[float64] {
	b.Helper()
	p, err := plate.NewFormat[float64](format, plate.WithLogger(quiet))
	if err != nil {
		b.Fatalf("NewFormat: %v", err)
	}
	for idx := 0; idx < p.Capacity(); idx++ {
		r, c := p.Coordinate(idx)
		values := make([]float64, reads)
		for i := range values {
			values[i] = float64(idx + i)
		}
		w, _ := well.New(r, c, values...)
		if err := p.AddWell(w); err != nil {
			b.Fatalf("AddWell: %v", err)
		}
	}

	return p
}

// BenchmarkPlate_Mean_384 measures standard mode: one result per well.
func BenchmarkPlate_Mean_384(b *testing.B) {
	p := benchPlate(b, plate.Format384, 32)
	s, _ := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](calc.Mean))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Plate(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPlateAggregatedWindow_Mean_1536 measures pooling a windowed plate.
func BenchmarkPlateAggregatedWindow_Mean_1536(b *testing.B) {
	p := benchPlate(b, plate.Format1536, 32)
	s, _ := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](calc.Mean))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.PlateAggregatedWindow(p, 8, 16); err != nil {
			b.Fatal(err)
		}
	}
}
