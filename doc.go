// Package platestat is an in-memory toolkit for microplate well data: ordered
// well sets, fixed-grid plates, and a generic statistic engine computing
// per-well or pooled results.
//
// What is inside
//
//	well/     Well (a position plus a value sequence) and "B12"-style IDs
//	wellset/  WellSet: a deduplicated, row-major ordered set of wells with
//	          range views, set algebra and rank addressing
//	plate/    Plate: a rows×columns grid owning a WellSet (6 … 1536 wells)
//	stat/     Statistic: standard (one result per well) and aggregated
//	          (pooled, one result per container) modes with windowing,
//	          weights and quantile plug-ins
//	calc/     ready-made plug-ins: gonum-backed float64, exact decimal and
//	          generic numeric
//	cmd/      platestat CLI over YAML plate files
//
// Quick start
//
//	p, _ := plate.NewFormat[float64](plate.Format96, plate.WithLabel("assay"))
//	a1, _ := well.Parse("A1", 1.0, 2, 3)
//	b1, _ := well.Parse("B1", 4.0, 5, 6)
//	p.Add(a1, b1)
//
//	sum, _ := stat.New[float64, float64](stat.CalculatorFunc[float64, float64](calc.Sum))
//	total, _ := sum.PlateAggregated(p)                // 21
//	windowed, _ := sum.PlateAggregatedWindow(p, 0, 2) // 1+2+4+5 = 12
//
// Guarantees
//
//   - Deterministic: every enumeration follows well position order.
//   - Thread-safe containers: WellSet guards its tree with a sync.RWMutex.
//   - Pure engine: results are keyed by copies; inputs are never retained.
package platestat
