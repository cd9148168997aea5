// SPDX-License-Identifier: MIT

package plate_test

import (
	"fmt"

	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/well"
)

// ExampleNewFormat builds a 96-well plate and reads back one row.
func ExampleNewFormat() {
	p, _ := plate.NewFormat[float64](plate.Format96, plate.WithLabel("assay"), plate.WithLogger(quiet))
	a1, _ := well.Parse("A1", 0.12, 0.15)
	a2, _ := well.Parse("A2", 0.31)
	i1, _ := well.Parse("I1", 9.9) // row I does not exist on an 8×12 plate
	fmt.Println(p.Add(a1, a2, i1))
	fmt.Println(p)
	fmt.Println(p.Row(0).IDs())

	// Output:
	// false
	// assay[8x12]{A1,A2}
	// A1,A2
}
