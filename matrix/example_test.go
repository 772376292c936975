// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/bspline/matrix"
)

// ExampleMatVec evaluates a piecewise-linear spline with coefficients c at
// two sites from its hat-function collocation rows.
func ExampleMatVec() {
	a, _ := matrix.NewDense(2, 3)
	_ = a.SetRow(0, []float64{0.5, 0.5, 0})   // site halfway between knots 0 and 1
	_ = a.SetRow(1, []float64{0, 0.25, 0.75}) // site three quarters into the second span

	y, err := matrix.MatVec(a, []float64{2, 4, 8})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(y)
	fmt.Print(a)
	// Output:
	// [3 7]
	// [0.5, 0.5, 0]
	// [0, 0.25, 0.75]
}
