// SPDX-License-Identifier: MIT
package generator_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/retdist"
)

// ExampleNewWhite evaluates white noise at an integer lattice point under the
// default seed.
func ExampleNewWhite() {
	w := generator.NewWhite(noise.DefaultSeed)
	fmt.Printf("%.4f\n", w.Eval2D(3, 4))
	// Output: 0.7600
}

// ExampleCellularBuilder reads the auxiliary data of an explicit evaluation.
func ExampleCellularBuilder() {
	c, err := generator.NewCellularBuilder().Seed(11).Depth(3).BuildCellular()
	if err != nil {
		fmt.Println(err)
		return
	}
	r := c.Explicit2D(0.3, 0.7)
	d := r.Distances()
	fmt.Println(r.Dims(), len(d), d[0] <= d[1] && d[1] <= d[2])
	// Output: 2 3 true
}

// ExampleCellularBuilder_depthTooSmall shows that a return function needing
// two distances is rejected for depth 1.
func ExampleCellularBuilder_depthTooSmall() {
	_, err := generator.NewCellularBuilder().
		Return(retdist.Distance01Add).
		Depth(1).
		Build()
	fmt.Println(errors.Is(err, noise.ErrInvalidConfig))
	// Output: true
}
