// SPDX-License-Identifier: MIT
package module_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnoise/combiner"
	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/modifier"
	"github.com/katalvlaran/lvlnoise/module"
	"github.com/katalvlaran/lvlnoise/noise"
)

// ExampleCombinationBuilder multiplies two constant fields.
func ExampleCombinationBuilder() {
	src, err := module.NewCombinationBuilder().
		A(generator.NewConstant(2)).
		B(generator.NewConstant(3)).
		Combiner(combiner.Multiply).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(src.Eval2D(0.5, 0.5))
	// Output: 6
}

// ExampleSelectionBuilder picks a branch from the sign of the x coordinate.
//
//	control(x) = x, boundary 0  →  x >= 0 ? "high" : "low"
func ExampleSelectionBuilder() {
	control := noise.Func{F1: func(x float64) float64 { return x }}
	src, err := module.NewSelectionBuilder().
		A(generator.NewConstant(1)).
		B(generator.NewConstant(-1)).
		Control(control).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(src.Eval1D(0.25), src.Eval1D(-0.25))
	// Output: 1 -1
}

// ExampleFractalBuilder shows that octavation normalizes by total amplitude:
// a constant base stays constant under FBM.
func ExampleFractalBuilder() {
	src, err := module.NewFractalBuilder().
		Source(generator.NewConstant(0.5)).
		Octaves(6).
		Persistence(0.5).
		Lacunarity(2).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", src.Eval3D(7, 8, 9))
	// Output: 0.500
}

// ExampleFractalBuilder_missingOctaves shows the rejection of an incomplete
// configuration.
func ExampleFractalBuilder_missingOctaves() {
	_, err := module.NewFractalBuilder().
		Source(generator.NewConstant(0.5)).
		Persistence(0.5).
		Lacunarity(2).
		Build()
	fmt.Println(errors.Is(err, noise.ErrInvalidConfig))
	// Output: true
}

// ExampleModifiedBuilder chains modifiers in order.
func ExampleModifiedBuilder() {
	src, err := module.NewModifiedBuilder().
		Source(generator.NewConstant(-3)).
		Modify(modifier.Abs, modifier.NewClamp(0, 1), modifier.Invert).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(src.Eval2D(0, 0))
	// Output: -1
}
