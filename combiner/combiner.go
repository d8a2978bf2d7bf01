// SPDX-License-Identifier: MIT
// Package combiner is the binary Combiner catalogue used by the combination
// module. A combiner receives (first, second) in a fixed order, which matters
// for the non-commutative entries Pow and Sub.
package combiner

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
	"github.com/katalvlaran/lvlnoise/internal/smoothmin"
)

// Func merges two noise values.
type Func func(a, b float64) float64

var (
	// Add is a+b.
	Add Func = func(a, b float64) float64 { return a + b }
	// Sub is a-b.
	Sub Func = func(a, b float64) float64 { return a - b }
	// Multiply is a·b.
	Multiply Func = func(a, b float64) float64 { return a * b }
	// Max is max(a,b).
	Max Func = math.Max
	// Min is min(a,b).
	Min Func = math.Min
	// Pow is a^b.
	Pow Func = math.Pow
	// ExponentialSmoothMin is the exponential smooth minimum.
	ExponentialSmoothMin Func = smoothmin.Exponential
	// PowerSmoothMin is the power smooth minimum.
	PowerSmoothMin Func = smoothmin.Power
	// PolynomialSmoothMin is the polynomial smooth minimum.
	PolynomialSmoothMin Func = smoothmin.Polynomial
)

// Default is the combiner used when a builder sets none.
var Default = Add

var catalogue = registry.New[Func]("combiner")

func init() {
	catalogue.MustRegister("add", Add)
	catalogue.MustRegister("sub", Sub)
	catalogue.MustRegister("multiply", Multiply)
	catalogue.MustRegister("max", Max)
	catalogue.MustRegister("min", Min)
	catalogue.MustRegister("pow", Pow)
	catalogue.MustRegister("exponential_smooth_min", ExponentialSmoothMin)
	catalogue.MustRegister("power_smooth_min", PowerSmoothMin)
	catalogue.MustRegister("polynomial_smooth_min", PolynomialSmoothMin)
}

// Lookup returns the combiner registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom combiner. Panics on nil.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("combiner: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered combiner.
func Names() []string { return catalogue.Names() }
