// SPDX-License-Identifier: MIT
// Package minimize is the MinimizationFunction catalogue used by cellular
// noise to blend the running nearest distance with each new candidate.
//
// The three smooth variants share their formulas with the combiner package,
// so blending two cells and blending two noise fields use identical math.
package minimize

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
	"github.com/katalvlaran/lvlnoise/internal/smoothmin"
)

// Func folds a candidate b into the running minimum a.
type Func func(a, b float64) float64

var (
	// Min is the hard minimum.
	Min Func = math.Min
	// ExponentialSmooth is -log2(2^(-32a) + 2^(-32b))/32.
	ExponentialSmooth Func = smoothmin.Exponential
	// PowerSmooth is ((a⁸b⁸)/(a⁸+b⁸))^(1/8).
	PowerSmooth Func = smoothmin.Power
	// PolynomialSmooth is min(a,b) - h²·0.1/4, h = max(0.1-|a-b|,0)/0.1.
	PolynomialSmooth Func = smoothmin.Polynomial
)

var catalogue = registry.New[Func]("minimize")

func init() {
	catalogue.MustRegister("min", Min)
	catalogue.MustRegister("exponential_smooth_min", ExponentialSmooth)
	catalogue.MustRegister("power_smooth_min", PowerSmooth)
	catalogue.MustRegister("polynomial_smooth_min", PolynomialSmooth)
}

// Lookup returns the minimizer registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom minimizer. Panics on nil.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("minimize: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered minimizer.
func Names() []string { return catalogue.Names() }
