// SPDX-License-Identifier: MIT
// Package fractal is the FractalFunction catalogue: the per-octave shaping
// applied to raw noise before it is summed by the fractal module.
package fractal

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
)

// Func shapes one octave's raw output.
type Func func(v float64) float64

var (
	// FBM is the identity: signed fractional Brownian motion.
	FBM Func = func(v float64) float64 { return v }
	// Turbulence rectifies each octave: |v|.
	Turbulence Func = math.Abs
	// RidgedMulti folds each octave into crests: (1-|v|)².
	RidgedMulti Func = func(v float64) float64 {
		r := 1 - math.Abs(v)
		return r * r
	}
)

var catalogue = registry.New[Func]("fractal")

func init() {
	catalogue.MustRegister("fbm", FBM)
	catalogue.MustRegister("turbulence", Turbulence)
	catalogue.MustRegister("ridged_multi", RidgedMulti)
}

// Lookup returns the fractal function registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom fractal function. Panics on nil.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("fractal: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered fractal function.
func Names() []string { return catalogue.Names() }
