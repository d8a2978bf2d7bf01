// SPDX-License-Identifier: MIT
// Package interp is the Interpolation catalogue: named pure functions
// blending a and b by a position x in [0,1], plus an n-dimensional
// recursive lerp over 2^k lattice corner values.
//
// Every named interpolation satisfies Fn(0,a,b) == a and Fn(1,a,b) == b.
// Custom interpolations are plain Func values and may be registered under a
// name for lookup from pipeline files.
package interp

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
	"github.com/katalvlaran/lvlnoise/noise"
)

// Func blends a and b at position x.
type Func func(x, a, b float64) float64

// Catalogue entries.
var (
	// Linear is a + x(b-a).
	Linear Func = func(x, a, b float64) float64 { return a + x*(b-a) }
	// Quadratic is a + (b-a)x².
	Quadratic Func = func(x, a, b float64) float64 { return a + (b-a)*x*x }
	// Cubic is a + (b-a)x³.
	Cubic Func = func(x, a, b float64) float64 { return a + (b-a)*x*x*x }
	// Quartic is a + (b-a)x⁴.
	Quartic Func = func(x, a, b float64) float64 { return a + (b-a)*x*x*x*x }
	// Cosine is a + ((1-cos(xπ))/2)(b-a).
	Cosine Func = func(x, a, b float64) float64 {
		return a + ((1-math.Cos(x*math.Pi))/2)*(b-a)
	}
)

var catalogue = registry.New[Func]("interp")

func init() {
	catalogue.MustRegister("linear", Linear)
	catalogue.MustRegister("quadratic", Quadratic)
	catalogue.MustRegister("cubic", Cubic)
	catalogue.MustRegister("quartic", Quartic)
	catalogue.MustRegister("cosine", Cosine)
}

// Lookup returns the interpolation registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom interpolation. Panics on a nil fn.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("interp: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered interpolation.
func Names() []string { return catalogue.Names() }

// LerpN interpolates 2^len(positions) corner values down to one value.
// Stage s blends pairs (values[2i], values[2i+1]) at positions[s], so the
// first position must belong to the fastest-varying axis of values.
// values is copied into a private scratch slice and never modified.
func LerpN(fn Func, values, positions []float64) (float64, error) {
	if err := checkArity(values, positions); err != nil {
		return 0, err
	}
	scratch := make([]float64, len(values))
	copy(scratch, values)

	return reduce(fn, scratch, positions), nil
}

// LerpNInPlace is LerpN using values as scratch space: its contents are
// overwritten. The caller must own values exclusively for the call.
func LerpNInPlace(fn Func, values, positions []float64) (float64, error) {
	if err := checkArity(values, positions); err != nil {
		return 0, err
	}

	return reduce(fn, values, positions), nil
}

func checkArity(values, positions []float64) error {
	if len(positions) > 62 || len(values) != 1<<len(positions) {
		return noise.Errorf("interp.LerpN", noise.ErrInvalidConfig,
			"len(values)=%d, want 2^%d", len(values), len(positions))
	}

	return nil
}

func reduce(fn Func, scratch, positions []float64) float64 {
	n := len(scratch)
	for _, t := range positions {
		n /= 2
		for i := 0; i < n; i++ {
			scratch[i] = fn(t, scratch[2*i], scratch[2*i+1])
		}
	}

	return scratch[0]
}
