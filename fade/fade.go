// SPDX-License-Identifier: MIT
// Package fade is the FadeFunction catalogue: smoothing curves applied to a
// cell-local position in [0,1] before interpolation. Every built-in curve
// maps 0→0 and 1→1.
package fade

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
)

// Func reshapes a position in [0,1].
type Func func(x float64) float64

var (
	// None is the identity.
	None Func = func(x float64) float64 { return x }
	// CubicPoly is x²(3-2x) (smoothstep).
	CubicPoly Func = func(x float64) float64 { return x * x * (3 - 2*x) }
	// QuarticPoly is x²(2-x²).
	QuarticPoly Func = func(x float64) float64 { return x * x * (2 - x*x) }
	// QuinticPoly is x³(x(6x-15)+10) (smootherstep).
	QuinticPoly Func = func(x float64) float64 { return x * x * x * (x*(6*x-15) + 10) }
	// QuadraticRational is x²/(2x²-2x+1).
	QuadraticRational Func = func(x float64) float64 {
		x2 := x * x
		return x2 / (2*x2 - 2*x + 1)
	}
	// CubicRational is x³/(3x²-3x+1).
	CubicRational Func = func(x float64) float64 {
		x2 := x * x
		return x2 * x / (3*x2 - 3*x + 1)
	}
	// QuadraticPiecewise is 2x² below 0.5 and 1-2(1-x)² above.
	QuadraticPiecewise Func = func(x float64) float64 {
		if x < 0.5 {
			return 2 * x * x
		}
		r := 1 - x
		return 1 - 2*r*r
	}
	// Trigonometric is 0.5-0.5cos(πx).
	Trigonometric Func = func(x float64) float64 { return 0.5 - 0.5*math.Cos(math.Pi*x) }
)

var catalogue = registry.New[Func]("fade")

func init() {
	catalogue.MustRegister("none", None)
	catalogue.MustRegister("cubic_poly", CubicPoly)
	catalogue.MustRegister("quartic_poly", QuarticPoly)
	catalogue.MustRegister("quintic_poly", QuinticPoly)
	catalogue.MustRegister("quadratic_rational", QuadraticRational)
	catalogue.MustRegister("cubic_rational", CubicRational)
	catalogue.MustRegister("quadratic_piecewise", QuadraticPiecewise)
	catalogue.MustRegister("trigonometric", Trigonometric)
}

// Lookup returns the fade registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom fade. Panics on a nil fn.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("fade: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered fade.
func Names() []string { return catalogue.Names() }
