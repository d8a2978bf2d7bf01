// SPDX-License-Identifier: MIT
// Package distance is the DistanceFunction catalogue used by cellular noise
// to measure how far a sample is from a feature point.
//
// Every metric works on per-axis deltas and is non-negative; the distance of
// a point to itself is 0. Minkowski(p) generalizes Manhattan (p=1),
// Euclidean (p=2) and approaches Chebyshev as p grows. Prefer the closed
// forms for p ∈ {1,2}: the pow-based Minkowski is slower and noisier.
package distance

import (
	"math"

	"github.com/katalvlaran/lvlnoise/internal/registry"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/vector"
)

// Func measures the length of a delta vector for each arity.
type Func interface {
	Distance1D(dx float64) float64
	Distance2D(dx, dy float64) float64
	Distance3D(dx, dy, dz float64) float64
	Distance4D(dx, dy, dz, dw float64) float64
}

// Metric is a Func assembled from one closure per arity.
type Metric struct {
	D1 func(dx float64) float64
	D2 func(dx, dy float64) float64
	D3 func(dx, dy, dz float64) float64
	D4 func(dx, dy, dz, dw float64) float64
}

func (m Metric) Distance1D(dx float64) float64         { return m.D1(dx) }
func (m Metric) Distance2D(dx, dy float64) float64     { return m.D2(dx, dy) }
func (m Metric) Distance3D(dx, dy, dz float64) float64 { return m.D3(dx, dy, dz) }
func (m Metric) Distance4D(dx, dy, dz, dw float64) float64 {
	return m.D4(dx, dy, dz, dw)
}

var (
	// EuclideanSquared is Σd².
	EuclideanSquared = Metric{
		D1: func(dx float64) float64 { return dx * dx },
		D2: func(dx, dy float64) float64 { return dx*dx + dy*dy },
		D3: func(dx, dy, dz float64) float64 { return dx*dx + dy*dy + dz*dz },
		D4: func(dx, dy, dz, dw float64) float64 { return dx*dx + dy*dy + dz*dz + dw*dw },
	}
	// Euclidean is sqrt(Σd²).
	Euclidean = Metric{
		D1: func(dx float64) float64 { return math.Abs(dx) },
		D2: func(dx, dy float64) float64 { return math.Sqrt(dx*dx + dy*dy) },
		D3: func(dx, dy, dz float64) float64 { return math.Sqrt(dx*dx + dy*dy + dz*dz) },
		D4: func(dx, dy, dz, dw float64) float64 {
			return math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
		},
	}
	// Manhattan is Σ|d|.
	Manhattan = Metric{
		D1: math.Abs,
		D2: func(dx, dy float64) float64 { return math.Abs(dx) + math.Abs(dy) },
		D3: func(dx, dy, dz float64) float64 { return math.Abs(dx) + math.Abs(dy) + math.Abs(dz) },
		D4: func(dx, dy, dz, dw float64) float64 {
			return math.Abs(dx) + math.Abs(dy) + math.Abs(dz) + math.Abs(dw)
		},
	}
	// Chebyshev is max|d|.
	Chebyshev = Metric{
		D1: math.Abs,
		D2: func(dx, dy float64) float64 { return math.Max(math.Abs(dx), math.Abs(dy)) },
		D3: func(dx, dy, dz float64) float64 {
			return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Abs(dz))
		},
		D4: func(dx, dy, dz, dw float64) float64 {
			return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Max(math.Abs(dz), math.Abs(dw)))
		},
	}
)

// Minkowski returns the (Σ|d|^p)^(1/p) metric. p must be finite and > 0.
func Minkowski(p float64) (Metric, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return Metric{}, noise.Errorf("distance.Minkowski", noise.ErrInvalidConfig, "p=%g", p)
	}
	inv := 1 / p
	term := func(d float64) float64 { return math.Pow(math.Abs(d), p) }

	return Metric{
		D1: math.Abs,
		D2: func(dx, dy float64) float64 { return math.Pow(term(dx)+term(dy), inv) },
		D3: func(dx, dy, dz float64) float64 {
			return math.Pow(term(dx)+term(dy)+term(dz), inv)
		},
		D4: func(dx, dy, dz, dw float64) float64 {
			return math.Pow(term(dx)+term(dy)+term(dz)+term(dw), inv)
		},
	}, nil
}

var catalogue = registry.New[Func]("distance")

func init() {
	catalogue.MustRegister("euclidean", Euclidean)
	catalogue.MustRegister("euclidean_squared", EuclideanSquared)
	catalogue.MustRegister("manhattan", Manhattan)
	catalogue.MustRegister("chebyshev", Chebyshev)
}

// Lookup returns the metric registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom metric. Panics on nil.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("distance: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered metric.
func Names() []string { return catalogue.Names() }

// Between2D measures a→b with f.
func Between2D(f Func, a, b vector.Vector2D) float64 { return f.Distance2D(b.X-a.X, b.Y-a.Y) }

// Between3D measures a→b with f.
func Between3D(f Func, a, b vector.Vector3D) float64 {
	return f.Distance3D(b.X-a.X, b.Y-a.Y, b.Z-a.Z)
}

// Between4D measures a→b with f.
func Between4D(f Func, a, b vector.Vector4D) float64 {
	return f.Distance4D(b.X-a.X, b.Y-a.Y, b.Z-a.Z, b.W-a.W)
}
