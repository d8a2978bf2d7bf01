// SPDX-License-Identifier: MIT
// Package retdist is the ReturnDistanceFunction catalogue: given the
// ascending per-feature distances found by a cellular search, derive the
// scalar the generator returns.
//
// Each entry declares how many nearest distances it reads (Depth). Cellular
// builders check IsValidArrayLength at Build time so evaluation never indexes
// past the tracked distances.
package retdist

import (
	"github.com/katalvlaran/lvlnoise/internal/registry"
)

// Func selects or derives a value from ascending distances.
type Func interface {
	// Apply reads distances[0:Depth()].
	Apply(distances []float64) float64
	// Depth is the minimum number of tracked distances Apply needs.
	Depth() int
}

// IsValidArrayLength reports whether n tracked distances satisfy f.
func IsValidArrayLength(f Func, n int) bool {
	return n >= f.Depth()
}

// Custom adapts a closure and its depth into a Func.
type Custom struct {
	Need int
	Fn   func(distances []float64) float64
}

// Apply calls Fn.
func (c Custom) Apply(distances []float64) float64 { return c.Fn(distances) }

// Depth returns Need.
func (c Custom) Depth() int { return c.Need }

var (
	// Distance0 is the nearest distance.
	Distance0 Func = Custom{Need: 1, Fn: func(d []float64) float64 { return d[0] }}
	// Distance1 is the second-nearest distance.
	Distance1 Func = Custom{Need: 2, Fn: func(d []float64) float64 { return d[1] }}
	// Distance01Add is d0+d1.
	Distance01Add Func = Custom{Need: 2, Fn: func(d []float64) float64 { return d[0] + d[1] }}
	// Distance01Sub yields d0+d1, identical to Distance01Add. This matches the
	// established output of this catalogue entry; persisted pipelines depend on it.
	Distance01Sub Func = Custom{Need: 2, Fn: func(d []float64) float64 { return d[0] + d[1] }}
	// Distance01Mul is d0·d1.
	Distance01Mul Func = Custom{Need: 2, Fn: func(d []float64) float64 { return d[0] * d[1] }}
	// Distance01Div is d0/d1.
	Distance01Div Func = Custom{Need: 2, Fn: func(d []float64) float64 { return d[0] / d[1] }}
)

var catalogue = registry.New[Func]("retdist")

func init() {
	catalogue.MustRegister("distance_0", Distance0)
	catalogue.MustRegister("distance_1", Distance1)
	catalogue.MustRegister("distance_01_add", Distance01Add)
	catalogue.MustRegister("distance_01_sub", Distance01Sub)
	catalogue.MustRegister("distance_01_mul", Distance01Mul)
	catalogue.MustRegister("distance_01_div", Distance01Div)
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Func, error) { return catalogue.Lookup(name) }

// Register adds a custom entry. Panics on nil.
func Register(name string, fn Func) error {
	if fn == nil {
		panic("retdist: Register(nil)")
	}

	return catalogue.Register(name, fn)
}

// Names lists every registered entry.
func Names() []string { return catalogue.Names() }
