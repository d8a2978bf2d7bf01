// SPDX-License-Identifier: MIT
// Package modifier provides pure scalar post-processors applied after
// generation or combination.
//
// Modifiers are order-sensitive when chained: Chain(Abs, Invert) yields
// -|x| while Chain(Invert, Abs) yields |x|.
package modifier

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
)

// Modifier maps one noise value to another.
type Modifier interface {
	Modify(v float64) float64
}

// Func adapts a plain function into a Modifier.
type Func func(v float64) float64

// Modify calls f.
func (f Func) Modify(v float64) float64 { return f(v) }

var (
	// Abs is |x|.
	Abs Modifier = Func(math.Abs)
	// Invert is -x.
	Invert Modifier = Func(func(v float64) float64 { return -v })
)

// Clamp restricts values to [Lower, Upper]. Lower <= Upper is the caller's
// responsibility; otherwise every value maps to Lower.
type Clamp struct {
	Lower, Upper float64
}

// NewClamp returns a Clamp over [lower, upper].
func NewClamp(lower, upper float64) Clamp {
	return Clamp{Lower: lower, Upper: upper}
}

// Modify returns max(Lower, min(Upper, v)).
func (c Clamp) Modify(v float64) float64 {
	return math.Max(c.Lower, math.Min(c.Upper, v))
}

// Chain applies ms left to right. Nil entries panic at construction.
func Chain(ms ...Modifier) Modifier {
	for i, m := range ms {
		if m == nil {
			panic(noise.Errorf("modifier.Chain", noise.ErrInvalidConfig, "modifier %d is nil", i))
		}
	}
	out := make(chain, len(ms))
	copy(out, ms)

	return out
}

type chain []Modifier

func (c chain) Modify(v float64) float64 {
	for _, m := range c {
		v = m.Modify(v)
	}

	return v
}

// ApplyResult returns a copy of r whose value went through m; every auxiliary
// field of r is preserved and r itself is untouched.
func ApplyResult[R noise.Result[R]](m Modifier, r R) R {
	return r.WithValue(m.Modify(r.Value()))
}
