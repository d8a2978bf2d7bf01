// SPDX-License-Identifier: MIT
// Package: lvlnoise/module
//
// combination.go — binary combination of two Sources.
//
// Contract:
//   • Eval = combiner(a(p), b(p)); a is always the first argument, so
//     non-commutative combiners (Pow, Sub) see a stable order.
//   • a and b are independent; neither observes the other.
//   • Defaults: combiner.Default (Add).

package module

import (
	"github.com/katalvlaran/lvlnoise/combiner"
	"github.com/katalvlaran/lvlnoise/noise"
)

const methodCombinationBuild = "Combination.Build"

// Combination merges two Sources with a Combiner.
type Combination struct {
	a, b noise.Source
	fn   combiner.Func
}

var _ noise.Source = (*Combination)(nil)

// CombinationBuilder configures a Combination.
type CombinationBuilder struct {
	a, b noise.Dependency
	fn   combiner.Func
}

// NewCombinationBuilder returns a builder using combiner.Default.
func NewCombinationBuilder() *CombinationBuilder {
	return &CombinationBuilder{fn: combiner.Default}
}

// A sets the first input.
func (b *CombinationBuilder) A(s noise.Source) *CombinationBuilder {
	b.a = noise.Of(s)

	return b
}

// ABuilder sets the first input to be built at Build time.
func (b *CombinationBuilder) ABuilder(sb noise.Builder) *CombinationBuilder {
	b.a = noise.OfBuilder(sb)

	return b
}

// B sets the second input.
func (b *CombinationBuilder) B(s noise.Source) *CombinationBuilder {
	b.b = noise.Of(s)

	return b
}

// BBuilder sets the second input to be built at Build time.
func (b *CombinationBuilder) BBuilder(sb noise.Builder) *CombinationBuilder {
	b.b = noise.OfBuilder(sb)

	return b
}

// Combiner sets the merge function.
func (b *CombinationBuilder) Combiner(fn combiner.Func) *CombinationBuilder {
	b.fn = fn

	return b
}

// Build validates and returns an immutable Combination.
func (b *CombinationBuilder) Build() (noise.Source, error) {
	a, err := b.a.Resolve(methodCombinationBuild, "a")
	if err != nil {
		return nil, err
	}
	second, err := b.b.Resolve(methodCombinationBuild, "b")
	if err != nil {
		return nil, err
	}
	if b.fn == nil {
		return nil, noise.Errorf(methodCombinationBuild, noise.ErrInvalidConfig, "combiner is nil")
	}

	return &Combination{a: a, b: second, fn: b.fn}, nil
}

func (c *Combination) Eval1D(x float64) float64 {
	return c.fn(c.a.Eval1D(x), c.b.Eval1D(x))
}

func (c *Combination) Eval2D(x, y float64) float64 {
	return c.fn(c.a.Eval2D(x, y), c.b.Eval2D(x, y))
}

func (c *Combination) Eval3D(x, y, z float64) float64 {
	return c.fn(c.a.Eval3D(x, y, z), c.b.Eval3D(x, y, z))
}

func (c *Combination) Eval4D(x, y, z, w float64) float64 {
	return c.fn(c.a.Eval4D(x, y, z, w), c.b.Eval4D(x, y, z, w))
}
