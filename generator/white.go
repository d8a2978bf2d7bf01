// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// white.go — white noise: the hash value of the lattice cell containing the
// point. At integer coordinates this is exactly lattice.Value*D.

package generator

import (
	"github.com/katalvlaran/lvlnoise/lattice"
	"github.com/katalvlaran/lvlnoise/noise"
)

// White is uncorrelated per-cell noise in [-1, 1).
type White struct {
	seed int64
}

var _ noise.SeededGenerator = (*White)(nil)

// NewWhite returns white noise under seed.
func NewWhite(seed int64) *White { return &White{seed: seed} }

// WhiteBuilder configures a White generator.
type WhiteBuilder struct {
	seed int64
}

// NewWhiteBuilder returns a builder under noise.DefaultSeed.
func NewWhiteBuilder() *WhiteBuilder {
	return &WhiteBuilder{seed: noise.DefaultSeed}
}

// Seed sets the instance seed.
func (b *WhiteBuilder) Seed(s int64) *WhiteBuilder {
	b.seed = s

	return b
}

// BuildWhite returns the concrete generator. White has nothing to validate.
func (b *WhiteBuilder) BuildWhite() (*White, error) {
	return NewWhite(b.seed), nil
}

// Build implements noise.Builder.
func (b *WhiteBuilder) Build() (noise.Source, error) {
	g, err := b.BuildWhite()
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Seed returns the instance seed.
func (g *White) Seed() int64 { return g.seed }

func (g *White) Eval1DSeed(x float64, seed int64) float64 {
	return lattice.Value1D(seed, floorInt(x))
}

func (g *White) Eval2DSeed(x, y float64, seed int64) float64 {
	return lattice.Value2D(seed, floorInt(x), floorInt(y))
}

func (g *White) Eval3DSeed(x, y, z float64, seed int64) float64 {
	return lattice.Value3D(seed, floorInt(x), floorInt(y), floorInt(z))
}

func (g *White) Eval4DSeed(x, y, z, w float64, seed int64) float64 {
	return lattice.Value4D(seed, floorInt(x), floorInt(y), floorInt(z), floorInt(w))
}

func (g *White) Eval1D(x float64) float64          { return g.Eval1DSeed(x, g.seed) }
func (g *White) Eval2D(x, y float64) float64       { return g.Eval2DSeed(x, y, g.seed) }
func (g *White) Eval3D(x, y, z float64) float64    { return g.Eval3DSeed(x, y, z, g.seed) }
func (g *White) Eval4D(x, y, z, w float64) float64 { return g.Eval4DSeed(x, y, z, w, g.seed) }
