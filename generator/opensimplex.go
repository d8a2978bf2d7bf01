// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// opensimplex.go — OpenSimplex noise backed by github.com/ojrac/opensimplex-go.
//
// The library provides 2D–4D; Eval1D samples the 2D field on the y=0 line.

package generator

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvlnoise/noise"
)

// OpenSimplex wraps an opensimplex.Noise.
type OpenSimplex struct {
	seed       int64
	normalized bool
	n          opensimplex.Noise
}

var _ noise.Source = (*OpenSimplex)(nil)

// OpenSimplexBuilder configures an OpenSimplex generator.
type OpenSimplexBuilder struct {
	seed       int64
	normalized bool
}

// NewOpenSimplexBuilder returns a builder producing signed output in
// roughly [-1, 1].
func NewOpenSimplexBuilder() *OpenSimplexBuilder {
	return &OpenSimplexBuilder{seed: noise.DefaultSeed}
}

// Seed sets the permutation seed.
func (b *OpenSimplexBuilder) Seed(s int64) *OpenSimplexBuilder {
	b.seed = s

	return b
}

// Normalized selects output in [0, 1) instead of signed output.
func (b *OpenSimplexBuilder) Normalized(on bool) *OpenSimplexBuilder {
	b.normalized = on

	return b
}

// BuildOpenSimplex returns the concrete generator; there is nothing to reject.
func (b *OpenSimplexBuilder) BuildOpenSimplex() (*OpenSimplex, error) {
	var n opensimplex.Noise
	if b.normalized {
		n = opensimplex.NewNormalized(b.seed)
	} else {
		n = opensimplex.New(b.seed)
	}

	return &OpenSimplex{seed: b.seed, normalized: b.normalized, n: n}, nil
}

// Build implements noise.Builder.
func (b *OpenSimplexBuilder) Build() (noise.Source, error) {
	return b.BuildOpenSimplex()
}

// Seed returns the permutation seed.
func (g *OpenSimplex) Seed() int64 { return g.seed }

// Normalized reports whether output is in [0, 1).
func (g *OpenSimplex) Normalized() bool { return g.normalized }

func (g *OpenSimplex) Eval1D(x float64) float64 { return g.n.Eval2(x, 0) }

func (g *OpenSimplex) Eval2D(x, y float64) float64 { return g.n.Eval2(x, y) }

func (g *OpenSimplex) Eval3D(x, y, z float64) float64 { return g.n.Eval3(x, y, z) }

func (g *OpenSimplex) Eval4D(x, y, z, w float64) float64 { return g.n.Eval4(x, y, z, w) }
