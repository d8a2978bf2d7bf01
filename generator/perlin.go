// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// perlin.go — gradient noise backed by github.com/aquilax/go-perlin.
//
// The library builds its permutation and gradient tables once from the seed,
// so per-call seed overrides are not offered: Perlin is a Source plus Seed().
// go-perlin has no 4D field; Eval4D samples the 3D field displaced along a
// fixed irrational diagonal by w.
// go-perlin's Noise3D falls back to the 2D field for z < 0. Negative z is
// wrapped into [0, perlin.B) first; the library's lattice repeats every
// perlin.B cells, so the result matches the periodic extension exactly when
// beta is an integer (the default).

package generator

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/katalvlaran/lvlnoise/noise"
)

const methodPerlinBuild = "Perlin.Build"

// Diagonal used to fold the w axis into 3D.
const (
	perlinWX = 0.7548776662466927
	perlinWY = 0.5698402909980532
	perlinWZ = 0.3247179572447460
)

// Perlin wraps a go-perlin generator.
type Perlin struct {
	seed int64
	p    *perlin.Perlin
}

var _ noise.Source = (*Perlin)(nil)

// PerlinBuilder configures a Perlin generator.
type PerlinBuilder struct {
	seed  int64
	alpha float64
	beta  float64
	n     int32
}

// NewPerlinBuilder defaults to alpha=2, beta=2 and a single library
// iteration; layer octaves with the fractal module instead.
func NewPerlinBuilder() *PerlinBuilder {
	return &PerlinBuilder{seed: noise.DefaultSeed, alpha: 2, beta: 2, n: 1}
}

// Seed sets the table seed.
func (b *PerlinBuilder) Seed(s int64) *PerlinBuilder {
	b.seed = s

	return b
}

// Alpha sets the library's per-iteration weight divisor (> 0).
func (b *PerlinBuilder) Alpha(a float64) *PerlinBuilder {
	b.alpha = a

	return b
}

// Beta sets the library's per-iteration frequency multiplier (> 0).
func (b *PerlinBuilder) Beta(v float64) *PerlinBuilder {
	b.beta = v

	return b
}

// Iterations sets the library's internal octave count (>= 1).
func (b *PerlinBuilder) Iterations(n int32) *PerlinBuilder {
	b.n = n

	return b
}

// BuildPerlin validates and returns the concrete generator.
func (b *PerlinBuilder) BuildPerlin() (*Perlin, error) {
	if !(b.alpha > 0) || math.IsInf(b.alpha, 0) {
		return nil, noise.Errorf(methodPerlinBuild, noise.ErrInvalidConfig, "alpha %g", b.alpha)
	}
	if !(b.beta > 0) || math.IsInf(b.beta, 0) {
		return nil, noise.Errorf(methodPerlinBuild, noise.ErrInvalidConfig, "beta %g", b.beta)
	}
	if b.n < 1 {
		return nil, noise.Errorf(methodPerlinBuild, noise.ErrInvalidConfig, "iterations %d", b.n)
	}

	return &Perlin{seed: b.seed, p: perlin.NewPerlin(b.alpha, b.beta, b.n, b.seed)}, nil
}

// Build implements noise.Builder.
func (b *PerlinBuilder) Build() (noise.Source, error) {
	p, err := b.BuildPerlin()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Seed returns the table seed.
func (g *Perlin) Seed() int64 { return g.seed }

func (g *Perlin) Eval1D(x float64) float64 { return g.p.Noise1D(x) }

func (g *Perlin) Eval2D(x, y float64) float64 { return g.p.Noise2D(x, y) }

func (g *Perlin) Eval3D(x, y, z float64) float64 { return g.p.Noise3D(x, y, wrapZ(z)) }

func (g *Perlin) Eval4D(x, y, z, w float64) float64 {
	return g.p.Noise3D(x+w*perlinWX, y+w*perlinWY, wrapZ(z+w*perlinWZ))
}

// wrapZ maps z < 0 onto [0, perlin.B) by whole lattice periods.
func wrapZ(z float64) float64 {
	if z >= 0 {
		return z
	}
	period := float64(perlin.B)

	return z + period*math.Ceil(-z/period)
}
