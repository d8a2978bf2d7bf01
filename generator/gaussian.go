// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// gaussian.go — per-cell normally distributed noise.
//
// Each cell draws two independent uniforms from the lattice hash (the second
// under a salted seed) and maps them through Box–Muller.

package generator

import (
	"math"

	"github.com/katalvlaran/lvlnoise/lattice"
	"github.com/katalvlaran/lvlnoise/noise"
)

const (
	methodGaussianBuild = "Gaussian.Build"
	// gaussianSalt decorrelates the second uniform from the first.
	gaussianSalt int64 = 0x5DEECE66D
)

// Gaussian is per-cell noise distributed N(mean, stddev²).
type Gaussian struct {
	seed   int64
	mean   float64
	stddev float64
}

var _ noise.SeededGenerator = (*Gaussian)(nil)

// GaussianBuilder configures a Gaussian.
type GaussianBuilder struct {
	seed   int64
	mean   float64
	stddev float64
}

// NewGaussianBuilder returns a builder for N(0,1) under noise.DefaultSeed.
func NewGaussianBuilder() *GaussianBuilder {
	return &GaussianBuilder{seed: noise.DefaultSeed, stddev: 1}
}

// Seed sets the instance seed.
func (b *GaussianBuilder) Seed(s int64) *GaussianBuilder {
	b.seed = s

	return b
}

// Mean sets the distribution mean.
func (b *GaussianBuilder) Mean(m float64) *GaussianBuilder {
	b.mean = m

	return b
}

// StdDev sets the standard deviation (>= 0).
func (b *GaussianBuilder) StdDev(s float64) *GaussianBuilder {
	b.stddev = s

	return b
}

// BuildGaussian validates and returns the concrete generator.
func (b *GaussianBuilder) BuildGaussian() (*Gaussian, error) {
	if math.IsNaN(b.mean) || math.IsInf(b.mean, 0) {
		return nil, noise.Errorf(methodGaussianBuild, noise.ErrInvalidConfig, "mean %g", b.mean)
	}
	if !(b.stddev >= 0) || math.IsInf(b.stddev, 0) {
		return nil, noise.Errorf(methodGaussianBuild, noise.ErrInvalidConfig, "stddev %g", b.stddev)
	}

	return &Gaussian{seed: b.seed, mean: b.mean, stddev: b.stddev}, nil
}

// Build implements noise.Builder.
func (b *GaussianBuilder) Build() (noise.Source, error) {
	g, err := b.BuildGaussian()
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Seed returns the instance seed.
func (g *Gaussian) Seed() int64 { return g.seed }

// boxMuller maps two [0,1) uniforms onto N(mean, stddev²).
func (g *Gaussian) boxMuller(h1, h2 int32) float64 {
	u1 := 1 - lattice.Unit(h1) // (0,1]
	u2 := lattice.Unit(h2)
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	return g.mean + g.stddev*z
}

func (g *Gaussian) Eval1DSeed(x float64, seed int64) float64 {
	ix := floorInt(x)
	return g.boxMuller(lattice.Hash1D(seed, ix), lattice.Hash1D(seed^gaussianSalt, ix))
}

func (g *Gaussian) Eval2DSeed(x, y float64, seed int64) float64 {
	ix, iy := floorInt(x), floorInt(y)
	return g.boxMuller(lattice.Hash2D(seed, ix, iy), lattice.Hash2D(seed^gaussianSalt, ix, iy))
}

func (g *Gaussian) Eval3DSeed(x, y, z float64, seed int64) float64 {
	ix, iy, iz := floorInt(x), floorInt(y), floorInt(z)
	return g.boxMuller(lattice.Hash3D(seed, ix, iy, iz), lattice.Hash3D(seed^gaussianSalt, ix, iy, iz))
}

func (g *Gaussian) Eval4DSeed(x, y, z, w float64, seed int64) float64 {
	ix, iy, iz, iw := floorInt(x), floorInt(y), floorInt(z), floorInt(w)
	return g.boxMuller(lattice.Hash4D(seed, ix, iy, iz, iw), lattice.Hash4D(seed^gaussianSalt, ix, iy, iz, iw))
}

func (g *Gaussian) Eval1D(x float64) float64          { return g.Eval1DSeed(x, g.seed) }
func (g *Gaussian) Eval2D(x, y float64) float64       { return g.Eval2DSeed(x, y, g.seed) }
func (g *Gaussian) Eval3D(x, y, z float64) float64    { return g.Eval3DSeed(x, y, z, g.seed) }
func (g *Gaussian) Eval4D(x, y, z, w float64) float64 { return g.Eval4DSeed(x, y, z, w, g.seed) }
