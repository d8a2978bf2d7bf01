// SPDX-License-Identifier: MIT
// Package: lvlnoise/module
//
// fractal.go — octavation: a base Source summed over geometrically scaled
// frequencies and amplitudes.
//
// Contract:
//   • Octaves, Persistence and Lacunarity must be set explicitly; octaves > 0,
//     persistence > 0, lacunarity > 0, all finite.
//   • Octave i samples base at p·lacunarity^i, shapes it with the fractal
//     function and weights it by persistence^i. The sum is divided by the
//     total weight.
//   • With SeedStep(true) and a seeded base, octave i evaluates with
//     base.Seed()+i so octaves decorrelate.
//   • Defaults: fractal.FBM.
//
// Complexity: O(octaves) base evaluations per call.

package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/fractal"
	"github.com/katalvlaran/lvlnoise/noise"
)

const methodFractalBuild = "Fractal.Build"

// Fractal is a multi-octave sum over a base Source.
type Fractal struct {
	base        noise.Source
	seeded      noise.SeededKernel // nil unless SeedStep applies
	fn          fractal.Func
	octaves     int
	persistence float64
	lacunarity  float64
	norm        float64
}

var _ noise.Source = (*Fractal)(nil)

// FractalBuilder configures a Fractal.
type FractalBuilder struct {
	base        noise.Dependency
	fn          fractal.Func
	octaves     *int
	persistence *float64
	lacunarity  *float64
	seedStep    bool
}

// NewFractalBuilder returns a builder using fractal.FBM.
func NewFractalBuilder() *FractalBuilder {
	return &FractalBuilder{fn: fractal.FBM}
}

// Source sets the base.
func (b *FractalBuilder) Source(s noise.Source) *FractalBuilder {
	b.base = noise.Of(s)

	return b
}

// SourceBuilder sets the base to be built at Build time.
func (b *FractalBuilder) SourceBuilder(sb noise.Builder) *FractalBuilder {
	b.base = noise.OfBuilder(sb)

	return b
}

// Function sets the per-octave shaping.
func (b *FractalBuilder) Function(fn fractal.Func) *FractalBuilder {
	b.fn = fn

	return b
}

// Octaves sets the octave count.
func (b *FractalBuilder) Octaves(n int) *FractalBuilder {
	b.octaves = &n

	return b
}

// Persistence sets the per-octave amplitude multiplier.
func (b *FractalBuilder) Persistence(p float64) *FractalBuilder {
	b.persistence = &p

	return b
}

// Lacunarity sets the per-octave frequency multiplier.
func (b *FractalBuilder) Lacunarity(l float64) *FractalBuilder {
	b.lacunarity = &l

	return b
}

// SeedStep offsets a seeded base's seed by the octave index.
func (b *FractalBuilder) SeedStep(on bool) *FractalBuilder {
	b.seedStep = on

	return b
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Build validates and returns an immutable Fractal.
func (b *FractalBuilder) Build() (noise.Source, error) {
	base, err := b.base.Resolve(methodFractalBuild, "source")
	if err != nil {
		return nil, err
	}
	switch {
	case b.fn == nil:
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "fractal function is nil")
	case b.octaves == nil:
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "octaves not set")
	case *b.octaves <= 0:
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "octaves %d", *b.octaves)
	case b.persistence == nil:
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "persistence not set")
	case !positiveFinite(*b.persistence):
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "persistence %g", *b.persistence)
	case b.lacunarity == nil:
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "lacunarity not set")
	case !positiveFinite(*b.lacunarity):
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig, "lacunarity %g", *b.lacunarity)
	}

	f := &Fractal{
		base:        base,
		fn:          b.fn,
		octaves:     *b.octaves,
		persistence: *b.persistence,
		lacunarity:  *b.lacunarity,
	}
	if k, ok := base.(noise.SeededKernel); ok && b.seedStep {
		f.seeded = k
	}
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		f.norm += amp
		if i > 0 {
			freq *= f.lacunarity
		}
		amp *= f.persistence
	}
	if math.IsInf(f.norm, 0) {
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig,
			"persistence %g over %d octaves overflows the amplitude sum", f.persistence, f.octaves)
	}
	if math.IsInf(freq, 0) {
		return nil, noise.Errorf(methodFractalBuild, noise.ErrInvalidConfig,
			"lacunarity %g over %d octaves overflows the frequency", f.lacunarity, f.octaves)
	}

	return f, nil
}

// Octaves returns the octave count.
func (f *Fractal) Octaves() int { return f.octaves }

func (f *Fractal) Eval1D(x float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		var v float64
		if f.seeded != nil {
			v = f.seeded.Eval1DSeed(x*freq, f.seeded.Seed()+int64(i))
		} else {
			v = f.base.Eval1D(x * freq)
		}
		sum += f.fn(v) * amp
		amp *= f.persistence
		freq *= f.lacunarity
	}

	return sum / f.norm
}

func (f *Fractal) Eval2D(x, y float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		var v float64
		if f.seeded != nil {
			v = f.seeded.Eval2DSeed(x*freq, y*freq, f.seeded.Seed()+int64(i))
		} else {
			v = f.base.Eval2D(x*freq, y*freq)
		}
		sum += f.fn(v) * amp
		amp *= f.persistence
		freq *= f.lacunarity
	}

	return sum / f.norm
}

func (f *Fractal) Eval3D(x, y, z float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		var v float64
		if f.seeded != nil {
			v = f.seeded.Eval3DSeed(x*freq, y*freq, z*freq, f.seeded.Seed()+int64(i))
		} else {
			v = f.base.Eval3D(x*freq, y*freq, z*freq)
		}
		sum += f.fn(v) * amp
		amp *= f.persistence
		freq *= f.lacunarity
	}

	return sum / f.norm
}

func (f *Fractal) Eval4D(x, y, z, w float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		var v float64
		if f.seeded != nil {
			v = f.seeded.Eval4DSeed(x*freq, y*freq, z*freq, w*freq, f.seeded.Seed()+int64(i))
		} else {
			v = f.base.Eval4D(x*freq, y*freq, z*freq, w*freq)
		}
		sum += f.fn(v) * amp
		amp *= f.persistence
		freq *= f.lacunarity
	}

	return sum / f.norm
}
