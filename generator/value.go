// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// value.go — value noise: hashed lattice-corner values blended across the
// cell by an Interpolation after the local position went through a
// FadeFunction.
//
// Corner order is x-fastest, matching interp.LerpN stage order. Each call
// works on a private stack array; nothing is shared between calls.

package generator

import (
	"github.com/katalvlaran/lvlnoise/fade"
	"github.com/katalvlaran/lvlnoise/interp"
	"github.com/katalvlaran/lvlnoise/lattice"
	"github.com/katalvlaran/lvlnoise/noise"
)

const methodValueBuild = "Value.Build"

// Value is interpolated lattice value noise in [-1, 1).
type Value struct {
	seed  int64
	lerp  interp.Func
	curve fade.Func
}

var _ noise.SeededGenerator = (*Value)(nil)

// ValueBuilder configures a Value generator.
type ValueBuilder struct {
	seed  int64
	lerp  interp.Func
	curve fade.Func
}

// NewValueBuilder defaults to linear interpolation with a quintic fade.
func NewValueBuilder() *ValueBuilder {
	return &ValueBuilder{seed: noise.DefaultSeed, lerp: interp.Linear, curve: fade.QuinticPoly}
}

// Seed sets the instance seed.
func (b *ValueBuilder) Seed(s int64) *ValueBuilder {
	b.seed = s

	return b
}

// Interpolation sets the corner blend.
func (b *ValueBuilder) Interpolation(fn interp.Func) *ValueBuilder {
	b.lerp = fn

	return b
}

// Fade sets the position smoothing curve.
func (b *ValueBuilder) Fade(fn fade.Func) *ValueBuilder {
	b.curve = fn

	return b
}

// BuildValue validates and returns the concrete generator.
func (b *ValueBuilder) BuildValue() (*Value, error) {
	if b.lerp == nil {
		return nil, noise.Errorf(methodValueBuild, noise.ErrInvalidConfig, "interpolation is nil")
	}
	if b.curve == nil {
		return nil, noise.Errorf(methodValueBuild, noise.ErrInvalidConfig, "fade is nil")
	}

	return &Value{seed: b.seed, lerp: b.lerp, curve: b.curve}, nil
}

// Build implements noise.Builder.
func (b *ValueBuilder) Build() (noise.Source, error) {
	v, err := b.BuildValue()
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Seed returns the instance seed.
func (g *Value) Seed() int64 { return g.seed }

// blend reduces corners with the configured interpolation. The arity always
// matches, so the error branch is unreachable.
func (g *Value) blend(corners, pos []float64) float64 {
	v, _ := interp.LerpNInPlace(g.lerp, corners, pos)
	return v
}

func (g *Value) Eval1DSeed(x float64, seed int64) float64 {
	x0, fx := cellOf(x)
	corners := [2]float64{
		lattice.Value1D(seed, x0),
		lattice.Value1D(seed, x0+1),
	}
	pos := [1]float64{g.curve(fx)}

	return g.blend(corners[:], pos[:])
}

func (g *Value) Eval2DSeed(x, y float64, seed int64) float64 {
	x0, fx := cellOf(x)
	y0, fy := cellOf(y)
	var corners [4]float64
	for i := range corners {
		dx, dy := int64(i&1), int64(i>>1&1)
		corners[i] = lattice.Value2D(seed, x0+dx, y0+dy)
	}
	pos := [2]float64{g.curve(fx), g.curve(fy)}

	return g.blend(corners[:], pos[:])
}

func (g *Value) Eval3DSeed(x, y, z float64, seed int64) float64 {
	x0, fx := cellOf(x)
	y0, fy := cellOf(y)
	z0, fz := cellOf(z)
	var corners [8]float64
	for i := range corners {
		dx, dy, dz := int64(i&1), int64(i>>1&1), int64(i>>2&1)
		corners[i] = lattice.Value3D(seed, x0+dx, y0+dy, z0+dz)
	}
	pos := [3]float64{g.curve(fx), g.curve(fy), g.curve(fz)}

	return g.blend(corners[:], pos[:])
}

func (g *Value) Eval4DSeed(x, y, z, w float64, seed int64) float64 {
	x0, fx := cellOf(x)
	y0, fy := cellOf(y)
	z0, fz := cellOf(z)
	w0, fw := cellOf(w)
	var corners [16]float64
	for i := range corners {
		dx, dy, dz, dw := int64(i&1), int64(i>>1&1), int64(i>>2&1), int64(i>>3&1)
		corners[i] = lattice.Value4D(seed, x0+dx, y0+dy, z0+dz, w0+dw)
	}
	pos := [4]float64{g.curve(fx), g.curve(fy), g.curve(fz), g.curve(fw)}

	return g.blend(corners[:], pos[:])
}

func (g *Value) Eval1D(x float64) float64          { return g.Eval1DSeed(x, g.seed) }
func (g *Value) Eval2D(x, y float64) float64       { return g.Eval2DSeed(x, y, g.seed) }
func (g *Value) Eval3D(x, y, z float64) float64    { return g.Eval3DSeed(x, y, z, g.seed) }
func (g *Value) Eval4D(x, y, z, w float64) float64 { return g.Eval4DSeed(x, y, z, w, g.seed) }
