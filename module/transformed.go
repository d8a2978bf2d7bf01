// SPDX-License-Identifier: MIT
// Package: lvlnoise/module
//
// transformed.go — a Source sampled through a transformer chain.
//
// Transformers run in the order they were added. A chain containing a
// DomainWarp panics on Eval1D with an error wrapping noise.ErrUnsupported.

package module

import (
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/transform"
	"github.com/katalvlaran/lvlnoise/vector"
)

const methodTransformedBuild = "Transformed.Build"

// Transformed remaps coordinates before evaluating its source.
type Transformed struct {
	source noise.Source
	t      transform.Transformer
}

var _ noise.Source = (*Transformed)(nil)

// TransformedBuilder configures a Transformed.
type TransformedBuilder struct {
	source noise.Dependency
	ts     []transform.Transformer
}

// NewTransformedBuilder returns an empty builder.
func NewTransformedBuilder() *TransformedBuilder {
	return &TransformedBuilder{}
}

// Source sets the sampled Source.
func (b *TransformedBuilder) Source(s noise.Source) *TransformedBuilder {
	b.source = noise.Of(s)

	return b
}

// SourceBuilder sets the sampled Source to be built at Build time.
func (b *TransformedBuilder) SourceBuilder(sb noise.Builder) *TransformedBuilder {
	b.source = noise.OfBuilder(sb)

	return b
}

// Transform appends transformers to the chain.
func (b *TransformedBuilder) Transform(ts ...transform.Transformer) *TransformedBuilder {
	b.ts = append(b.ts, ts...)

	return b
}

// Build validates and returns an immutable Transformed.
func (b *TransformedBuilder) Build() (noise.Source, error) {
	src, err := b.source.Resolve(methodTransformedBuild, "source")
	if err != nil {
		return nil, err
	}
	if len(b.ts) == 0 {
		return nil, noise.Errorf(methodTransformedBuild, noise.ErrInvalidConfig, "no transformers")
	}
	for i, t := range b.ts {
		if t == nil {
			return nil, noise.Errorf(methodTransformedBuild, noise.ErrInvalidConfig, "transformer %d is nil", i)
		}
	}

	return &Transformed{source: src, t: transform.Chain(b.ts...)}, nil
}

func (s *Transformed) Eval1D(x float64) float64 {
	v := s.t.Transform1D(vector.Vector1D{X: x})

	return s.source.Eval1D(v.X)
}

func (s *Transformed) Eval2D(x, y float64) float64 {
	v := s.t.Transform2D(vector.Vector2D{X: x, Y: y})

	return s.source.Eval2D(v.X, v.Y)
}

func (s *Transformed) Eval3D(x, y, z float64) float64 {
	v := s.t.Transform3D(vector.Vector3D{X: x, Y: y, Z: z})

	return s.source.Eval3D(v.X, v.Y, v.Z)
}

func (s *Transformed) Eval4D(x, y, z, w float64) float64 {
	v := s.t.Transform4D(vector.Vector4D{X: x, Y: y, Z: z, W: w})

	return s.source.Eval4D(v.X, v.Y, v.Z, v.W)
}
