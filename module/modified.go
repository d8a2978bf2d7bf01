// SPDX-License-Identifier: MIT
// Package: lvlnoise/module
//
// modified.go — a Source whose output passes through modifiers, in order.

package module

import (
	"github.com/katalvlaran/lvlnoise/modifier"
	"github.com/katalvlaran/lvlnoise/noise"
)

const methodModifiedBuild = "Modified.Build"

// Modified post-processes its source's output.
type Modified struct {
	source noise.Source
	m      modifier.Modifier
}

var _ noise.Source = (*Modified)(nil)

// ModifiedBuilder configures a Modified.
type ModifiedBuilder struct {
	source noise.Dependency
	ms     []modifier.Modifier
}

// NewModifiedBuilder returns an empty builder.
func NewModifiedBuilder() *ModifiedBuilder {
	return &ModifiedBuilder{}
}

// Source sets the modified Source.
func (b *ModifiedBuilder) Source(s noise.Source) *ModifiedBuilder {
	b.source = noise.Of(s)

	return b
}

// SourceBuilder sets the modified Source to be built at Build time.
func (b *ModifiedBuilder) SourceBuilder(sb noise.Builder) *ModifiedBuilder {
	b.source = noise.OfBuilder(sb)

	return b
}

// Modify appends modifiers.
func (b *ModifiedBuilder) Modify(ms ...modifier.Modifier) *ModifiedBuilder {
	b.ms = append(b.ms, ms...)

	return b
}

// Build validates and returns an immutable Modified.
func (b *ModifiedBuilder) Build() (noise.Source, error) {
	src, err := b.source.Resolve(methodModifiedBuild, "source")
	if err != nil {
		return nil, err
	}
	if len(b.ms) == 0 {
		return nil, noise.Errorf(methodModifiedBuild, noise.ErrInvalidConfig, "no modifiers")
	}
	for i, m := range b.ms {
		if m == nil {
			return nil, noise.Errorf(methodModifiedBuild, noise.ErrInvalidConfig, "modifier %d is nil", i)
		}
	}

	return &Modified{source: src, m: modifier.Chain(b.ms...)}, nil
}

func (s *Modified) Eval1D(x float64) float64 { return s.m.Modify(s.source.Eval1D(x)) }

func (s *Modified) Eval2D(x, y float64) float64 { return s.m.Modify(s.source.Eval2D(x, y)) }

func (s *Modified) Eval3D(x, y, z float64) float64 {
	return s.m.Modify(s.source.Eval3D(x, y, z))
}

func (s *Modified) Eval4D(x, y, z, w float64) float64 {
	return s.m.Modify(s.source.Eval4D(x, y, z, w))
}
