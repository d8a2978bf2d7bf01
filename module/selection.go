// SPDX-License-Identifier: MIT
// Package: lvlnoise/module
//
// selection.go — threshold branch between two Sources.
//
// Contract:
//   • Eval = a(p) when control(p) >= boundary, else b(p).
//   • Exactly one of a, b is evaluated per call; the other branch may be
//     arbitrarily expensive and is never touched.
//   • Defaults: boundary 0.

package module

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
)

const methodSelectionBuild = "Selection.Build"

// DefaultBoundary is the selection threshold when none is set.
const DefaultBoundary = 0.0

// Selection picks between two Sources using a control Source.
type Selection struct {
	a, b, control noise.Source
	boundary      float64
}

var _ noise.Source = (*Selection)(nil)

// SelectionBuilder configures a Selection.
type SelectionBuilder struct {
	a, b, control noise.Dependency
	boundary      float64
}

// NewSelectionBuilder returns a builder with DefaultBoundary.
func NewSelectionBuilder() *SelectionBuilder {
	return &SelectionBuilder{boundary: DefaultBoundary}
}

// A sets the branch taken when control >= boundary.
func (b *SelectionBuilder) A(s noise.Source) *SelectionBuilder {
	b.a = noise.Of(s)

	return b
}

// ABuilder is A with a Builder.
func (b *SelectionBuilder) ABuilder(sb noise.Builder) *SelectionBuilder {
	b.a = noise.OfBuilder(sb)

	return b
}

// B sets the branch taken when control < boundary.
func (b *SelectionBuilder) B(s noise.Source) *SelectionBuilder {
	b.b = noise.Of(s)

	return b
}

// BBuilder is B with a Builder.
func (b *SelectionBuilder) BBuilder(sb noise.Builder) *SelectionBuilder {
	b.b = noise.OfBuilder(sb)

	return b
}

// Control sets the Source compared against the boundary.
func (b *SelectionBuilder) Control(s noise.Source) *SelectionBuilder {
	b.control = noise.Of(s)

	return b
}

// ControlBuilder is Control with a Builder.
func (b *SelectionBuilder) ControlBuilder(sb noise.Builder) *SelectionBuilder {
	b.control = noise.OfBuilder(sb)

	return b
}

// Boundary sets the threshold.
func (b *SelectionBuilder) Boundary(v float64) *SelectionBuilder {
	b.boundary = v

	return b
}

// Build validates and returns an immutable Selection.
func (b *SelectionBuilder) Build() (noise.Source, error) {
	a, err := b.a.Resolve(methodSelectionBuild, "a")
	if err != nil {
		return nil, err
	}
	second, err := b.b.Resolve(methodSelectionBuild, "b")
	if err != nil {
		return nil, err
	}
	control, err := b.control.Resolve(methodSelectionBuild, "control")
	if err != nil {
		return nil, err
	}
	if math.IsNaN(b.boundary) {
		return nil, noise.Errorf(methodSelectionBuild, noise.ErrInvalidConfig, "boundary is NaN")
	}

	return &Selection{a: a, b: second, control: control, boundary: b.boundary}, nil
}

func (s *Selection) Eval1D(x float64) float64 {
	if s.control.Eval1D(x) >= s.boundary {
		return s.a.Eval1D(x)
	}

	return s.b.Eval1D(x)
}

func (s *Selection) Eval2D(x, y float64) float64 {
	if s.control.Eval2D(x, y) >= s.boundary {
		return s.a.Eval2D(x, y)
	}

	return s.b.Eval2D(x, y)
}

func (s *Selection) Eval3D(x, y, z float64) float64 {
	if s.control.Eval3D(x, y, z) >= s.boundary {
		return s.a.Eval3D(x, y, z)
	}

	return s.b.Eval3D(x, y, z)
}

func (s *Selection) Eval4D(x, y, z, w float64) float64 {
	if s.control.Eval4D(x, y, z, w) >= s.boundary {
		return s.a.Eval4D(x, y, z, w)
	}

	return s.b.Eval4D(x, y, z, w)
}
