// SPDX-License-Identifier: MIT
package generator

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
)

const methodConstantBuild = "Constant.Build"

// Constant returns the same value for every coordinate.
type Constant struct {
	value float64
}

// NewConstant returns a Constant source.
func NewConstant(v float64) *Constant { return &Constant{value: v} }

// ConstantBuilder configures a Constant. The default value is 0.
type ConstantBuilder struct {
	value float64
}

// NewConstantBuilder returns a builder for the zero field.
func NewConstantBuilder() *ConstantBuilder { return &ConstantBuilder{} }

// Value sets the constant (finite).
func (b *ConstantBuilder) Value(v float64) *ConstantBuilder {
	b.value = v

	return b
}

// Build implements noise.Builder.
func (b *ConstantBuilder) Build() (noise.Source, error) {
	if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
		return nil, noise.Errorf(methodConstantBuild, noise.ErrInvalidConfig, "value %g", b.value)
	}

	return NewConstant(b.value), nil
}

// Value returns the constant.
func (c *Constant) Value() float64 { return c.value }

func (c *Constant) Eval1D(float64) float64 { return c.value }

func (c *Constant) Eval2D(_, _ float64) float64 { return c.value }

func (c *Constant) Eval3D(_, _, _ float64) float64 { return c.value }

func (c *Constant) Eval4D(_, _, _, _ float64) float64 { return c.value }
