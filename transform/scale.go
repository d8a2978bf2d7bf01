// SPDX-License-Identifier: MIT
// Package: lvlnoise/transform
//
// scale.go — per-axis multiply.
//
// Contract:
//   • Every factor must be finite and non-zero (a zero factor collapses an
//     axis and makes any later division by the scale undefined).

package transform

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/vector"
)

const methodScale = "transform.NewScale"

// Scale multiplies each axis by its own factor.
type Scale struct {
	factors [4]float64
}

// NewScale returns a Scale with factors for x, y, z and w.
func NewScale(x, y, z, w float64) (Scale, error) {
	factors := [4]float64{x, y, z, w}
	for i, f := range factors {
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return Scale{}, noise.Errorf(methodScale, noise.ErrInvalidConfig, "axis %d factor %g", i, f)
		}
	}

	return Scale{factors: factors}, nil
}

// NewUniformScale returns a Scale using s on every axis.
func NewUniformScale(s float64) (Scale, error) {
	return NewScale(s, s, s, s)
}

// Factor returns the multiplier of axis.
func (s Scale) Factor(axis Axis) float64 { return s.factors[axis] }

// TransformAxis implements SimpleTransformer.
func (s Scale) TransformAxis(axis Axis, c float64) float64 { return c * s.factors[axis] }

func (s Scale) Transform1D(v vector.Vector1D) vector.Vector1D {
	return vector.Vector1D{X: v.X * s.factors[0]}
}

func (s Scale) Transform2D(v vector.Vector2D) vector.Vector2D {
	return vector.Vector2D{X: v.X * s.factors[0], Y: v.Y * s.factors[1]}
}

func (s Scale) Transform3D(v vector.Vector3D) vector.Vector3D {
	return vector.Vector3D{X: v.X * s.factors[0], Y: v.Y * s.factors[1], Z: v.Z * s.factors[2]}
}

func (s Scale) Transform4D(v vector.Vector4D) vector.Vector4D {
	return vector.Vector4D{
		X: v.X * s.factors[0], Y: v.Y * s.factors[1],
		Z: v.Z * s.factors[2], W: v.W * s.factors[3],
	}
}
