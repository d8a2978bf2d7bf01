// SPDX-License-Identifier: MIT
// Package: lvlnoise/transform
//
// transform.go — Transformer contracts and composition helpers.

package transform

import (
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/vector"
)

// Axis indexes a coordinate component.
type Axis int

// Axes in component order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// Transformer remaps whole coordinate vectors of every arity.
type Transformer interface {
	Transform1D(v vector.Vector1D) vector.Vector1D
	Transform2D(v vector.Vector2D) vector.Vector2D
	Transform3D(v vector.Vector3D) vector.Vector3D
	Transform4D(v vector.Vector4D) vector.Vector4D
}

// SimpleTransformer remaps each axis independently of the others.
type SimpleTransformer interface {
	TransformAxis(axis Axis, c float64) float64
}

// Simple lifts a per-axis SimpleTransformer to a Transformer.
func Simple(s SimpleTransformer) Transformer {
	if s == nil {
		panic("transform: Simple(nil)")
	}

	return simple{s}
}

type simple struct{ s SimpleTransformer }

func (t simple) Transform1D(v vector.Vector1D) vector.Vector1D {
	return vector.Vector1D{X: t.s.TransformAxis(AxisX, v.X)}
}

func (t simple) Transform2D(v vector.Vector2D) vector.Vector2D {
	return vector.Vector2D{X: t.s.TransformAxis(AxisX, v.X), Y: t.s.TransformAxis(AxisY, v.Y)}
}

func (t simple) Transform3D(v vector.Vector3D) vector.Vector3D {
	return vector.Vector3D{
		X: t.s.TransformAxis(AxisX, v.X),
		Y: t.s.TransformAxis(AxisY, v.Y),
		Z: t.s.TransformAxis(AxisZ, v.Z),
	}
}

func (t simple) Transform4D(v vector.Vector4D) vector.Vector4D {
	return vector.Vector4D{
		X: t.s.TransformAxis(AxisX, v.X),
		Y: t.s.TransformAxis(AxisY, v.Y),
		Z: t.s.TransformAxis(AxisZ, v.Z),
		W: t.s.TransformAxis(AxisW, v.W),
	}
}

// Chain applies ts left to right. Panics on a nil entry.
func Chain(ts ...Transformer) Transformer {
	for i, t := range ts {
		if t == nil {
			panic(noise.Errorf("transform.Chain", noise.ErrInvalidConfig, "transformer %d is nil", i))
		}
	}
	out := make(chain, len(ts))
	copy(out, ts)

	return out
}

type chain []Transformer

func (c chain) Transform1D(v vector.Vector1D) vector.Vector1D {
	for _, t := range c {
		v = t.Transform1D(v)
	}
	return v
}

func (c chain) Transform2D(v vector.Vector2D) vector.Vector2D {
	for _, t := range c {
		v = t.Transform2D(v)
	}
	return v
}

func (c chain) Transform3D(v vector.Vector3D) vector.Vector3D {
	for _, t := range c {
		v = t.Transform3D(v)
	}
	return v
}

func (c chain) Transform4D(v vector.Vector4D) vector.Vector4D {
	for _, t := range c {
		v = t.Transform4D(v)
	}
	return v
}
