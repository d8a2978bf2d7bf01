// SPDX-License-Identifier: MIT
// Package: lvlnoise/transform
//
// warp.go — domain warping: displace coordinates by an auxiliary field.
//
// Contract:
//   • Axis 0 is displaced by the field sampled at the input point; axis i>0 by
//     the field sampled at input + offset[i-1]. An N-D warp therefore needs
//     exactly N-1 offsets (1 for 2D, 2 for 3D, 3 for 4D).
//   • output[axis] = input[axis] + amplitude[axis] * sample[axis].
//   • A 1D warp is structurally impossible: Warp1D returns ErrUnsupported and
//     Transform1D panics with that error.

package transform

import (
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/vector"
)

const (
	methodWarpBuild = "DomainWarp.Build"
	methodWarp1D    = "DomainWarp.Warp1D"
)

// Default sampling offsets: far from the lattice and from each other so the
// per-axis samples decorrelate.
var (
	DefaultOffsets2D = []vector.Vector2D{{X: 5.2, Y: 1.3}}
	DefaultOffsets3D = []vector.Vector3D{
		{X: 5.2, Y: 1.3, Z: 7.1},
		{X: 1.7, Y: 9.2, Z: 3.4},
	}
	DefaultOffsets4D = []vector.Vector4D{
		{X: 5.2, Y: 1.3, Z: 7.1, W: 2.9},
		{X: 1.7, Y: 9.2, Z: 3.4, W: 8.3},
		{X: 8.8, Y: 4.6, Z: 0.9, W: 6.1},
	}
)

// DomainWarp displaces coordinates by an auxiliary Source.
type DomainWarp struct {
	source    noise.Source
	amplitude vector.Vector4D
	offsets2  [1]vector.Vector2D
	offsets3  [2]vector.Vector3D
	offsets4  [3]vector.Vector4D
}

// DomainWarpBuilder configures a DomainWarp. The zero value is not usable;
// start from NewDomainWarpBuilder.
type DomainWarpBuilder struct {
	source    noise.Dependency
	amplitude vector.Vector4D
	offsets2  []vector.Vector2D
	offsets3  []vector.Vector3D
	offsets4  []vector.Vector4D
}

// NewDomainWarpBuilder returns a builder with unit amplitude and the default
// offsets.
func NewDomainWarpBuilder() *DomainWarpBuilder {
	return &DomainWarpBuilder{
		amplitude: vector.Vector4D{X: 1, Y: 1, Z: 1, W: 1},
		offsets2:  DefaultOffsets2D,
		offsets3:  DefaultOffsets3D,
		offsets4:  DefaultOffsets4D,
	}
}

// Source sets the warp field.
func (b *DomainWarpBuilder) Source(s noise.Source) *DomainWarpBuilder {
	b.source = noise.Of(s)
	return b
}

// SourceBuilder sets the warp field to be built at Build time.
func (b *DomainWarpBuilder) SourceBuilder(sb noise.Builder) *DomainWarpBuilder {
	b.source = noise.OfBuilder(sb)
	return b
}

// Amplitude sets the per-axis displacement multiplier.
func (b *DomainWarpBuilder) Amplitude(a vector.Vector4D) *DomainWarpBuilder {
	b.amplitude = a
	return b
}

// UniformAmplitude sets the same displacement multiplier on every axis.
func (b *DomainWarpBuilder) UniformAmplitude(a float64) *DomainWarpBuilder {
	b.amplitude = vector.Vector4D{X: a, Y: a, Z: a, W: a}
	return b
}

// Offsets2D sets the sampling offsets of the 2D warp (exactly 1).
func (b *DomainWarpBuilder) Offsets2D(o ...vector.Vector2D) *DomainWarpBuilder {
	b.offsets2 = append([]vector.Vector2D(nil), o...)
	return b
}

// Offsets3D sets the sampling offsets of the 3D warp (exactly 2).
func (b *DomainWarpBuilder) Offsets3D(o ...vector.Vector3D) *DomainWarpBuilder {
	b.offsets3 = append([]vector.Vector3D(nil), o...)
	return b
}

// Offsets4D sets the sampling offsets of the 4D warp (exactly 3).
func (b *DomainWarpBuilder) Offsets4D(o ...vector.Vector4D) *DomainWarpBuilder {
	b.offsets4 = append([]vector.Vector4D(nil), o...)
	return b
}

// Build validates the configuration and returns an immutable DomainWarp.
func (b *DomainWarpBuilder) Build() (*DomainWarp, error) {
	src, err := b.source.Resolve(methodWarpBuild, "source")
	if err != nil {
		return nil, err
	}
	for i, a := range b.amplitude.Components() {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, noise.Errorf(methodWarpBuild, noise.ErrInvalidConfig, "amplitude axis %d is %g", i, a)
		}
	}
	if len(b.offsets2) != 1 {
		return nil, noise.Errorf(methodWarpBuild, noise.ErrInvalidConfig, "2D warp needs 1 offset, got %d", len(b.offsets2))
	}
	if len(b.offsets3) != 2 {
		return nil, noise.Errorf(methodWarpBuild, noise.ErrInvalidConfig, "3D warp needs 2 offsets, got %d", len(b.offsets3))
	}
	if len(b.offsets4) != 3 {
		return nil, noise.Errorf(methodWarpBuild, noise.ErrInvalidConfig, "4D warp needs 3 offsets, got %d", len(b.offsets4))
	}

	w := &DomainWarp{source: src, amplitude: b.amplitude}
	copy(w.offsets2[:], b.offsets2)
	copy(w.offsets3[:], b.offsets3)
	copy(w.offsets4[:], b.offsets4)

	return w, nil
}

// Warp1D always fails: one scalar field cannot displace a lone axis by a
// second, independent sample.
func (w *DomainWarp) Warp1D(vector.Vector1D) (vector.Vector1D, error) {
	return vector.Vector1D{}, noise.Errorf(methodWarp1D, noise.ErrUnsupported, "1D domain warp")
}

// Transform1D panics with the error of Warp1D.
func (w *DomainWarp) Transform1D(v vector.Vector1D) vector.Vector1D {
	_, err := w.Warp1D(v)
	panic(err)
}

// Transform2D displaces (x, y).
func (w *DomainWarp) Transform2D(v vector.Vector2D) vector.Vector2D {
	o := w.offsets2[0]
	sx := w.source.Eval2D(v.X, v.Y)
	sy := w.source.Eval2D(v.X+o.X, v.Y+o.Y)

	return vector.Vector2D{
		X: v.X + w.amplitude.X*sx,
		Y: v.Y + w.amplitude.Y*sy,
	}
}

// Transform3D displaces (x, y, z).
func (w *DomainWarp) Transform3D(v vector.Vector3D) vector.Vector3D {
	o1, o2 := w.offsets3[0], w.offsets3[1]
	sx := w.source.Eval3D(v.X, v.Y, v.Z)
	sy := w.source.Eval3D(v.X+o1.X, v.Y+o1.Y, v.Z+o1.Z)
	sz := w.source.Eval3D(v.X+o2.X, v.Y+o2.Y, v.Z+o2.Z)

	return vector.Vector3D{
		X: v.X + w.amplitude.X*sx,
		Y: v.Y + w.amplitude.Y*sy,
		Z: v.Z + w.amplitude.Z*sz,
	}
}

// Transform4D displaces (x, y, z, w).
func (w *DomainWarp) Transform4D(v vector.Vector4D) vector.Vector4D {
	o1, o2, o3 := w.offsets4[0], w.offsets4[1], w.offsets4[2]
	sx := w.source.Eval4D(v.X, v.Y, v.Z, v.W)
	sy := w.source.Eval4D(v.X+o1.X, v.Y+o1.Y, v.Z+o1.Z, v.W+o1.W)
	sz := w.source.Eval4D(v.X+o2.X, v.Y+o2.Y, v.Z+o2.Z, v.W+o2.W)
	sw := w.source.Eval4D(v.X+o3.X, v.Y+o3.Y, v.Z+o3.Z, v.W+o3.W)

	return vector.Vector4D{
		X: v.X + w.amplitude.X*sx,
		Y: v.Y + w.amplitude.Y*sy,
		Z: v.Z + w.amplitude.Z*sz,
		W: v.W + w.amplitude.W*sw,
	}
}
