// SPDX-License-Identifier: MIT
// Package: lvlnoise/vector
//
// vector.go — Vector1D..Vector4D value types.
//
// Contract:
//   • All methods have value receivers and return new values; no mutation.
//   • Equal compares IEEE-754 bit patterns (so NaN equals an identical NaN,
//     and +0 differs from -0).

package vector

import "math"

// Vector1D is a one-component coordinate.
type Vector1D struct {
	X float64
}

// Vector2D is a two-component coordinate.
type Vector2D struct {
	X, Y float64
}

// Vector3D is a three-component coordinate.
type Vector3D struct {
	X, Y, Z float64
}

// Vector4D is a four-component coordinate.
type Vector4D struct {
	X, Y, Z, W float64
}

// sameBits reports whether a and b have identical bit patterns.
func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

// Dot returns v·o.
func (v Vector1D) Dot(o Vector1D) float64 { return v.X * o.X }

// Add returns v+o.
func (v Vector1D) Add(o Vector1D) Vector1D { return Vector1D{X: v.X + o.X} }

// Scale returns v*s.
func (v Vector1D) Scale(s float64) Vector1D { return Vector1D{X: v.X * s} }

// Equal reports bitwise equality.
func (v Vector1D) Equal(o Vector1D) bool { return sameBits(v.X, o.X) }

// Components returns the vector as a fixed-size array.
func (v Vector1D) Components() [1]float64 { return [1]float64{v.X} }

// Dot returns v·o.
func (v Vector2D) Dot(o Vector2D) float64 { return v.X*o.X + v.Y*o.Y }

// Add returns v+o.
func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*s.
func (v Vector2D) Scale(s float64) Vector2D { return Vector2D{X: v.X * s, Y: v.Y * s} }

// Equal reports bitwise equality.
func (v Vector2D) Equal(o Vector2D) bool { return sameBits(v.X, o.X) && sameBits(v.Y, o.Y) }

// Components returns the vector as a fixed-size array.
func (v Vector2D) Components() [2]float64 { return [2]float64{v.X, v.Y} }

// Dot returns v·o.
func (v Vector3D) Dot(o Vector3D) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Add returns v+o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v*s.
func (v Vector3D) Scale(s float64) Vector3D { return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Equal reports bitwise equality.
func (v Vector3D) Equal(o Vector3D) bool {
	return sameBits(v.X, o.X) && sameBits(v.Y, o.Y) && sameBits(v.Z, o.Z)
}

// Components returns the vector as a fixed-size array.
func (v Vector3D) Components() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Dot returns v·o.
func (v Vector4D) Dot(o Vector4D) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// Add returns v+o.
func (v Vector4D) Add(o Vector4D) Vector4D {
	return Vector4D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Scale returns v*s.
func (v Vector4D) Scale(s float64) Vector4D {
	return Vector4D{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Equal reports bitwise equality.
func (v Vector4D) Equal(o Vector4D) bool {
	return sameBits(v.X, o.X) && sameBits(v.Y, o.Y) && sameBits(v.Z, o.Z) && sameBits(v.W, o.W)
}

// Components returns the vector as a fixed-size array.
func (v Vector4D) Components() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }
