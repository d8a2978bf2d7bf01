// SPDX-License-Identifier: MIT
// Package vector provides the immutable 1D–4D coordinate tuples that flow
// through every noise pipeline.
//
// Vectors are plain value types: they are passed by value, never shared by
// pointer, and compared bitwise. Bitwise comparison (rather than an epsilon)
// keeps reproducibility tests strict: two pipelines are equal only when they
// produce the exact same doubles.
//
//	v := vector.Vector2D{X: 1, Y: 2}
//	w := v.Scale(0.5).Add(vector.Vector2D{X: 3})
//	_ = v.Dot(w)
package vector
