// SPDX-License-Identifier: MIT
// Package module composes Sources into new Sources.
//
//	Combination — combiner(a(p), b(p))
//	Selection   — a(p) if control(p) >= boundary, else b(p); only one branch runs
//	Fractal     — octave sum of a base Source shaped by a fractal.Func
//	Transformed — a Source sampled through a transform.Transformer chain
//	Modified    — a Source whose output passes through modifier.Modifiers
//
// Every module is produced by a builder. Builders accept either a built
// noise.Source or another noise.Builder for each input (the latter is built
// on demand), fill documented defaults, and perform all validation in Build.
// A successfully built module never fails during evaluation and holds only
// immutable, shared-by-reference inputs, so it may be evaluated from any
// number of goroutines at once.
//
// Example:
//
//	base := generator.NewOpenSimplexBuilder().Seed(42)
//	terrain, err := module.NewFractalBuilder().
//		SourceBuilder(base).
//		Octaves(5).Persistence(0.5).Lacunarity(2).
//		Function(fractal.RidgedMulti).
//		Build()
package module
