// Package lvlnoise is a composable procedural-noise toolkit: small immutable
// nodes wired into evaluation graphs that map 1D–4D coordinates to scalars.
//
// 🚀 What is an evaluation graph?
//
//	coordinates → transform(s) → generator(s) → module(s) → modifier(s) → value
//
//	A pure-Go library that brings together:
//		• Contracts: Source, SeededGenerator, ExplicitSource[R], Builder (noise/)
//		• Hashing: deterministic lattice hash and value hash (lattice/)
//		• Catalogues: interpolation, fade, distance, minimization, combiners,
//		  return-distance and fractal functions, each with a name registry
//		• Generators: constant, white, gaussian, value, cellular (Worley),
//		  Perlin (go-perlin), OpenSimplex (opensimplex-go)
//		• Modules: combination, selection, fractal octavation, transformed,
//		  modified
//		• Transforms & modifiers: scale, domain warp, abs, clamp, invert
//		• Pipelines: YAML graph descriptions (pipeline/) and parallel
//		  rasterization (raster/, cmd/noisemap)
//
// ✨ Guarantees:
//
//   - Determinism – identical graph and coordinates give bit-identical output
//   - Immutability – built nodes never change, builders validate once at Build
//   - Concurrency – a built graph may be evaluated from any number of goroutines
//   - Explicit errors – every configuration error matches noise.ErrInvalidConfig
//
// Quick start:
//
//	base, _ := generator.NewValueBuilder().Seed(42).Build()
//	terrain, _ := module.NewFractalBuilder().
//		Source(base).Octaves(5).Persistence(0.5).Lacunarity(2).
//		Build()
//	h := terrain.Eval2D(x, y)
package lvlnoise
