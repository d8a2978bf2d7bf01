// SPDX-License-Identifier: MIT
// Package generator holds the leaf Sources of an evaluation graph.
//
//	Constant     — the same value everywhere
//	White        — one hashed value per lattice cell, in [-1, 1)
//	Gaussian     — one normally distributed value per lattice cell
//	Value        — lattice values blended by an Interpolation and a FadeFunction
//	Cellular     — Worley noise: distances to jittered feature points
//	Perlin       — gradient noise backed by github.com/aquilax/go-perlin
//	OpenSimplex  — simplex-lattice noise backed by github.com/ojrac/opensimplex-go
//
// Hash-based generators (White, Gaussian, Value, Cellular) implement
// noise.SeededGenerator: every arity also accepts an explicit seed. Cellular
// additionally implements noise.SeededExplicit[CellResult].
//
// All generators are immutable after construction. Generators with tunable
// parameters are produced by a builder whose Build validates everything up
// front; evaluation never fails.
package generator
