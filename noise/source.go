// SPDX-License-Identifier: MIT
// Package: lvlnoise/noise
//
// source.go — capability interfaces.
//
// Contract:
//   • Implementations hold only immutable configuration; Eval* must be safe to
//     call from many goroutines at once.
//   • The same coordinates (and seed) must always yield bit-identical output.

package noise

// DefaultSeed is the seed used by generator builders when none is set.
const DefaultSeed int64 = 1729

// Source is the universal noise contract for 1–4 dimensions.
type Source interface {
	Eval1D(x float64) float64
	Eval2D(x, y float64) float64
	Eval3D(x, y, z float64) float64
	Eval4D(x, y, z, w float64) float64
}

// Seeded exposes the instance seed.
type Seeded interface {
	Seed() int64
}

// SeededKernel is the seeded half of a generator: every arity with an explicit
// seed overriding the instance seed.
type SeededKernel interface {
	Seeded
	Eval1DSeed(x float64, seed int64) float64
	Eval2DSeed(x, y float64, seed int64) float64
	Eval3DSeed(x, y, z float64, seed int64) float64
	Eval4DSeed(x, y, z, w float64, seed int64) float64
}

// SeededGenerator is a Source whose output is reproducible from its seed.
type SeededGenerator interface {
	Source
	SeededKernel
}

// Result is a scalar plus algorithm-specific auxiliary data. WithValue returns
// a copy carrying v; the receiver is never modified.
type Result[R any] interface {
	Value() float64
	WithValue(v float64) R
}

// ExplicitSource evaluates to a rich Result instead of a bare scalar.
type ExplicitSource[R Result[R]] interface {
	Explicit1D(x float64) R
	Explicit2D(x, y float64) R
	Explicit3D(x, y, z float64) R
	Explicit4D(x, y, z, w float64) R
}

// SeededExplicitKernel is ExplicitSource with explicit seed overloads.
type SeededExplicitKernel[R Result[R]] interface {
	Explicit1DSeed(x float64, seed int64) R
	Explicit2DSeed(x, y float64, seed int64) R
	Explicit3DSeed(x, y, z float64, seed int64) R
	Explicit4DSeed(x, y, z, w float64, seed int64) R
}

// SeededExplicit bundles every capability of a seeded, explicit generator.
type SeededExplicit[R Result[R]] interface {
	SeededGenerator
	ExplicitSource[R]
	SeededExplicitKernel[R]
}

// Builder produces an immutable Source. A builder may be mutated and built
// again; every produced Source is independent of later mutations.
type Builder interface {
	Build() (Source, error)
}
