// SPDX-License-Identifier: MIT
// Package: lvlnoise/noise
//
// adapters.go — blanket implementations derived from narrower capabilities.

package noise

// WithSeed binds a SeededKernel to its own Seed(), yielding a full
// SeededGenerator whose unseeded overloads delegate to the seeded ones.
func WithSeed(k SeededKernel) SeededGenerator {
	return seedBound{k}
}

type seedBound struct {
	SeededKernel
}

func (s seedBound) Eval1D(x float64) float64 { return s.Eval1DSeed(x, s.Seed()) }
func (s seedBound) Eval2D(x, y float64) float64 {
	return s.Eval2DSeed(x, y, s.Seed())
}
func (s seedBound) Eval3D(x, y, z float64) float64 {
	return s.Eval3DSeed(x, y, z, s.Seed())
}
func (s seedBound) Eval4D(x, y, z, w float64) float64 {
	return s.Eval4DSeed(x, y, z, w, s.Seed())
}

// Reseed returns a SeededGenerator that evaluates g under a different default
// seed. g itself is untouched.
func Reseed(g SeededKernel, seed int64) SeededGenerator {
	return seedBound{reseeded{SeededKernel: g, seed: seed}}
}

type reseeded struct {
	SeededKernel
	seed int64
}

func (r reseeded) Seed() int64 { return r.seed }

// Scalar drops the auxiliary data of an ExplicitSource, exposing it as a Source.
func Scalar[R Result[R]](e ExplicitSource[R]) Source {
	return scalarOf[R]{e}
}

type scalarOf[R Result[R]] struct {
	e ExplicitSource[R]
}

func (s scalarOf[R]) Eval1D(x float64) float64       { return s.e.Explicit1D(x).Value() }
func (s scalarOf[R]) Eval2D(x, y float64) float64    { return s.e.Explicit2D(x, y).Value() }
func (s scalarOf[R]) Eval3D(x, y, z float64) float64 { return s.e.Explicit3D(x, y, z).Value() }
func (s scalarOf[R]) Eval4D(x, y, z, w float64) float64 {
	return s.e.Explicit4D(x, y, z, w).Value()
}

// Func adapts four plain functions into a Source. Nil arities panic when
// called, so Func is meant for tests and quick prototypes.
type Func struct {
	F1 func(x float64) float64
	F2 func(x, y float64) float64
	F3 func(x, y, z float64) float64
	F4 func(x, y, z, w float64) float64
}

func (f Func) Eval1D(x float64) float64          { return f.F1(x) }
func (f Func) Eval2D(x, y float64) float64       { return f.F2(x, y) }
func (f Func) Eval3D(x, y, z float64) float64    { return f.F3(x, y, z) }
func (f Func) Eval4D(x, y, z, w float64) float64 { return f.F4(x, y, z, w) }

// Built wraps an already built Source as a Builder.
func Built(s Source) Builder {
	return built{s}
}

type built struct{ s Source }

func (b built) Build() (Source, error) {
	if b.s == nil {
		return nil, ErrMissingDependency
	}

	return b.s, nil
}
