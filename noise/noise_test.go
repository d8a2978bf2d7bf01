// SPDX-License-Identifier: MIT
package noise_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/stretchr/testify/require"
)

// kernel is a minimal SeededKernel returning its seed plus x.
type kernel struct{ seed int64 }

func (k kernel) Seed() int64 { return k.seed }
func (k kernel) Eval1DSeed(x float64, seed int64) float64 {
	return float64(seed) + x
}
func (k kernel) Eval2DSeed(x, _ float64, seed int64) float64 {
	return float64(seed) + x
}
func (k kernel) Eval3DSeed(x, _, _ float64, seed int64) float64 {
	return float64(seed) + x
}
func (k kernel) Eval4DSeed(x, _, _, _ float64, seed int64) float64 {
	return float64(seed) + x
}

// tagged is an explicit result carrying an extra label.
type tagged struct {
	v   float64
	tag string
}

func (r tagged) Value() float64             { return r.v }
func (r tagged) WithValue(v float64) tagged { return tagged{v: v, tag: r.tag} }

type explicitConst struct{}

func (explicitConst) Explicit1D(float64) tagged            { return tagged{1, "one"} }
func (explicitConst) Explicit2D(_, _ float64) tagged       { return tagged{2, "two"} }
func (explicitConst) Explicit3D(_, _, _ float64) tagged    { return tagged{3, "three"} }
func (explicitConst) Explicit4D(_, _, _, _ float64) tagged { return tagged{4, "four"} }

// TestWithSeed_DelegatesToInstanceSeed verifies unseeded calls use the instance seed.
func TestWithSeed_DelegatesToInstanceSeed(t *testing.T) {
	g := noise.WithSeed(kernel{seed: 10})
	require.Equal(t, int64(10), g.Seed())
	require.Equal(t, 10.5, g.Eval1D(0.5))
	require.Equal(t, 11.0, g.Eval2D(1, 9))
	require.Equal(t, 12.0, g.Eval3D(2, 9, 9))
	require.Equal(t, 13.0, g.Eval4D(3, 9, 9, 9))
	require.Equal(t, 21.0, g.Eval1DSeed(1, 20))
}

// TestReseed_LeavesOriginalUntouched ensures Reseed returns a new generator.
func TestReseed_LeavesOriginalUntouched(t *testing.T) {
	w := generator.NewWhite(1)
	r := noise.Reseed(w, 2)
	require.Equal(t, int64(2), r.Seed())
	require.Equal(t, int64(1), w.Seed())
	require.Equal(t, w.Eval2DSeed(7, 8, 2), r.Eval2D(7, 8))
	require.Equal(t, generator.NewWhite(2).Eval3D(1, 2, 3), r.Eval3D(1, 2, 3))
}

// TestScalar_DropsAuxiliaryData verifies Scalar exposes only the result value.
func TestScalar_DropsAuxiliaryData(t *testing.T) {
	s := noise.Scalar[tagged](explicitConst{})
	require.Equal(t, 1.0, s.Eval1D(0))
	require.Equal(t, 2.0, s.Eval2D(0, 0))
	require.Equal(t, 3.0, s.Eval3D(0, 0, 0))
	require.Equal(t, 4.0, s.Eval4D(0, 0, 0, 0))
}

// TestValueResult_CopyOnWrite ensures WithValue copies.
func TestValueResult_CopyOnWrite(t *testing.T) {
	r := noise.ValueResult{V: 1}
	r2 := r.WithValue(5)
	require.Equal(t, 1.0, r.Value())
	require.Equal(t, 5.0, r2.Value())
}

// TestDependency covers the unset, source and builder states of a Dependency.
func TestDependency(t *testing.T) {
	c := generator.NewConstant(3)

	// 1. zero value is unset and resolves to ErrMissingDependency.
	var zero noise.Dependency
	require.False(t, zero.IsSet())
	_, err := zero.Resolve("X.Build", "a")
	require.ErrorIs(t, err, noise.ErrMissingDependency)
	require.ErrorIs(t, err, noise.ErrInvalidConfig)
	require.Contains(t, err.Error(), "X.Build")

	// 2. a set source resolves to itself.
	d := noise.Of(c)
	require.True(t, d.IsSet())
	got, err := d.Resolve("X.Build", "a")
	require.NoError(t, err)
	require.Same(t, c, got)

	// 3. a builder is built on Resolve; a nil product is still missing.
	got, err = noise.OfBuilder(noise.Built(c)).Resolve("X.Build", "a")
	require.NoError(t, err)
	require.Same(t, c, got)

	_, err = noise.OfBuilder(noise.Built(nil)).Resolve("X.Build", "a")
	require.ErrorIs(t, err, noise.ErrMissingDependency)
}

// TestErrorf_WrapsSentinel pins the method-prefixed message and the wrapped sentinel.
func TestErrorf_WrapsSentinel(t *testing.T) {
	err := noise.Errorf("Scale.Build", noise.ErrInvalidConfig, "axis %d is zero", 2)
	require.True(t, errors.Is(err, noise.ErrInvalidConfig))
	require.False(t, errors.Is(err, noise.ErrUnsupported))
	require.Equal(t, "Scale.Build: axis 2 is zero: noise: invalid configuration", err.Error())
}

// TestFunc_Adapter covers the per-arity function adapter and its nil arity panic.
func TestFunc_Adapter(t *testing.T) {
	f := noise.Func{
		F2: func(x, y float64) float64 { return x * y },
	}
	require.Equal(t, 6.0, f.Eval2D(2, 3))
	require.Panics(t, func() { f.Eval1D(1) })
}
