// SPDX-License-Identifier: MIT
package interp_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/interp"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/stretchr/testify/require"
)

// TestInterpolation_BoundaryLaw verifies lerp(0)=a and lerp(1)=b for every interpolation.
func TestInterpolation_BoundaryLaw(t *testing.T) {
	pairs := [][2]float64{{0, 1}, {-3.5, 7.25}, {1e9, -1e9}, {0.1, 0.1}, {-2, -8}}
	for _, name := range []string{"linear", "quadratic", "cubic", "quartic", "cosine"} {
		fn, err := interp.Lookup(name)
		require.NoError(t, err, name)
		for _, p := range pairs {
			require.Equal(t, p[0], fn(0, p[0], p[1]), name)
			require.Equal(t, p[1], fn(1, p[0], p[1]), name)
		}
	}
}

// TestInterpolation_Midpoints pins each interpolation at x=0.5.
func TestInterpolation_Midpoints(t *testing.T) {
	require.Equal(t, 0.5, interp.Linear(0.5, 0, 1))
	require.Equal(t, 0.25, interp.Quadratic(0.5, 0, 1))
	require.Equal(t, 0.125, interp.Cubic(0.5, 0, 1))
	require.Equal(t, 0.0625, interp.Quartic(0.5, 0, 1))
	require.InDelta(t, 0.5, interp.Cosine(0.5, 0, 1), 1e-15)
}

// TestLerpN covers a bilinear blend, a corner and the zero-stage case.
func TestLerpN(t *testing.T) {
	// bilinear over corners (x fastest): 00=0, 10=1, 01=2, 11=3
	values := []float64{0, 1, 2, 3}
	got, err := interp.LerpN(interp.Linear, values, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 1.5, got)
	require.Equal(t, []float64{0, 1, 2, 3}, values, "LerpN must not touch input")

	got, err = interp.LerpN(interp.Linear, values, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = interp.LerpN(interp.Linear, []float64{42}, nil)
	require.NoError(t, err)
	require.Equal(t, 42.0, got)
}

// TestLerpNInPlace_Overwrites ensures the in-place variant uses the caller's slice as scratch.
func TestLerpNInPlace_Overwrites(t *testing.T) {
	values := []float64{0, 2, 4, 6, 8, 10, 12, 14}
	got, err := interp.LerpNInPlace(interp.Linear, values, []float64{0.5, 0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 7.0, got)
	require.Equal(t, 7.0, values[0])
}

// TestLerpN_ArityMismatch rejects values that are not 2^len(positions).
func TestLerpN_ArityMismatch(t *testing.T) {
	_, err := interp.LerpN(interp.Linear, []float64{1, 2, 3}, []float64{0.1, 0.2})
	require.ErrorIs(t, err, noise.ErrInvalidConfig)
	_, err = interp.LerpNInPlace(interp.Linear, []float64{1, 2, 3, 4, 5}, []float64{0.1, 0.2})
	require.ErrorIs(t, err, noise.ErrInvalidConfig)
}

// TestRegister_Custom verifies a custom interpolation resolves by name.
func TestRegister_Custom(t *testing.T) {
	step := interp.Func(func(x, a, b float64) float64 {
		if x < 0.5 {
			return a
		}
		return b
	})
	require.NoError(t, interp.Register("test-step", step))
	fn, err := interp.Lookup("TEST-STEP")
	require.NoError(t, err)
	require.Equal(t, 9.0, fn(0.7, 1, 9))
	require.Error(t, interp.Register("linear", step))
}
