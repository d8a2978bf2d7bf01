// SPDX-License-Identifier: MIT
package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlnoise/distance"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/vector"
	"github.com/stretchr/testify/require"
)

func allMetrics(t *testing.T) map[string]distance.Func {
	t.Helper()
	out := make(map[string]distance.Func)
	for _, name := range distance.Names() {
		f, err := distance.Lookup(name)
		require.NoError(t, err)
		out[name] = f
	}
	m3, err := distance.Minkowski(3)
	require.NoError(t, err)
	out["minkowski3"] = m3

	return out
}

// TestDistance_NonNegativeAndZero verifies d >= 0 and d(p,p) = 0 for every metric.
func TestDistance_NonNegativeAndZero(t *testing.T) {
	points := []vector.Vector4D{
		{}, {X: 1, Y: -2, Z: 3, W: -4}, {X: -0.5, Y: 0.25, Z: 1e6, W: 7}, {X: 3, Y: 3, Z: 3, W: 3},
	}
	for name, f := range allMetrics(t) {
		for _, p := range points {
			require.Equal(t, 0.0, distance.Between4D(f, p, p), name)
			for _, q := range points {
				require.GreaterOrEqual(t, distance.Between4D(f, p, q), 0.0, name)
				require.GreaterOrEqual(t, f.Distance1D(q.X-p.X), 0.0, name)
				require.GreaterOrEqual(t,
					distance.Between2D(f, vector.Vector2D{X: p.X, Y: p.Y}, vector.Vector2D{X: q.X, Y: q.Y}), 0.0, name)
				require.GreaterOrEqual(t,
					distance.Between3D(f, vector.Vector3D{X: p.X, Y: p.Y, Z: p.Z}, vector.Vector3D{X: q.X, Y: q.Y, Z: q.Z}), 0.0, name)
			}
		}
	}
}

// TestDistance_KnownValues pins each metric on simple deltas.
func TestDistance_KnownValues(t *testing.T) {
	require.Equal(t, 5.0, distance.Euclidean.Distance2D(3, -4))
	require.Equal(t, 25.0, distance.EuclideanSquared.Distance2D(3, -4))
	require.Equal(t, 7.0, distance.Manhattan.Distance2D(3, -4))
	require.Equal(t, 4.0, distance.Chebyshev.Distance2D(3, -4))
	require.Equal(t, 4.0, distance.Chebyshev.Distance4D(1, -2, 3, -4))
}

// TestMinkowski_Degeneracy covers p=1, p=2 and large p against the closed forms.
func TestMinkowski_Degeneracy(t *testing.T) {
	m1, err := distance.Minkowski(1)
	require.NoError(t, err)
	require.InDelta(t, distance.Manhattan.Distance3D(1, -2, 3), m1.Distance3D(1, -2, 3), 1e-12)

	m2, err := distance.Minkowski(2)
	require.NoError(t, err)
	require.InDelta(t, distance.Euclidean.Distance3D(1, -2, 3), m2.Distance3D(1, -2, 3), 1e-12)

	// large p approaches Chebyshev; within 2.5% of the max component (4^(1/64) is about 1.022).
	big, err := distance.Minkowski(64)
	require.NoError(t, err)
	deltas := [][4]float64{{1, -2, 3, -4}, {0.3, 0.1, 0.2, 0.05}, {10, 10, 10, 10}}
	for _, d := range deltas {
		want := distance.Chebyshev.Distance4D(d[0], d[1], d[2], d[3])
		got := big.Distance4D(d[0], d[1], d[2], d[3])
		require.InDelta(t, want, got, want*0.025)
		require.GreaterOrEqual(t, got, want)
	}
}

// TestMinkowski_Rejects rejects non-positive and non-finite exponents.
func TestMinkowski_Rejects(t *testing.T) {
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := distance.Minkowski(p)
		require.ErrorIs(t, err, noise.ErrInvalidConfig)
	}
}
