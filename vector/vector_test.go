// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlnoise/vector"
	"github.com/stretchr/testify/require"
)

// TestDot pins Dot for every arity.
func TestDot(t *testing.T) {
	require.Equal(t, 6.0, vector.Vector1D{X: 2}.Dot(vector.Vector1D{X: 3}))
	require.Equal(t, 11.0, vector.Vector2D{X: 1, Y: 2}.Dot(vector.Vector2D{X: 3, Y: 4}))
	require.Equal(t, 32.0, vector.Vector3D{X: 1, Y: 2, Z: 3}.Dot(vector.Vector3D{X: 4, Y: 5, Z: 6}))
	require.Equal(t, 70.0, vector.Vector4D{X: 1, Y: 2, Z: 3, W: 4}.Dot(vector.Vector4D{X: 5, Y: 6, Z: 7, W: 8}))
}

// TestAddScale verifies Add and Scale return new values.
func TestAddScale(t *testing.T) {
	v := vector.Vector3D{X: 1, Y: 2, Z: 3}
	got := v.Scale(2).Add(vector.Vector3D{X: 1})
	require.Equal(t, vector.Vector3D{X: 3, Y: 4, Z: 6}, got)
	// original untouched
	require.Equal(t, vector.Vector3D{X: 1, Y: 2, Z: 3}, v)
}

// TestEqual_Bitwise ensures equality compares bits, not values.
func TestEqual_Bitwise(t *testing.T) {
	nan := math.NaN()
	require.True(t, vector.Vector2D{X: nan, Y: 1}.Equal(vector.Vector2D{X: nan, Y: 1}))
	require.False(t, vector.Vector1D{X: 0}.Equal(vector.Vector1D{X: math.Copysign(0, -1)}))
	a, b := 0.1, 0.2
	require.False(t, vector.Vector4D{W: a + b}.Equal(vector.Vector4D{W: 0.3}))
	require.True(t, vector.Vector4D{X: 1, Y: 2, Z: 3, W: 4}.Equal(vector.Vector4D{X: 1, Y: 2, Z: 3, W: 4}))
}
