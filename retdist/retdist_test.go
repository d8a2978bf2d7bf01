// SPDX-License-Identifier: MIT
package retdist_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/retdist"
	"github.com/stretchr/testify/require"
)

// TestReturnDistance_Values pins each return function on sorted distances.
func TestReturnDistance_Values(t *testing.T) {
	d := []float64{0.25, 0.5, 2}
	cases := []struct {
		name string
		fn   retdist.Func
		want float64
	}{
		{"distance_0", retdist.Distance0, 0.25},
		{"distance_1", retdist.Distance1, 0.5},
		{"distance_01_add", retdist.Distance01Add, 0.75},
		{"distance_01_sub", retdist.Distance01Sub, 0.75}, // same output as add
		{"distance_01_mul", retdist.Distance01Mul, 0.125},
		{"distance_01_div", retdist.Distance01Div, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.fn.Apply(d))
			looked, err := retdist.Lookup(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, looked.Apply(d))
		})
	}
}

// TestReturnDistance_Depth covers declared depths and IsValidArrayLength.
func TestReturnDistance_Depth(t *testing.T) {
	require.True(t, retdist.IsValidArrayLength(retdist.Distance0, 1))
	require.False(t, retdist.IsValidArrayLength(retdist.Distance1, 1))
	require.True(t, retdist.IsValidArrayLength(retdist.Distance01Mul, 2))
	require.False(t, retdist.IsValidArrayLength(retdist.Distance0, 0))

	third := retdist.Custom{Need: 3, Fn: func(d []float64) float64 { return d[2] }}
	require.False(t, retdist.IsValidArrayLength(third, 2))
	require.Equal(t, 2.0, third.Apply([]float64{0, 1, 2}))
}
