// SPDX-License-Identifier: MIT
package smoothmin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSmoothMin_ApproachesMin verifies each smooth-min stays at or below min(a, b) and is symmetric.
func TestSmoothMin_ApproachesMin(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0.2, 0.9}, {0.9, 0.2}, {0.5, 0.51}, {1.5, 3},
	}
	for _, c := range cases {
		lo := math.Min(c.a, c.b)
		require.LessOrEqual(t, Exponential(c.a, c.b), lo+1e-12)
		require.LessOrEqual(t, Power(c.a, c.b), lo+1e-12)
		require.LessOrEqual(t, Polynomial(c.a, c.b), lo)
		// symmetric
		require.Equal(t, Exponential(c.a, c.b), Exponential(c.b, c.a))
		require.Equal(t, Polynomial(c.a, c.b), Polynomial(c.b, c.a))
	}
}

// TestPolynomial_FarApartIsMin ensures the polynomial blend is exact outside its band.
func TestPolynomial_FarApartIsMin(t *testing.T) {
	require.Equal(t, 0.2, Polynomial(0.2, 0.9))
	// equal inputs subtract the full radius term.
	require.InDelta(t, 0.5-0.025, Polynomial(0.5, 0.5), 1e-15)
}

// TestExponential_EqualInputs pins the exponential blend for a == b.
func TestExponential_EqualInputs(t *testing.T) {
	// -log2(2·2^(-32a))/32 = a - 1/32
	require.InDelta(t, 0.5-1.0/32, Exponential(0.5, 0.5), 1e-12)
}
