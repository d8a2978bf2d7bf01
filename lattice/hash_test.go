// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/lattice"
	"github.com/stretchr/testify/require"
)

// TestHash_Deterministic ensures equal inputs hash equally.
func TestHash_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 1729, -99, 1 << 40} {
		require.Equal(t, lattice.Hash3D(seed, 3, -4, 5), lattice.Hash3D(seed, 3, -4, 5))
		require.Equal(t, lattice.Hash4D(seed, 1, 2, 3, 4), lattice.Hash(seed, 1, 2, 3, 4))
	}
}

// TestHash_FoldConsistency verifies each arity folds on top of the lower one.
func TestHash_FoldConsistency(t *testing.T) {
	seeds := []int64{0, 7, 1729, -1, 1 << 35}
	coords := []int64{-1000, -3, 0, 1, 2, 77, 1 << 20}
	for _, s := range seeds {
		for _, x := range coords {
			for _, y := range coords {
				// hash2D is hash1D's fold with the Y term XOR-ed in.
				want := lattice.Finalize(lattice.Fold1D(s, x) ^ (y * lattice.PrimeY))
				require.Equal(t, want, lattice.Hash2D(s, x, y))
				require.Equal(t, lattice.Hash2D(s, x, y), lattice.Hash(s, x, y))
			}
			// zero on an extra axis leaves the fold unchanged.
			require.Equal(t, lattice.Hash1D(s, x), lattice.Hash2D(s, x, 0))
			require.Equal(t, lattice.Hash1D(s, x), lattice.Hash4D(s, x, 0, 0, 0))
		}
	}
}

// TestHash_KnownFinalize pins Finalize on trivial inputs.
func TestHash_KnownFinalize(t *testing.T) {
	// Finalize(seed) with seed=1: 1*1*1*60493 = 60493; (60493>>13)^60493.
	require.Equal(t, int32((60493>>13)^60493), lattice.Finalize(1))
	require.Equal(t, int32(0), lattice.Hash(0))
}

// TestHash2D_Pinned locks the finalize step: cube and shift run in int64,
// truncation to int32 comes last.
func TestHash2D_Pinned(t *testing.T) {
	// 1. folded value is the same one the White pin uses.
	folded := lattice.Fold2D(1729, 3, 4)
	require.Equal(t, int64(130460), folded)

	// 2. 130460³·60493 wraps in int64; (h>>13)^h truncated to int32.
	require.Equal(t, int32(-1411106567), lattice.Hash2D(1729, 3, 4))
	require.Equal(t, int32(-1411106567), lattice.Finalize(folded))

	// 3. a negative fold exercises the arithmetic shift.
	require.Equal(t, int32(7561731), lattice.Finalize(-5))
}

// TestValue2D_Pinned pins the white-noise value formula.
func TestValue2D_Pinned(t *testing.T) {
	// n = (1729 ^ 1619*3) ^ 31337*4 = 130460; n³·60493 wraps to 1632056000.
	got := lattice.Value2D(1729, 3, 4)
	require.Equal(t, 1632056000.0/2147483648.0, got)
	require.Equal(t, 0.7599852979183197, got)
}

// TestValue_Range ensures values stay in [-1, 1) and units in [0, 1).
func TestValue_Range(t *testing.T) {
	for x := int64(-50); x < 50; x++ {
		for y := int64(-5); y < 5; y++ {
			v := lattice.Value3D(99, x, y, x^y)
			require.GreaterOrEqual(t, v, -1.0)
			require.Less(t, v, 1.0)
			u := lattice.Unit(lattice.Hash2D(99, x, y))
			require.GreaterOrEqual(t, u, 0.0)
			require.Less(t, u, 1.0)
		}
	}
}
