// SPDX-License-Identifier: MIT
// Package: lvlnoise/lattice
//
// hash.go — fold + finalize hashing of integer lattice coordinates.
//
// Determinism:
//   • Pure integer arithmetic, no tables, no rand.
//   • Folding and finalizing happen in int64 with wraparound; only the
//     finished hash is truncated to int32. The shift reads bits 13..44 of the
//     cubed product, so truncating earlier would change every hash.
//   • Value1D..4D are a separate formula: the cube is taken in int32 and
//     scaled, with no shift.

package lattice

// Per-axis odd prime multipliers.
const (
	PrimeX int64 = 1619
	PrimeY int64 = 31337
	PrimeZ int64 = 6971
	PrimeW int64 = 1013
)

// finalizeMul is the cube multiplier of the finalizer.
const finalizeMul int64 = 60493

// valueMul is finalizeMul for the int32 value formula.
const valueMul int32 = 60493

// valueScale maps an int32 onto [-1, 1).
const valueScale = 2147483648.0

// primes lists the axis multipliers in axis order.
var primes = [...]int64{PrimeX, PrimeY, PrimeZ, PrimeW}

// Fold1D mixes the x axis into seed.
func Fold1D(seed, x int64) int64 {
	return seed ^ (x * PrimeX)
}

// Fold2D mixes x and y into seed.
func Fold2D(seed, x, y int64) int64 {
	return Fold1D(seed, x) ^ (y * PrimeY)
}

// Fold3D mixes x, y and z into seed.
func Fold3D(seed, x, y, z int64) int64 {
	return Fold2D(seed, x, y) ^ (z * PrimeZ)
}

// Fold4D mixes x, y, z and w into seed.
func Fold4D(seed, x, y, z, w int64) int64 {
	return Fold3D(seed, x, y, z) ^ (w * PrimeW)
}

// Finalize avalanches a folded value into the final 32-bit hash.
func Finalize(folded int64) int32 {
	h := folded * folded * folded * finalizeMul
	h = (h >> 13) ^ h

	return int32(h)
}

// Hash1D returns the lattice hash of (x) under seed.
func Hash1D(seed, x int64) int32 { return Finalize(Fold1D(seed, x)) }

// Hash2D returns the lattice hash of (x,y) under seed.
func Hash2D(seed, x, y int64) int32 { return Finalize(Fold2D(seed, x, y)) }

// Hash3D returns the lattice hash of (x,y,z) under seed.
func Hash3D(seed, x, y, z int64) int32 { return Finalize(Fold3D(seed, x, y, z)) }

// Hash4D returns the lattice hash of (x,y,z,w) under seed.
func Hash4D(seed, x, y, z, w int64) int32 { return Finalize(Fold4D(seed, x, y, z, w)) }

// Hash folds an arbitrary number of coordinates. Axes beyond the fourth
// reuse the prime table cyclically. With no coordinates the seed alone is
// finalized.
func Hash(seed int64, coords ...int64) int32 {
	h := seed
	for i, c := range coords {
		h ^= c * primes[i%len(primes)]
	}

	return Finalize(h)
}

// cubeValue maps a folded value onto [-1, 1) without the shift step.
func cubeValue(folded int64) float64 {
	n := int32(folded)

	return float64(n*n*n*valueMul) / valueScale
}

// Value1D returns the white-noise value of lattice point (x) in [-1, 1).
func Value1D(seed, x int64) float64 { return cubeValue(Fold1D(seed, x)) }

// Value2D returns the white-noise value of lattice point (x,y) in [-1, 1).
func Value2D(seed, x, y int64) float64 { return cubeValue(Fold2D(seed, x, y)) }

// Value3D returns the white-noise value of lattice point (x,y,z) in [-1, 1).
func Value3D(seed, x, y, z int64) float64 { return cubeValue(Fold3D(seed, x, y, z)) }

// Value4D returns the white-noise value of lattice point (x,y,z,w) in [-1, 1).
func Value4D(seed, x, y, z, w int64) float64 { return cubeValue(Fold4D(seed, x, y, z, w)) }

// Unit maps a finalized hash onto [0, 1).
func Unit(h int32) float64 {
	return float64(uint32(h)) / (2 * valueScale)
}
