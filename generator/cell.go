// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// cell.go — float coordinate → lattice cell index helpers shared by the
// hash-based generators.

package generator

import "math"

// cellOf returns the lattice cell containing c and the position inside it.
func cellOf(c float64) (int64, float64) {
	f := math.Floor(c)

	return int64(f), c - f
}

// floorInt returns the lattice cell containing c.
func floorInt(c float64) int64 {
	return int64(math.Floor(c))
}
