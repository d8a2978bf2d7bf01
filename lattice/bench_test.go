// SPDX-License-Identifier: MIT
package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/lattice"
)

var hashSink int32

// BenchmarkHash3D measures a single 3D hash.
func BenchmarkHash3D(b *testing.B) {
	for i := 0; i < b.N; i++ {
		hashSink = lattice.Hash3D(1729, int64(i), int64(i>>4), 7)
	}
}

// BenchmarkHash_Variadic5D measures the variadic hash over five axes.
func BenchmarkHash_Variadic5D(b *testing.B) {
	for i := 0; i < b.N; i++ {
		hashSink = lattice.Hash(1729, int64(i), 1, 2, 3, 4)
	}
}
