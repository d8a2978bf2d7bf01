// SPDX-License-Identifier: MIT
// Package lattice is the deterministic coordinate-hashing kernel shared by
// every lattice noise generator.
//
// A lattice coordinate (integer cell index per axis) and a 64-bit seed are
// folded together by XOR-ing each axis with a per-axis odd prime multiple:
//
//	h = seed ^ x*1619 ^ y*31337 ^ z*6971 ^ w*1013
//
// and then finalized into 32 bits:
//
//	h = h*h*h*60493
//	h = (h >> 13) ^ h
//
// Folding is incremental: Fold2D(s,x,y) == Fold1D(s,x) ^ y*PrimeY, so a
// higher-dimensional hash degenerates to the lower-dimensional one along a
// shared axis. All arithmetic wraps (two's complement). The formula is part of
// the public contract: changing it changes every persisted seed's output.
package lattice
