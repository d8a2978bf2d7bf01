// SPDX-License-Identifier: MIT
// Package transform provides pure coordinate remappers applied before a
// Source is sampled.
//
//   - Scale      — SimpleTransformer: each axis multiplied independently.
//   - DomainWarp — detailed Transformer: every output axis depends on an
//     auxiliary Source sampled around the whole input point.
//   - Chain      — applies transformers left to right.
//
// Transformers are immutable after construction and safe for concurrent use.
// Wrap a Source with module.NewTransformedBuilder to evaluate it through a
// transformer chain.
package transform
