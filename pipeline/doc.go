// SPDX-License-Identifier: MIT
// Package pipeline turns a declarative YAML description into a built
// evaluation graph.
//
// 🚀 Document shape:
//
//	output: terrain
//	nodes:
//	  - id: base
//	    type: opensimplex
//	    seed: 42
//	  - id: terrain
//	    type: fractal
//	    source: base
//	    octaves: 5
//	    persistence: 0.5
//	    lacunarity: 2
//
// Nodes reference each other by id through the source, a, b, control and
// field keys. Declaration order does not matter; every node is built once and
// shared by all nodes that reference it.
//
// ✨ Node types:
//
//	constant, white, gaussian, value, cellular, perlin, opensimplex,
//	combination, selection, fractal, scale, warp, modify
//
// ⚙️ Errors:
//
//	Malformed YAML, unknown node types, duplicate ids, dangling references and
//	reference cycles match noise.ErrInvalidConfig. Unknown catalogue names
//	(combiner, fade, distance, ...) match noise.ErrUnknownName. Errors carry the
//	offending node id.
//
// Logging goes through an optional *zap.Logger (see WithLogger); nodes are
// reported at Debug level as they are built.
package pipeline
