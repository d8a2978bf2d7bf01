// SPDX-License-Identifier: MIT
package module_test

import (
	"testing"

	"github.com/katalvlaran/lvlnoise/combiner"
	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/module"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/transform"
)

var benchSink float64

// must returns a helper that unwraps Build results, failing b on error.
func must(b *testing.B) func(noise.Source, error) noise.Source {
	return func(s noise.Source, err error) noise.Source {
		b.Helper()
		if err != nil {
			b.Fatal(err)
		}

		return s
	}
}

// BenchmarkFractal_Value3D_8Octaves measures octavation over value noise.
func BenchmarkFractal_Value3D_8Octaves(b *testing.B) {
	mustBuild := must(b)
	src := mustBuild(module.NewFractalBuilder().
		SourceBuilder(generator.NewValueBuilder()).
		Octaves(8).Persistence(0.5).Lacunarity(2).
		Build())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = src.Eval3D(float64(i)*0.01, 0.5, 0.25)
	}
}

// BenchmarkWarpedCombination2D measures a small realistic graph:
// warp(opensimplex) smooth-min cellular.
func BenchmarkWarpedCombination2D(b *testing.B) {
	mustBuild := must(b)
	field := mustBuild(generator.NewOpenSimplexBuilder().Seed(1).Build())
	warp, err := transform.NewDomainWarpBuilder().Source(field).UniformAmplitude(0.5).Build()
	if err != nil {
		b.Fatal(err)
	}
	base := mustBuild(generator.NewValueBuilder().Seed(2).Build())
	warped := mustBuild(module.NewTransformedBuilder().Source(base).Transform(warp).Build())
	cells := mustBuild(generator.NewCellularBuilder().Seed(3).Build())
	src := mustBuild(module.NewCombinationBuilder().
		A(warped).B(cells).Combiner(combiner.ExponentialSmoothMin).
		Build())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = src.Eval2D(float64(i)*0.01, 0.5)
	}
}
