// SPDX-License-Identifier: MIT
package raster_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/raster"
	"github.com/stretchr/testify/require"
)

// plane returns x + 10*y (+ 100*z in 3D).
var plane = noise.Func{
	F2: func(x, y float64) float64 { return x + 10*y },
	F3: func(x, y, z float64) float64 { return x + 10*y + 100*z },
}

// TestRender_SamplesGrid pins every cell of a small grid.
func TestRender_SamplesGrid(t *testing.T) {
	g, err := raster.Render(context.Background(), plane, 3, 2,
		raster.WithFrequency(0.5), raster.WithOrigin(1, 1), raster.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, []float64{11, 11.5, 12, 16, 16.5, 17}, g.Values)
	require.Equal(t, 16.5, g.At(1, 1))

	lo, hi := g.Bounds()
	require.Equal(t, 11.0, lo)
	require.Equal(t, 17.0, hi)
}

// TestRender_Slice3D verifies WithSlice samples through Eval3D.
func TestRender_Slice3D(t *testing.T) {
	g, err := raster.Render(context.Background(), plane, 2, 1, raster.WithSlice(2))
	require.NoError(t, err)
	require.Equal(t, []float64{200, 201}, g.Values)
}

// TestRender_MatchesSerialEvaluation ensures parallel rows equal a serial scan.
func TestRender_MatchesSerialEvaluation(t *testing.T) {
	src, err := generator.NewValueBuilder().Seed(5).Build()
	require.NoError(t, err)
	g, err := raster.Render(context.Background(), src, 32, 32, raster.WithFrequency(0.125))
	require.NoError(t, err)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, src.Eval2D(float64(x)*0.125, float64(y)*0.125), g.At(x, y))
		}
	}
}

// TestRender_Errors covers nil source, bad size and a cancelled context.
func TestRender_Errors(t *testing.T) {
	_, err := raster.Render(context.Background(), nil, 4, 4)
	require.ErrorIs(t, err, noise.ErrMissingDependency)
	_, err = raster.Render(context.Background(), plane, 0, 4)
	require.ErrorIs(t, err, noise.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = raster.Render(ctx, plane, 4, 4)
	require.ErrorIs(t, err, context.Canceled)
}

// TestOptions_Panic ensures nonsense option values panic.
func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { raster.WithWorkers(0) })
	require.Panics(t, func() { raster.WithFrequency(0) })
	require.Panics(t, func() { raster.WithFrequency(-1) })
}

// TestGray_NormalizesAndEncodes covers grey mapping and a PNG round trip.
func TestGray_NormalizesAndEncodes(t *testing.T) {
	g, err := raster.Render(context.Background(), plane, 3, 2)
	require.NoError(t, err)
	// 1. min maps to 0, max to 255.
	img := g.Gray()
	require.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	require.Equal(t, uint8(255), img.GrayAt(2, 1).Y)

	// 2. PNG round trip keeps the bounds.
	var buf bytes.Buffer
	require.NoError(t, g.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	// 3. a flat grid is mid grey.
	flat, err := raster.Render(context.Background(), generator.NewConstant(3), 2, 2)
	require.NoError(t, err)
	require.Equal(t, uint8(128), flat.Gray().GrayAt(1, 1).Y)
}
