// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestParseFlags covers defaults, -z detection and rejected flags.
func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-config", "p.yaml", "-size", "64x32", "-z", "1.5"})
	require.NoError(t, err)
	require.Equal(t, 64, o.width)
	require.Equal(t, 32, o.height)
	require.True(t, o.use3D)
	require.Equal(t, 1.5, o.slice)

	o, err = parseFlags([]string{"-config", "p.yaml"})
	require.NoError(t, err)
	require.False(t, o.use3D)
	require.Equal(t, 256, o.width)

	_, err = parseFlags(nil)
	require.Error(t, err)
	_, err = parseFlags([]string{"-config", "p.yaml", "-size", "wide"})
	require.Error(t, err)
	_, err = parseFlags([]string{"-config", "p.yaml", "-frequency", "0"})
	require.Error(t, err)
}

// TestParseFlags_NonFiniteFrequency rejects frequencies raster.WithFrequency
// would panic on.
func TestParseFlags_NonFiniteFrequency(t *testing.T) {
	for _, f := range []string{"NaN", "Inf", "+Inf", "-Inf", "-0.5"} {
		_, err := parseFlags([]string{"-config", "p.yaml", "-frequency", f})
		require.Error(t, err, f)
	}
}

// TestRun_WritesPNG renders a small pipeline to a PNG file.
func TestRun_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
output: t
nodes:
  - {id: base, type: value, seed: 2}
  - {id: t, type: fractal, source: base, octaves: 3, persistence: 0.5, lacunarity: 2}
`), 0o600))

	// render 16x8 and decode the file back
	out := filepath.Join(dir, "out.png")
	o := options{config: cfg, out: out, width: 16, height: 8, frequency: 0.1}
	require.NoError(t, run(context.Background(), o, zap.NewNop()))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())
}

// TestRun_BadConfig ensures a missing config file is reported.
func TestRun_BadConfig(t *testing.T) {
	o := options{config: filepath.Join(t.TempDir(), "missing.yaml"), width: 1, height: 1, frequency: 1}
	require.Error(t, run(context.Background(), o, zap.NewNop()))
}
