// SPDX-License-Identifier: MIT
// Package: lvlnoise/raster
//
// raster.go — grid sampling and image export.

package raster

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/lvlnoise/noise"
	"golang.org/x/sync/errgroup"
)

const methodRender = "raster.Render"

// Grid holds width*height samples in row-major order.
type Grid struct {
	Width  int
	Height int
	Values []float64
}

// At returns the sample of pixel (x, y).
func (g *Grid) At(x, y int) float64 { return g.Values[y*g.Width+x] }

// Bounds returns the smallest and largest sample.
func (g *Grid) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// Render samples src at origin + (x, y)*frequency for every pixel.
func Render(ctx context.Context, src noise.Source, width, height int, opts ...Option) (*Grid, error) {
	if src == nil {
		return nil, noise.Errorf(methodRender, noise.ErrMissingDependency, "source")
	}
	if width < 1 || height < 1 {
		return nil, noise.Errorf(methodRender, noise.ErrInvalidConfig, "size %dx%d", width, height)
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	grid := &Grid{Width: width, Height: height, Values: make([]float64, width*height)}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for y := 0; y < height; y++ {
		row := grid.Values[y*width : (y+1)*width]
		py := cfg.originY + float64(y)*cfg.frequency
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := range row {
				px := cfg.originX + float64(x)*cfg.frequency
				if cfg.use3D {
					row[x] = src.Eval3D(px, py, cfg.z)
				} else {
					row[x] = src.Eval2D(px, py)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}

// Gray maps the grid linearly from its own [min, max] onto 0..255. A flat
// grid maps to mid-grey.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	lo, hi := g.Bounds()
	span := hi - lo
	for i, v := range g.Values {
		level := uint8(128)
		if span > 0 {
			level = uint8(math.Round((v - lo) / span * 255))
		}
		img.SetGray(i%g.Width, i/g.Width, color.Gray{Y: level})
	}

	return img
}

// WritePNG encodes Gray() as PNG.
func (g *Grid) WritePNG(w io.Writer) error {
	return png.Encode(w, g.Gray())
}
