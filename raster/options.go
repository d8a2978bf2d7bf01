// SPDX-License-Identifier: MIT
// Package: lvlnoise/raster
//
// options.go — functional options for Render. Constructors panic on
// meaningless inputs; Render validates its own arguments and returns errors.

package raster

import (
	"math"
	"runtime"
)

// Option customizes Render.
type Option func(*config)

type config struct {
	frequency float64
	originX   float64
	originY   float64
	z         float64
	use3D     bool
	workers   int
}

func defaultConfig() config {
	return config{frequency: 1, workers: runtime.GOMAXPROCS(0)}
}

// WithFrequency sets the distance between neighbouring samples in noise
// space. Panics unless f is finite and positive.
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 0) {
		panic("raster: WithFrequency needs a finite positive value")
	}

	return func(c *config) {
		c.frequency = f
	}
}

// WithOrigin sets the noise-space coordinate of pixel (0, 0).
func WithOrigin(x, y float64) Option {
	return func(c *config) {
		c.originX, c.originY = x, y
	}
}

// WithSlice samples the z = z plane through Eval3D instead of Eval2D.
func WithSlice(z float64) Option {
	return func(c *config) {
		c.z = z
		c.use3D = true
	}
}

// WithWorkers bounds the number of concurrently rendered rows. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("raster: WithWorkers needs n >= 1")
	}

	return func(c *config) {
		c.workers = n
	}
}
