// SPDX-License-Identifier: MIT
// Command noisemap renders a YAML noise pipeline to a greyscale PNG.
//
//	noisemap -config terrain.yaml -out terrain.png -size 512x512 -frequency 0.01
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvlnoise/pipeline"
	"github.com/katalvlaran/lvlnoise/raster"
	"go.uber.org/zap"
)

type options struct {
	config    string
	out       string
	width     int
	height    int
	frequency float64
	originX   float64
	originY   float64
	slice     float64
	use3D     bool
	workers   int
	debug     bool
}

func parseFlags(args []string) (options, error) {
	var (
		o    options
		size string
	)
	fs := flag.NewFlagSet("noisemap", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "pipeline YAML file (required)")
	fs.StringVar(&o.out, "out", "noise.png", "output PNG path")
	fs.StringVar(&size, "size", "256x256", "image size WIDTHxHEIGHT")
	fs.Float64Var(&o.frequency, "frequency", 1.0/32, "noise-space distance between pixels")
	fs.Float64Var(&o.originX, "x", 0, "noise-space x of the top-left pixel")
	fs.Float64Var(&o.originY, "y", 0, "noise-space y of the top-left pixel")
	fs.Float64Var(&o.slice, "z", 0, "sample the z plane through the 3D evaluator")
	fs.IntVar(&o.workers, "workers", 0, "concurrent rows (0 = GOMAXPROCS)")
	fs.BoolVar(&o.debug, "debug", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "z" {
			o.use3D = true
		}
	})
	if o.config == "" {
		return o, fmt.Errorf("noisemap: -config is required")
	}
	if _, err := fmt.Sscanf(size, "%dx%d", &o.width, &o.height); err != nil {
		return o, fmt.Errorf("noisemap: -size %q: %w", size, err)
	}
	if !(o.frequency > 0) || math.IsInf(o.frequency, 0) {
		return o, fmt.Errorf("noisemap: -frequency must be positive and finite, got %g", o.frequency)
	}

	return o, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	return cfg.Build()
}

func run(ctx context.Context, o options, log *zap.Logger) error {
	f, err := os.Open(o.config)
	if err != nil {
		return err
	}
	defer f.Close()

	graph, err := pipeline.Load(f, pipeline.WithLogger(log))
	if err != nil {
		return err
	}

	opts := []raster.Option{
		raster.WithFrequency(o.frequency),
		raster.WithOrigin(o.originX, o.originY),
	}
	if o.use3D {
		opts = append(opts, raster.WithSlice(o.slice))
	}
	if o.workers > 0 {
		opts = append(opts, raster.WithWorkers(o.workers))
	}
	grid, err := raster.Render(ctx, graph, o.width, o.height, opts...)
	if err != nil {
		return err
	}
	lo, hi := grid.Bounds()
	log.Info("rendered",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
	)

	out, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := grid.WritePNG(out); err != nil {
		out.Close()
		return fmt.Errorf("noisemap: encode %s: %w", o.out, err)
	}

	return out.Close()
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(o.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "noisemap: logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, log); err != nil {
		log.Error("noisemap failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
	log.Info("wrote image", zap.String("path", o.out))
}
