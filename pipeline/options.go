// SPDX-License-Identifier: MIT
// Package: lvlnoise/pipeline
//
// options.go — functional options for Load/Parse/Build.
//
// Option constructors validate and panic on meaningless inputs; the loader
// itself reports problems as errors.

package pipeline

import "go.uber.org/zap"

// Option customizes a pipeline build.
type Option func(*config)

type config struct {
	log *zap.Logger
}

func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// WithLogger routes build diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}

	return func(c *config) {
		c.log = l
	}
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}

	return c
}
