// SPDX-License-Identifier: MIT
// Package: lvlnoise/noise
//
// errors.go — sentinel errors shared by every package of the module.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach method context with %w: "Combination.Build: a: <sentinel>".
//   • Configuration problems surface at Build(); evaluation never fails, except
//     for structurally impossible requests (1D domain warp) which panic with an
//     error wrapping ErrUnsupported.

package noise

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnoise/internal/registry"
)

// ErrInvalidConfig indicates a rejected input: zero scale, too few offsets,
// non-positive octave count, mismatched lerp arrays, and so on.
var ErrInvalidConfig = errors.New("noise: invalid configuration")

// ErrMissingDependency indicates a builder was asked to Build without a
// required Source. It also matches ErrInvalidConfig.
var ErrMissingDependency = fmt.Errorf("noise: missing dependency: %w", ErrInvalidConfig)

// ErrUnsupported indicates an operation that is structurally impossible for
// the receiver (for example warping a single axis).
var ErrUnsupported = errors.New("noise: unsupported operation")

// ErrUnknownName indicates a catalogue lookup for a name that was never
// registered.
var ErrUnknownName = registry.ErrUnknown

// ErrEmptyName indicates a catalogue Register call with a blank name.
var ErrEmptyName = registry.ErrEmptyName

// Errorf prefixes method context and wraps the given sentinel.
//
//	return noise.Errorf("Scale.Build", noise.ErrInvalidConfig, "axis %d is zero", i)
func Errorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
