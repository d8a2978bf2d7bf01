// SPDX-License-Identifier: MIT
// Package: lvlnoise/pipeline
//
// nodes.go — one constructor per node type. Each maps the YAML keys onto the
// matching builder and leaves validation to that builder.

package pipeline

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvlnoise/combiner"
	"github.com/katalvlaran/lvlnoise/distance"
	"github.com/katalvlaran/lvlnoise/fade"
	"github.com/katalvlaran/lvlnoise/fractal"
	"github.com/katalvlaran/lvlnoise/generator"
	"github.com/katalvlaran/lvlnoise/interp"
	"github.com/katalvlaran/lvlnoise/minimize"
	"github.com/katalvlaran/lvlnoise/modifier"
	"github.com/katalvlaran/lvlnoise/module"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/retdist"
	"github.com/katalvlaran/lvlnoise/transform"
	"github.com/katalvlaran/lvlnoise/vector"
)

type nodeFunc func(n *Node, built map[string]noise.Source) (noise.Source, error)

var nodeTypes = map[string]nodeFunc{
	"constant":    buildConstant,
	"white":       buildWhite,
	"gaussian":    buildGaussian,
	"value":       buildValue,
	"cellular":    buildCellular,
	"perlin":      buildPerlin,
	"opensimplex": buildOpenSimplex,
	"combination": buildCombination,
	"selection":   buildSelection,
	"fractal":     buildFractal,
	"scale":       buildScale,
	"warp":        buildWarp,
	"modify":      buildModify,
}

// NodeTypes returns the accepted node type names, sorted.
func NodeTypes() []string {
	out := make([]string, 0, len(nodeTypes))
	for name := range nodeTypes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

func buildNode(n *Node, built map[string]noise.Source) (noise.Source, error) {
	fn, ok := nodeTypes[strings.ToLower(strings.TrimSpace(n.Type))]
	if !ok {
		return nil, noise.Errorf("pipeline", noise.ErrInvalidConfig, "unknown node type %q", n.Type)
	}

	return fn(n, built)
}

// ref returns the built dependency, or nil when key is empty so the receiving
// builder reports ErrMissingDependency itself.
func ref(built map[string]noise.Source, id string) noise.Source {
	if id == "" {
		return nil
	}

	return built[id]
}

func seedOf(n *Node) int64 {
	if n.Seed != nil {
		return *n.Seed
	}

	return noise.DefaultSeed
}

func buildConstant(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	return generator.NewConstantBuilder().Value(n.Value).Build()
}

func buildWhite(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	return generator.NewWhiteBuilder().Seed(seedOf(n)).Build()
}

func buildGaussian(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	b := generator.NewGaussianBuilder().Seed(seedOf(n))
	if n.Mean != nil {
		b.Mean(*n.Mean)
	}
	if n.StdDev != nil {
		b.StdDev(*n.StdDev)
	}

	return b.Build()
}

func buildValue(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	b := generator.NewValueBuilder().Seed(seedOf(n))
	if n.Interpolation != "" {
		fn, err := interp.Lookup(n.Interpolation)
		if err != nil {
			return nil, err
		}
		b.Interpolation(fn)
	}
	if n.Fade != "" {
		fn, err := fade.Lookup(n.Fade)
		if err != nil {
			return nil, err
		}
		b.Fade(fn)
	}

	return b.Build()
}

func buildCellular(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	b := generator.NewCellularBuilder().Seed(seedOf(n))
	switch {
	case n.Minkowski != nil:
		m, err := distance.Minkowski(*n.Minkowski)
		if err != nil {
			return nil, err
		}
		b.Distance(m)
	case n.Distance != "":
		fn, err := distance.Lookup(n.Distance)
		if err != nil {
			return nil, err
		}
		b.Distance(fn)
	}
	if n.Minimize != "" {
		fn, err := minimize.Lookup(n.Minimize)
		if err != nil {
			return nil, err
		}
		b.Minimize(fn)
	}
	if n.Return != "" {
		fn, err := retdist.Lookup(n.Return)
		if err != nil {
			return nil, err
		}
		b.Return(fn)
	}
	if n.Depth != nil {
		b.Depth(*n.Depth)
	}
	if n.Jitter != nil {
		b.Jitter(*n.Jitter)
	}

	return b.Build()
}

func buildPerlin(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	b := generator.NewPerlinBuilder().Seed(seedOf(n))
	if n.Alpha != nil {
		b.Alpha(*n.Alpha)
	}
	if n.Beta != nil {
		b.Beta(*n.Beta)
	}
	if n.Iterations != nil {
		b.Iterations(*n.Iterations)
	}

	return b.Build()
}

func buildOpenSimplex(n *Node, _ map[string]noise.Source) (noise.Source, error) {
	return generator.NewOpenSimplexBuilder().Seed(seedOf(n)).Normalized(n.Normalized).Build()
}

func buildCombination(n *Node, built map[string]noise.Source) (noise.Source, error) {
	b := module.NewCombinationBuilder().A(ref(built, n.A)).B(ref(built, n.B))
	if n.Combiner != "" {
		fn, err := combiner.Lookup(n.Combiner)
		if err != nil {
			return nil, err
		}
		b.Combiner(fn)
	}

	return b.Build()
}

func buildSelection(n *Node, built map[string]noise.Source) (noise.Source, error) {
	b := module.NewSelectionBuilder().
		A(ref(built, n.A)).
		B(ref(built, n.B)).
		Control(ref(built, n.Control))
	if n.Boundary != nil {
		b.Boundary(*n.Boundary)
	}

	return b.Build()
}

func buildFractal(n *Node, built map[string]noise.Source) (noise.Source, error) {
	b := module.NewFractalBuilder().Source(ref(built, n.Source)).SeedStep(n.SeedStep)
	if n.Function != "" {
		fn, err := fractal.Lookup(n.Function)
		if err != nil {
			return nil, err
		}
		b.Function(fn)
	}
	if n.Octaves != nil {
		b.Octaves(*n.Octaves)
	}
	if n.Persistence != nil {
		b.Persistence(*n.Persistence)
	}
	if n.Lacunarity != nil {
		b.Lacunarity(*n.Lacunarity)
	}

	return b.Build()
}

func buildScale(n *Node, built map[string]noise.Source) (noise.Source, error) {
	var (
		s   transform.Scale
		err error
	)
	switch len(n.Factors) {
	case 1:
		s, err = transform.NewUniformScale(n.Factors[0])
	case 4:
		s, err = transform.NewScale(n.Factors[0], n.Factors[1], n.Factors[2], n.Factors[3])
	default:
		return nil, noise.Errorf("pipeline.scale", noise.ErrInvalidConfig, "factors needs 1 or 4 values, got %d", len(n.Factors))
	}
	if err != nil {
		return nil, err
	}

	return module.NewTransformedBuilder().Source(ref(built, n.Source)).Transform(s).Build()
}

func buildWarp(n *Node, built map[string]noise.Source) (noise.Source, error) {
	wb := transform.NewDomainWarpBuilder().Source(ref(built, n.Field))
	switch len(n.Amplitude) {
	case 0:
	case 1:
		wb.UniformAmplitude(n.Amplitude[0])
	case 4:
		wb.Amplitude(vector.Vector4D{X: n.Amplitude[0], Y: n.Amplitude[1], Z: n.Amplitude[2], W: n.Amplitude[3]})
	default:
		return nil, noise.Errorf("pipeline.warp", noise.ErrInvalidConfig, "amplitude needs 1 or 4 values, got %d", len(n.Amplitude))
	}
	w, err := wb.Build()
	if err != nil {
		return nil, err
	}

	return module.NewTransformedBuilder().Source(ref(built, n.Source)).Transform(w).Build()
}

func buildModify(n *Node, built map[string]noise.Source) (noise.Source, error) {
	ms := make([]modifier.Modifier, 0, len(n.Modifiers))
	for i, m := range n.Modifiers {
		switch strings.ToLower(m.Kind) {
		case "abs":
			ms = append(ms, modifier.Abs)
		case "invert":
			ms = append(ms, modifier.Invert)
		case "clamp":
			if m.Lower > m.Upper {
				return nil, noise.Errorf("pipeline.modify", noise.ErrInvalidConfig, "modifier %d: lower %g > upper %g", i, m.Lower, m.Upper)
			}
			ms = append(ms, modifier.NewClamp(m.Lower, m.Upper))
		default:
			return nil, noise.Errorf("pipeline.modify", noise.ErrUnknownName, "modifier %d kind %q", i, m.Kind)
		}
	}

	return module.NewModifiedBuilder().Source(ref(built, n.Source)).Modify(ms...).Build()
}
