// SPDX-License-Identifier: MIT
// Package: lvlnoise/generator
//
// cellular.go — Worley (cellular) noise.
//
// Contract:
//   • Each lattice cell owns one feature point, jittered inside the cell by
//     hashed offsets. The 3^N cells around the sample are searched.
//   • The Depth nearest distances are tracked in ascending order; distance[0]
//     is then replaced by the MinimizationFunction fold over all candidates
//     (identical to the hard minimum for minimize.Min).
//   • The ReturnDistanceFunction must be satisfiable by Depth; Build rejects
//     it otherwise so evaluation never reads past the tracked distances.
//
// Complexity: O(3^N · Depth) per evaluation, no allocation.

package generator

import (
	"math"

	"github.com/katalvlaran/lvlnoise/distance"
	"github.com/katalvlaran/lvlnoise/lattice"
	"github.com/katalvlaran/lvlnoise/minimize"
	"github.com/katalvlaran/lvlnoise/noise"
	"github.com/katalvlaran/lvlnoise/retdist"
	"github.com/katalvlaran/lvlnoise/vector"
)

const (
	methodCellularBuild = "Cellular.Build"
	// MaxCellDepth bounds the tracked nearest distances; a 1D search only
	// ever sees three candidates.
	MaxCellDepth = 3
	// DefaultCellDepth is the number of tracked distances when unset.
	DefaultCellDepth = 2
)

// axisSalts decorrelate the per-axis feature offsets of one cell.
var axisSalts = [4]int64{0x1B873593, 0x0CC9E2D51, 0x0E6546B64, 0x085EBCA6B}

// CellResult is a cellular evaluation: the returned value plus the nearest
// feature point and the tracked distances.
type CellResult struct {
	value     float64
	feature   vector.Vector4D
	dims      int
	depth     int
	distances [MaxCellDepth]float64
}

var _ noise.Result[CellResult] = CellResult{}

// Value returns the scalar result.
func (r CellResult) Value() float64 { return r.value }

// WithValue returns a copy of r carrying v; feature and distances are kept.
func (r CellResult) WithValue(v float64) CellResult {
	r.value = v
	return r
}

// Feature returns the nearest feature point; axes beyond Dims are zero.
func (r CellResult) Feature() vector.Vector4D { return r.feature }

// Dims returns the dimensionality of the evaluation.
func (r CellResult) Dims() int { return r.dims }

// Distances returns a copy of the tracked ascending distances.
func (r CellResult) Distances() []float64 {
	out := make([]float64, r.depth)
	copy(out, r.distances[:r.depth])

	return out
}

// Cellular is seeded Worley noise with explicit results.
type Cellular struct {
	seed   int64
	metric distance.Func
	minFn  minimize.Func
	ret    retdist.Func
	depth  int
	jitter float64
}

var _ noise.SeededExplicit[CellResult] = (*Cellular)(nil)

// CellularBuilder configures a Cellular generator.
type CellularBuilder struct {
	seed   int64
	metric distance.Func
	minFn  minimize.Func
	ret    retdist.Func
	depth  int
	jitter float64
}

// NewCellularBuilder defaults to Euclidean distance, hard minimum, nearest
// distance return, depth 2 and full jitter.
func NewCellularBuilder() *CellularBuilder {
	return &CellularBuilder{
		seed:   noise.DefaultSeed,
		metric: distance.Euclidean,
		minFn:  minimize.Min,
		ret:    retdist.Distance0,
		depth:  DefaultCellDepth,
		jitter: 1,
	}
}

// Seed sets the instance seed.
func (b *CellularBuilder) Seed(s int64) *CellularBuilder {
	b.seed = s

	return b
}

// Distance sets the metric.
func (b *CellularBuilder) Distance(f distance.Func) *CellularBuilder {
	b.metric = f

	return b
}

// Minimize sets the nearest-distance fold.
func (b *CellularBuilder) Minimize(f minimize.Func) *CellularBuilder {
	b.minFn = f

	return b
}

// Return sets the ReturnDistanceFunction.
func (b *CellularBuilder) Return(f retdist.Func) *CellularBuilder {
	b.ret = f

	return b
}

// Depth sets how many nearest distances are tracked (1..MaxCellDepth).
func (b *CellularBuilder) Depth(n int) *CellularBuilder {
	b.depth = n

	return b
}

// Jitter sets how far feature points may move inside their cell, in [0,1].
func (b *CellularBuilder) Jitter(j float64) *CellularBuilder {
	b.jitter = j

	return b
}

// BuildCellular validates and returns the concrete generator.
func (b *CellularBuilder) BuildCellular() (*Cellular, error) {
	switch {
	case b.metric == nil:
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig, "distance is nil")
	case b.minFn == nil:
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig, "minimize is nil")
	case b.ret == nil:
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig, "return function is nil")
	case b.depth < 1 || b.depth > MaxCellDepth:
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig, "depth %d outside [1,%d]", b.depth, MaxCellDepth)
	case !retdist.IsValidArrayLength(b.ret, b.depth):
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig,
			"return function needs depth %d, have %d", b.ret.Depth(), b.depth)
	case !(b.jitter >= 0 && b.jitter <= 1):
		return nil, noise.Errorf(methodCellularBuild, noise.ErrInvalidConfig, "jitter %g outside [0,1]", b.jitter)
	}

	return &Cellular{
		seed:   b.seed,
		metric: b.metric,
		minFn:  b.minFn,
		ret:    b.ret,
		depth:  b.depth,
		jitter: b.jitter,
	}, nil
}

// Build implements noise.Builder.
func (b *CellularBuilder) Build() (noise.Source, error) {
	c, err := b.BuildCellular()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Seed returns the instance seed.
func (g *Cellular) Seed() int64 { return g.seed }

// featureOffset places a feature point along one axis inside its cell.
func (g *Cellular) featureOffset(h int32) float64 {
	return (1-g.jitter)/2 + g.jitter*lattice.Unit(h)
}

// search accumulates candidates for one evaluation; it lives on the stack.
type search struct {
	depth     int
	distances [MaxCellDepth]float64
	blended   float64
	seen      bool
	feature   vector.Vector4D
}

func newSearch(depth int) search {
	s := search{depth: depth}
	for i := range s.distances {
		s.distances[i] = math.Inf(1)
	}

	return s
}

func (s *search) offer(d float64, feature vector.Vector4D, minFn minimize.Func) {
	if !s.seen {
		s.blended, s.seen = d, true
	} else {
		s.blended = minFn(s.blended, d)
	}
	if d >= s.distances[s.depth-1] {
		return
	}
	if d < s.distances[0] {
		s.feature = feature
	}
	i := s.depth - 1
	for i > 0 && s.distances[i-1] > d {
		s.distances[i] = s.distances[i-1]
		i--
	}
	s.distances[i] = d
}

func (g *Cellular) finish(s *search, dims int) CellResult {
	s.distances[0] = s.blended
	r := CellResult{feature: s.feature, dims: dims, depth: s.depth, distances: s.distances}
	r.value = g.ret.Apply(r.distances[:s.depth])

	return r
}

func (g *Cellular) Explicit1DSeed(x float64, seed int64) CellResult {
	cx := floorInt(x)
	s := newSearch(g.depth)
	for i := cx - 1; i <= cx+1; i++ {
		fx := float64(i) + g.featureOffset(lattice.Hash1D(seed^axisSalts[0], i))
		s.offer(g.metric.Distance1D(fx-x), vector.Vector4D{X: fx}, g.minFn)
	}

	return g.finish(&s, 1)
}

func (g *Cellular) Explicit2DSeed(x, y float64, seed int64) CellResult {
	cx, cy := floorInt(x), floorInt(y)
	s := newSearch(g.depth)
	for i := cx - 1; i <= cx+1; i++ {
		for j := cy - 1; j <= cy+1; j++ {
			fx := float64(i) + g.featureOffset(lattice.Hash2D(seed^axisSalts[0], i, j))
			fy := float64(j) + g.featureOffset(lattice.Hash2D(seed^axisSalts[1], i, j))
			s.offer(g.metric.Distance2D(fx-x, fy-y), vector.Vector4D{X: fx, Y: fy}, g.minFn)
		}
	}

	return g.finish(&s, 2)
}

func (g *Cellular) Explicit3DSeed(x, y, z float64, seed int64) CellResult {
	cx, cy, cz := floorInt(x), floorInt(y), floorInt(z)
	s := newSearch(g.depth)
	for i := cx - 1; i <= cx+1; i++ {
		for j := cy - 1; j <= cy+1; j++ {
			for k := cz - 1; k <= cz+1; k++ {
				fx := float64(i) + g.featureOffset(lattice.Hash3D(seed^axisSalts[0], i, j, k))
				fy := float64(j) + g.featureOffset(lattice.Hash3D(seed^axisSalts[1], i, j, k))
				fz := float64(k) + g.featureOffset(lattice.Hash3D(seed^axisSalts[2], i, j, k))
				s.offer(g.metric.Distance3D(fx-x, fy-y, fz-z), vector.Vector4D{X: fx, Y: fy, Z: fz}, g.minFn)
			}
		}
	}

	return g.finish(&s, 3)
}

func (g *Cellular) Explicit4DSeed(x, y, z, w float64, seed int64) CellResult {
	cx, cy, cz, cw := floorInt(x), floorInt(y), floorInt(z), floorInt(w)
	s := newSearch(g.depth)
	for i := cx - 1; i <= cx+1; i++ {
		for j := cy - 1; j <= cy+1; j++ {
			for k := cz - 1; k <= cz+1; k++ {
				for l := cw - 1; l <= cw+1; l++ {
					fx := float64(i) + g.featureOffset(lattice.Hash4D(seed^axisSalts[0], i, j, k, l))
					fy := float64(j) + g.featureOffset(lattice.Hash4D(seed^axisSalts[1], i, j, k, l))
					fz := float64(k) + g.featureOffset(lattice.Hash4D(seed^axisSalts[2], i, j, k, l))
					fw := float64(l) + g.featureOffset(lattice.Hash4D(seed^axisSalts[3], i, j, k, l))
					s.offer(g.metric.Distance4D(fx-x, fy-y, fz-z, fw-w),
						vector.Vector4D{X: fx, Y: fy, Z: fz, W: fw}, g.minFn)
				}
			}
		}
	}

	return g.finish(&s, 4)
}

func (g *Cellular) Explicit1D(x float64) CellResult { return g.Explicit1DSeed(x, g.seed) }

func (g *Cellular) Explicit2D(x, y float64) CellResult { return g.Explicit2DSeed(x, y, g.seed) }

func (g *Cellular) Explicit3D(x, y, z float64) CellResult {
	return g.Explicit3DSeed(x, y, z, g.seed)
}

func (g *Cellular) Explicit4D(x, y, z, w float64) CellResult {
	return g.Explicit4DSeed(x, y, z, w, g.seed)
}

func (g *Cellular) Eval1DSeed(x float64, seed int64) float64 {
	return g.Explicit1DSeed(x, seed).value
}

func (g *Cellular) Eval2DSeed(x, y float64, seed int64) float64 {
	return g.Explicit2DSeed(x, y, seed).value
}

func (g *Cellular) Eval3DSeed(x, y, z float64, seed int64) float64 {
	return g.Explicit3DSeed(x, y, z, seed).value
}

func (g *Cellular) Eval4DSeed(x, y, z, w float64, seed int64) float64 {
	return g.Explicit4DSeed(x, y, z, w, seed).value
}

func (g *Cellular) Eval1D(x float64) float64 { return g.Eval1DSeed(x, g.seed) }

func (g *Cellular) Eval2D(x, y float64) float64 { return g.Eval2DSeed(x, y, g.seed) }

func (g *Cellular) Eval3D(x, y, z float64) float64 { return g.Eval3DSeed(x, y, z, g.seed) }

func (g *Cellular) Eval4D(x, y, z, w float64) float64 {
	return g.Eval4DSeed(x, y, z, w, g.seed)
}
