// SPDX-License-Identifier: MIT
// Package: lvlnoise/pipeline
//
// graph.go — dependency resolution and the built Graph.
//
// Contract:
//   • Ids are unique and non-empty; the output id must name a node.
//   • Nodes are built in dependency order by a three-color DFS
//     (White unvisited, Gray on the stack, Black built). Reaching a Gray node
//     again is a reference cycle.
//   • Every declared node is built, reachable from the output or not, so a
//     broken node never hides behind an unused branch.
//
// Complexity: O(V + E) node visits and reference checks.

package pipeline

import (
	"strings"

	"github.com/katalvlaran/lvlnoise/noise"
	"go.uber.org/zap"
)

const methodBuild = "pipeline.Build"

// Visitation state of a node during resolution.
const (
	white = iota
	gray
	black
)

// Graph is a built pipeline. It evaluates as its output node and is safe for
// concurrent use.
type Graph struct {
	output noise.Source
	nodes  map[string]noise.Source
	order  []string
}

var _ noise.Source = (*Graph)(nil)

// Output returns the source named by the document's output id.
func (g *Graph) Output() noise.Source { return g.output }

// Node returns the built source with the given id.
func (g *Graph) Node(id string) (noise.Source, bool) {
	s, ok := g.nodes[id]

	return s, ok
}

// Order returns the node ids in build order: dependencies first.
func (g *Graph) Order() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

func (g *Graph) Eval1D(x float64) float64          { return g.output.Eval1D(x) }
func (g *Graph) Eval2D(x, y float64) float64       { return g.output.Eval2D(x, y) }
func (g *Graph) Eval3D(x, y, z float64) float64    { return g.output.Eval3D(x, y, z) }
func (g *Graph) Eval4D(x, y, z, w float64) float64 { return g.output.Eval4D(x, y, z, w) }

// resolver carries the DFS state of one Build call.
type resolver struct {
	log   *zap.Logger
	index map[string]*Node
	state map[string]int
	path  []string
	built map[string]noise.Source
	order []string
}

// Build validates doc and constructs every node it declares.
func Build(doc *Document, opts ...Option) (*Graph, error) {
	cfg := applyOptions(opts)
	if doc == nil {
		return nil, noise.Errorf(methodBuild, noise.ErrInvalidConfig, "nil document")
	}
	if len(doc.Nodes) == 0 {
		return nil, noise.Errorf(methodBuild, noise.ErrInvalidConfig, "no nodes")
	}

	index := make(map[string]*Node, len(doc.Nodes))
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		if n.ID == "" {
			return nil, noise.Errorf(methodBuild, noise.ErrInvalidConfig, "node #%d has no id", i)
		}
		if _, dup := index[n.ID]; dup {
			return nil, noise.Errorf(methodBuild, noise.ErrInvalidConfig, "duplicate id %q", n.ID)
		}
		index[n.ID] = n
	}
	if _, ok := index[doc.Output]; !ok {
		return nil, noise.Errorf(methodBuild, noise.ErrInvalidConfig, "output %q is not a node", doc.Output)
	}

	r := &resolver{
		log:   cfg.log,
		index: index,
		state: make(map[string]int, len(index)),
		built: make(map[string]noise.Source, len(index)),
		order: make([]string, 0, len(index)),
	}
	for i := range doc.Nodes {
		if err := r.visit(doc.Nodes[i].ID); err != nil {
			return nil, err
		}
	}
	cfg.log.Info("pipeline built",
		zap.String("output", doc.Output),
		zap.Int("nodes", len(r.order)),
	)

	return &Graph{output: r.built[doc.Output], nodes: r.built, order: r.order}, nil
}

func (r *resolver) visit(id string) error {
	switch r.state[id] {
	case black:
		return nil
	case gray:
		cycle := append(r.cycleFrom(id), id)
		return noise.Errorf(methodBuild, noise.ErrInvalidConfig, "reference cycle %s", strings.Join(cycle, " -> "))
	}

	n := r.index[id]
	r.state[id] = gray
	r.path = append(r.path, id)
	for _, ref := range n.refs() {
		if _, ok := r.index[ref]; !ok {
			return noise.Errorf(methodBuild, noise.ErrInvalidConfig, "node %q references unknown id %q", id, ref)
		}
		if err := r.visit(ref); err != nil {
			return err
		}
	}

	src, err := buildNode(n, r.built)
	if err != nil {
		return noise.Errorf(methodBuild, err, "node %q (%s)", id, n.Type)
	}
	r.path = r.path[:len(r.path)-1]
	r.state[id] = black
	r.built[id] = src
	r.order = append(r.order, id)
	r.log.Debug("node built",
		zap.String("node", id),
		zap.String("type", n.Type),
		zap.Strings("refs", n.refs()),
	)

	return nil
}

// cycleFrom returns the stack suffix starting at id.
func (r *resolver) cycleFrom(id string) []string {
	for i, p := range r.path {
		if p == id {
			out := make([]string, len(r.path)-i)
			copy(out, r.path[i:])

			return out
		}
	}

	return []string{id}
}
