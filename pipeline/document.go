// SPDX-License-Identifier: MIT
// Package: lvlnoise/pipeline
//
// document.go — YAML schema of a pipeline description.
//
// Optional scalars are pointers so "absent" and "zero" stay distinguishable;
// builder defaults apply to absent keys only.

package pipeline

import (
	"bytes"
	"errors"
	"io"

	"github.com/katalvlaran/lvlnoise/noise"
	"gopkg.in/yaml.v3"
)

const methodParse = "pipeline.Parse"

// Document is a whole pipeline: a set of nodes and the id of the output node.
type Document struct {
	Output string `yaml:"output"`
	Nodes  []Node `yaml:"nodes"`
}

// Node describes one Source. Which keys are meaningful depends on Type.
type Node struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`

	// leaf generators
	Seed          *int64   `yaml:"seed,omitempty"`
	Value         float64  `yaml:"value,omitempty"`
	Mean          *float64 `yaml:"mean,omitempty"`
	StdDev        *float64 `yaml:"stddev,omitempty"`
	Interpolation string   `yaml:"interpolation,omitempty"`
	Fade          string   `yaml:"fade,omitempty"`
	Distance      string   `yaml:"distance,omitempty"`
	Minkowski     *float64 `yaml:"minkowski,omitempty"`
	Minimize      string   `yaml:"minimize,omitempty"`
	Return        string   `yaml:"return,omitempty"`
	Depth         *int     `yaml:"depth,omitempty"`
	Jitter        *float64 `yaml:"jitter,omitempty"`
	Alpha         *float64 `yaml:"alpha,omitempty"`
	Beta          *float64 `yaml:"beta,omitempty"`
	Iterations    *int32   `yaml:"iterations,omitempty"`
	Normalized    bool     `yaml:"normalized,omitempty"`

	// references
	Source  string `yaml:"source,omitempty"`
	A       string `yaml:"a,omitempty"`
	B       string `yaml:"b,omitempty"`
	Control string `yaml:"control,omitempty"`
	Field   string `yaml:"field,omitempty"`

	// modules
	Combiner    string     `yaml:"combiner,omitempty"`
	Boundary    *float64   `yaml:"boundary,omitempty"`
	Function    string     `yaml:"function,omitempty"`
	Octaves     *int       `yaml:"octaves,omitempty"`
	Persistence *float64   `yaml:"persistence,omitempty"`
	Lacunarity  *float64   `yaml:"lacunarity,omitempty"`
	SeedStep    bool       `yaml:"seed_step,omitempty"`
	Factors     []float64  `yaml:"factors,omitempty"`
	Amplitude   []float64  `yaml:"amplitude,omitempty"`
	Modifiers   []Modifier `yaml:"modifiers,omitempty"`
}

// Modifier is one step of a modify node: abs, invert or clamp.
type Modifier struct {
	Kind  string  `yaml:"kind"`
	Lower float64 `yaml:"lower,omitempty"`
	Upper float64 `yaml:"upper,omitempty"`
}

// refs lists the ids n depends on, in a fixed order.
func (n *Node) refs() []string {
	var out []string
	for _, r := range []string{n.Source, n.A, n.B, n.Control, n.Field} {
		if r != "" {
			out = append(out, r)
		}
	}

	return out
}

// Decode reads a Document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, noise.Errorf(methodParse, noise.ErrInvalidConfig, "empty document")
		}

		return nil, noise.Errorf(methodParse, noise.ErrInvalidConfig, "%v", err)
	}

	return &doc, nil
}

// Parse decodes data and builds the described graph.
func Parse(data []byte, opts ...Option) (*Graph, error) {
	return Load(bytes.NewReader(data), opts...)
}

// Load decodes a Document from r and builds the described graph.
func Load(r io.Reader, opts ...Option) (*Graph, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return Build(doc, opts...)
}
