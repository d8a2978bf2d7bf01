// SPDX-License-Identifier: MIT
// Package: lvlnoise/noise
//
// dependency.go — "set or not yet set" slot for a builder's Source input.
//
// A Dependency holds either a built Source or a Builder to build on demand.
// The zero value is "absent"; Resolve reports ErrMissingDependency for it.

package noise

// Dependency is an optional Source input of a builder.
type Dependency struct {
	source  Source
	builder Builder
}

// Of returns a Dependency on an already built Source.
func Of(s Source) Dependency { return Dependency{source: s} }

// OfBuilder returns a Dependency that auto-builds b at Resolve time.
func OfBuilder(b Builder) Dependency { return Dependency{builder: b} }

// IsSet reports whether a Source or Builder was supplied.
func (d Dependency) IsSet() bool { return d.source != nil || d.builder != nil }

// Resolve returns the Source, building it when only a Builder was supplied.
// method and name give the error context ("Selection.Build", "control").
func (d Dependency) Resolve(method, name string) (Source, error) {
	if d.source != nil {
		return d.source, nil
	}
	if d.builder == nil {
		return nil, Errorf(method, ErrMissingDependency, "%s", name)
	}
	s, err := d.builder.Build()
	if err != nil {
		return nil, Errorf(method, err, "building %s", name)
	}
	if s == nil {
		return nil, Errorf(method, ErrMissingDependency, "%s built to nil", name)
	}

	return s, nil
}
