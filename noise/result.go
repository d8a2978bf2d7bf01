// SPDX-License-Identifier: MIT
package noise

// ValueResult is the plain Result carrying only a scalar.
type ValueResult struct {
	V float64
}

// Value returns the scalar.
func (r ValueResult) Value() float64 { return r.V }

// WithValue returns a copy holding v.
func (r ValueResult) WithValue(v float64) ValueResult { return ValueResult{V: v} }
