// SPDX-License-Identifier: MIT
// Package noise defines the capability contracts that every node of an
// evaluation graph implements or wraps.
//
// 🚀 What is a noise pipeline?
//
//	coordinates → transformer(s) → generator(s) → module combination → modifier(s) → value
//
// Every stage is a Source: an immutable value exposing Eval1D..Eval4D. Leaf
// generators implement Source directly; modules hold other Sources as
// read-only dependencies and compose them into a new Source. Nothing is
// cached, nothing is buffered, and a built graph is safe for unlimited
// concurrent evaluation.
//
// ✨ Capabilities (narrow interfaces, composed rather than inherited):
//   - Source             — Eval1D/2D/3D/4D(coords) float64
//   - SeededGenerator    — Source + Eval*DSeed overloads + Seed()
//   - ExplicitSource[R]  — Explicit1D..4D returning a rich Result R
//   - SeededExplicit[R]  — both of the above
//   - Builder            — Build() (Source, error); the only place that validates
//
// ⚙️ Errors:
//
//	All configuration errors surface from Build() and match ErrInvalidConfig
//	via errors.Is. Evaluation never returns errors.
package noise
