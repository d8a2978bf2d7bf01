// SPDX-License-Identifier: MIT
// Package smoothmin implements the three smooth-minimum formulas shared by the
// minimize and combiner catalogues. Both catalogues wrap these functions so
// the mathematics exists exactly once.
package smoothmin

import "math"

const (
	// expSharpness is k in -log2(2^(-ka) + 2^(-kb)) / k.
	expSharpness = 32.0
	// powExponent is the power used by Power.
	powExponent = 8.0
	// polyRadius is the blend radius of Polynomial.
	polyRadius = 0.1
)

// Exponential returns -log2(2^(-32a) + 2^(-32b)) / 32.
func Exponential(a, b float64) float64 {
	res := math.Exp2(-expSharpness*a) + math.Exp2(-expSharpness*b)

	return -math.Log2(res) / expSharpness
}

// Power returns (a'b'/(a'+b'))^(1/8) with a'=a⁸, b'=b⁸.
func Power(a, b float64) float64 {
	a = math.Pow(a, powExponent)
	b = math.Pow(b, powExponent)

	return math.Pow((a*b)/(a+b), 1.0/powExponent)
}

// Polynomial returns min(a,b) - h²·0.1/4 with h = max(0.1-|a-b|, 0)/0.1.
func Polynomial(a, b float64) float64 {
	h := math.Max(polyRadius-math.Abs(a-b), 0.0) / polyRadius

	return math.Min(a, b) - h*h*polyRadius*0.25
}
