// SPDX-License-Identifier: MIT

// Package polynomial implements immutable univariate polynomials with
// float64 coefficients.
//
// 🚀 What is a Polynomial here?
//
//	A value holding c0 + c1·x + … + cn·x^n as a coefficient slice indexed
//	by power. The slice is always standardized: trailing (high-power) zero
//	coefficients are removed, so Degree and LeadingCoefficient stay correct
//	after cancellation. The zero polynomial has degree −1.
//
// ✨ Key properties:
//   - value semantics: every operation returns a fresh Polynomial, no method
//     mutates its receiver or arguments
//   - exact structural equality (no epsilon)
//   - Horner evaluation, exponentiation by squaring, term-wise derivative
//   - safe for concurrent read-only use without locking
//
// ⚙️ Usage:
//
//	x := polynomial.X()
//	p := x.Sub(polynomial.One()).Mul(x.SubScalar(2)) // (x-1)(x-2)
//	p.Evaluate(3)   // 2
//	p.Derivative()  // 2x - 3
//	q, err := p.Pow(3)
//
// Complexity:
//
//   - Add/Sub: O(max(n, m))
//   - Mul:     O(n·m)
//   - Pow(e):  O(log e) multiplications
//   - Evaluate/Derivative: O(n)
package polynomial
