// SPDX-License-Identifier: MIT

// Package rootfind locates every real root of a univariate polynomial.
//
// 🚀 How it works
//
//	Roots(f) recurses on the derivative. The real roots of f′ (its
//	critical points, found recursively) split the line into intervals on
//	each of which f is monotonic, so each interval holds at most one root
//	of f (Rolle's theorem / interlacing). For every interval whose end
//	values have opposite signs, the root is refined with Bisect. The two
//	unbounded end intervals are closed by stepping outward one unit at a
//	time until the sign flips, guided by the leading coefficient and the
//	parity of the degree.
//
// ✨ Properties
//   - roots come back in ascending order, each reported once
//   - comparisons against zero are exact; a critical point where f is
//     exactly 0 is reported directly, without bisection
//   - Bisect stops at the floating-point fixed point of the midpoint, not
//     at a tolerance, so the answer is as tight as float64 allows
//   - pure and re-entrant: safe to call concurrently
//
// ⚠️ Limitations
//
//	The outward unit-step search has no iteration cap. It is meant for
//	reasonably scaled polynomials (such as Laguerre families); a function
//	whose sign change is unreachable in unit steps will not terminate.
//	Exact zero tests presume exact or well-scaled coefficients.
//
// ⚙️ Usage:
//
//	x := polynomial.X()
//	p := x.SubScalar(1).Mul(x.SubScalar(2)).Mul(x.SubScalar(3))
//	rs, err := rootfind.Roots(p) // ≈ [1 2 3]
//
//	r, err := rootfind.Bisect(func(v float64) float64 { return v - 3 }, 0, 10)
package rootfind
