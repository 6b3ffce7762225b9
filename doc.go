// Package orbital computes the radial structure of hydrogen-like orbitals:
// where the radial wavefunction vanishes, where it peaks, and how far out
// it remains significant.
//
// 🚀 What is orbital?
//
//	A small numeric toolkit built around real-root isolation:
//		• Polynomials: immutable float64 coefficient vectors with exact-zero trimming
//		• Combinatorics: exact factorials and binomials on math/big
//		• Laguerre: associated Laguerre polynomials L_n^(a) + Golub–Welsch nodes
//		• Root finding: derivative-interlacing isolation + fixed-point bisection
//		• Radial analysis: nodes, maxima and decay extents per (n, L)
//		• Code generation: concurrent C++ data-table emitter + CLI
//
// ✨ Why this approach?
//
//   - Every real root is found, each once, without initial guesses
//   - Bisection runs to the float64 fixed point, not a tolerance
//   - Exact integer coefficients until the final division
//
// Packages:
//
//	polynomial/    — Polynomial type, arithmetic, derivative, Horner evaluation
//	combinatorics/ — Factorial, Choose
//	laguerre/      — Build (explicit sum), Nodes (Jacobi-matrix eigenvalues)
//	rootfind/      — Bisect, Roots
//	radial/        — Nodes, Maxima, Extent, Extent2
//	indent/        — indentation-tracking line writer
//	license/       — license notice in text, C and shell comment styles
//	table/         — Generate + WriteTo for the radial_data.cc tables
//	config/        — YAML configuration of the generator
//	cmd/radialgen/ — command-line front end
//
// Quick example:
//
//	p, _ := laguerre.Build(2, 1)    // 0.5x^2 - 3x + 3
//	roots, _ := rootfind.Roots(p)   // [1.2679… 4.7320…]
//
//	go install github.com/katalvlaran/orbital/cmd/radialgen@latest
package orbital
