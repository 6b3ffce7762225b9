// SPDX-License-Identifier: MIT

// Package laguerre builds generalized Laguerre polynomials L_n^(a) and
// computes reference values for their zeros.
//
// 🚀 What is L_n^(a)?
//
//	The orthogonal family on [0, ∞) with weight x^a·e^(−x). Its members
//	appear in the radial part of hydrogen-like wavefunctions:
//	  R_{n,L}(r) ∝ r^L · e^(−r/2) · L_{n−L−1}^(2L+1)(r)
//
// ✨ Two views of the same family:
//   - Build(n, a)  — the closed-form monomial sum
//     Σ_{i=0}^{n} (−1)^i · C(n+a, n−i) · x^i / i!
//     assembled through package polynomial with exact binomials.
//   - Nodes(n, a)  — zeros of L_n^(a) as eigenvalues of the symmetric
//     tridiagonal Jacobi matrix (Golub–Welsch), solved with Jacobi
//     rotations. Independent of the root isolator, so it is used as a
//     cross-check.
//
// ⚙️ Usage:
//
//	p, err := laguerre.Build(3, 1)
//	ref, err := laguerre.Nodes(3, 1)
//
// Complexity:
//
//   - Build: O(n²) coefficient work (dominated by the monomial powers)
//   - Nodes: O(n²) per rotation sweep, O(n³) overall in practice
package laguerre
