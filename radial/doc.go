// SPDX-License-Identifier: MIT

// Package radial analyzes the radial factor of hydrogen-like orbitals.
//
// For principal number n ≥ 1 and angular number 0 ≤ L < n the radial
// factor, in scaled radius r, is
//
//	R(r) = r^L · e^(−r/2) · La(r),   La = L_{n−L−1}^(2L+1)
//
// Nodes are the nonzero zeros of R, which are exactly the zeros of La.
// Maxima are the nonzero critical points of R: setting R′ = 0 and dividing
// out r^(L−1)·e^(−r/2) leaves
//
//	(L − r/2)·La(r) + r·La′(r) = 0   (L > 0)
//	(−1/2)·La(r) + La′(r)      = 0   (L = 0)
//
// where the L = 0 form omits the spurious root r = 0. Extent and Extent2
// give an integer radius beyond which |R| (or R²) has decayed to 1e−5 of
// its peak; renderers use them to size the sampled volume.
package radial
