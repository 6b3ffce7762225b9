// SPDX-License-Identifier: MIT

// Package combinatorics provides exact factorials and binomial coefficients
// on math/big integers, as needed to build orthogonal polynomial families
// with exact coefficients.
package combinatorics
