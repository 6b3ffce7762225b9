// SPDX-License-Identifier: MIT

package laguerre

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/orbital/combinatorics"
	"github.com/katalvlaran/orbital/polynomial"
)

// Build returns the generalized Laguerre polynomial of degree n and
// parameter a:
//
//	L(x) = Σ_{i=0}^{n} (−1)^i · C(n+a, n−i) · x^i / i!
//
// Each term is the monomial x^i scaled by the signed binomial and then by
// 1/i!. Binomials and factorials are exact; the binomial and the
// reciprocal 1/i! are each rounded once to float64, so factorials beyond
// 2^53 lose no extra precision.
//
// Errors:
//   - ErrNegativeDegree if n < 0.
//   - combinatorics errors if n+a < n−i for some term (a negative enough
//     that a binomial is undefined).
func Build(n, a int) (polynomial.Polynomial, error) {
	if n < 0 {
		return polynomial.Polynomial{}, fmt.Errorf("Build(%d, %d): %w", n, a, ErrNegativeDegree)
	}

	x := polynomial.X()
	sum := polynomial.Zero()
	for i := 0; i <= n; i++ {
		c, err := combinatorics.Choose(n+a, n-i)
		if err != nil {
			return polynomial.Polynomial{}, fmt.Errorf("Build(%d, %d): term %d: %w", n, a, i, err)
		}
		f, err := combinatorics.Factorial(i)
		if err != nil {
			return polynomial.Polynomial{}, fmt.Errorf("Build(%d, %d): term %d: %w", n, a, i, err)
		}

		coeff := bigToFloat(c)
		if i%2 == 1 {
			coeff = -coeff
		}
		term := x.MustPow(i).Scale(coeff).Scale(reciprocal(f))
		sum = sum.Add(term)
	}

	return sum, nil
}

// bigToFloat rounds v to the nearest float64.
func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()

	return f
}

// reciprocal returns 1/v rounded once to the nearest float64.
func reciprocal(v *big.Int) float64 {
	f, _ := new(big.Rat).SetFrac(big.NewInt(1), v).Float64()

	return f
}
