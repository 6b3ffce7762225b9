// SPDX-License-Identifier: MIT

package radial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orbital/laguerre"
	"github.com/katalvlaran/orbital/polynomial"
	"github.com/katalvlaran/orbital/rootfind"
)

// ExtentDecay is the factor by which the radial function must fall below
// its peak to count as decayed.
const ExtentDecay = 1e5

// Validate checks that n ≥ 1 and 0 ≤ L < n.
func Validate(n, L int) error {
	if n < 1 || L < 0 || L >= n {
		return fmt.Errorf("n=%d L=%d: %w", n, L, ErrQuantumNumbers)
	}

	return nil
}

// Factor returns the Laguerre factor L_{n−L−1}^(2L+1) of the radial function.
func Factor(n, L int) (polynomial.Polynomial, error) {
	if err := Validate(n, L); err != nil {
		return polynomial.Polynomial{}, err
	}

	return laguerre.Build(n-L-1, 2*L+1)
}

// Nodes returns the radial nodes (nonzero zeros of R) in ascending order.
// Orbitals with n−L−1 == 0 have none.
func Nodes(n, L int) ([]float64, error) {
	la, err := Factor(n, L)
	if err != nil {
		return nil, err
	}

	return rootsOrNone(la)
}

// Maxima returns the nonzero critical points of R in ascending order.
func Maxima(n, L int) ([]float64, error) {
	la, err := Factor(n, L)
	if err != nil {
		return nil, err
	}

	x := polynomial.X()
	dla := la.Derivative()
	var f polynomial.Polynomial
	if L != 0 {
		f = x.DivScalar(2).ScalarSub(float64(L)).Mul(la).Add(x.Mul(dla))
	} else {
		f = la.Scale(-0.5).Add(dla)
	}

	return rootsOrNone(f)
}

// Extent returns the first integer step past the outermost maximum at
// which |R(r)| falls to 1/ExtentDecay of its peak.
func Extent(n, L int) (float64, error) {
	return extent(n, L, math.Abs)
}

// Extent2 is Extent for the probability-like R(r)².
func Extent2(n, L int) (float64, error) {
	return extent(n, L, func(v float64) float64 { return v * v })
}

// extent walks outward in unit steps from max(maxima ∪ {0}) + 1 until
// shape(R(r)) <= peak/ExtentDecay, where peak is the largest shape(R)
// over maxima ∪ {0}.
func extent(n, L int, shape func(float64) float64) (float64, error) {
	maxes, err := Maxima(n, L)
	if err != nil {
		return 0, err
	}
	la, err := Factor(n, L)
	if err != nil {
		return 0, err
	}
	g := func(r float64) float64 {
		return shape(math.Pow(r, float64(L)) * math.Exp(-r/2) * la.Evaluate(r))
	}

	maxes = append(maxes, 0)
	peak, outer := math.Inf(-1), math.Inf(-1)
	for _, r := range maxes {
		peak = math.Max(peak, g(r))
		outer = math.Max(outer, r)
	}

	upper := outer + 1
	for g(upper) > peak/ExtentDecay {
		upper++
	}

	return upper, nil
}

// rootsOrNone isolates the roots of p, treating a constant as rootless.
func rootsOrNone(p polynomial.Polynomial) ([]float64, error) {
	if p.Degree() < 1 {
		return []float64{}, nil
	}

	return rootfind.Roots(p)
}
