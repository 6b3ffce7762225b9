// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"

	"github.com/katalvlaran/orbital/polynomial"
)

// Roots returns every real root of p in ascending order, each reported once
// regardless of multiplicity.
//
// Algorithm Outline:
//  1. Degree 1: the root is −c0/c1.
//  2. Otherwise recurse on p′. Its roots d_0 < … < d_{k−1} are the
//     critical points of p, and p is monotonic between consecutive ones.
//  3. No critical points (odd degree only): p is strictly monotonic; find
//     its single root from the signs of p(0) and the leading coefficient.
//  4. Left of d_0: p tends to sign(lead·(−1)^deg) at −∞; if p(d_0) has the
//     opposite sign, step left in units until it flips, then bisect.
//  5. Each [d_i, d_{i+1}]: bisect when the end values have opposite strict
//     signs; record d_i itself when p(d_i) == 0.
//  6. Record d_{k−1} when p(d_{k−1}) == 0.
//  7. Right of d_{k−1}: as step 4, mirrored, using sign(lead) at +∞.
//
// Errors:
//   - ErrConstantPolynomial if p.Degree() < 1.
//
// Panics on the internal invariant breaches noted in monotonicRoot.
func Roots(p polynomial.Polynomial) ([]float64, error) {
	deg := p.Degree()
	if deg < 1 {
		return nil, fmt.Errorf("Roots(%v): %w", p, ErrConstantPolynomial)
	}
	if deg == 1 {
		r := -p.ConstantTerm() / p.LeadingCoefficient()
		if r == 0 {
			r = 0 // drop the sign of −0
		}

		return []float64{r}, nil
	}

	dRoots, err := Roots(p.Derivative())
	if err != nil {
		return nil, err
	}

	f := Func(p.Evaluate)
	lead := p.LeadingCoefficient()
	if len(dRoots) == 0 {
		return monotonicRoot(f, lead, deg)
	}

	var (
		roots = make([]float64, 0, deg)
		first = dRoots[0]
		last  = dRoots[len(dRoots)-1]
		r     float64
	)

	// left of the first critical point
	fFirst := f(first)
	negBehavior := lead
	if deg%2 == 1 {
		negBehavior = -lead
	}
	switch {
	case negBehavior > 0 && fFirst < 0:
		lower := stepOut(f, first-1, -1, true)
		if r, err = Bisect(f, lower, first); err != nil {
			return nil, err
		}
		roots = append(roots, r)
	case negBehavior < 0 && fFirst > 0:
		lower := stepOut(f, first-1, -1, false)
		if r, err = Bisect(f, lower, first); err != nil {
			return nil, err
		}
		roots = append(roots, r)
	}

	// between consecutive critical points
	for i := 0; i+1 < len(dRoots); i++ {
		d1, d2 := dRoots[i], dRoots[i+1]
		f1, f2 := f(d1), f(d2)
		if (f1 > 0 && f2 < 0) || (f1 < 0 && f2 > 0) {
			if r, err = Bisect(f, d1, d2); err != nil {
				return nil, err
			}
			roots = append(roots, r)
		}
		if f1 == 0 {
			roots = append(roots, d1)
		}
	}

	fLast := f(last)
	if fLast == 0 {
		roots = append(roots, last)
	}

	// right of the last critical point
	switch {
	case lead > 0 && fLast < 0:
		upper := stepOut(f, last+1, 1, true)
		if r, err = Bisect(f, last, upper); err != nil {
			return nil, err
		}
		roots = append(roots, r)
	case lead < 0 && fLast > 0:
		upper := stepOut(f, last+1, 1, false)
		if r, err = Bisect(f, last, upper); err != nil {
			return nil, err
		}
		roots = append(roots, r)
	}

	return roots, nil
}

// monotonicRoot finds the single root of a polynomial with no critical
// points. Such a polynomial has odd degree; anything else is an internal
// invariant breach and panics, as does a sign pattern that no real
// polynomial can produce (f(0) is NaN).
func monotonicRoot(f Func, lead float64, deg int) ([]float64, error) {
	if deg%2 != 1 {
		panic(fmt.Sprintf("rootfind: degree %d polynomial without critical points", deg))
	}

	f0 := f(0)
	var (
		r   float64
		err error
	)
	switch {
	case f0 == 0:
		return []float64{0}, nil
	case lead > 0 && f0 < 0:
		r, err = Bisect(f, 0, stepOut(f, 1, 1, true))
	case lead > 0 && f0 > 0:
		r, err = Bisect(f, stepOut(f, -1, -1, false), 0)
	case lead < 0 && f0 > 0:
		r, err = Bisect(f, 0, stepOut(f, 1, 1, false))
	case lead < 0 && f0 < 0:
		r, err = Bisect(f, stepOut(f, -1, -1, true), 0)
	default:
		panic("rootfind: impossible monotonic polynomial")
	}
	if err != nil {
		return nil, err
	}

	return []float64{r}, nil
}

// stepOut walks from x in increments of step until f(x) is strictly
// positive (wantPositive) or strictly negative, and returns that x.
// The walk is unbounded.
func stepOut(f Func, x, step float64, wantPositive bool) float64 {
	if wantPositive {
		for f(x) <= 0 {
			x += step
		}

		return x
	}
	for f(x) >= 0 {
		x += step
	}

	return x
}
