// SPDX-License-Identifier: MIT

package polynomial

import (
	"strconv"
	"strings"
)

// Polynomial is an immutable univariate polynomial with float64
// coefficients. The zero value is the zero polynomial.
//
// Invariant: if len(coeffs) > 0 then coeffs[len(coeffs)-1] != 0.
type Polynomial struct {
	coeffs []float64 // coeffs[i] is the coefficient of x^i
}

// New returns the monomial c·x^n. New(0, n) is the zero polynomial.
// A negative n is a programmer error and panics.
func New(c float64, n int) Polynomial {
	if n < 0 {
		panic("polynomial: New with negative power")
	}
	if c == 0 {
		return Polynomial{}
	}
	cs := make([]float64, n+1)
	cs[n] = c

	return Polynomial{coeffs: cs}
}

// FromCoefficients returns c0 + c1·x + … for cs = [c0, c1, …].
// The input slice is copied.
func FromCoefficients(cs ...float64) Polynomial {
	out := make([]float64, len(cs))
	copy(out, cs)

	return standardize(out)
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// One returns the constant polynomial 1.
func One() Polynomial { return New(1, 0) }

// X returns the identity polynomial x.
func X() Polynomial { return New(1, 1) }

// standardize trims trailing zero coefficients in place and wraps cs.
// Callers must own cs.
func standardize(cs []float64) Polynomial {
	n := len(cs)
	for n > 0 && cs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{}
	}

	return Polynomial{coeffs: cs[:n:n]}
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// ConstantTerm returns the coefficient of x^0 (0 for the zero polynomial).
func (p Polynomial) ConstantTerm() float64 { return p.Coefficient(0) }

// LeadingCoefficient returns the coefficient of x^Degree
// (0 for the zero polynomial).
func (p Polynomial) LeadingCoefficient() float64 {
	if p.IsZero() {
		return 0
	}

	return p.coeffs[len(p.coeffs)-1]
}

// Coefficient returns the coefficient of x^i, or 0 when i is out of range.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients, lowest power first.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Equal reports exact structural equality of two standardized polynomials.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if c != q.coeffs[i] {
			return false
		}
	}

	return true
}

// Evaluate returns p(x) using Horner's method.
func (p Polynomial) Evaluate(x float64) float64 {
	total := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		total = total*x + p.coeffs[i]
	}

	return total
}

// String renders p highest power first, e.g. "0.5x^2 - 2x + 1".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		abs := c
		if abs < 0 {
			abs = -abs
		}
		if abs != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
