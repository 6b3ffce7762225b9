// SPDX-License-Identifier: MIT

package polynomial

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	lg, sm := p.coeffs, q.coeffs
	if len(lg) < len(sm) {
		lg, sm = sm, lg
	}
	out := make([]float64, len(lg))
	copy(out, lg)
	for i, c := range sm {
		out[i] += c
	}

	return standardize(out)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = -c
	}

	return standardize(out)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// AddScalar returns p + c.
func (p Polynomial) AddScalar(c float64) Polynomial { return p.Add(New(c, 0)) }

// SubScalar returns p - c.
func (p Polynomial) SubScalar(c float64) Polynomial { return p.Add(New(-c, 0)) }

// ScalarSub returns c - p.
func (p Polynomial) ScalarSub(c float64) Polynomial { return p.Neg().AddScalar(c) }

// Mul returns the product p·q (full convolution of the coefficients).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	out := make([]float64, p.Degree()+q.Degree()+1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return standardize(out)
}

// Scale returns c·p.
func (p Polynomial) Scale(c float64) Polynomial { return p.Mul(New(c, 0)) }

// DivScalar returns p·(1/c). Division by zero follows IEEE-754.
func (p Polynomial) DivScalar(c float64) Polynomial { return p.Scale(1 / c) }

// Pow returns p^e for e >= 0 by repeated squaring. p^0 is One() for every
// p, including the zero polynomial. Each partial product multiplies the
// higher power on the left, so p^2 and p^3 are bit-equal to p.Mul(p) and
// p.Mul(p).Mul(p) for any coefficients.
//
// Errors:
//   - ErrNegativeExponent if e < 0.
func (p Polynomial) Pow(e int) (Polynomial, error) {
	if e < 0 {
		return Polynomial{}, ErrNegativeExponent
	}

	result := One()
	base := p
	for e > 0 {
		if e&1 == 1 {
			result = base.Mul(result)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// MustPow is Pow for exponents known to be non-negative; it panics otherwise.
func (p Polynomial) MustPow(e int) Polynomial {
	q, err := p.Pow(e)
	if err != nil {
		panic(err)
	}

	return q
}

// Derivative returns dp/dx. Constants differentiate to the zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	if p.Degree() < 1 {
		return Polynomial{}
	}
	out := make([]float64, p.Degree())
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = float64(i) * p.coeffs[i]
	}

	return standardize(out)
}
