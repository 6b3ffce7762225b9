// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbital/laguerre"
	"github.com/katalvlaran/orbital/polynomial"
	"github.com/katalvlaran/orbital/rootfind"
)

// fromRoots returns lead·Π(x − r).
func fromRoots(lead float64, rs ...float64) polynomial.Polynomial {
	p := polynomial.New(lead, 0)
	for _, r := range rs {
		p = p.Mul(polynomial.X().SubScalar(r))
	}

	return p
}

// TestRoots_Constant ensures constants are rejected as a domain error.
func TestRoots_Constant(t *testing.T) {
	for _, p := range []polynomial.Polynomial{polynomial.Zero(), polynomial.One(), polynomial.New(-4, 0)} {
		_, err := rootfind.Roots(p)
		assert.ErrorIs(t, err, rootfind.ErrConstantPolynomial, "degree %d", p.Degree())
		assert.ErrorIs(t, err, rootfind.ErrDomain)
	}
}

// TestRoots_Exact covers cases whose roots are hit exactly in float64.
func TestRoots_Exact(t *testing.T) {
	x := polynomial.X()
	x2 := x.Mul(x)

	cases := []struct {
		name string
		p    polynomial.Polynomial
		want []float64
	}{
		{"x", x, []float64{0}},
		{"-x", x.Neg(), []float64{0}},
		{"x-1", x.SubScalar(1), []float64{1}},
		{"2x-5", x.Scale(2).SubScalar(5), []float64{2.5}},
		{"2x-4", x.Scale(2).SubScalar(4), []float64{2}},
		{"x^2-1", x2.SubScalar(1), []float64{-1, 1}},
		{"-x^2+1", x2.ScalarSub(1), []float64{-1, 1}},
		{"x^2+1", x2.AddScalar(1), []float64{}},
		{"-x^2-1", x2.Neg().SubScalar(1), []float64{}},
		{"x^2", x2, []float64{0}},
		{"x^3+x", x2.Mul(x).Add(x), []float64{0}},
		{"(x-2)^2", fromRoots(1, 2, 2), []float64{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rootfind.Roots(tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRoots_Cubics checks multi-level recursion, including roots that sit
// on critical points of the derivative.
func TestRoots_Cubics(t *testing.T) {
	x := polynomial.X()
	x2 := x.Mul(x)
	x3 := x2.Mul(x)

	cases := []struct {
		name string
		p    polynomial.Polynomial
		want []float64
	}{
		{"x^3-x", x3.Sub(x), []float64{-1, 0, 1}},
		{"-x^3+x", x3.Neg().Add(x), []float64{-1, 0, 1}},
		{"x^3-x^2", x3.Sub(x2), []float64{0, 1}},
		{"x^3+x^2", x3.Add(x2), []float64{-1, 0}},
		{"(x-1)(x-2)(x-3)", fromRoots(1, 1, 2, 3), []float64{1, 2, 3}},
		{"-2(x+4)(x-0.5)(x-7)", fromRoots(-2, -4, 0.5, 7), []float64{-4, 0.5, 7}},
		{"x^3-2 (monotonic)", x3.SubScalar(2), []float64{math.Cbrt(2)}},
		{"-x^3-2 (monotonic)", x3.Neg().SubScalar(2), []float64{-math.Cbrt(2)}},
		{"x^3+5 (monotonic)", x3.AddScalar(5), []float64{-math.Cbrt(5)}},
		{"-x^3+5 (monotonic)", x3.Neg().AddScalar(5), []float64{math.Cbrt(5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rootfind.Roots(tc.p)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("roots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRoots_Properties checks ordering, count and residuals on products of
// distinct linear factors of increasing degree.
func TestRoots_Properties(t *testing.T) {
	factors := []float64{-3.5, -1, 0.25, 2, 4.75, 6, 9}
	for deg := 1; deg <= len(factors); deg++ {
		for _, lead := range []float64{1, -0.5} {
			want := factors[:deg]
			p := fromRoots(lead, want...)

			got, err := rootfind.Roots(p)
			require.NoError(t, err)
			require.LessOrEqual(t, len(got), p.Degree(), "root count never exceeds degree")
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
				t.Fatalf("degree %d lead %v (-want +got):\n%s", deg, lead, diff)
			}
			for i, r := range got {
				if i > 0 {
					assert.Less(t, got[i-1], r, "ascending")
				}
				assert.InDelta(t, 0.0, p.Evaluate(r), 1e-6, "residual at %v", r)
			}
		}
	}
}

// TestRoots_LaguerreMatchesGolubWelsch cross-checks the recursive isolator
// against the eigenvalue computation of Laguerre zeros.
func TestRoots_LaguerreMatchesGolubWelsch(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for _, a := range []int{0, 1, 2, 5, 9} {
			p, err := laguerre.Build(n, a)
			require.NoError(t, err)
			got, err := rootfind.Roots(p)
			require.NoError(t, err)
			want, err := laguerre.Nodes(n, a)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
				t.Fatalf("L_%d^(%d) (-golub-welsch +roots):\n%s", n, a, diff)
			}
		}
	}
}

// TestRoots_NoRealRoots covers even-degree polynomials that never cross zero.
func TestRoots_NoRealRoots(t *testing.T) {
	x := polynomial.X()
	p := x.MustPow(4).Add(x.Mul(x)).AddScalar(1)
	got, err := rootfind.Roots(p)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = rootfind.Roots(p.Neg())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestRoots_ImpossibleMonotonic ensures the internal invariant breach panics
// rather than returning a sentinel.
func TestRoots_ImpossibleMonotonic(t *testing.T) {
	p := polynomial.FromCoefficients(math.NaN(), 1, 0, 1)
	assert.Panics(t, func() { _, _ = rootfind.Roots(p) })
}

// TestRoots_DoesNotMutate checks that isolating roots leaves the input intact.
func TestRoots_DoesNotMutate(t *testing.T) {
	p := fromRoots(1, 1, 2, 3)
	before := p.Coefficients()
	_, err := rootfind.Roots(p)
	require.NoError(t, err)
	assert.Equal(t, before, p.Coefficients())
}
