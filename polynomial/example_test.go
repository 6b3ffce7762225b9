// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/orbital/polynomial"
)

// ExamplePolynomial builds (x-1)(x-2), evaluates it and differentiates it.
func ExamplePolynomial() {
	x := polynomial.X()
	p := x.SubScalar(1).Mul(x.SubScalar(2))

	fmt.Println(p)
	fmt.Println(p.Degree(), p.Evaluate(3))
	fmt.Println(p.Derivative())
	// Output:
	// x^2 - 3x + 2
	// 2 2
	// 2x - 3
}

// ExamplePolynomial_Pow shows exponentiation and its error path.
func ExamplePolynomial_Pow() {
	p, _ := polynomial.X().AddScalar(1).Pow(3)
	fmt.Println(p)

	_, err := p.Pow(-1)
	fmt.Println(err)
	// Output:
	// x^3 + 3x^2 + 3x + 1
	// polynomial: arithmetic error: negative exponent
}
