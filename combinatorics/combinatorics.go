// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"
	"math/big"
)

// Factorial returns n! exactly. Factorial(0) == Factorial(1) == 1.
//
// Errors:
//   - ErrNegativeFactorial if n < 0.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Factorial(%d): %w", n, ErrNegativeFactorial)
	}
	f := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}

	return f, nil
}

// Choose returns the binomial coefficient C(n, k) = n! / (k!·(n-k)!)
// using exact integer division.
//
// Errors:
//   - ErrNegativeFactorial if n < 0.
//   - ErrChooseRange if k < 0 or k > n.
func Choose(n, k int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Choose(%d, %d): %w", n, k, ErrNegativeFactorial)
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("Choose(%d, %d): %w", n, k, ErrChooseRange)
	}

	num, _ := Factorial(n)
	fk, _ := Factorial(k)
	fnk, _ := Factorial(n - k)
	den := new(big.Int).Mul(fk, fnk)

	return num.Quo(num, den), nil
}
