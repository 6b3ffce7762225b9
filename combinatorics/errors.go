// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmetic is the umbrella for arithmetic failures in this package.
	ErrArithmetic = errors.New("combinatorics: arithmetic error")

	// ErrNegativeFactorial is returned by Factorial for n < 0.
	ErrNegativeFactorial = fmt.Errorf("%w: factorial of a negative number", ErrArithmetic)

	// ErrChooseRange is returned by Choose when k is outside [0, n].
	ErrChooseRange = fmt.Errorf("%w: binomial index out of range", ErrArithmetic)
)
