// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmetic is the umbrella for arithmetic failures in this package.
	ErrArithmetic = errors.New("polynomial: arithmetic error")

	// ErrNegativeExponent is returned by Pow for e < 0.
	ErrNegativeExponent = fmt.Errorf("%w: negative exponent", ErrArithmetic)
)
