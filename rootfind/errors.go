// SPDX-License-Identifier: MIT

package rootfind

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the umbrella for contract violations by the caller.
	ErrDomain = errors.New("rootfind: domain error")

	// ErrConstantPolynomial is returned by Roots for polynomials of degree < 1.
	ErrConstantPolynomial = fmt.Errorf("%w: roots called on a constant polynomial", ErrDomain)

	// ErrBadBracket is returned by Bisect when lower is not strictly less than upper.
	ErrBadBracket = fmt.Errorf("%w: lower not less than upper", ErrDomain)

	// ErrNoSignChange is returned by Bisect when f has the same strict sign
	// at both endpoints.
	ErrNoSignChange = fmt.Errorf("%w: no sign change present", ErrDomain)
)
