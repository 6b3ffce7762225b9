// SPDX-License-Identifier: MIT

package laguerre

import "errors"

var (
	// ErrNegativeDegree is returned when the requested degree n is negative.
	ErrNegativeDegree = errors.New("laguerre: degree must be non-negative")

	// ErrParameter is returned by Nodes when a <= -1, where the family is
	// not orthogonal and the Jacobi matrix is not real symmetric.
	ErrParameter = errors.New("laguerre: parameter must be greater than -1")

	// ErrEigenFailed is returned if the Jacobi rotations do not converge
	// within the rotation budget.
	ErrEigenFailed = errors.New("laguerre: eigen decomposition did not converge")
)
