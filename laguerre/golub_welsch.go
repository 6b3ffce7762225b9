// SPDX-License-Identifier: MIT

package laguerre

import (
	"fmt"
	"math"
	"sort"
)

// eigenTolScale scales the Frobenius norm of the Jacobi matrix into the
// absolute off-diagonal threshold used as the convergence test.
const eigenTolScale = 1e-13

// Nodes returns the n zeros of L_n^(a) in ascending order, computed as the
// eigenvalues of the symmetric tridiagonal Jacobi matrix
//
//	J[k][k]   = 2k + a + 1,          k = 0..n−1
//	J[k][k−1] = J[k−1][k] = √(k(k+a)), k = 1..n−1
//
// (Golub–Welsch). Nodes(0, a) is empty.
//
// Errors:
//   - ErrNegativeDegree if n < 0.
//   - ErrParameter if a <= −1.
//   - ErrEigenFailed if the rotations do not converge.
func Nodes(n, a int) ([]float64, error) {
	// Stage 1: Validate input
	if n < 0 {
		return nil, fmt.Errorf("Nodes(%d, %d): %w", n, a, ErrNegativeDegree)
	}
	if a <= -1 {
		return nil, fmt.Errorf("Nodes(%d, %d): %w", n, a, ErrParameter)
	}
	if n == 0 {
		return []float64{}, nil
	}

	// Stage 2: Assemble the Jacobi matrix
	J := make([][]float64, n)
	for k := range J {
		J[k] = make([]float64, n)
		J[k][k] = float64(2*k + a + 1)
		if k > 0 {
			off := math.Sqrt(float64(k * (k + a)))
			J[k][k-1] = off
			J[k-1][k] = off
		}
	}

	// Stage 3: Diagonalize
	eigs, err := symmetricEigenvalues(J, 100*n*n+100)
	if err != nil {
		return nil, fmt.Errorf("Nodes(%d, %d): %w", n, a, err)
	}
	sort.Float64s(eigs)

	return eigs, nil
}

// symmetricEigenvalues diagonalizes the symmetric matrix A in place with
// classical Jacobi rotations (largest off-diagonal pivot first) and returns
// the diagonal. maxRot caps the number of rotations.
func symmetricEigenvalues(A [][]float64, maxRot int) ([]float64, error) {
	var (
		n    = len(A)
		norm float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			norm += A[i][j] * A[i][j]
		}
	}
	tol := eigenTolScale * math.Sqrt(norm)

	var (
		rot            int     // rotation counter
		p, q           int     // pivot indices
		maxOff         float64 // largest |A[p][q]|
		theta, t, c, s float64 // rotation parameters
		app, aqq, apq  float64 // pivot block
		arp, arq       float64 // temporaries
	)
	for rot = 0; rot < maxRot; rot++ {
		// find largest off-diagonal |A[p][q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(A[i][j]) > maxOff {
					maxOff = math.Abs(A[i][j])
					p, q = i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}

		app, aqq, apq = A[p][p], A[q][q], A[p][q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			arp, arq = A[i][p], A[i][q]
			A[i][p] = c*arp - s*arq
			A[p][i] = A[i][p]
			A[i][q] = s*arp + c*arq
			A[q][i] = A[i][q]
		}
		A[p][p] = app - t*apq
		A[q][q] = aqq + t*apq
		A[p][q] = 0
		A[q][p] = 0
	}
	if rot == maxRot {
		return nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A[i][i]
	}

	return eigs, nil
}
