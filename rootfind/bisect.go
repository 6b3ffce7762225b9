// SPDX-License-Identifier: MIT

package rootfind

import "fmt"

// Func is a continuous real function.
type Func func(float64) float64

// Bisect narrows the bracket [lower, upper] around a root of f.
//
// If f is exactly zero at an endpoint, that endpoint is returned. Otherwise
// the midpoint replaces whichever endpoint shares its sign, until either
// f(mid) == 0 or mid is no longer strictly between lower and upper in
// float64 arithmetic. That fixed point is the stopping rule; there is no
// tolerance parameter.
//
// Errors:
//   - ErrBadBracket if !(lower < upper).
//   - ErrNoSignChange if f(lower) and f(upper) are both > 0 or both < 0.
func Bisect(f Func, lower, upper float64) (float64, error) {
	if !(lower < upper) {
		return 0, fmt.Errorf("Bisect [%v, %v]: %w", lower, upper, ErrBadBracket)
	}
	fLower := f(lower)
	if fLower == 0 {
		return lower, nil
	}
	fUpper := f(upper)
	if fUpper == 0 {
		return upper, nil
	}
	if (fLower < 0 && fUpper < 0) || (fLower > 0 && fUpper > 0) {
		return 0, fmt.Errorf("Bisect [%v, %v]: %w", lower, upper, ErrNoSignChange)
	}

	for {
		mid := (lower + upper) / 2
		if !(lower < mid && mid < upper) {
			return mid, nil
		}
		fMid := f(mid)
		if fMid == 0 {
			return mid, nil
		}
		if (fMid < 0) == (fLower < 0) {
			lower, fLower = mid, fMid
		} else {
			upper = mid
		}
	}
}
